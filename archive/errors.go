package archive

import "fmt"

// InvalidFileNameError indicates a ZIP entry's path is unsafe to extract:
// absolute, containing ".." components, or otherwise escaping the
// archive's own directory.
type InvalidFileNameError struct {
	Name string
}

func (e *InvalidFileNameError) Error() string {
	return fmt.Sprintf("archive: entry %q has an unsafe path", e.Name)
}

// FileTooLargeError indicates a single ZIP entry's decompressed size
// exceeds the configured per-file limit.
type FileTooLargeError struct {
	Name  string
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("archive: entry %q is %d bytes decompressed (limit %d)", e.Name, e.Size, e.Limit)
}

// ArchiveTooLargeError indicates the sum of every entry's decompressed
// size exceeds the configured archive-wide limit.
type ArchiveTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *ArchiveTooLargeError) Error() string {
	return fmt.Sprintf("archive: total decompressed size is %d bytes (limit %d)", e.Size, e.Limit)
}

// NoSolutionsError indicates a ZIP archive yielded no solution: no entry
// matched a recognized solution extension, or every entry that did was
// tagged with a document type other than "CGSHOP2023_Solution".
type NoSolutionsError struct{}

func (e *NoSolutionsError) Error() string {
	return "archive: no solution files found; confirm entries are tagged type \"CGSHOP2023_Solution\""
}

// InvalidJSONError indicates a candidate solution entry could not be
// parsed as JSON.
type InvalidJSONError struct {
	Name string
	Err  error
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("archive: entry %q is not valid JSON: %v", e.Name, e.Err)
}

func (e *InvalidJSONError) Unwrap() error { return e.Err }

// InvalidEncodingError indicates a candidate solution entry could not be
// decoded as text under UTF-8 or any detected fallback encoding.
type InvalidEncodingError struct {
	Name string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("archive: entry %q uses an unrecognized character encoding", e.Name)
}

// InvalidZipError indicates the archive itself is corrupt: it failed to
// open, or its CRC checksums do not match its contents.
type InvalidZipError struct {
	Err error
}

func (e *InvalidZipError) Error() string {
	return fmt.Sprintf("archive: corrupted ZIP archive: %v", e.Err)
}

func (e *InvalidZipError) Unwrap() error { return e.Err }
