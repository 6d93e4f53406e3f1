// Package archive scans a ZIP file of solution documents, guarding
// against decompression bombs, unsafe paths, and unrecognized text
// encodings before handing each entry to [ioformat.ReadSolution].
package archive

import (
	"archive/zip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"path"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/cgshop2023/verifier/ioformat"
)

const (
	defaultFileSizeLimit    = 250 * 1_000_000
	defaultArchiveSizeLimit = 2_000 * 1_000_000
)

var defaultSolutionExtensions = []string{"json", "solution"}

// Options controls the safety guards and file-matching rules applied by
// [ScanSolutions].
type Options struct {
	FileSizeLimit      int64
	ArchiveSizeLimit   int64
	SolutionExtensions []string
}

// Option configures a [ScanSolutions] scan.
type Option func(*Options)

// WithFileSizeLimit overrides the maximum decompressed size, in bytes,
// permitted for any single archive entry.
func WithFileSizeLimit(limit int64) Option {
	return func(o *Options) { o.FileSizeLimit = limit }
}

// WithArchiveSizeLimit overrides the maximum total decompressed size, in
// bytes, permitted across every entry in the archive.
func WithArchiveSizeLimit(limit int64) Option {
	return func(o *Options) { o.ArchiveSizeLimit = limit }
}

// WithSolutionExtensions overrides which file extensions (case
// insensitive, without the leading dot) are treated as solution
// candidates.
func WithSolutionExtensions(extensions ...string) Option {
	return func(o *Options) { o.SolutionExtensions = extensions }
}

func defaultOptions() Options {
	return Options{
		FileSizeLimit:      defaultFileSizeLimit,
		ArchiveSizeLimit:   defaultArchiveSizeLimit,
		SolutionExtensions: defaultSolutionExtensions,
	}
}

func applyOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Result pairs a successfully parsed solution with the archive entry it
// came from.
type Result struct {
	FileName string
	Solution ioformat.Solution
}

// ScanSolutions opens the ZIP archive at zipPath and iterates its
// solution entries. Each yielded pair is either a [Result] with a nil
// error, or a zero Result with a non-nil error.
//
// An entry whose document "type" field isn't "CGSHOP2023_Solution" is
// silently skipped rather than yielded, since it's ordinary for an
// archive of solutions to also carry the instance files it solves. Any
// other malformed candidate — bad JSON, wrong encoding, a missing
// instance name, an empty or too-few-point polygon list — aborts the
// whole scan: it is yielded once as the final pair, and no further
// entries are read, regardless of what the caller's yield function
// returns. Oversized files, an oversized archive, an unsafe path, or a
// corrupted ZIP central directory abort the scan the same way, before a
// single entry is read.
func ScanSolutions(zipPath string, opts ...Option) iter.Seq2[Result, error] {
	o := applyOptions(opts...)
	return func(yield func(Result, error) bool) {
		r, err := zip.OpenReader(zipPath)
		if err != nil {
			yield(Result{}, &InvalidZipError{Err: err})
			return
		}
		defer r.Close()

		if err := checkArchiveSafety(r.File, o); err != nil {
			yield(Result{}, err)
			return
		}

		sawSolution := false
		for _, f := range r.File {
			if !isSolutionFileName(f.Name, o.SolutionExtensions) {
				continue
			}

			result, err, outcome := readEntry(f)
			switch outcome {
			case outcomeSkip:
				continue
			case outcomeAbort:
				yield(result, err)
				return
			default:
				sawSolution = true
				if !yield(result, err) {
					return
				}
			}
		}
		if !sawSolution {
			yield(Result{}, &NoSolutionsError{})
		}
	}
}

func checkArchiveSafety(files []*zip.File, o Options) error {
	var total int64
	for _, f := range files {
		if !isSafeName(f.Name) {
			return &InvalidFileNameError{Name: f.Name}
		}
		size := int64(f.UncompressedSize64)
		if size > o.FileSizeLimit {
			return &FileTooLargeError{Name: f.Name, Size: size, Limit: o.FileSizeLimit}
		}
		total += size
	}
	if total > o.ArchiveSizeLimit {
		return &ArchiveTooLargeError{Size: total, Limit: o.ArchiveSizeLimit}
	}
	return nil
}

// isSafeName rejects absolute paths, ".." traversal components, and the
// leading-slash form some ZIP writers use, mirroring the guard a ZIP
// consumer must apply since the format itself enforces none of this.
func isSafeName(name string) bool {
	if name == "" || name[0] == '/' || path.IsAbs(name) {
		return false
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == ".." {
			return false
		}
	}
	return true
}

// isHiddenSegment reports whether a single path segment names a
// dotfile-style or macOS resource-fork directory, the same two patterns
// the original scanner excludes from consideration.
func isHiddenSegment(seg string) bool {
	if len(seg) > 1 && seg[0] == '.' {
		return true
	}
	if len(seg) > 1 && strings.HasPrefix(seg, "__") {
		return true
	}
	return false
}

func isSolutionFileName(name string, extensions []string) bool {
	ext := strings.ToLower(name)
	if idx := strings.LastIndexByte(ext, '.'); idx != -1 {
		ext = ext[idx+1:]
	} else {
		ext = ""
	}
	matched := false
	for _, e := range extensions {
		if ext == e {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, seg := range strings.Split(name, "/") {
		if isHiddenSegment(seg) {
			return false
		}
	}
	return true
}

// entryOutcome classifies how ScanSolutions should handle one parsed
// entry: yield it and keep going, skip it silently and keep going, or
// yield it and stop the scan entirely.
type entryOutcome int

const (
	outcomeYield entryOutcome = iota
	outcomeSkip
	outcomeAbort
)

// readEntry parses one archive entry as a solution document. Only a
// document tagged with a type other than "CGSHOP2023_Solution" (an
// instance file accidentally left alongside the solutions) is
// [outcomeSkip]; every other failure — corrupt ZIP data, a bad encoding,
// malformed JSON, a missing instance name, an empty or too-few-point
// polygon list — is [outcomeAbort], since none of these can be
// attributed to this one entry being merely unwanted rather than the
// archive itself being malformed.
func readEntry(f *zip.File) (Result, error, entryOutcome) {
	rc, err := f.Open()
	if err != nil {
		return Result{}, &InvalidZipError{Err: err}, outcomeAbort
	}
	defer rc.Close()

	raw, err := io.ReadAll(io.LimitReader(rc, int64(f.UncompressedSize64)+1))
	if err != nil {
		return Result{}, &InvalidZipError{Err: err}, outcomeAbort
	}

	text, err := decodeText(raw)
	if err != nil {
		return Result{}, &InvalidEncodingError{Name: f.Name}, outcomeAbort
	}

	sol, err := ioformat.ReadSolution(strings.NewReader(text))
	if err != nil {
		var wte *ioformat.WrongTypeError
		if errors.As(err, &wte) {
			return Result{}, nil, outcomeSkip
		}
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			return Result{}, &InvalidJSONError{Name: f.Name, Err: err}, outcomeAbort
		}
		return Result{}, fmt.Errorf("archive: %s: %w", f.Name, err), outcomeAbort
	}
	return Result{FileName: f.Name, Solution: sol}, nil, outcomeYield
}

// fallbackEncodings are tried in order when raw isn't valid UTF-8,
// mirroring the original scanner's chardet-detection fallback with a
// fixed short list of the encodings archive producers actually emit.
var fallbackEncodings = []encoding.Encoding{
	unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM),
	unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM),
	charmap.ISO8859_1,
	charmap.Windows1252,
}

// decodeText decodes raw bytes as strict UTF-8, falling back in turn to
// the encodings in fallbackEncodings.
func decodeText(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	for _, enc := range fallbackEncodings {
		decoded, err := enc.NewDecoder().Bytes(raw)
		if err == nil && utf8.Valid(decoded) {
			return string(decoded), nil
		}
	}
	return "", fmt.Errorf("archive: no recognized encoding")
}
