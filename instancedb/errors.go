package instancedb

import "fmt"

// NotFoundError indicates no file in the database matched a requested
// instance name.
type NotFoundError struct {
	Name string
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("instancedb: no instance named %q found under %s", e.Name, e.Path)
}

// InvalidPathError indicates the path given to [Open] is neither a
// directory nor a ZIP file.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("instancedb: %s is neither a directory nor a ZIP file", e.Path)
}
