package ioformat

import "fmt"

// WrongTypeError indicates a JSON document's "type" field did not match
// what the reader expected.
type WrongTypeError struct {
	Expected string
	Got      string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("wrong document type: expected %q, got %q", e.Expected, e.Got)
}

// MissingFieldError indicates a required JSON field was absent or empty. A
// field of the wrong JSON type surfaces as a JSON decoding error instead.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing or invalid field %q", e.Field)
}

// EmptyPolygonsError indicates a solution document's polygons list was
// empty after filtering placeholder entries.
type EmptyPolygonsError struct{}

func (e *EmptyPolygonsError) Error() string {
	return "at least one polygon must be provided"
}

// BadPolygonError indicates a polygon entry in a solution document, or an
// instance's outer boundary (Index -1), has fewer than three points. A
// polygon that is not a list of points surfaces as a JSON decoding error.
type BadPolygonError struct {
	Index int
	Msg   string
}

func (e *BadPolygonError) Error() string {
	return fmt.Sprintf("polygon %d: %s", e.Index, e.Msg)
}
