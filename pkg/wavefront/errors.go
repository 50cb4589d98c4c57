package wavefront

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedNumber is returned when a numeric field does not parse.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrMissingField is returned when a directive has too few fields.
	ErrMissingField = errors.New("missing field")

	// ErrIndexOutOfRange is returned when a face references a position or
	// normal that has not been declared.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnknownMaterial is returned by usemtl for a name the material
	// table does not define.
	ErrUnknownMaterial = errors.New("unknown material")

	// ErrTooManyVertices is returned when the mesh needs more distinct
	// vertices than a 16-bit index buffer can address.
	ErrTooManyVertices = errors.New("too many vertices for 16-bit indices")
)

// ParseError reports a fatal problem on a specific line of an input file.
type ParseError struct {
	File      string // base name of the file, empty for readers
	Line      int    // 1-based
	Directive string // empty for read failures
	Err       error
}

func (e *ParseError) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	if e.Directive == "" {
		return fmt.Sprintf("wavefront: %s:%d: %v", file, e.Line, e.Err)
	}
	return fmt.Sprintf("wavefront: %s:%d: %s: %v", file, e.Line, e.Directive, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
