package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")
	// ErrObjectInArray is returned for JSON objects nested in arrays,
	// which have no leaf representation.
	ErrObjectInArray = fmt.Errorf("%w: object inside array", ErrParse)
	ErrEmptyTable    = fmt.Errorf("%w: empty table", ErrParse)
)

// Error locates a parse failure in its input.
type Error struct {
	Line   int
	Offset int64
	Err    error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
