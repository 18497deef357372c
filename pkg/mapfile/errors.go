package mapfile

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError reports malformed input at a byte position. Parsing halts at
// the first ParseError; there is no partial-result recovery.
type ParseError struct {
	Position int
	Line     int
	Column   int
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mapfile: parse error at line %d, column %d: expected %s", e.Line, e.Column, e.Expected)
}

// Utf8Error reports that FromBytes/FromReader input was not valid UTF-8.
type Utf8Error struct {
	Cause error
}

func (e *Utf8Error) Error() string {
	return fmt.Sprintf("mapfile: invalid utf-8: %v", e.Cause)
}

func (e *Utf8Error) Unwrap() error {
	return e.Cause
}

// IOError reports that the underlying reader failed during FromReader.
// It wraps the cause with github.com/pkg/errors to retain a stack trace
// across the single blocking read-to-end.
type IOError struct {
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("mapfile: io error: %v", e.Cause)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}

func wrapIOError(cause error) error {
	return &IOError{Cause: errors.Wrap(cause, "mapfile: read failed")}
}
