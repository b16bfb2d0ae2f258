package interval

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against the typed errors below.
var (
	ErrParse       = errors.New("invalid interval syntax")
	ErrType        = errors.New("interval type error")
	ErrUnsupported = errors.New("unsupported interval operation")
)

const (
	msgClockForm = "time intervals not in the form HH:MM:SS not yet implemented"
)

// ParseError reports interval text that does not match the grammar.
// Input carries the text exactly as it was passed to Parse.
type ParseError struct {
	Input   string `json:"input"`
	Message string `json:"message"`
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func newSyntaxError(input, trimmed string) *ParseError {
	return &ParseError{
		Input:   input,
		Message: fmt.Sprintf(`invalid input syntax for type interval: "%s"`, trimmed),
	}
}

func newClockError(input string) *ParseError {
	return &ParseError{Input: input, Message: msgClockForm}
}

// TypeError reports an argument of the wrong shape handed to a constructor
// or an arithmetic operation.
type TypeError struct {
	Op  string `json:"op"`
	Got string `json:"got"`
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("interval.%s type error: got %s", e.Op, e.Got)
}

func (e *TypeError) Unwrap() error {
	return ErrType
}

// UnsupportedError is returned by Terse for values carrying calendar units.
type UnsupportedError struct {
	Field string `json:"field"`
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s is not (yet) supported", e.Field)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}
