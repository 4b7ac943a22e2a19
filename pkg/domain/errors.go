package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyLine is returned when an input line carries no instruction.
var ErrEmptyLine = errors.New("empty line")

// ErrMalformedDirection is returned when a line starts with anything but R or L.
var ErrMalformedDirection = errors.New("malformed direction")

// ErrMalformedTicks is returned when the tick count is missing or not a non-negative integer.
var ErrMalformedTicks = errors.New("malformed tick count")

// ErrDialOutOfRange signals a defect in the rotation arithmetic.
var ErrDialOutOfRange = errors.New("dial position out of range")

// ParseError reports which input line could not be decoded.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvariantError is returned when the dial leaves [0, DialSize).
// It is never caused by user input.
type InvariantError struct {
	Turn Turn
	From int
	To   int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: turn %s moved dial %d -> %d", ErrDialOutOfRange, e.Turn, e.From, e.To)
}

func (e *InvariantError) Unwrap() error {
	return ErrDialOutOfRange
}
