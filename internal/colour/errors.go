package colour

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying parse failures.
var (
	// ErrInvalidFormat means the input does not have the shape of the notation.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidNumber means a component is not an integer in [0,255].
	ErrInvalidNumber = errors.New("invalid number")
)

// ParseError describes why a colour string was rejected.
type ParseError struct {
	Notation Notation
	Input    string
	Err      error // ErrInvalidFormat or ErrInvalidNumber
	Detail   string
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("invalid %s colour %q: %v", e.Notation, e.Input, e.Err)
	if e.Detail != "" {
		base += ": " + e.Detail
	}
	return base
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func formatError(n Notation, input, detail string) error {
	return &ParseError{Notation: n, Input: input, Err: ErrInvalidFormat, Detail: detail}
}

func numberError(n Notation, input, detail string) error {
	return &ParseError{Notation: n, Input: input, Err: ErrInvalidNumber, Detail: detail}
}
