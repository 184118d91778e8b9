// Package serenumerrors defines errors returned by code generated by Serenum.
package serenumerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch is wrapped by errors of parsing a text which matches no
	// variant of an enum.
	ErrNoMatch = errors.New("no match")

	// ErrInvalidValue is wrapped by errors of marshaling a value which is not a
	// variant of an enum.
	ErrInvalidValue = errors.New("invalid value")
)

// NoMatchError reports a text which matches no variant of Enum.
type NoMatchError struct {
	Enum string
	Text string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("parsing %s: %q: %s", e.Enum, e.Text, ErrNoMatch)
}

func (e *NoMatchError) Unwrap() error { return ErrNoMatch }

// NoMatch returns a [NoMatchError] for the given enum name and text.
func NoMatch(enum, text string) error {
	return &NoMatchError{Enum: enum, Text: text}
}

// InvalidValueError reports a value of Enum which is not a variant.
type InvalidValueError struct {
	Enum  string
	Value any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("formatting %s: %#v: %s", e.Enum, e.Value, ErrInvalidValue)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// InvalidValue returns an [InvalidValueError] for the given enum name and the
// underlying value.
func InvalidValue(enum string, value any) error {
	return &InvalidValueError{Enum: enum, Value: value}
}
