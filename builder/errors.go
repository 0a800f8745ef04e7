// SPDX-License-Identifier: MIT
// Package: charlton/builder
//
// errors.go — sentinel and typed errors for the builder package.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX) or errors.As(err, &*XError).
//   • Typed errors (InvalidNameError, UnexpectedOptionError) unwrap to their sentinel.
//   • Context is attached with %w at the detection site; sentinels are never reworded.
//   • Builders never panic at runtime; validation panics are confined to the
//     WithX option constructors.

package builder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadSize indicates a level count, replicate count or row minimum below 1,
// or a design whose row count would exceed MaxRows.
var ErrBadSize = errors.New("builder: invalid size")

// ErrInvalidName indicates a variable name that is neither categorical (a..n)
// nor numeric (p..z) by its first character, or an empty factor name.
var ErrInvalidName = errors.New("builder: invalid variable name")

// ErrUnexpectedOption indicates a keyword option other than the recognized ones.
var ErrUnexpectedOption = errors.New("builder: unexpected option")

// ErrMalformedArg indicates a keyword argument that is not of the form name=count,
// or a keyword given twice.
var ErrMalformedArg = errors.New("builder: malformed argument")

// InvalidNameError identifies the variable name that failed classification.
type InvalidNameError struct {
	Name string
}

// Error implements error.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%s %q: first character must be in %c-%c (categorical) or %c-%c (numeric)",
		ErrInvalidName.Error(), e.Name, firstCategorical, lastCategorical, firstNumeric, lastNumeric)
}

// Unwrap returns ErrInvalidName.
func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// UnexpectedOptionError lists the unrecognized option keywords, sorted.
type UnexpectedOptionError struct {
	Options []string
}

// Error implements error.
func (e *UnexpectedOptionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnexpectedOption.Error(), strings.Join(e.Options, ", "))
}

// Unwrap returns ErrUnexpectedOption.
func (e *UnexpectedOptionError) Unwrap() error { return ErrUnexpectedOption }

// builderErrorf wraps err with the method context: "<Method>: <message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
