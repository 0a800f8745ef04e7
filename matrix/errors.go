// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with context via %w)
// and tests check them with errors.Is. Nothing in this package panics on
// user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a requested shape is negative or
	// when a row buffer does not match the declared column count.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates an operation is not defined for the shape,
	// e.g. a sample covariance over fewer than two observations.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf prefixes err with the operation tag, keeping the sentinel for errors.Is.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
