// SPDX-License-Identifier: MIT
// Package: charlton/dataset
//
// errors.go — sentinel errors for the dataset package.
// Callers branch with errors.Is; context is attached with %w at detection sites.

package dataset

import "errors"

var (
	// ErrLengthMismatch indicates a column whose length differs from the frame row count.
	ErrLengthMismatch = errors.New("dataset: column length mismatch")

	// ErrDuplicateColumn indicates a column name that is already present.
	ErrDuplicateColumn = errors.New("dataset: duplicate column")

	// ErrUnknownColumn indicates a lookup of a column that does not exist.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrEmptyName indicates an empty column name.
	ErrEmptyName = errors.New("dataset: empty column name")

	// ErrRowOutOfRange indicates a row index outside [0, Rows()).
	ErrRowOutOfRange = errors.New("dataset: row out of range")

	// ErrBadRows indicates a negative row count.
	ErrBadRows = errors.New("dataset: invalid row count")
)
