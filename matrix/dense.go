// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold the numeric block of a dataset as a cache-friendly row-major buffer
//     with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Reject NaN/Inf on ingestion so statistics stay finite.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Col: O(r).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxCol  = "Col"
	ctxRows = "FromColumns"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix. Zero rows or columns are legal
// (a dataset without numeric columns maps to an r×0 block).
// Errors: ErrInvalidDimensions on negative sizes.
// Complexity: O(r*c) time and space.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromColumns assembles a rows×len(cols) matrix whose j-th column is cols[j].
// Every column must have exactly rows entries and contain only finite values.
// Complexity: O(rows*len(cols)).
func FromColumns(rows int, cols [][]float64) (*Dense, error) {
	m, err := NewDense(rows, len(cols))
	if err != nil {
		return nil, matrixErrorf(ctxRows, err)
	}
	for j, col := range cols {
		if len(col) != rows {
			return nil, denseErrorf(ctxRows, len(col), j, ErrInvalidDimensions)
		}
		for i, v := range col {
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns the element at (i, j) or ErrOutOfRange.
func (m *Dense) At(i, j int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set assigns v at (i, j). NaN/Inf is rejected with ErrNaNInf.
func (m *Dense) Set(i, j int, v float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// String renders the matrix one bracketed row per line.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
