// SPDX-License-Identifier: MIT
// Package: charlton/dataset
//
// summary.go — descriptive statistics over a Frame, backed by the matrix package.

package dataset

import (
	"fmt"

	"github.com/katalvlaran/charlton/matrix"
)

// ColumnSummary describes one column. Levels is set for categorical columns;
// Mean and Std for numeric ones (Std is the sample deviation, 0 with < 2 rows).
type ColumnSummary struct {
	Name   string         `json:"name" yaml:"name"`
	Kind   string         `json:"kind" yaml:"kind"`
	Levels map[string]int `json:"levels,omitempty" yaml:"levels,omitempty"`
	Mean   *float64       `json:"mean,omitempty" yaml:"mean,omitempty"`
	Std    *float64       `json:"std,omitempty" yaml:"std,omitempty"`
}

// NumericMatrix returns the numeric columns as a Rows()×k dense matrix,
// columns in NumericNames order.
func (f *Frame) NumericMatrix() (*matrix.Dense, error) {
	names := f.NumericNames()
	cols := make([][]float64, len(names))
	for j, n := range names {
		cols[j] = f.numeric[n]
	}
	m, err := matrix.FromColumns(f.rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NumericMatrix: %w", err)
	}

	return m, nil
}

// Summary returns one ColumnSummary per column in Names order.
func (f *Frame) Summary() ([]ColumnSummary, error) {
	numIdx := make(map[string]int)
	var means, stds []float64
	if len(f.numeric) > 0 && f.rows > 0 {
		m, err := f.NumericMatrix()
		if err != nil {
			return nil, fmt.Errorf("Summary: %w", err)
		}
		if means, err = matrix.ColumnMeans(m); err != nil {
			return nil, fmt.Errorf("Summary: %w", err)
		}
		if f.rows >= 2 {
			if stds, err = matrix.ColumnStd(m); err != nil {
				return nil, fmt.Errorf("Summary: %w", err)
			}
		}
		for j, n := range f.NumericNames() {
			numIdx[n] = j
		}
	}

	out := make([]ColumnSummary, 0, f.Len())
	for _, n := range f.Names() {
		s := ColumnSummary{Name: n, Kind: f.Kind(n).String()}
		if labels, ok := f.categorical[n]; ok {
			s.Levels = make(map[string]int)
			for _, l := range labels {
				s.Levels[l]++
			}
		} else if j, ok := numIdx[n]; ok {
			mean, std := means[j], 0.0
			if stds != nil {
				std = stds[j]
			}
			s.Mean, s.Std = &mean, &std
		}
		out = append(out, s)
	}

	return out, nil
}
