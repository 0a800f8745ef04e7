// SPDX-License-Identifier: MIT

// Package matrix - column statistics.
//
// Purpose:
//   - Column means and sample covariance for the numeric block of a dataset.
//
// Determinism:
//   - Fixed accumulation order (row-major scan); identical inputs give identical bits.

package matrix

import "math"

const (
	opColumnMeans = "ColumnMeans"
	opCovariance  = "Covariance"
	opColumnStd   = "ColumnStd"
)

// ColumnMeans returns the arithmetic mean of every column.
// Zero rows with at least one column is rejected with ErrDimensionMismatch.
// Complexity: O(r*c).
func ColumnMeans(m *Dense) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opColumnMeans, ErrNilMatrix)
	}
	if m.r == 0 && m.c > 0 {
		return nil, matrixErrorf(opColumnMeans, ErrDimensionMismatch)
	}
	means := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		for j, v := range row {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= float64(m.r)
	}

	return means, nil
}

// Covariance returns the c×c sample covariance (divisor r-1) of the columns
// together with the column means.
// Errors: ErrNilMatrix; ErrDimensionMismatch when r<2 and c>0.
// Complexity: O(r*c^2) time, O(c^2) space.
func Covariance(m *Dense) (*Dense, []float64, error) {
	if m == nil {
		return nil, nil, matrixErrorf(opCovariance, ErrNilMatrix)
	}
	if m.c == 0 {
		z, _ := NewDense(0, 0)
		return z, []float64{}, nil
	}
	if m.r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}
	means, err := ColumnMeans(m)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	cov, _ := NewDense(m.c, m.c)
	denom := float64(m.r - 1)
	for a := 0; a < m.c; a++ {
		for b := a; b < m.c; b++ {
			var acc float64
			for i := 0; i < m.r; i++ {
				acc += (m.data[i*m.c+a] - means[a]) * (m.data[i*m.c+b] - means[b])
			}
			acc /= denom
			cov.data[a*m.c+b] = acc
			cov.data[b*m.c+a] = acc
		}
	}

	return cov, means, nil
}

// ColumnStd returns the sample standard deviation of every column: the square
// root of the covariance diagonal.
func ColumnStd(m *Dense) ([]float64, error) {
	cov, _, err := Covariance(m)
	if err != nil {
		return nil, matrixErrorf(opColumnStd, err)
	}
	out := make([]float64, cov.c)
	for j := range out {
		out[j] = math.Sqrt(cov.data[j*cov.c+j])
	}

	return out, nil
}
