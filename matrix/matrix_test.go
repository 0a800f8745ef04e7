package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/charlton/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_Shapes(t *testing.T) {
	m, err := matrix.NewDense(3, 0)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 0, m.Cols())

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 4.5))

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 5, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestFromColumns(t *testing.T) {
	m, err := matrix.FromColumns(3, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())

	v, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	col, err := m.Col(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, col)

	_, err = matrix.FromColumns(3, [][]float64{{1, 2}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestColumnMeans(t *testing.T) {
	m, err := matrix.FromColumns(4, [][]float64{{1, 2, 3, 4}, {-1, 1, -1, 1}})
	require.NoError(t, err)

	means, err := matrix.ColumnMeans(m)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2.5, 0}, means, 1e-12)

	empty, err := matrix.NewDense(0, 2)
	require.NoError(t, err)
	_, err = matrix.ColumnMeans(empty)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.ColumnMeans(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCovariance(t *testing.T) {
	// y = 2x, so cov(x,y) = 2 var(x) and var(y) = 4 var(x).
	m, err := matrix.FromColumns(3, [][]float64{{1, 2, 3}, {2, 4, 6}})
	require.NoError(t, err)

	cov, means, err := matrix.Covariance(m)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, 4}, means, 1e-12)

	v00, _ := cov.At(0, 0)
	v01, _ := cov.At(0, 1)
	v10, _ := cov.At(1, 0)
	v11, _ := cov.At(1, 1)
	require.InDelta(t, 1.0, v00, 1e-12)
	require.InDelta(t, 2.0, v01, 1e-12)
	require.Equal(t, v01, v10)
	require.InDelta(t, 4.0, v11, 1e-12)

	std, err := matrix.ColumnStd(m)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 2}, std, 1e-12)
}

func TestCovariance_Degenerate(t *testing.T) {
	one, err := matrix.FromColumns(1, [][]float64{{7}})
	require.NoError(t, err)
	_, _, err = matrix.Covariance(one)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	noCols, err := matrix.NewDense(5, 0)
	require.NoError(t, err)
	cov, means, err := matrix.Covariance(noCols)
	require.NoError(t, err)
	require.Equal(t, 0, cov.Cols())
	require.Empty(t, means)
}
