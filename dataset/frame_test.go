package dataset_test

import (
	"testing"

	"github.com/katalvlaran/charlton/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFrame(t *testing.T) *dataset.Frame {
	t.Helper()
	f, err := dataset.New(4)
	require.NoError(t, err)
	require.NoError(t, f.AddCategorical("b", []string{"b1", "b2", "b1", "b2"}))
	require.NoError(t, f.AddCategorical("a", []string{"a1", "a1", "a2", "a2"}))
	require.NoError(t, f.AddNumeric("x", []float64{1, 2, 3, 4}))

	return f
}

func TestFrame_Basics(t *testing.T) {
	f := newFrame(t)

	assert.Equal(t, 4, f.Rows())
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, []string{"a", "b", "x"}, f.Names())
	assert.Equal(t, []string{"a", "b"}, f.CategoricalNames())
	assert.Equal(t, []string{"x"}, f.NumericNames())
	assert.Equal(t, dataset.KindCategorical, f.Kind("a"))
	assert.Equal(t, dataset.KindNumeric, f.Kind("x"))
	assert.Equal(t, dataset.KindUnknown, f.Kind("zz"))
	assert.Equal(t, "numeric", dataset.KindNumeric.String())

	a, err := f.Categorical("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a1", "a2", "a2"}, a)

	_, err = f.Categorical("x")
	require.ErrorIs(t, err, dataset.ErrUnknownColumn)
	_, err = f.Numeric("a")
	require.ErrorIs(t, err, dataset.ErrUnknownColumn)
}

func TestFrame_AddErrors(t *testing.T) {
	f := newFrame(t)

	require.ErrorIs(t, f.AddNumeric("a", []float64{1, 2, 3, 4}), dataset.ErrDuplicateColumn)
	require.ErrorIs(t, f.AddNumeric("y", []float64{1}), dataset.ErrLengthMismatch)
	require.ErrorIs(t, f.AddCategorical("", []string{"", "", "", ""}), dataset.ErrEmptyName)

	_, err := dataset.New(-1)
	require.ErrorIs(t, err, dataset.ErrBadRows)
}

func TestFrame_RowAndKey(t *testing.T) {
	f := newFrame(t)

	row, err := f.Row(2)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "a2", "b": "b1", "x": 3.0}, row)

	key, err := f.CategoricalKey(1)
	require.NoError(t, err)
	assert.Equal(t, "a1:b2", key)

	_, err = f.Row(4)
	require.ErrorIs(t, err, dataset.ErrRowOutOfRange)
	_, err = f.CategoricalKey(-1)
	require.ErrorIs(t, err, dataset.ErrRowOutOfRange)

	assert.Equal(t, 4, f.DesignSize())
}

func TestFrame_DesignSizeWithoutFactors(t *testing.T) {
	f, err := dataset.New(5)
	require.NoError(t, err)
	require.NoError(t, f.AddNumeric("x", make([]float64, 5)))
	assert.Equal(t, 1, f.DesignSize())

	empty, err := dataset.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.DesignSize())
}

func TestFrame_Columns(t *testing.T) {
	f := newFrame(t)
	cols := f.Columns()
	require.Len(t, cols, 3)
	assert.Equal(t, []float64{1, 2, 3, 4}, cols["x"])
	assert.Equal(t, []string{"b1", "b2", "b1", "b2"}, cols["b"])
}

func TestFrame_Summary(t *testing.T) {
	f := newFrame(t)
	require.NoError(t, f.AddNumeric("y", []float64{2, 2, 2, 2}))

	sum, err := f.Summary()
	require.NoError(t, err)
	require.Len(t, sum, 4)

	assert.Equal(t, "a", sum[0].Name)
	assert.Equal(t, "categorical", sum[0].Kind)
	assert.Equal(t, map[string]int{"a1": 2, "a2": 2}, sum[0].Levels)
	assert.Nil(t, sum[0].Mean)

	assert.Equal(t, "x", sum[2].Name)
	require.NotNil(t, sum[2].Mean)
	assert.InDelta(t, 2.5, *sum[2].Mean, 1e-12)
	assert.InDelta(t, 1.2909944487358056, *sum[2].Std, 1e-12)

	assert.InDelta(t, 0.0, *sum[3].Std, 1e-12)
}

func TestFrame_NumericMatrix(t *testing.T) {
	f := newFrame(t)
	m, err := f.NumericMatrix()
	require.NoError(t, err)
	assert.Equal(t, 4, m.Rows())
	assert.Equal(t, 1, m.Cols())
	v, err := m.At(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}
