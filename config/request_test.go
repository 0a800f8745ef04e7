package config_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/charlton/builder"
	"github.com/katalvlaran/charlton/config"
	"github.com/katalvlaran/charlton/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, doc string) (*config.Request, error) {
	t.Helper()
	return config.Load(strings.NewReader(doc))
}

func TestLoad_Balanced(t *testing.T) {
	req, err := load(t, "kind: balanced\nfactors: {a: 2, b: 3}\nrepeat: 2\nformat: csv\n")
	require.NoError(t, err)
	assert.Equal(t, config.KindBalanced, req.Kind)

	f, err := req.Build()
	require.NoError(t, err)
	assert.Equal(t, 12, f.Rows())

	format, err := req.OutputFormat()
	require.NoError(t, err)
	assert.Equal(t, export.FormatCSV, format)
}

func TestLoad_BalancedDefaultRepeat(t *testing.T) {
	req, err := load(t, "kind: balanced\nfactors: {a: 2}\n")
	require.NoError(t, err)
	f, err := req.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, f.Rows())

	format, err := req.OutputFormat()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultFormat, format)
}

func TestLoad_Demo(t *testing.T) {
	req, err := load(t, "kind: demo\nnames: [a, b, x]\nnlevels: 3\nmin_rows: 10\nseed: 0\n")
	require.NoError(t, err)

	f, err := req.Build()
	require.NoError(t, err)
	assert.Equal(t, 18, f.Rows())

	direct, err := builder.DemoData([]string{"a", "b", "x"}, builder.WithLevels(3), builder.WithMinRows(10))
	require.NoError(t, err)
	want, _ := direct.Numeric("x")
	got, _ := f.Numeric("x")
	assert.Equal(t, want, got)
}

func TestLoad_DemoInvalidName(t *testing.T) {
	req, err := load(t, "kind: demo\nnames: [a, __123]\n")
	require.NoError(t, err)
	_, err = req.Build()
	require.ErrorIs(t, err, builder.ErrInvalidName)
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := load(t, "kind: demo\nnames: [a]\nfoo: 123\n")
	require.ErrorIs(t, err, builder.ErrUnexpectedOption)

	var optErr *builder.UnexpectedOptionError
	require.True(t, errors.As(err, &optErr))
	assert.Equal(t, []string{"foo"}, optErr.Options)
}

func TestLoad_ForeignFields(t *testing.T) {
	_, err := load(t, "kind: demo\nnames: [a]\nrepeat: 2\n")
	require.ErrorIs(t, err, builder.ErrUnexpectedOption)

	_, err = load(t, "kind: balanced\nfactors: {a: 2}\nmin_rows: 3\nnlevels: 2\n")
	var optErr *builder.UnexpectedOptionError
	require.True(t, errors.As(err, &optErr))
	assert.Equal(t, []string{"min_rows", "nlevels"}, optErr.Options)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing kind":  "names: [a]\n",
		"bad kind":      "kind: anova\n",
		"zero levels":   "kind: balanced\nfactors: {a: 0}\n",
		"empty factor":  "kind: balanced\nfactors: {'': 2}\n",
		"negative rows": "kind: demo\nmin_rows: -1\n",
		"bad format":    "kind: demo\nformat: parquet\n",
		"empty name":    "kind: demo\nnames: ['']\n",
		"neg nlevels":   "kind: demo\nnlevels: -3\n",
		"negative reps": "kind: balanced\nrepeat: -2\n",
	}
	for name, doc := range cases {
		_, err := load(t, doc)
		require.ErrorIs(t, err, config.ErrInvalidRequest, name)
	}
}

func TestLoad_Empty(t *testing.T) {
	_, err := load(t, "")
	require.ErrorIs(t, err, config.ErrEmptyRequest)

	_, err = load(t, "kind: [unclosed\n")
	require.Error(t, err)
}
