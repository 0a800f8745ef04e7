// SPDX-License-Identifier: MIT
// Package: charlton/dataset
//
// frame.go — column-oriented, in-memory synthetic dataset.
//
// Contract:
//   • Every column has exactly Rows() entries; row i across all columns is one observation.
//   • Column names are unique across both kinds.
//   • Iteration order is always the lexicographic order of names (no map-order leaks).

package dataset

import (
	"fmt"
	"sort"
	"strings"
)

// Kind tells whether a column carries level labels or float64 values.
type Kind int

const (
	// KindUnknown is returned for names that are not in the frame.
	KindUnknown Kind = iota
	// KindCategorical columns hold level labels such as "a1", "a2".
	KindCategorical
	// KindNumeric columns hold float64 samples.
	KindNumeric
)

// String returns "categorical", "numeric" or "unknown".
func (k Kind) String() string {
	switch k {
	case KindCategorical:
		return "categorical"
	case KindNumeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// keySep joins level labels of one row in CategoricalKey.
const keySep = ":"

// Frame is a design table or demo dataset: a set of equal-length named columns.
// The zero value is not usable; construct with New.
type Frame struct {
	rows        int
	categorical map[string][]string
	numeric     map[string][]float64
}

// New returns an empty frame whose columns must all have the given length.
// Errors: ErrBadRows when rows < 0.
func New(rows int) (*Frame, error) {
	if rows < 0 {
		return nil, fmt.Errorf("New(%d): %w", rows, ErrBadRows)
	}

	return &Frame{
		rows:        rows,
		categorical: make(map[string][]string),
		numeric:     make(map[string][]float64),
	}, nil
}

// AddCategorical attaches a level-label column. The slice is stored as given.
func (f *Frame) AddCategorical(name string, labels []string) error {
	if err := f.checkNew(name, len(labels)); err != nil {
		return fmt.Errorf("AddCategorical(%q): %w", name, err)
	}
	f.categorical[name] = labels

	return nil
}

// AddNumeric attaches a float64 column. The slice is stored as given.
func (f *Frame) AddNumeric(name string, values []float64) error {
	if err := f.checkNew(name, len(values)); err != nil {
		return fmt.Errorf("AddNumeric(%q): %w", name, err)
	}
	f.numeric[name] = values

	return nil
}

func (f *Frame) checkNew(name string, n int) error {
	if name == "" {
		return ErrEmptyName
	}
	if f.Kind(name) != KindUnknown {
		return ErrDuplicateColumn
	}
	if n != f.rows {
		return fmt.Errorf("got %d values, want %d: %w", n, f.rows, ErrLengthMismatch)
	}

	return nil
}

// Rows returns the common column length.
func (f *Frame) Rows() int { return f.rows }

// Len returns the number of columns.
func (f *Frame) Len() int { return len(f.categorical) + len(f.numeric) }

// Kind reports the column kind of name, or KindUnknown.
func (f *Frame) Kind(name string) Kind {
	if _, ok := f.categorical[name]; ok {
		return KindCategorical
	}
	if _, ok := f.numeric[name]; ok {
		return KindNumeric
	}

	return KindUnknown
}

// Names returns all column names in lexicographic order.
func (f *Frame) Names() []string {
	names := make([]string, 0, f.Len())
	for n := range f.categorical {
		names = append(names, n)
	}
	for n := range f.numeric {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// CategoricalNames returns the categorical column names, sorted.
func (f *Frame) CategoricalNames() []string { return sortedKeys(f.categorical) }

// NumericNames returns the numeric column names, sorted.
func (f *Frame) NumericNames() []string { return sortedKeys(f.numeric) }

// Categorical returns the labels of a categorical column.
// The returned slice is shared with the frame.
func (f *Frame) Categorical(name string) ([]string, error) {
	col, ok := f.categorical[name]
	if !ok {
		return nil, fmt.Errorf("Categorical(%q): %w", name, ErrUnknownColumn)
	}

	return col, nil
}

// Numeric returns the values of a numeric column.
// The returned slice is shared with the frame.
func (f *Frame) Numeric(name string) ([]float64, error) {
	col, ok := f.numeric[name]
	if !ok {
		return nil, fmt.Errorf("Numeric(%q): %w", name, ErrUnknownColumn)
	}

	return col, nil
}

// Row returns observation i as name → value (string or float64).
func (f *Frame) Row(i int) (map[string]any, error) {
	if i < 0 || i >= f.rows {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrRowOutOfRange)
	}
	out := make(map[string]any, f.Len())
	for n, col := range f.categorical {
		out[n] = col[i]
	}
	for n, col := range f.numeric {
		out[n] = col[i]
	}

	return out, nil
}

// CategoricalKey joins the level labels of row i in sorted column order,
// e.g. "a2:b1". Rows with the same key describe the same factor combination.
func (f *Frame) CategoricalKey(i int) (string, error) {
	if i < 0 || i >= f.rows {
		return "", fmt.Errorf("CategoricalKey(%d): %w", i, ErrRowOutOfRange)
	}
	names := f.CategoricalNames()
	parts := make([]string, len(names))
	for k, n := range names {
		parts[k] = f.categorical[n][i]
	}

	return strings.Join(parts, keySep), nil
}

// DesignSize returns the number of distinct factor-level combinations present.
// A frame with rows but no categorical columns has design size 1.
func (f *Frame) DesignSize() int {
	seen := make(map[string]struct{})
	for i := 0; i < f.rows; i++ {
		k, _ := f.CategoricalKey(i)
		seen[k] = struct{}{}
	}

	return len(seen)
}

// Columns returns the plain mapping shape: name → []string or []float64.
func (f *Frame) Columns() map[string]any {
	out := make(map[string]any, f.Len())
	for n, col := range f.categorical {
		out[n] = col
	}
	for n, col := range f.numeric {
		out[n] = col
	}

	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
