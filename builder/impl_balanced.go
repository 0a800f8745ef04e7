// SPDX-License-Identifier: MIT
// Package: charlton/builder
//
// impl_balanced.go — balanced full-factorial designs.
//
// Contract:
//   • Factor names are sorted; the LAST sorted factor varies fastest
//     (odometer order), so the row → combination mapping is reproducible.
//   • Labels are name+index with a 1-based index ("a1", "a2", ...).
//   • The one-replicate design is tiled (not interleaved) repeat times.
//   • Output length = repeat × Π(level counts); no factors ⇒ product 1.
//
// Complexity: O(rows × factors) time and space.

package builder

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/charlton/dataset"
)

// Factors maps a factor name to its number of levels (≥ 1).
type Factors map[string]int

// Names returns the factor names in lexicographic order.
func (f Factors) Names() []string {
	names := make([]string, 0, len(f))
	for n := range f {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Balanced builds a balanced factorial design over factors, replicated
// repeat times, as a Frame of categorical columns.
//
// Example: Balanced(Factors{"a": 2, "b": 3}, 1) gives
//
//	a: a1 a1 a1 a2 a2 a2
//	b: b1 b2 b3 b1 b2 b3
//
// Errors (wrapped with "Balanced:"):
//   - ErrBadSize: repeat < 1, a level count < 1, or more than MaxRows rows.
//   - ErrInvalidName: an empty factor name.
func Balanced(factors Factors, repeat int) (*dataset.Frame, error) {
	names, cols, rows, err := balancedDesign(factors, repeat)
	if err != nil {
		return nil, err
	}
	frame, err := dataset.New(rows)
	if err != nil {
		return nil, builderErrorf(MethodBalanced, err, "allocate frame")
	}
	for i, name := range names {
		if err = frame.AddCategorical(name, cols[i]); err != nil {
			return nil, builderErrorf(MethodBalanced, err, "add column")
		}
	}

	return frame, nil
}

// BalancedColumns is Balanced returning the plain name → labels mapping.
func BalancedColumns(factors Factors, repeat int) (map[string][]string, error) {
	names, cols, _, err := balancedDesign(factors, repeat)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(names))
	for i, name := range names {
		out[name] = cols[i]
	}

	return out, nil
}

// balancedDesign validates the request and returns sorted names, the tiled
// columns aligned with names, and the row count.
func balancedDesign(factors Factors, repeat int) ([]string, [][]string, int, error) {
	if err := validateMin(MethodBalanced, KeyRepeat, repeat, 1); err != nil {
		return nil, nil, 0, err
	}

	names := factors.Names()
	counts := make([]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, nil, 0, builderErrorf(MethodBalanced, ErrInvalidName, "empty factor name")
		}
		if err := validateMin(MethodBalanced, "levels of "+strconv.Quote(name), factors[name], 1); err != nil {
			return nil, nil, 0, err
		}
		counts[i] = factors[name]
	}

	size, err := checkedProduct(MethodBalanced, counts...)
	if err != nil {
		return nil, nil, 0, err
	}
	rows, err := checkedProduct(MethodBalanced, size, repeat)
	if err != nil {
		return nil, nil, 0, err
	}

	levels := make([][]string, len(names))
	for i, name := range names {
		levels[i] = levelLabels(name, counts[i])
	}
	base := cartesianColumns(levels, size)

	cols := make([][]string, len(base))
	for i, col := range base {
		cols[i] = tile(col, repeat)
	}

	return names, cols, rows, nil
}

// levelLabels returns name1..nameN.
func levelLabels(name string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = name + strconv.Itoa(i+1)
	}

	return out
}

// cartesianColumns enumerates the Cartesian product of levels with an
// odometer (last list varies fastest) and writes it column-wise, i.e. the
// transpose of the product tuples. size must equal Π len(levels[i]).
func cartesianColumns(levels [][]string, size int) [][]string {
	cols := make([][]string, len(levels))
	for i := range cols {
		cols[i] = make([]string, size)
	}
	idx := make([]int, len(levels))
	for r := 0; r < size; r++ {
		for c := range levels {
			cols[c][r] = levels[c][idx[c]]
		}
		// advance: bump the last digit, carry leftwards on wrap
		for c := len(idx) - 1; c >= 0; c-- {
			idx[c]++
			if idx[c] < len(levels[c]) {
				break
			}
			idx[c] = 0
		}
	}

	return cols
}

// tile concatenates col with itself n times.
func tile(col []string, n int) []string {
	out := make([]string, 0, len(col)*n)
	for i := 0; i < n; i++ {
		out = append(out, col...)
	}

	return out
}
