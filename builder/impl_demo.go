// SPDX-License-Identifier: MIT
// Package: charlton/builder
//
// impl_demo.go — categorical/numeric demo datasets named by convention.
//
// Contract:
//   • Every name is classified before any data is generated; a bad name
//     aborts the call with *InvalidNameError and no partial result.
//   • Categorical names share one level count; their design is Balanced,
//     replicated ceil(minRows / designSize) times.
//   • Numeric columns are N(0,1) draws from a fresh rand.Rand seeded per call,
//     filled in sorted name order. No shared generator state between calls.
//   • No categorical names ⇒ design size 1 ⇒ exactly minRows rows.

package builder

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/charlton/dataset"
)

// DemoData builds a small dataset for the given variable names.
//
// Names starting with 'a'..'n' become categorical with WithLevels levels
// (default 2); names starting with 'p'..'z' become numeric. Duplicate names
// are generated once. The row count is the smallest multiple of the balanced
// design size that is ≥ WithMinRows (default 5).
//
// Errors: *InvalidNameError (errors.Is ErrInvalidName), ErrBadSize when the
// design would exceed MaxRows.
func DemoData(names []string, opts ...DemoOption) (*dataset.Frame, error) {
	cfg := newDemoConfig(opts...)

	categorical := make(Factors)
	numericSet := make(map[string]struct{})
	for _, name := range names {
		kind, err := Classify(name)
		if err != nil {
			return nil, builderErrorf(MethodDemoData, err, "classify")
		}
		if kind == dataset.KindCategorical {
			categorical[name] = cfg.levels
		} else {
			numericSet[name] = struct{}{}
		}
	}

	counts := make([]int, 0, len(categorical))
	for range categorical {
		counts = append(counts, cfg.levels)
	}
	designSize, err := checkedProduct(MethodDemoData, counts...)
	if err != nil {
		return nil, err
	}
	repeat := (cfg.minRows + designSize - 1) / designSize

	frame, err := Balanced(categorical, repeat)
	if err != nil {
		return nil, builderErrorf(MethodDemoData, err, "design")
	}

	numeric := make([]string, 0, len(numericSet))
	for name := range numericSet {
		numeric = append(numeric, name)
	}
	sort.Strings(numeric)

	rng := rand.New(rand.NewSource(cfg.seed))
	for _, name := range numeric {
		if err = frame.AddNumeric(name, normalSamples(rng, frame.Rows())); err != nil {
			return nil, builderErrorf(MethodDemoData, err, "add column")
		}
	}

	return frame, nil
}

// normalSamples draws n standard normal values from rng.
func normalSamples(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64()
	}

	return out
}
