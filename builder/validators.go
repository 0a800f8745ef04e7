// Package builder provides validation helpers that enforce the size
// contracts of Balanced and DemoData.
package builder

// validateMin ensures that got ≥ min, wrapping ErrBadSize otherwise.
func validateMin(method, what string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrBadSize, "%s must be ≥ %d, got %d", what, min, got)
	}

	return nil
}

// checkedProduct multiplies factors, failing with ErrBadSize as soon as the
// running product exceeds MaxRows. An empty input yields 1.
func checkedProduct(method string, factors ...int) (int, error) {
	p := 1
	for _, f := range factors {
		if f > 0 && p > MaxRows/f {
			return 0, builderErrorf(method, ErrBadSize, "design exceeds %d rows", MaxRows)
		}
		p *= f
	}

	return p, nil
}
