// SPDX-License-Identifier: MIT
// Package: charlton/builder
//
// classify.go — naming convention that decides a demo variable's kind.

package builder

import "github.com/katalvlaran/charlton/dataset"

// Classify returns the column kind implied by the first byte of name:
// 'a'..'n' → categorical, 'p'..'z' → numeric. Anything else (empty name,
// 'o', digits, '_', upper case) yields *InvalidNameError.
func Classify(name string) (dataset.Kind, error) {
	if name == "" {
		return dataset.KindUnknown, &InvalidNameError{Name: name}
	}
	switch c := name[0]; {
	case c >= firstCategorical && c <= lastCategorical:
		return dataset.KindCategorical, nil
	case c >= firstNumeric && c <= lastNumeric:
		return dataset.KindNumeric, nil
	default:
		return dataset.KindUnknown, &InvalidNameError{Name: name}
	}
}
