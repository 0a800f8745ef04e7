// SPDX-License-Identifier: MIT
// Package: charlton/builder
//
// options.go — functional options for DemoData.
//
// Contract:
//   • Options are functional (type DemoOption func(*demoConfig)).
//   • Option constructors PANIC on meaningless inputs (n < 1); the builders
//     themselves never panic.
//   • Later options override earlier ones.

package builder

import "fmt"

// DemoOption customizes DemoData by mutating a demoConfig before generation.
type DemoOption func(*demoConfig)

// WithLevels sets the level count of every categorical variable (default 2).
// Panics if n < 1.
func WithLevels(n int) DemoOption {
	if n < 1 {
		panic(fmt.Sprintf("builder: WithLevels(%d)", n))
	}
	return func(c *demoConfig) {
		c.levels = n
	}
}

// WithMinRows sets the minimum number of generated rows (default 5).
// Panics if n < 1.
func WithMinRows(n int) DemoOption {
	if n < 1 {
		panic(fmt.Sprintf("builder: WithMinRows(%d)", n))
	}
	return func(c *demoConfig) {
		c.minRows = n
	}
}

// WithSeed replaces the fixed numeric seed. Use only when a second, different
// but still reproducible sample is wanted; the default matches DefaultSeed.
func WithSeed(seed int64) DemoOption {
	return func(c *demoConfig) {
		c.seed = seed
	}
}
