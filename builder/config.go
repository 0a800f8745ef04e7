// SPDX-License-Identifier: MIT
// Package: charlton/builder
//
// config.go — resolved DemoData configuration and its deterministic defaults.
//
//   • levels  = DefaultLevels  (2)
//   • minRows = DefaultMinRows (5)
//   • seed    = DefaultSeed    (0)

package builder

// demoConfig is passed by value once resolved; builders never mutate it.
type demoConfig struct {
	levels  int
	minRows int
	seed    int64
}

// newDemoConfig starts from the defaults and applies opts in order.
func newDemoConfig(opts ...DemoOption) demoConfig {
	cfg := demoConfig{
		levels:  DefaultLevels,
		minRows: DefaultMinRows,
		seed:    DefaultSeed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
