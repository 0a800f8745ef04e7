// Package config loads YAML request documents for the charlton command:
//
//	kind: demo
//	names: [a, b, x, y]
//	nlevels: 3
//	min_rows: 10
//	format: csv
//
// or
//
//	kind: balanced
//	factors: {a: 2, b: 3}
//	repeat: 2
//
// Requests are decoded strictly and validated with go-playground/validator.
package config
