// Package charlton generates small synthetic datasets for testing statistical
// formula parsing and model-matrix construction.
//
// Under the hood, everything is organized in a few subpackages:
//
//	builder/ — Balanced (full-factorial designs) and DemoData (columns typed by name)
//	dataset/ — Frame, the column-oriented table both builders return
//	matrix/  — dense numeric block and column statistics behind Frame.Summary
//	export/  — CSV, JSON, YAML, Excel and Arrow writers
//	config/  — YAML request documents for the command line
//
// Quick example:
//
//	f, _ := builder.Balanced(builder.Factors{"a": 2, "b": 3}, 1)
//	// a: a1 a1 a1 a2 a2 a2
//	// b: b1 b2 b3 b1 b2 b3
//
// The command-line front end lives in cmd/charlton:
//
//	go install github.com/katalvlaran/charlton/cmd/charlton@latest
//	charlton demo a b x y nlevels=3 min_rows=10 --format csv
package charlton
