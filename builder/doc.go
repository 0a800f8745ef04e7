// Package builder synthesizes small example datasets for exercising
// formula and model-matrix code.
//
// Two entry points:
//
//   - Balanced: a balanced full-factorial design over named factors, one row
//     per combination of levels, tiled a given number of times.
//   - DemoData: a dataset whose columns are named by convention. Names
//     starting with 'a'..'n' are categorical (built with Balanced), names
//     starting with 'p'..'z' are numeric N(0,1) samples from a fixed seed.
//
// Keyword-style callers (command lines, scripts) use ParseFactorArgs and
// ParseDemoArgs, which reject unknown options with *UnexpectedOptionError.
//
// Guarantees:
//
//   - Determinism: identical inputs and options give identical tables, down
//     to the bits of every float64.
//   - No partial results: validation completes before any data is generated.
//   - Builders never panic; only the WithX option constructors do, on
//     meaningless values such as WithLevels(0).
//
// Errors are sentinels (ErrBadSize, ErrInvalidName, ErrUnexpectedOption,
// ErrMalformedArg) wrapped with the entry-point name; match them with errors.Is.
package builder
