// Package export writes a dataset.Frame in one of several encodings: CSV,
// JSON, YAML, Excel (xlsx) and Apache Arrow IPC stream.
//
// Columns always appear in lexicographic name order. Floats are written with
// the shortest representation that round-trips exactly.
package export
