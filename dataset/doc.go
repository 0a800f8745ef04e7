// Package dataset provides Frame, the in-memory table returned by the
// factorial-design and demo-data builders: named, equal-length columns that
// are either categorical (level labels) or numeric (float64 samples).
//
// Row i across all columns is one synthetic observation. Names are always
// reported in lexicographic order so that output is reproducible.
package dataset
