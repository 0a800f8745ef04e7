// SPDX-License-Identifier: MIT
// Package: charlton/export
//
// format.go — supported output formats and dispatch.

package export

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/charlton/dataset"
)

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatXLSX  Format = "xlsx"
	FormatArrow Format = "arrow"
)

// ErrUnknownFormat is returned for a format name that has no writer.
var ErrUnknownFormat = errors.New("export: unknown format")

// ErrNilFrame is returned when Write is handed a nil frame.
var ErrNilFrame = errors.New("export: nil frame")

type writerFunc func(io.Writer, *dataset.Frame) error

var writers = map[Format]writerFunc{
	FormatCSV:   writeCSV,
	FormatJSON:  writeJSON,
	FormatYAML:  writeYAML,
	FormatXLSX:  writeXLSX,
	FormatArrow: writeArrow,
}

// Formats lists the supported format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(writers))
	for f := range writers {
		out = append(out, string(f))
	}
	sort.Strings(out)

	return out
}

// ParseFormat maps a case-insensitive name ("csv", "JSON", "yml", ...) to a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == "yml" {
		f = FormatYAML
	}
	if _, ok := writers[f]; !ok {
		return "", fmt.Errorf("%q (want one of %s): %w", name, strings.Join(Formats(), ", "), ErrUnknownFormat)
	}

	return f, nil
}

// Write encodes f to w in the given format.
func Write(w io.Writer, f *dataset.Frame, format Format) error {
	if f == nil {
		return ErrNilFrame
	}
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("Write(%q): %w", format, ErrUnknownFormat)
	}
	if err := fn(w, f); err != nil {
		return fmt.Errorf("Write(%s): %w", format, err)
	}

	return nil
}

// formatFloat renders v with the shortest exact representation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// rowValues returns observation i in Names order as strings.
func rowValues(f *dataset.Frame, names []string, i int) []string {
	out := make([]string, len(names))
	for j, n := range names {
		if f.Kind(n) == dataset.KindCategorical {
			col, _ := f.Categorical(n)
			out[j] = col[i]
		} else {
			col, _ := f.Numeric(n)
			out[j] = formatFloat(col[i])
		}
	}

	return out
}
