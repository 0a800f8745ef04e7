// SPDX-License-Identifier: MIT
// Package: charlton/export
//
// text.go — CSV, JSON and YAML encoders.

package export

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/katalvlaran/charlton/dataset"
	"gopkg.in/yaml.v3"
)

// writeCSV emits a header of sorted names and one record per row.
func writeCSV(w io.Writer, f *dataset.Frame) error {
	cw := csv.NewWriter(w)
	names := f.Names()
	if err := cw.Write(names); err != nil {
		return err
	}
	for i := 0; i < f.Rows(); i++ {
		if err := cw.Write(rowValues(f, names, i)); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// writeJSON emits the name → column mapping; encoding/json sorts map keys.
func writeJSON(w io.Writer, f *dataset.Frame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(f.Columns())
}

// writeYAML emits the name → column mapping as a block mapping of flow sequences.
func writeYAML(w io.Writer, f *dataset.Frame) error {
	var doc yaml.Node
	if err := doc.Encode(f.Columns()); err != nil {
		return err
	}
	// keep each column on one line
	for i := 1; i < len(doc.Content); i += 2 {
		doc.Content[i].Style = yaml.FlowStyle
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}

	return enc.Close()
}
