// SPDX-License-Identifier: MIT
// Package: charlton/export
//
// arrow.go — Apache Arrow IPC stream encoder: one record batch, utf8 columns
// for categorical data and float64 columns for numeric data, in Names order.

package export

import (
	"fmt"
	"io"

	"github.com/apache/arrow/go/v7/arrow"
	"github.com/apache/arrow/go/v7/arrow/array"
	"github.com/apache/arrow/go/v7/arrow/ipc"
	"github.com/apache/arrow/go/v7/arrow/memory"
	"github.com/katalvlaran/charlton/dataset"
)

// ArrowSchema returns the Arrow schema matching f.
func ArrowSchema(f *dataset.Frame) *arrow.Schema {
	names := f.Names()
	fields := make([]arrow.Field, len(names))
	for j, n := range names {
		typ := arrow.DataType(arrow.PrimitiveTypes.Float64)
		if f.Kind(n) == dataset.KindCategorical {
			typ = arrow.BinaryTypes.String
		}
		fields[j] = arrow.Field{Name: n, Type: typ}
	}

	return arrow.NewSchema(fields, nil)
}

func writeArrow(w io.Writer, f *dataset.Frame) error {
	mem := memory.NewGoAllocator()
	schema := ArrowSchema(f)

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	for j, n := range f.Names() {
		switch fb := b.Field(j).(type) {
		case *array.StringBuilder:
			col, _ := f.Categorical(n)
			fb.AppendValues(col, nil)
		case *array.Float64Builder:
			col, _ := f.Numeric(n)
			fb.AppendValues(col, nil)
		default:
			return fmt.Errorf("column %q: unexpected builder %T", n, fb)
		}
	}

	rec := b.NewRecord()
	defer rec.Release()

	wr := ipc.NewWriter(w, ipc.WithSchema(schema), ipc.WithAllocator(mem))
	if err := wr.Write(rec); err != nil {
		_ = wr.Close()
		return err
	}

	return wr.Close()
}
