// SPDX-License-Identifier: MIT
// Package: charlton/export
//
// xlsx.go — Excel workbook encoder (one sheet, header row, one row per observation).

package export

import (
	"io"

	"github.com/katalvlaran/charlton/dataset"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet that holds the dataset.
const SheetName = "data"

const defaultSheet = "Sheet1"

func writeXLSX(w io.Writer, f *dataset.Frame) (err error) {
	book := excelize.NewFile()
	defer func() {
		if cerr := book.Close(); err == nil {
			err = cerr
		}
	}()
	if err = book.SetSheetName(defaultSheet, SheetName); err != nil {
		return err
	}

	names := f.Names()
	header := make([]interface{}, len(names))
	for j, n := range names {
		header[j] = n
	}
	if err = book.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	for i := 0; i < f.Rows(); i++ {
		row := make([]interface{}, len(names))
		for j, n := range names {
			if f.Kind(n) == dataset.KindCategorical {
				col, _ := f.Categorical(n)
				row[j] = col[i]
			} else {
				col, _ := f.Numeric(n)
				row[j] = col[i]
			}
		}
		cell, cerr := excelize.CoordinatesToCellName(1, i+2)
		if cerr != nil {
			return cerr
		}
		if err = book.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	return book.Write(w)
}
