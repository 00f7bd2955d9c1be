package tableio

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"tabfile/dataframe"
	apperrors "tabfile/errors"
)

// readExcel parses a workbook, selecting the sheet by name (Sheet) or
// by position (SheetIndex). A set Sheet wins over the index.
func (r *Reader) readExcel(path string) (*dataframe.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("failed to open workbook %s", path), err)
	}
	defer f.Close()

	sheet := r.opts.Sheet
	if sheet == "" {
		list := f.GetSheetList()
		if r.opts.SheetIndex >= len(list) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf(
				"sheet index %d in %s (%d sheets)", r.opts.SheetIndex, path, len(list)))
		}
		sheet = list[r.opts.SheetIndex]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("failed to read sheet %q of %s", sheet, path), err)
	}

	r.logger.Debug("read workbook sheet",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("row_count", len(rows)))

	return r.tableFromRecords(rows)
}

// writeExcel writes the table as a single-sheet workbook. Float cells
// are stored as numbers so they survive a round trip; NaN cells stay
// empty.
func (w *Writer) writeExcel(t *dataframe.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := w.opts.SheetName
	f.SetSheetName(f.GetSheetName(0), sheet)

	rowNum := 1
	if !w.opts.NoHeader {
		for j, name := range t.ColumnNames() {
			cell, err := excelize.CoordinatesToCellName(j+1, rowNum)
			if err != nil {
				return apperrors.NewStorageError("failed to map header cell", err)
			}
			if err := f.SetCellValue(sheet, cell, name); err != nil {
				return apperrors.NewStorageError("failed to write header cell", err)
			}
		}
		rowNum++
	}

	for i := 0; i < t.Rows(); i++ {
		for j := 0; j < t.NumColumns(); j++ {
			col := t.ColumnAt(j)
			cell, err := excelize.CoordinatesToCellName(j+1, rowNum)
			if err != nil {
				return apperrors.NewStorageError("failed to map data cell", err)
			}
			var value interface{}
			if col.Kind() == dataframe.KindFloat {
				if col.IsNaN(i) {
					continue
				}
				value = col.Float(i)
			} else {
				value = col.String(i)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return apperrors.NewStorageError("failed to write data cell", err)
			}
		}
		rowNum++
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError(
			fmt.Sprintf("failed to save workbook %s", path), err)
	}
	return nil
}
