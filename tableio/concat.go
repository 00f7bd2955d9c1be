package tableio

import (
	"fmt"
	"log/slog"

	"tabfile/dataframe"
	apperrors "tabfile/errors"
)

// Concat reads the given files, concatenates their rows over the
// intersection of their column names (kept in the first table's order),
// and writes the result to outputPath delimited with the reader's
// separator.
func (r *Reader) Concat(outputPath string, paths ...string) error {
	if len(paths) == 0 {
		return apperrors.NewValidationError("concat requires at least one input file")
	}

	r.logger.Debug("concatenating files",
		slog.Int("file_count", len(paths)),
		slog.String("output", outputPath))

	tables, err := r.ReadAll(paths...)
	if err != nil {
		return err
	}

	combined, err := ConcatTables(tables)
	if err != nil {
		return err
	}

	writer, err := NewWriter(WriteOptions{Separator: r.opts.Separator}, r.logger)
	if err != nil {
		return err
	}
	return writer.writeDelimited(combined, outputPath, r.opts.Separator)
}

// ConcatTables appends the rows of all tables over their shared columns
// (inner concatenation). Column order follows the first table.
func ConcatTables(tables []*dataframe.Table) (*dataframe.Table, error) {
	if len(tables) == 0 {
		return nil, apperrors.NewValidationError("concat requires at least one table")
	}

	shared := make([]string, 0, tables[0].NumColumns())
	for _, name := range tables[0].ColumnNames() {
		inAll := true
		for _, t := range tables[1:] {
			if !t.HasColumn(name) {
				inAll = false
				break
			}
		}
		if inAll {
			shared = append(shared, name)
		}
	}
	if len(shared) == 0 {
		return nil, apperrors.NewValidationError("tables share no columns")
	}

	var records [][]string
	for _, t := range tables {
		cols := make([]*dataframe.Series, len(shared))
		for j, name := range shared {
			col, err := t.Column(name)
			if err != nil {
				return nil, fmt.Errorf("collect shared column %q: %w", name, err)
			}
			cols[j] = col
		}
		for i := 0; i < t.Rows(); i++ {
			rec := make([]string, len(shared))
			for j, col := range cols {
				rec[j] = col.String(i)
			}
			records = append(records, rec)
		}
	}
	return dataframe.FromRecords(shared, records)
}
