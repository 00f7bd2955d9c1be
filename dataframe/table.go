package dataframe

import (
	"fmt"
	"strings"

	"tabfile/errors"
)

// Table is an ordered collection of named Series aligned by row position.
// Mutating operations work in place, so a Table handed to a helper may be
// modified by it.
type Table struct {
	columns []*Series
}

// NewTable creates a table from the given columns. Column names must be
// unique and all columns must share the same length.
func NewTable(cols ...*Series) (*Table, error) {
	t := &Table{}
	for _, col := range cols {
		if err := t.AddColumn(col); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// FromRecords builds a table from a header row and raw text records,
// inferring each column's kind. Records shorter than the header are
// padded with empty cells; records wider than the header are a parsing
// error.
func FromRecords(headers []string, records [][]string) (*Table, error) {
	for i, rec := range records {
		if len(rec) > len(headers) {
			return nil, errors.NewParsingError(fmt.Sprintf(
				"record %d has %d cells, header has %d", i, len(rec), len(headers)), nil)
		}
	}
	cols := make([]*Series, len(headers))
	for j, name := range headers {
		cells := make([]string, len(records))
		for i, rec := range records {
			if j < len(rec) {
				cells[i] = rec[j]
			}
		}
		cols[j] = InferSeries(name, cells)
	}
	return NewTable(cols...)
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.columns) }

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.name
	}
	return names
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	return t.columnIndex(name) >= 0
}

// Column returns the series with the given name.
func (t *Table) Column(name string) (*Series, error) {
	if idx := t.columnIndex(name); idx >= 0 {
		return t.columns[idx], nil
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("column %q", name))
}

// ColumnAt returns the series at position i.
func (t *Table) ColumnAt(i int) *Series { return t.columns[i] }

// AddColumn appends a column. Its length must match the existing rows
// and its name must be unique.
func (t *Table) AddColumn(s *Series) error {
	if s.name == "" {
		return errors.NewValidationError("column name must not be empty")
	}
	if t.HasColumn(s.name) {
		return errors.NewValidationError(fmt.Sprintf("duplicate column name %q", s.name))
	}
	if len(t.columns) > 0 && s.Len() != t.Rows() {
		return errors.NewValidationError(fmt.Sprintf(
			"column %q has %d rows, table has %d", s.name, s.Len(), t.Rows()))
	}
	t.columns = append(t.columns, s)
	return nil
}

// Rename replaces all column names. The new list must match the column
// count and contain no duplicates.
func (t *Table) Rename(names []string) error {
	if len(names) != len(t.columns) {
		return errors.NewValidationError(fmt.Sprintf(
			"rename expects %d names, got %d", len(t.columns), len(names)))
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			return errors.NewValidationError(fmt.Sprintf("invalid or duplicate column name %q", name))
		}
		seen[name] = true
	}
	for i, name := range names {
		t.columns[i].name = name
	}
	return nil
}

// DropColumns removes the named columns in place. Every name must
// exist; an unknown name leaves the table unmodified.
func (t *Table) DropColumns(names ...string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] || !t.HasColumn(name) {
			return errors.NewNotFoundError(fmt.Sprintf("column %q", name))
		}
		seen[name] = true
	}
	for _, name := range names {
		idx := t.columnIndex(name)
		t.columns = append(t.columns[:idx], t.columns[idx+1:]...)
	}
	return nil
}

// AppendRow appends one row of raw text cells, parsed per each column's
// kind. The cell count must match the column count.
func (t *Table) AppendRow(cells []string) error {
	if len(cells) != len(t.columns) {
		return errors.NewValidationError(fmt.Sprintf(
			"row has %d cells, table has %d columns", len(cells), len(t.columns)))
	}
	for i, col := range t.columns {
		if err := col.appendCell(cells[i]); err != nil {
			return errors.NewParsingError(fmt.Sprintf(
				"cell %q does not fit column %q", cells[i], col.name), err)
		}
	}
	return nil
}

// AddDifferenceColumn adds a float column name = a - b. Both operands
// must be float columns.
func (t *Table) AddDifferenceColumn(name, a, b string) error {
	colA, err := t.Column(a)
	if err != nil {
		return err
	}
	colB, err := t.Column(b)
	if err != nil {
		return err
	}
	if colA.kind != KindFloat || colB.kind != KindFloat {
		return errors.NewValidationError(fmt.Sprintf(
			"difference column requires float columns, %q or %q is not", a, b))
	}
	diff := make([]float64, colA.Len())
	for i := range diff {
		diff[i] = colA.floats[i] - colB.floats[i]
	}
	return t.AddColumn(NewFloatSeries(name, diff))
}

// Row returns row i rendered as text cells.
func (t *Table) Row(i int) []string {
	cells := make([]string, len(t.columns))
	for j, col := range t.columns {
		cells[j] = col.String(i)
	}
	return cells
}

// Records returns the header row followed by all data rows as text,
// ready for delimited output.
func (t *Table) Records() (headers []string, records [][]string) {
	headers = t.ColumnNames()
	records = make([][]string, t.Rows())
	for i := range records {
		records[i] = t.Row(i)
	}
	return headers, records
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{columns: make([]*Series, len(t.columns))}
	for i, col := range t.columns {
		out.columns[i] = col.clone()
	}
	return out
}

// String renders the table as aligned plain text. This is the format
// used by the write fallback for unrecognized file suffixes.
func (t *Table) String() string {
	headers, records := t.Records()
	widths := make([]int, len(headers))
	for j, h := range headers {
		widths[j] = len(h)
	}
	for _, rec := range records {
		for j, cell := range rec {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}
	var b strings.Builder
	writeRow := func(cells []string) {
		for j, cell := range cells {
			if j > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%-*s", widths[j], cell)
		}
		b.WriteString("\n")
	}
	writeRow(headers)
	for _, rec := range records {
		writeRow(rec)
	}
	return b.String()
}

func (t *Table) columnIndex(name string) int {
	for i, col := range t.columns {
		if col.name == name {
			return i
		}
	}
	return -1
}
