package dataframe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tabfile/errors"
)

func sampleTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable(
		NewStringSeries("id", []string{"a", "b", "c"}),
		NewFloatSeries("x", []float64{1.5, 2.5, 3.5}),
		NewFloatSeries("y", []float64{1, 1, 2}),
	)
	require.NoError(t, err)
	return tbl
}

func TestNewTable(t *testing.T) {
	tests := []struct {
		name        string
		cols        []*Series
		expectError bool
	}{
		{
			name: "aligned columns",
			cols: []*Series{
				NewStringSeries("id", []string{"a", "b"}),
				NewFloatSeries("x", []float64{1, 2}),
			},
		},
		{
			name: "ragged columns",
			cols: []*Series{
				NewStringSeries("id", []string{"a", "b"}),
				NewFloatSeries("x", []float64{1}),
			},
			expectError: true,
		},
		{
			name: "duplicate names",
			cols: []*Series{
				NewFloatSeries("x", []float64{1}),
				NewFloatSeries("x", []float64{2}),
			},
			expectError: true,
		},
		{
			name: "empty table",
			cols: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := NewTable(tt.cols...)
			if tt.expectError {
				assert.Error(t, err)
				assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.cols), tbl.NumColumns())
		})
	}
}

func TestTable_Rename(t *testing.T) {
	tbl := sampleTable(t)

	require.NoError(t, tbl.Rename([]string{"key", "value", "group"}))
	assert.Equal(t, []string{"key", "value", "group"}, tbl.ColumnNames())

	assert.Error(t, tbl.Rename([]string{"too", "few"}))
	assert.Error(t, tbl.Rename([]string{"dup", "dup", "other"}))
}

func TestFromRecords(t *testing.T) {
	tbl, err := FromRecords(
		[]string{"id", "x"},
		[][]string{{"a", "1"}, {"b"}},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Rows())

	// Short records are padded with empty cells.
	x, err := tbl.Column("x")
	require.NoError(t, err)
	assert.True(t, x.IsNaN(1))

	// Records wider than the header are rejected.
	_, err = FromRecords(
		[]string{"id", "x"},
		[][]string{{"a", "1"}, {"b", "2", "extra"}},
	)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
	assert.Contains(t, err.Error(), "record 1")
}

func TestTable_DropColumns(t *testing.T) {
	tbl := sampleTable(t)

	require.NoError(t, tbl.DropColumns("y"))
	assert.Equal(t, []string{"id", "x"}, tbl.ColumnNames())

	err := tbl.DropColumns("missing")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))

	// An unknown name anywhere in the list leaves the table untouched.
	err = tbl.DropColumns("id", "missing")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
	assert.Equal(t, []string{"id", "x"}, tbl.ColumnNames())

	// A duplicated name cannot be dropped twice.
	err = tbl.DropColumns("id", "id")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
	assert.Equal(t, []string{"id", "x"}, tbl.ColumnNames())
}

func TestTable_AppendRow(t *testing.T) {
	tbl := sampleTable(t)

	require.NoError(t, tbl.AppendRow([]string{"d", "4.5", "2"}))
	assert.Equal(t, 4, tbl.Rows())

	x, err := tbl.Column("x")
	require.NoError(t, err)
	assert.Equal(t, 4.5, x.Float(3))

	// Empty float cell becomes NaN.
	require.NoError(t, tbl.AppendRow([]string{"e", "", "3"}))
	assert.True(t, x.IsNaN(4))

	// Wrong arity.
	assert.Error(t, tbl.AppendRow([]string{"f"}))

	// Non-numeric cell in a float column.
	err = tbl.AppendRow([]string{"g", "not-a-number", "1"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

func TestTable_AddDifferenceColumn(t *testing.T) {
	tbl := sampleTable(t)

	require.NoError(t, tbl.AddDifferenceColumn("diff", "x", "y"))
	diff, err := tbl.Column("diff")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5, 1.5}, diff.Floats())

	// String operand is rejected.
	err = tbl.AddDifferenceColumn("bad", "id", "x")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
}

func TestTable_Clone(t *testing.T) {
	tbl := sampleTable(t)
	clone := tbl.Clone()

	require.NoError(t, clone.AppendRow([]string{"z", "9", "9"}))
	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, 4, clone.Rows())
}

func TestTable_String(t *testing.T) {
	tbl := sampleTable(t)
	dump := tbl.String()

	assert.Contains(t, dump, "id")
	assert.Contains(t, dump, "x")
	assert.Contains(t, dump, "2.5")
}

func TestInferSeries(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		kind  Kind
	}{
		{"all numeric", []string{"1", "2.5", "-3e2"}, KindFloat},
		{"numeric with gaps", []string{"1", "", "3"}, KindFloat},
		{"mixed", []string{"1", "two", "3"}, KindString},
		{"all empty", []string{"", ""}, KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := InferSeries("col", tt.cells)
			assert.Equal(t, tt.kind, s.Kind())
		})
	}

	s := InferSeries("col", []string{"1", "", "3"})
	assert.True(t, math.IsNaN(s.Float(1)))
}
