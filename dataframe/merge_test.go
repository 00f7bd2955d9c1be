package dataframe

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tabfile/errors"
)

func keyed(t *testing.T, key string, ids []string, col string, vals []float64) *Table {
	t.Helper()
	tbl, err := NewTable(
		NewStringSeries(key, ids),
		NewFloatSeries(col, vals),
	)
	require.NoError(t, err)
	return tbl
}

func TestMerge(t *testing.T) {
	left := keyed(t, "id", []string{"a", "b", "c"}, "x", []float64{1, 2, 3})
	right := keyed(t, "id", []string{"b", "c", "d"}, "y", []float64{20, 30, 40})

	merged, err := Merge([]*Table{left, right}, "id")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "x", "y"}, merged.ColumnNames())
	assert.Equal(t, 2, merged.Rows())

	id, _ := merged.Column("id")
	x, _ := merged.Column("x")
	y, _ := merged.Column("y")
	assert.Equal(t, "b", id.String(0))
	assert.Equal(t, 2.0, x.Float(0))
	assert.Equal(t, 20.0, y.Float(0))
	assert.Equal(t, "c", id.String(1))
	assert.Equal(t, 3.0, x.Float(1))
	assert.Equal(t, 30.0, y.Float(1))
}

func TestMerge_DisjointKeys(t *testing.T) {
	left := keyed(t, "id", []string{"a", "b"}, "x", []float64{1, 2})
	right := keyed(t, "id", []string{"c", "d"}, "y", []float64{3, 4})

	merged, err := Merge([]*Table{left, right}, "id")
	require.NoError(t, err)

	assert.Equal(t, 0, merged.Rows())
	assert.Equal(t, []string{"id", "x", "y"}, merged.ColumnNames())
}

func TestMerge_SingleTableClones(t *testing.T) {
	left := keyed(t, "id", []string{"a"}, "x", []float64{1})

	merged, err := Merge([]*Table{left}, "id")
	require.NoError(t, err)

	require.NoError(t, merged.AppendRow([]string{"b", "2"}))
	assert.Equal(t, 1, left.Rows())
}

func TestMerge_ColumnCollision(t *testing.T) {
	left := keyed(t, "id", []string{"a"}, "v", []float64{1})
	right := keyed(t, "id", []string{"a"}, "v", []float64{2})

	merged, err := Merge([]*Table{left, right}, "id")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "v_x", "v_y"}, merged.ColumnNames())
}

func TestMerge_AssociativeRowContent(t *testing.T) {
	// With one-to-one key cardinality, row content is independent of
	// join order.
	a := keyed(t, "id", []string{"k1", "k2", "k3"}, "a", []float64{1, 2, 3})
	b := keyed(t, "id", []string{"k3", "k1", "k2"}, "b", []float64{30, 10, 20})
	c := keyed(t, "id", []string{"k2", "k3", "k1"}, "c", []float64{200, 300, 100})

	leftFirst, err := Merge([]*Table{a, b, c}, "id")
	require.NoError(t, err)
	rightFirst, err := Merge([]*Table{c, b, a}, "id")
	require.NoError(t, err)

	assert.ElementsMatch(t, rowSet(t, leftFirst), rowSet(t, rightFirst))
}

// rowSet renders each row as key:a:b:c regardless of column order.
func rowSet(t *testing.T, tbl *Table) []string {
	t.Helper()
	names := tbl.ColumnNames()
	sort.Strings(names)
	var rows []string
	for i := 0; i < tbl.Rows(); i++ {
		var row string
		for _, name := range names {
			col, err := tbl.Column(name)
			require.NoError(t, err)
			row += col.String(i) + ":"
		}
		rows = append(rows, row)
	}
	return rows
}

func TestMerge_Errors(t *testing.T) {
	_, err := Merge(nil, "id")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))

	noKey := keyed(t, "other", []string{"a"}, "x", []float64{1})
	_, err = Merge([]*Table{noKey}, "id")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))

	left := keyed(t, "id", []string{"a"}, "x", []float64{1})
	_, err = Merge([]*Table{left, noKey}, "id")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}
