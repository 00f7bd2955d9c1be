// Package dataframe provides the in-memory Table type shared by all
// tabfile packages.
//
// A Table is an ordered collection of named Series (columns) whose values
// are positionally aligned into rows. Two main components:
//
// Series: a single named column holding either string or float64 values.
// Float series use NaN for missing cells.
//
// Table: column container with in-place mutators (Rename, DropColumns,
// AppendRow, AddDifferenceColumn) and the sequential inner-join Merge
// used to combine derived tables on a shared key column.
//
// Example usage:
//
//	ids := dataframe.NewStringSeries("id", []string{"a", "b"})
//	vals := dataframe.NewFloatSeries("score", []float64{1.5, 2.5})
//	t, err := dataframe.NewTable(ids, vals)
//
//	merged, err := dataframe.Merge([]*dataframe.Table{t, other}, "id")
package dataframe
