package dataframe

import (
	"fmt"

	"tabfile/errors"
)

// Merge inner-joins the tables left to right on the shared key column.
// Rows whose key value has no partner in the other side are dropped, so
// key-disjoint inputs produce a table with zero rows. The order of the
// input slice determines the join order.
//
// Non-key column name collisions are resolved with _x (left) and _y
// (right) suffixes. The key column appears once in the result.
func Merge(tables []*Table, key string) (*Table, error) {
	if len(tables) == 0 {
		return nil, errors.NewValidationError("merge requires at least one table")
	}
	result := tables[0].Clone()
	if !result.HasColumn(key) {
		return nil, errors.NewNotFoundError(fmt.Sprintf("merge key column %q", key))
	}
	for _, right := range tables[1:] {
		joined, err := innerJoin(result, right, key)
		if err != nil {
			return nil, err
		}
		result = joined
	}
	return result, nil
}

// innerJoin joins two tables on key. Left row order is preserved; a left
// row matching several right rows expands in right-row order.
func innerJoin(left, right *Table, key string) (*Table, error) {
	leftKey, err := left.Column(key)
	if err != nil {
		return nil, err
	}
	rightKey, err := right.Column(key)
	if err != nil {
		return nil, err
	}

	// Index right rows by key value.
	rightRows := make(map[string][]int, rightKey.Len())
	for i := 0; i < rightKey.Len(); i++ {
		k := rightKey.String(i)
		rightRows[k] = append(rightRows[k], i)
	}

	var leftIdx, rightIdx []int
	for i := 0; i < leftKey.Len(); i++ {
		for _, j := range rightRows[leftKey.String(i)] {
			leftIdx = append(leftIdx, i)
			rightIdx = append(rightIdx, j)
		}
	}

	collides := make(map[string]bool)
	for _, col := range right.columns {
		if col.name != key && left.HasColumn(col.name) {
			collides[col.name] = true
		}
	}

	out := &Table{}
	for _, col := range left.columns {
		taken := col.take(leftIdx)
		if collides[col.name] {
			taken.name = col.name + "_x"
		}
		if err := out.AddColumn(taken); err != nil {
			return nil, err
		}
	}
	for _, col := range right.columns {
		if col.name == key {
			continue
		}
		taken := col.take(rightIdx)
		if collides[col.name] {
			taken.name = col.name + "_y"
		}
		if err := out.AddColumn(taken); err != nil {
			return nil, err
		}
	}
	return out, nil
}
