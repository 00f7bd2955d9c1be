package groupstats

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"tabfile/dataframe"
	"tabfile/errors"
)

// RankMethod selects the tie-break behavior for per-group ranks.
type RankMethod string

const (
	// RankAverage assigns tied values the mean of their positions.
	RankAverage RankMethod = "average"
	// RankMin assigns tied values their lowest position.
	RankMin RankMethod = "min"
	// RankMax assigns tied values their highest position.
	RankMax RankMethod = "max"
	// RankDense is like RankMin but ranks increase by one between
	// distinct values.
	RankDense RankMethod = "dense"
	// RankFirst ranks in order of appearance, producing a permutation
	// of 1..N within each group with no ties.
	RankFirst RankMethod = "first"
)

// DefaultRankMethods returns all five rank methods in their canonical
// order.
func DefaultRankMethods() []RankMethod {
	return []RankMethod{RankAverage, RankMin, RankMax, RankDense, RankFirst}
}

// RankByGroup appends one float column per rank method, named
// <method>_rank, holding each row's ascending rank of column within its
// group. Rows with a missing value rank NaN. With no methods given, all
// five are applied.
func (a *Aggregator) RankByGroup(t *dataframe.Table, group, column string, methods ...RankMethod) error {
	if len(methods) == 0 {
		methods = DefaultRankMethods()
	}
	for _, m := range methods {
		switch m {
		case RankAverage, RankMin, RankMax, RankDense, RankFirst:
		default:
			return errors.NewValidationError(fmt.Sprintf(
				"unknown rank method %q", m))
		}
	}

	a.logger.Debug("computing per-group ranks",
		slog.String("group", group),
		slog.String("column", column),
		slog.Int("method_count", len(methods)))

	groupCol, err := t.Column(group)
	if err != nil {
		return err
	}
	valueCol, err := t.Column(column)
	if err != nil {
		return err
	}
	if valueCol.Kind() != dataframe.KindFloat {
		return errors.NewValidationError(fmt.Sprintf(
			"column %q is not numeric", column))
	}

	// Partition row indexes by group key, keeping appearance order.
	var keys []string
	rowsByKey := make(map[string][]int)
	for i := 0; i < t.Rows(); i++ {
		key := groupCol.String(i)
		if _, seen := rowsByKey[key]; !seen {
			keys = append(keys, key)
		}
		rowsByKey[key] = append(rowsByKey[key], i)
	}

	ranks := make(map[RankMethod][]float64, len(methods))
	for _, m := range methods {
		col := make([]float64, t.Rows())
		for i := range col {
			col[i] = math.NaN()
		}
		ranks[m] = col
	}

	for _, key := range keys {
		var valid []int
		for _, row := range rowsByKey[key] {
			if !valueCol.IsNaN(row) {
				valid = append(valid, row)
			}
		}
		// Stable sort by value keeps appearance order within ties,
		// which is what the "first" method ranks by.
		sort.SliceStable(valid, func(i, j int) bool {
			return valueCol.Float(valid[i]) < valueCol.Float(valid[j])
		})

		dense := 0.0
		for start := 0; start < len(valid); {
			end := start
			for end+1 < len(valid) &&
				valueCol.Float(valid[end+1]) == valueCol.Float(valid[start]) {
				end++
			}
			dense++
			for pos := start; pos <= end; pos++ {
				row := valid[pos]
				for method, col := range ranks {
					switch method {
					case RankAverage:
						col[row] = float64(start+1+end+1) / 2
					case RankMin:
						col[row] = float64(start + 1)
					case RankMax:
						col[row] = float64(end + 1)
					case RankDense:
						col[row] = dense
					case RankFirst:
						col[row] = float64(pos + 1)
					}
				}
			}
			start = end + 1
		}
	}

	for _, m := range methods {
		name := string(m) + "_rank"
		if err := t.AddColumn(dataframe.NewFloatSeries(name, ranks[m])); err != nil {
			return err
		}
	}
	return nil
}
