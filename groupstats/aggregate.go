package groupstats

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"tabfile/dataframe"
	"tabfile/errors"
)

// Aggregator derives per-group summary tables from a source table.
type Aggregator struct {
	logger *slog.Logger
}

// NewAggregator creates a new aggregator. A nil logger falls back to
// slog.Default().
func NewAggregator(logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{logger: logger}
}

// GroupResult holds the per-statistic tables produced by
// AggregateByGroup plus their inner join on the group key.
type GroupResult struct {
	// Tables holds one table per statistic, in order: size, mean, var,
	// sem, std, median, min, max, sum, prod. Each has the group-key
	// column plus a column named <column>_<stat>.
	Tables []*dataframe.Table

	// Merged is the sequential inner join of all statistic tables on
	// the group key.
	Merged *dataframe.Table
}

// groups holds one partition of the source rows.
type groups struct {
	keyKind dataframe.Kind       // kind of the source group column
	keys    []string             // distinct key values, sorted
	rows    map[string][]int     // all row indexes per key
	values  map[string][]float64 // non-NaN cells per key
}

// SumByGroup computes the per-group sum of column, returning a table
// with columns [group, column_sum], one row per distinct key.
func (a *Aggregator) SumByGroup(t *dataframe.Table, group, column string) (*dataframe.Table, error) {
	a.logger.Debug("computing per-group sum",
		slog.String("group", group),
		slog.String("column", column))

	g, err := a.groupBy(t, group, column)
	if err != nil {
		return nil, err
	}
	return g.statTable(group, column+"_sum", Sum)
}

// AggregateByGroup computes all supported statistics of column per
// group. Groups of size one yield NaN for variance, standard error and
// standard deviation.
func (a *Aggregator) AggregateByGroup(t *dataframe.Table, group, column string) (*GroupResult, error) {
	a.logger.Debug("computing per-group statistics",
		slog.String("group", group),
		slog.String("column", column))

	g, err := a.groupBy(t, group, column)
	if err != nil {
		return nil, err
	}

	stats := []struct {
		suffix string
		fn     func([]float64) float64
	}{
		{"mean", Mean},
		{"var", Variance},
		{"sem", StdErr},
		{"std", StdDev},
		{"median", Median},
		{"min", Min},
		{"max", Max},
		{"sum", Sum},
		{"prod", Prod},
	}

	tables := make([]*dataframe.Table, 0, len(stats)+1)
	sizeTable, err := g.sizeTable(group, column+"_size")
	if err != nil {
		return nil, err
	}
	tables = append(tables, sizeTable)
	for _, stat := range stats {
		st, err := g.statTable(group, column+"_"+stat.suffix, stat.fn)
		if err != nil {
			return nil, err
		}
		tables = append(tables, st)
	}

	merged, err := dataframe.Merge(tables, group)
	if err != nil {
		return nil, fmt.Errorf("merge statistic tables: %w", err)
	}

	a.logger.Info("generated per-group statistics",
		slog.String("group", group),
		slog.String("column", column),
		slog.Int("group_count", len(g.keys)))

	return &GroupResult{Tables: tables, Merged: merged}, nil
}

// groupBy partitions the rows of t by the string value of the group
// column, collecting the non-NaN cells of the value column per key.
func (a *Aggregator) groupBy(t *dataframe.Table, group, column string) (*groups, error) {
	groupCol, err := t.Column(group)
	if err != nil {
		return nil, err
	}
	valueCol, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	if valueCol.Kind() != dataframe.KindFloat {
		return nil, errors.NewValidationError(fmt.Sprintf(
			"column %q is not numeric", column))
	}

	g := &groups{
		keyKind: groupCol.Kind(),
		rows:    make(map[string][]int),
		values:  make(map[string][]float64),
	}
	for i := 0; i < t.Rows(); i++ {
		key := groupCol.String(i)
		if _, seen := g.rows[key]; !seen {
			g.keys = append(g.keys, key)
		}
		g.rows[key] = append(g.rows[key], i)
		if !valueCol.IsNaN(i) {
			g.values[key] = append(g.values[key], valueCol.Float(i))
		}
	}

	// Sort keys for deterministic output, numerically when the group
	// column is numeric.
	if groupCol.Kind() == dataframe.KindFloat {
		sort.Slice(g.keys, func(i, j int) bool {
			x, _ := strconv.ParseFloat(g.keys[i], 64)
			y, _ := strconv.ParseFloat(g.keys[j], 64)
			return x < y
		})
	} else {
		sort.Strings(g.keys)
	}
	return g, nil
}

// keySeries rebuilds the group-key column for a derived table. The key
// column keeps the source column's kind so distinct string keys that
// happen to look numeric ("1" and "1.0") stay distinct join keys.
func (g *groups) keySeries(group string) *dataframe.Series {
	if g.keyKind == dataframe.KindFloat {
		return dataframe.InferSeries(group, g.keys)
	}
	return dataframe.NewStringSeries(group, g.keys)
}

// statTable builds a [group, name] table applying fn to each group's
// non-NaN cells.
func (g *groups) statTable(group, name string, fn func([]float64) float64) (*dataframe.Table, error) {
	out := make([]float64, len(g.keys))
	for i, key := range g.keys {
		out[i] = fn(g.values[key])
	}
	return dataframe.NewTable(
		g.keySeries(group),
		dataframe.NewFloatSeries(name, out),
	)
}

// sizeTable builds a [group, name] table of group row counts. Size
// counts all rows in the group, including NaN cells.
func (g *groups) sizeTable(group, name string) (*dataframe.Table, error) {
	out := make([]float64, len(g.keys))
	for i, key := range g.keys {
		out[i] = float64(len(g.rows[key]))
	}
	return dataframe.NewTable(
		g.keySeries(group),
		dataframe.NewFloatSeries(name, out),
	)
}
