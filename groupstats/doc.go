// Package groupstats computes per-group summary statistics and rank
// columns over a dataframe.Table.
//
// The Aggregator partitions a table's rows by the values of a group-key
// column and derives, per group, the statistics the original column
// supports: size, mean, variance, standard error, standard deviation,
// median, min, max, sum and product. Each statistic yields its own
// two-column table keyed by the group column, and the full set can be
// merged into a single summary table on that key.
//
// RankByGroup appends per-group rank columns using the usual tie-break
// methods (average, min, max, dense, first).
//
// Statistics are sample statistics: variance, standard error and
// standard deviation use an n-1 denominator and are NaN for groups of
// size one.
package groupstats
