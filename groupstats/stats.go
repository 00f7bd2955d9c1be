package groupstats

import (
	"math"
	"sort"
)

// Sum returns the sum of values. Empty input sums to 0.
func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

// Prod returns the product of values. Empty input multiplies to 1.
func Prod(values []float64) float64 {
	prod := 1.0
	for _, v := range values {
		prod *= v
	}
	return prod
}

// Mean returns the arithmetic mean, NaN for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return Sum(values) / float64(len(values))
}

// Variance returns the sample variance (n-1 denominator).
// Inputs with fewer than two values yield NaN by definition.
func Variance(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return math.NaN()
	}
	mean := Mean(values)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return ss / float64(n-1)
}

// StdDev returns the sample standard deviation, NaN for fewer than two
// values.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// StdErr returns the standard error of the mean, NaN for fewer than two
// values.
func StdErr(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	return StdDev(values) / math.Sqrt(float64(len(values)))
}

// Median returns the middle value (mean of the two middle values for
// even counts), NaN for empty input.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Min returns the smallest value, NaN for empty input.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest value, NaN for empty input.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
