package dataset

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var nan = math.NaN()

// Present drops NaN entries.
func Present(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

func Mean(values []float64) float64 {
	if len(values) == 0 {
		return nan
	}
	return stat.Mean(values, nil)
}

// Median averages the two middle values of an even-sized sample.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return nan
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// StdDev is the sample standard deviation.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return nan
	}
	return stat.StdDev(values, nil)
}

func MinMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return nan, nan
	}
	return floats.Min(values), floats.Max(values)
}

// Quantile uses linear interpolation between closest ranks on an already sorted sample.
func Quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return nan
	}
	pos := p * float64(len(sorted)-1)
	lower := math.Floor(pos)
	upper := math.Ceil(pos)
	if lower == upper {
		return sorted[int(pos)]
	}
	fraction := pos - lower
	return sorted[int(lower)] + fraction*(sorted[int(upper)]-sorted[int(lower)])
}

// Correlation is Pearson's r over the rows where both values are present.
// It is NaN for fewer than two such rows or when either side is constant.
func Correlation(x, y []float64) float64 {
	var xs, ys []float64
	for i := range x {
		if i >= len(y) || math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return nan
	}
	if floats.Max(xs) == floats.Min(xs) || floats.Max(ys) == floats.Min(ys) {
		return nan
	}
	return stat.Correlation(xs, ys, nil)
}
