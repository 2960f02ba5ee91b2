package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, Median([]float64{100, 1, 3}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))
	assert.True(t, math.IsNaN(Median(nil)))
}

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}
	assert.Equal(t, 1.0, Quantile(sorted, 0))
	assert.Equal(t, 2.0, Quantile(sorted, 0.25))
	assert.Equal(t, 3.0, Quantile(sorted, 0.5))
	assert.Equal(t, 5.0, Quantile(sorted, 1))
	assert.Equal(t, 1.5, Quantile([]float64{1, 2}, 0.5))
}

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1.0, Correlation(x, []float64{2, 4, 6, 8}), 1e-12)
	assert.InDelta(t, -1.0, Correlation(x, []float64{8, 6, 4, 2}), 1e-12)

	// NaN rows are skipped pairwise
	assert.InDelta(t, 1.0, Correlation([]float64{1, nan, 3, 4}, []float64{1, 5, 3, 4}), 1e-12)

	assert.True(t, math.IsNaN(Correlation(x, []float64{1, 1, 1, 1})))
	assert.True(t, math.IsNaN(Correlation([]float64{1, nan}, []float64{nan, 2})))
}

func TestHeaderHelpers(t *testing.T) {
	assert.Equal(t, []string{"name", "name_1", "name_2", "age"}, ValidateHeaders([]string{"name", "name", "name", "age"}))
	assert.Equal(t, []string{}, ValidateHeaders([]string{}))
	assert.Equal(t, "user_name", columnAlias("User Name!", 0))
	assert.Equal(t, "column_2", columnAlias("###", 1))
	assert.Equal(t, "kolonka1", columnAlias("колонка1", 0))
}

func TestIsMissing(t *testing.T) {
	for _, v := range []string{"", " ", "NA", "NaN", "null", " None "} {
		assert.True(t, IsMissing(v), v)
	}
	for _, v := range []string{"0", "n/a?", "Paris"} {
		assert.False(t, IsMissing(v), v)
	}
}
