package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChartKind(t *testing.T) {
	tests := []struct {
		input string
		want  ChartKind
	}{
		{"bar", Bar},
		{"Bar Plot", Bar},
		{" scatter ", Scatter},
		{"LINE", Line},
		{"boxplot", Box},
		{"Heatmap", Heatmap},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseChartKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseChartKind("pie")
	assert.ErrorIs(t, err, ErrInvalidAxisSelection)
}

func TestParseFillStrategy(t *testing.T) {
	s, err := ParseFillStrategy("MEAN")
	require.NoError(t, err)
	assert.Equal(t, FillMean, s)

	s, err = ParseFillStrategy(" Median ")
	require.NoError(t, err)
	assert.Equal(t, FillMedian, s)

	_, err = ParseFillStrategy("bogus")
	assert.ErrorIs(t, err, ErrInvalidFillStrategy)
	assert.Equal(t, KindInvalidFillStrategy, KindOf(err))
}

func TestAppErrorMatchesByKind(t *testing.T) {
	cause := errors.New("disk on fire")
	err := fmt.Errorf("load: %w", NewError(KindLoadFailure, "cannot open data.csv", cause))

	assert.ErrorIs(t, err, ErrLoadFailure)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrPlotGeneration)
	assert.Equal(t, KindLoadFailure, KindOf(err))
	assert.Equal(t, ErrorKind(""), KindOf(cause))
	assert.Contains(t, err.Error(), "[LOAD_FAILURE] cannot open data.csv: disk on fire")
}

func TestChartKindTitle(t *testing.T) {
	assert.Equal(t, "Bar Plot", Bar.Title())
	assert.Equal(t, "Heatmap", Heatmap.Title())
	assert.Equal(t, "numeric", Numeric.String())
	assert.Equal(t, "categorical", Categorical.String())
}
