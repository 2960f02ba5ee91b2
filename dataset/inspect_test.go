package dataset

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/pivolan/graphify/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	ds := loadString(t, salesCSV)

	summary, err := Inspect(ds)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Rows)
	assert.Equal(t, 4, summary.Cols)
	require.Len(t, summary.Columns, 4)

	city := summary.Columns[0]
	assert.Equal(t, "city", city.Name)
	assert.Equal(t, models.Categorical, city.Type)
	assert.Equal(t, 0, city.Missing)
	assert.Equal(t, 3, city.Unique)
	assert.Equal(t, "Paris", city.Top)
	assert.Equal(t, 2, city.TopCount)

	revenue := summary.Columns[1]
	assert.Equal(t, models.Numeric, revenue.Type)
	assert.Equal(t, 1, revenue.Missing)
	assert.Equal(t, 3, revenue.Count)
	assert.InDelta(t, 266.666, revenue.Mean, 0.001)
	assert.Equal(t, 100.0, revenue.Min)
	assert.Equal(t, 300.0, revenue.Median)
	assert.Equal(t, 400.0, revenue.Max)
	assert.InDelta(t, 152.753, revenue.Std, 0.001)

	assert.Equal(t, 1, summary.Columns[2].Missing)
	assert.Equal(t, 1, summary.Columns[3].Missing)
}

func TestInspectDimensionsMatchSource(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 2}, {10, 7}} {
		rows, cols := dims[0], dims[1]
		t.Run(fmt.Sprintf("%dx%d", rows, cols), func(t *testing.T) {
			var b strings.Builder
			header := make([]string, cols)
			for c := range header {
				header[c] = fmt.Sprintf("c%d", c)
			}
			b.WriteString(strings.Join(header, ",") + "\n")
			for r := 0; r < rows; r++ {
				cells := make([]string, cols)
				for c := range cells {
					if (r+c)%3 == 0 {
						cells[c] = "NA"
					} else {
						cells[c] = fmt.Sprint(r * c)
					}
				}
				b.WriteString(strings.Join(cells, ",") + "\n")
			}

			summary, err := Inspect(loadString(t, b.String()))
			require.NoError(t, err)
			assert.Equal(t, rows, summary.Rows)
			assert.Equal(t, cols, summary.Cols)
		})
	}
}

func TestInspectAllMissingColumn(t *testing.T) {
	summary, err := Inspect(loadString(t, "a,b\n,x\nNA,y\n"))
	require.NoError(t, err)

	a := summary.Columns[0]
	assert.Equal(t, models.Numeric, a.Type)
	assert.Equal(t, 2, a.Missing)
	assert.Equal(t, 0, a.Count)
	assert.True(t, math.IsNaN(a.Mean))
}

func TestPreview(t *testing.T) {
	ds := loadString(t, salesCSV)

	names, rows, err := Preview(ds, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"city", "revenue", "units", "Unit Price"}, names)
	assert.Equal(t, [][]string{
		{"Paris", "100", "1", "10.5"},
		{"Berlin", "NaN", "2", "11"},
	}, rows)

	_, rows, err = Preview(ds, 100)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}
