package plot

import (
	"fmt"
	"math"
	"sort"

	"github.com/pivolan/graphify/dataset"
	"github.com/pivolan/graphify/domain/models"
	"gonum.org/v1/gonum/mat"
)

func emptyAfterFiltering(req models.ChartRequest) error {
	return models.NewError(models.KindEmptyAfterFiltering,
		fmt.Sprintf("no rows with both %s and %s present", req.X, req.Y), nil).
		WithContext("kind", req.Kind)
}

func nonFinite(req models.ChartRequest) error {
	return models.NewError(models.KindPlotGenerationError,
		fmt.Sprintf("%s has infinite values that cannot be drawn", req.Y), nil).
		WithContext("kind", req.Kind)
}

// categoryValues groups the numeric y column by the labels of x, in order of
// first appearance. Rows missing either value are skipped.
func categoryValues(ds *dataset.Dataset, req models.ChartRequest) ([]string, [][]float64, error) {
	labels, missing, err := ds.Labels(req.X)
	if err != nil {
		return nil, nil, err
	}
	ys, err := ds.Floats(req.Y)
	if err != nil {
		return nil, nil, err
	}

	var order []string
	groups := map[string][]float64{}
	for i, label := range labels {
		if missing[i] || math.IsNaN(ys[i]) {
			continue
		}
		if math.IsInf(ys[i], 0) {
			return nil, nil, nonFinite(req)
		}
		if _, ok := groups[label]; !ok {
			order = append(order, label)
		}
		groups[label] = append(groups[label], ys[i])
	}
	if len(order) == 0 {
		return nil, nil, emptyAfterFiltering(req)
	}

	values := make([][]float64, len(order))
	for i, label := range order {
		values[i] = groups[label]
	}
	return order, values, nil
}

// barHeights is one bar per category, the height being the mean of its values.
func barHeights(ds *dataset.Dataset, req models.ChartRequest) (dataXStringsForGraph, error) {
	labels, values, err := categoryValues(ds, req)
	if err != nil {
		return dataXStringsForGraph{}, err
	}
	heights := make([]float64, len(values))
	for i, v := range values {
		heights[i] = dataset.Mean(v)
	}
	// a sum of huge finite values can still overflow
	if !allFinite(heights) {
		return dataXStringsForGraph{}, nonFinite(req)
	}
	return NewDataXStringsForGraph(labels, heights, req.Y, req.Kind.Title()), nil
}

// xyPoints pairs two numeric columns, skipping rows missing either value. For
// lines the points are sorted by x and duplicate x values are averaged.
func xyPoints(ds *dataset.Dataset, req models.ChartRequest) ([]float64, []float64, error) {
	xs, err := ds.Floats(req.X)
	if err != nil {
		return nil, nil, err
	}
	ys, err := ds.Floats(req.Y)
	if err != nil {
		return nil, nil, err
	}

	var px, py []float64
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		px = append(px, xs[i])
		py = append(py, ys[i])
	}
	if len(px) == 0 {
		return nil, nil, emptyAfterFiltering(req)
	}
	if req.Kind != models.Line {
		return px, py, nil
	}

	idx := make([]int, len(px))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return px[idx[a]] < px[idx[b]] })

	var lx, ly []float64
	for start := 0; start < len(idx); {
		end := start
		var group []float64
		for end < len(idx) && px[idx[end]] == px[idx[start]] {
			group = append(group, py[idx[end]])
			end++
		}
		lx = append(lx, px[idx[start]])
		ly = append(ly, dataset.Mean(group))
		start = end
	}
	return lx, ly, nil
}

// CorrMatrix is the pairwise Pearson correlation of the numeric columns.
type CorrMatrix struct {
	Columns []string
	Values  *mat.SymDense
}

func (m *CorrMatrix) At(i, j int) float64 {
	return m.Values.At(i, j)
}

// CorrelationMatrix computes the heatmap input. The diagonal is 1; a pair
// without two complete rows or with a constant side is NaN.
func CorrelationMatrix(ds *dataset.Dataset) (*CorrMatrix, error) {
	names := ds.NumericColumns()
	if len(names) == 0 {
		return nil, models.NewError(models.KindNoNumericColumns,
			"no numeric columns available for a heatmap", nil)
	}

	columns := make([][]float64, len(names))
	for i, name := range names {
		values, err := ds.Floats(name)
		if err != nil {
			return nil, err
		}
		columns[i] = values
	}

	values := mat.NewSymDense(len(names), nil)
	for i := range names {
		values.SetSym(i, i, 1)
		for j := i + 1; j < len(names); j++ {
			values.SetSym(i, j, dataset.Correlation(columns[i], columns[j]))
		}
	}
	return &CorrMatrix{Columns: names, Values: values}, nil
}
