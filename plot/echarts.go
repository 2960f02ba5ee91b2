package plot

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pivolan/graphify/dataset"
	"github.com/pivolan/graphify/domain/models"
)

// coolwarm end points and midpoint, matching the PNG heatmap palette.
var heatmapColors = []string{"#3b4cc0", "#dddddd", "#b40426"}

type htmlChart interface {
	Render(w io.Writer) error
}

// RenderHTML validates req exactly like Render and writes an interactive
// ECharts page of the same chart.
func (r *Renderer) RenderHTML(ds *dataset.Dataset, req models.ChartRequest) (page []byte, err error) {
	s, err := r.resolve(ds, req)
	if err != nil {
		return nil, err
	}

	defer func() {
		if p := recover(); p != nil {
			page, err = nil, plotError(s.req, fmt.Errorf("panic: %v", p))
		}
	}()

	size := charts.WithInitializationOpts(opts.Initialization{
		PageTitle: s.title,
		Width:     fmt.Sprintf("%dpx", r.Width),
		Height:    fmt.Sprintf("%dpx", r.Height),
	})
	title := charts.WithTitleOpts(opts.Title{Title: s.title})

	var chart htmlChart
	switch s.req.Kind {
	case models.Bar:
		chart, err = r.htmlBar(ds, s, size, title)
	case models.Line, models.Scatter:
		chart, err = r.htmlXY(ds, s, size, title)
	case models.Box:
		chart, err = r.htmlBox(ds, s, size, title)
	case models.Heatmap:
		chart, err = r.htmlHeatmap(ds, size, title)
	}
	if err != nil {
		return nil, wrapBackend(s.req, err)
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := chart.Render(buffer); err != nil {
		return nil, plotError(s.req, err)
	}
	return buffer.Bytes(), nil
}

func itemStyle(s resolved) charts.SeriesOpts {
	return charts.WithItemStyleOpts(opts.ItemStyle{Color: hexString(s.color)})
}

func (r *Renderer) htmlBar(ds *dataset.Dataset, s resolved, global ...charts.GlobalOpts) (htmlChart, error) {
	data, err := barHeights(ds, s.req)
	if err != nil {
		return nil, err
	}
	items := make([]opts.BarData, len(data.yValues))
	for i, v := range data.yValues {
		items[i] = opts.BarData{Name: data.xValues[i], Value: v}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(global,
		charts.WithXAxisOpts(opts.XAxis{Name: s.req.X}),
		charts.WithYAxisOpts(opts.YAxis{Name: s.req.Y}),
	)...)
	bar.SetXAxis(data.xValues).AddSeries(s.req.Y, items, itemStyle(s))
	return bar, nil
}

func (r *Renderer) htmlXY(ds *dataset.Dataset, s resolved, global ...charts.GlobalOpts) (htmlChart, error) {
	xs, ys, err := xyPoints(ds, s.req)
	if err != nil {
		return nil, err
	}
	global = append(global,
		charts.WithXAxisOpts(opts.XAxis{Name: s.req.X, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: s.req.Y, Type: "value"}),
	)

	if s.req.Kind == models.Line {
		items := make([]opts.LineData, len(xs))
		for i := range xs {
			items[i] = opts.LineData{Value: []interface{}{xs[i], ys[i]}}
		}
		line := charts.NewLine()
		line.SetGlobalOptions(global...)
		line.AddSeries(s.req.Y, items, itemStyle(s))
		return line, nil
	}

	items := make([]opts.ScatterData, len(xs))
	for i := range xs {
		items[i] = opts.ScatterData{Value: []interface{}{xs[i], ys[i]}, SymbolSize: 8}
	}
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(global...)
	scatter.AddSeries(s.req.Y, items, itemStyle(s))
	return scatter, nil
}

// boxStats is the five-number summary ECharts expects: min, Q1, median, Q3, max.
func boxStats(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return []float64{
		sorted[0],
		dataset.Quantile(sorted, 0.25),
		dataset.Quantile(sorted, 0.5),
		dataset.Quantile(sorted, 0.75),
		sorted[len(sorted)-1],
	}
}

func (r *Renderer) htmlBox(ds *dataset.Dataset, s resolved, global ...charts.GlobalOpts) (htmlChart, error) {
	labels, groups, err := categoryValues(ds, s.req)
	if err != nil {
		return nil, err
	}
	items := make([]opts.BoxPlotData, len(groups))
	for i, values := range groups {
		items[i] = opts.BoxPlotData{Name: labels[i], Value: boxStats(values)}
	}

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(append(global,
		charts.WithXAxisOpts(opts.XAxis{Name: s.req.X}),
		charts.WithYAxisOpts(opts.YAxis{Name: s.req.Y}),
	)...)
	box.SetXAxis(labels).AddSeries(s.req.Y, items, itemStyle(s))
	return box, nil
}

func (r *Renderer) htmlHeatmap(ds *dataset.Dataset, global ...charts.GlobalOpts) (htmlChart, error) {
	m, err := CorrelationMatrix(ds)
	if err != nil {
		return nil, err
	}
	n := len(m.Columns)

	// ECharts marks an empty cell with "-"; NaN has no JSON form.
	items := make([]opts.HeatMapData, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			var v interface{} = "-"
			if c := m.At(row, col); !math.IsNaN(c) {
				v = math.Round(c*100) / 100
			}
			items = append(items, opts.HeatMapData{Value: [3]interface{}{col, n - 1 - row, v}})
		}
	}

	reversed := make([]string, n)
	for i, name := range m.Columns {
		reversed[n-1-i] = name
	}

	heat := charts.NewHeatMap()
	heat.SetGlobalOptions(append(global,
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: m.Columns}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: reversed}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min:     -1,
			Max:     1,
			InRange: &opts.VisualMapInRange{Color: heatmapColors},
		}),
	)...)
	heat.SetXAxis(m.Columns).AddSeries("correlation", items)
	return heat, nil
}
