package plot

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type dataXStringsForGraph struct {
	xValues   []string
	yValues   []float64
	nameYAxis string
	nameGraph string
}

func NewDataXStringsForGraph(xValues []string, y []float64, nameYAxis, nameGraph string) dataXStringsForGraph {
	return dataXStringsForGraph{
		xValues:   xValues,
		yValues:   y,
		nameYAxis: nameYAxis,
		nameGraph: nameGraph,
	}
}

func (d dataXStringsForGraph) GetNameGraph() string {
	return d.nameGraph
}
func (d dataXStringsForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataXStringsForGraph) getYValues() []float64 {
	return d.yValues
}
func (d dataXStringsForGraph) getXValues() []string {
	return d.xValues
}

func (d dataXStringsForGraph) lenXValues() int {
	return len(d.xValues)
}

// calculateChartDimensions grows the canvas so every bar keeps at least
// minBarWidth, up to MaxChartSide on either side. Past that the bars get thinner.
func (d dataXStringsForGraph) calculateChartDimensions(minBarWidth float64, minWidth, minHeight int) (width, height int) {
	minWidth, minHeight = clampSide(minWidth), clampSide(minHeight)
	if len(d.yValues) == 0 || d.lenXValues() <= 0 || minBarWidth <= 0 {
		return minWidth, minHeight
	}

	const (
		paddingY     = 100        // room for the y axis and its labels
		spacingRatio = 0.2        // gap between bars relative to the bar width
		aspectRatio  = 9.0 / 16.0 // default height to width ratio
	)

	barSpacing := minBarWidth * spacingRatio
	wanted := (minBarWidth+barSpacing)*float64(d.lenXValues()) + 2*paddingY
	if wanted < float64(minWidth) {
		return minWidth, minHeight
	}
	width = clampSide(int(math.Min(wanted, MaxChartSide)))
	height = int(float64(width) * aspectRatio)
	if height < minHeight {
		height = minHeight
	}
	return width, clampSide(height)
}

func clampSide(v int) int {
	if v > MaxChartSide {
		return MaxChartSide
	}
	return v
}

func (d dataXStringsForGraph) generateBarValues(fill drawing.Color) []chart.Value {
	bars := make([]chart.Value, 0, len(d.xValues))
	for i, label := range d.getXValues() {
		bars = append(bars, chart.Value{
			Value: d.yValues[i],
			Label: label,
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: fill,
			},
		})
	}
	return bars
}

// generateGrid returns evenly stepped ticks from 0 past the highest bar. Charts
// with negative or non-finite bars get no explicit ticks.
func (d dataXStringsForGraph) generateGrid() []chart.Tick {
	maxValue := findMaxValue(d.yValues)
	if maxValue <= 0 || findMinValue(d.yValues) < 0 || !allFinite(d.yValues) {
		return nil
	}
	gridStep := calculateGridStep(maxValue)
	top := math.Ceil(maxValue/gridStep) * gridStep
	if gridStep <= 0 || !allFinite([]float64{gridStep, top}) {
		return nil
	}

	var ticks []chart.Tick
	for i := 0; ; i++ {
		v := float64(i) * gridStep
		if v > top+gridStep/2 {
			break
		}
		ticks = append(ticks, chart.Tick{
			Value: v,
			Label: fmt.Sprintf("%g", roundTick(v)),
		})
	}
	return ticks
}

func allFinite(values []float64) bool {
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

func roundTick(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
