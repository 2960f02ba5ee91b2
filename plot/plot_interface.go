package plot

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type dataForGraph interface {
	GetNameGraph() string
	getNameYAxis() string
	getYValues() []float64
	calculateChartDimensions(minBarWidth float64, minWidth, minHeight int) (int, int)
	generateBarValues(fill drawing.Color) []chart.Value
	generateGrid() []chart.Tick
}
