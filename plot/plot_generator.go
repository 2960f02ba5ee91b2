package plot

import (
	"bytes"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func calculateGridStep(maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}

	// very small values
	if maxValue < 1e-10 {
		return 1e-10
	}

	// order of magnitude of the maximum
	magnitude := math.Pow(10, math.Floor(math.Log10(maxValue)))

	// normalized to [1, 10)
	normalized := maxValue / magnitude

	var step float64
	switch {
	case normalized <= 1:
		step = 0.2
	case normalized <= 2:
		step = 0.5
	case normalized <= 5:
		step = 1.0
	default:
		step = 2.0
	}

	finalStep := step * magnitude

	// round large steps to "nice" numbers
	if finalStep >= 1000 {
		return math.Round(finalStep/100) * 100
	}
	if finalStep >= 100 {
		return math.Round(finalStep/10) * 10
	}

	return finalStep
}

func findMaxValue(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	max := y[0]
	for _, v := range y {
		if v > max {
			max = v
		}
	}
	return max
}

func findMinValue(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	min := y[0]
	for _, v := range y {
		if v < min {
			min = v
		}
	}
	return min
}

// customizePaddingXBottom leaves room under the axis for rotated bar labels.
func customizePaddingXBottom(values []chart.Value) int {
	const maxPadding = 400
	count := 0
	for _, v := range values {
		if len(v.Label) > count {
			count = len(v.Label)
		}
	}
	if padding := count*7 + 20; padding < maxPadding {
		return padding
	}
	return maxPadding
}

func DrawPlotBar(data dataForGraph, fill drawing.Color, width, height int) ([]byte, error) {
	barValues := data.generateBarValues(fill)
	ticks := data.generateGrid()
	paddingX := customizePaddingXBottom(barValues)
	width, height = data.calculateChartDimensions(40, width, height)

	yValues := data.getYValues()
	yMin := math.Min(0, findMinValue(yValues))
	yMax := math.Max(0, findMaxValue(yValues))
	if len(ticks) > 0 {
		yMax = ticks[len(ticks)-1].Value
	}
	if yMax == yMin {
		yMax = yMin + 1
	}

	barWidth := (width - 200) / (len(barValues) + 1)
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 1 {
		barWidth = 1
	}

	bar := chart.BarChart{
		Title: data.GetNameGraph(),
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   20,
				Right:  20,
				Bottom: paddingX,
			},
			FillColor: drawing.ColorWhite,
		},
		Width:        width,
		Height:       clampSide(height + paddingX),
		BarWidth:     barWidth,
		Bars:         barValues,
		UseBaseValue: true,
		BaseValue:    0,
		YAxis: chart.YAxis{
			Name: data.getNameYAxis(),
			Range: &chart.ContinuousRange{
				Min: yMin,
				Max: yMax,
			},
			Style: chart.Style{
				StrokeWidth: 1,
				StrokeColor: chart.ColorBlack,
				FontSize:    10,
			},
			Ticks: ticks,
			GridMajorStyle: chart.Style{
				StrokeColor:     chart.ColorBlack,
				StrokeWidth:     1,
				StrokeDashArray: []float64{5.0, 5.0}, // dashed
			},
		},
		XAxis: chart.Style{
			StrokeWidth:         1,
			StrokeColor:         chart.ColorBlack,
			TextRotationDegrees: 45,
			FontSize:            10,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := bar.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// DrawXY draws a line (connected, sorted by x) or a scatter (dots only) chart.
func DrawXY(title, xName, yName string, xValues, yValues []float64, lines bool, color drawing.Color, width, height int) ([]byte, error) {
	style := chart.Style{
		StrokeColor: color,
		StrokeWidth: 2,
	}
	if !lines {
		style = chart.Style{
			StrokeWidth: chart.Disabled,
			DotColor:    color,
			DotWidth:    4,
		}
	}

	graph := chart.Chart{
		Title: title,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: drawing.ColorWhite,
		},
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name: xName,
			ValueFormatter: func(v interface{}) string {
				if vf, isFloat := v.(float64); isFloat {
					return fmt.Sprintf("%g", roundTick(vf))
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name: yName,
			ValueFormatter: func(v interface{}) string {
				if vf, isFloat := v.(float64); isFloat {
					return fmt.Sprintf("%g", roundTick(vf))
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    yName,
				XValues: xValues,
				YValues: yValues,
				Style:   style,
			},
		},
	}

	graph.XAxis.Range = paddedRange(xValues)
	graph.YAxis.Range = paddedRange(yValues)

	buffer := bytes.NewBuffer([]byte{})
	graph.Background.StrokeWidth = 1
	graph.Background.StrokeColor = drawing.ColorFromHex("efefef")

	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// paddedRange widens a zero-width range, which go-chart refuses to draw.
func paddedRange(values []float64) chart.Range {
	min, max := findMinValue(values), findMaxValue(values)
	if min != max {
		return nil
	}
	return &chart.ContinuousRange{Min: min - 1, Max: max + 1}
}
