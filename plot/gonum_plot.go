package plot

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/pivolan/graphify/dataset"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

var nanCellColor = color.Gray{Y: 0xb0}

// pixels converts a pixel size to a canvas length at the 96 dpi used for PNG output.
func pixels(px int) vg.Length {
	return vg.Length(px) * vg.Inch / 96
}

func writePNG(p *plot.Plot, width, height int) ([]byte, error) {
	wt, err := p.WriterTo(pixels(width), pixels(height), "png")
	if err != nil {
		return nil, fmt.Errorf("error creating canvas: %w", err)
	}
	buffer := bytes.NewBuffer([]byte{})
	if _, err := wt.WriteTo(buffer); err != nil {
		return nil, fmt.Errorf("error encoding png: %w", err)
	}
	return buffer.Bytes(), nil
}

// drawBox draws one box per category of x in first-appearance order.
func (r *Renderer) drawBox(ds *dataset.Dataset, s resolved) ([]byte, error) {
	labels, groups, err := categoryValues(ds, s.req)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = s.title
	p.X.Label.Text = s.req.X
	p.Y.Label.Text = s.req.Y

	boxWidth := pixels(r.Width) / vg.Length(2*len(groups)+2)
	if boxWidth > vg.Points(40) {
		boxWidth = vg.Points(40)
	}
	for i, values := range groups {
		box, err := plotter.NewBoxPlot(boxWidth, float64(i), plotter.Values(values))
		if err != nil {
			return nil, fmt.Errorf("error creating box for %q: %w", labels[i], err)
		}
		box.FillColor = s.color
		p.Add(box)
	}
	p.NominalX(labels...)
	p.Add(plotter.NewGrid())

	return writePNG(p, r.Width, r.Height)
}

// corrGrid adapts a correlation matrix to plotter.GridXYZ with the first column on top.
type corrGrid struct {
	m *CorrMatrix
}

func (g corrGrid) Dims() (c, r int) {
	n := len(g.m.Columns)
	return n, n
}

func (g corrGrid) Z(c, r int) float64 {
	return g.m.At(r, c)
}

func (g corrGrid) X(c int) float64 {
	return float64(c)
}

func (g corrGrid) Y(r int) float64 {
	return float64(len(g.m.Columns) - 1 - r)
}

func formatCorrelation(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", v)
}

// drawHeatmap draws the annotated correlation matrix of every numeric column.
func (r *Renderer) drawHeatmap(ds *dataset.Dataset, s resolved) ([]byte, error) {
	m, err := CorrelationMatrix(ds)
	if err != nil {
		return nil, err
	}
	grid := corrGrid{m: m}
	n := len(m.Columns)

	colors := moreland.SmoothBlueRed()
	colors.SetMin(-1)
	colors.SetMax(1)

	heat := plotter.NewHeatMap(grid, colors.Palette(255))
	heat.Min, heat.Max = -1, 1
	heat.NaN = nanCellColor

	var cells plotter.XYLabels
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			cells.XYs = append(cells.XYs, plotter.XY{X: grid.X(col), Y: grid.Y(row)})
			cells.Labels = append(cells.Labels, formatCorrelation(m.At(row, col)))
		}
	}
	labels, err := plotter.NewLabels(cells)
	if err != nil {
		return nil, fmt.Errorf("error creating cell labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}

	xTicks := make([]plot.Tick, n)
	yTicks := make([]plot.Tick, n)
	for i, name := range m.Columns {
		xTicks[i] = plot.Tick{Value: grid.X(i), Label: name}
		yTicks[i] = plot.Tick{Value: grid.Y(i), Label: name}
	}

	p := plot.New()
	p.Title.Text = s.title
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	p.Add(heat, labels)

	return writePNG(p, r.Width, r.Height)
}
