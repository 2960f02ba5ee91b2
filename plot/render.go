// Package plot decides which columns each chart kind accepts and renders a
// validated chart request. Bar, line and scatter charts are drawn with
// go-chart, box plots and heatmaps with gonum/plot, and the HTML export with
// go-echarts.
package plot

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pivolan/graphify/dataset"
	"github.com/pivolan/graphify/domain/models"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	// MaxChartSide caps either side of a PNG canvas in pixels.
	MaxChartSide = 4096
)

// Chart is the result of one render. Nothing is kept between renders.
type Chart struct {
	Kind   models.ChartKind
	Title  string
	PNG    []byte
	Width  int
	Height int
}

type Renderer struct {
	Width        int
	Height       int
	DefaultColor string
}

func NewRenderer(width, height int, defaultColor string) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	width, height = clampSide(width), clampSide(height)
	if defaultColor == "" {
		defaultColor = Colors[0]
	}
	if _, err := ParseColor(defaultColor); err != nil {
		slog.Warn("ignoring invalid default color", "value", defaultColor, "fallback", Colors[0])
		defaultColor = Colors[0]
	}
	return &Renderer{Width: width, Height: height, DefaultColor: defaultColor}
}

// resolved is a request whose columns have been resolved and checked.
type resolved struct {
	req   models.ChartRequest
	color drawing.Color
	title string
}

func invalidAxis(req models.ChartRequest, msg string) error {
	return models.NewError(models.KindInvalidAxisSelection, msg, nil).
		WithContext("kind", req.Kind).
		WithContext("x", req.X).
		WithContext("y", req.Y)
}

func plotError(req models.ChartRequest, cause error) error {
	return models.NewError(models.KindPlotGenerationError,
		fmt.Sprintf("failed to draw %s", req.Kind.Title()), cause).
		WithContext("kind", req.Kind)
}

// resolve checks the request against the column types and resolves column
// aliases to real names.
func (r *Renderer) resolve(ds *dataset.Dataset, req models.ChartRequest) (resolved, error) {
	kind, err := models.ParseChartKind(string(req.Kind))
	if err != nil {
		return resolved{}, err
	}
	req.Kind = kind
	s := resolved{req: req, title: kind.Title()}
	if kind == models.Heatmap {
		s.req.X, s.req.Y, s.req.Color = "", "", ""
		s.title = "Correlation Heatmap"
		return s, nil
	}

	if req.X == "" || req.Y == "" {
		return resolved{}, invalidAxis(req, "both x and y columns must be selected")
	}
	x, ok := ds.Lookup(req.X)
	if !ok {
		return resolved{}, invalidAxis(req, fmt.Sprintf("unknown column %q", req.X))
	}
	y, ok := ds.Lookup(req.Y)
	if !ok {
		return resolved{}, invalidAxis(req, fmt.Sprintf("unknown column %q", req.Y))
	}
	s.req.X, s.req.Y = x, y

	rule := axisRules[kind]
	xType, _ := ds.Type(x)
	yType, _ := ds.Type(y)
	if yType != rule.y {
		return resolved{}, invalidAxis(s.req, fmt.Sprintf("%s needs a %s y column, %q is %s", s.title, rule.y, y, yType))
	}
	// a numeric x on a bar chart is used as text labels
	if xType != rule.x && kind != models.Bar {
		return resolved{}, invalidAxis(s.req, fmt.Sprintf("%s needs a %s x column, %q is %s", s.title, rule.x, x, xType))
	}

	color := req.Color
	if color == "" {
		color = r.DefaultColor
	}
	s.color, err = ParseColor(color)
	if err != nil {
		return resolved{}, plotError(s.req, err)
	}
	s.req.Color = color
	s.title = fmt.Sprintf("%s: %s by %s", kind.Title(), y, x)
	return s, nil
}

// Render validates req against ds and draws it as a PNG. Failures of the
// drawing backends, panics included, come back as PlotGenerationError.
func (r *Renderer) Render(ds *dataset.Dataset, req models.ChartRequest) (c *Chart, err error) {
	s, err := r.resolve(ds, req)
	if err != nil {
		return nil, err
	}

	defer func() {
		if p := recover(); p != nil {
			c, err = nil, plotError(s.req, fmt.Errorf("panic: %v", p))
		}
		if err != nil {
			slog.Warn("chart rendering failed", "kind", s.req.Kind, "x", s.req.X, "y", s.req.Y, "error", err)
		}
	}()

	var png []byte
	switch s.req.Kind {
	case models.Bar:
		png, err = r.drawBar(ds, s)
	case models.Line, models.Scatter:
		png, err = r.drawXY(ds, s)
	case models.Box:
		png, err = r.drawBox(ds, s)
	case models.Heatmap:
		png, err = r.drawHeatmap(ds, s)
	}
	if err != nil {
		return nil, wrapBackend(s.req, err)
	}

	slog.Debug("chart rendered", "kind", s.req.Kind, "x", s.req.X, "y", s.req.Y, "bytes", len(png))
	return &Chart{
		Kind:   s.req.Kind,
		Title:  s.title,
		PNG:    png,
		Width:  r.Width,
		Height: r.Height,
	}, nil
}

// wrapBackend keeps application errors as they are and turns anything else into a PlotGenerationError.
func wrapBackend(req models.ChartRequest, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return plotError(req, err)
}

func (r *Renderer) drawBar(ds *dataset.Dataset, s resolved) ([]byte, error) {
	data, err := barHeights(ds, s.req)
	if err != nil {
		return nil, err
	}
	data.nameGraph = s.title
	return DrawPlotBar(data, s.color, r.Width, r.Height)
}

func (r *Renderer) drawXY(ds *dataset.Dataset, s resolved) ([]byte, error) {
	xs, ys, err := xyPoints(ds, s.req)
	if err != nil {
		return nil, err
	}
	return DrawXY(s.title, s.req.X, s.req.Y, xs, ys, s.req.Kind == models.Line, s.color, r.Width, r.Height)
}
