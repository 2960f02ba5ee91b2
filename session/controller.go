package session

import (
	"fmt"
	"log/slog"

	"github.com/pivolan/go_utils"
	"github.com/pivolan/graphify/dataset"
	"github.com/pivolan/graphify/domain/models"
	"github.com/pivolan/graphify/plot"
)

// State is the position of the visualization flow.
type State int

const (
	NoDataset State = iota
	DatasetLoaded
	KindSelected
	AxesSelected
	ChartRendered
)

func (s State) String() string {
	switch s {
	case DatasetLoaded:
		return "dataset loaded"
	case KindSelected:
		return "chart kind selected"
	case AxesSelected:
		return "axes selected"
	case ChartRendered:
		return "chart rendered"
	default:
		return "no dataset"
	}
}

// Controller exposes one handler per user command. Each handler takes a
// request value and returns a result or an *models.AppError; none of them
// panics on bad input.
type Controller struct {
	session  *Session
	renderer *plot.Renderer
	logger   *slog.Logger

	state State
	kind  models.ChartKind
	x, y  string
	color string
}

func NewController(s *Session, r *plot.Renderer) *Controller {
	return &Controller{
		session:  s,
		renderer: r,
		logger:   slog.With("session", s.ID),
	}
}

func (c *Controller) State() State {
	return c.state
}

// Request is the chart request assembled by the selections so far.
func (c *Controller) Request() models.ChartRequest {
	return models.ChartRequest{Kind: c.kind, X: c.x, Y: c.y, Color: c.color}
}

func (c *Controller) Dataset() (*dataset.Dataset, error) {
	return c.session.Dataset()
}

// Load replaces the dataset only when path loads successfully, so a failed
// load keeps the previous dataset and selections.
func (c *Controller) Load(path string) (*dataset.Dataset, error) {
	ds, err := dataset.Load(path)
	if err != nil {
		c.logger.Warn("load failed", "path", path, "error", err)
		return nil, err
	}
	c.session.Replace(ds)
	c.state = DatasetLoaded
	c.kind, c.x, c.y = "", "", ""
	c.logger.Info("dataset loaded", "path", path, "rows", ds.Nrow(), "cols", ds.Ncol())
	return ds, nil
}

func (c *Controller) Inspect() (models.Summary, error) {
	ds, err := c.session.Dataset()
	if err != nil {
		return models.Summary{}, err
	}
	return dataset.Inspect(ds)
}

func (c *Controller) Preview(n int) ([]string, [][]string, error) {
	ds, err := c.session.Dataset()
	if err != nil {
		return nil, nil, err
	}
	return dataset.Preview(ds, n)
}

// Clean mutates the loaded dataset in place. Column types do not change, so
// the current chart selections stay valid.
func (c *Controller) Clean(req models.CleanRequest) (models.CleanResult, error) {
	ds, err := c.session.Dataset()
	if err != nil {
		return models.CleanResult{}, err
	}
	result, err := dataset.Clean(ds, req)
	if err != nil {
		c.logger.Warn("clean failed", "mode", req.Mode, "strategy", req.Strategy, "error", err)
		return result, err
	}
	c.logger.Info("dataset cleaned", "mode", result.Mode, "rows", result.RowsAfter, "filled", result.CellsFilled)
	return result, nil
}

// SelectKind starts a new chart and returns the columns each axis may use.
// Earlier axis choices are discarded.
func (c *Controller) SelectKind(kind string) (models.AxisOptions, error) {
	ds, err := c.session.Dataset()
	if err != nil {
		return models.AxisOptions{}, err
	}
	k, err := models.ParseChartKind(kind)
	if err != nil {
		return models.AxisOptions{}, err
	}
	c.kind, c.x, c.y = k, "", ""
	c.state = KindSelected
	return plot.EligibleColumns(ds, k), nil
}

// AxisOptions returns the eligible columns for the selected kind.
func (c *Controller) AxisOptions() (models.AxisOptions, error) {
	ds, err := c.session.Dataset()
	if err != nil {
		return models.AxisOptions{}, err
	}
	if c.kind == "" {
		return models.AxisOptions{}, models.NewError(models.KindInvalidAxisSelection, "select a chart kind first", nil)
	}
	return plot.EligibleColumns(ds, c.kind), nil
}

// SelectAxes accepts columns offered by AxisOptions. A bar chart also takes a
// numeric x column, whose values become labels.
func (c *Controller) SelectAxes(x, y string) error {
	ds, err := c.session.Dataset()
	if err != nil {
		return err
	}
	if c.kind == "" {
		return models.NewError(models.KindInvalidAxisSelection, "select a chart kind first", nil)
	}
	if c.kind == models.Heatmap {
		return models.NewError(models.KindInvalidAxisSelection, "a heatmap uses every numeric column and takes no axes", nil)
	}

	xName, ok := ds.Lookup(x)
	if !ok {
		return models.NewError(models.KindInvalidAxisSelection, fmt.Sprintf("unknown column %q", x), nil)
	}
	yName, ok := ds.Lookup(y)
	if !ok {
		return models.NewError(models.KindInvalidAxisSelection, fmt.Sprintf("unknown column %q", y), nil)
	}

	options := plot.EligibleColumns(ds, c.kind)
	xType, _ := ds.Type(xName)
	if !go_utils.InArray(xName, options.X) && !(c.kind == models.Bar && xType == models.Numeric) {
		return models.NewError(models.KindInvalidAxisSelection,
			fmt.Sprintf("%q cannot be the x axis of a %s", xName, c.kind.Title()), nil).WithContext("options", options.X)
	}
	if !go_utils.InArray(yName, options.Y) {
		return models.NewError(models.KindInvalidAxisSelection,
			fmt.Sprintf("%q cannot be the y axis of a %s", yName, c.kind.Title()), nil).WithContext("options", options.Y)
	}

	c.x, c.y = xName, yName
	c.state = AxesSelected
	return nil
}

// SelectColor sets the color of later renders; an empty value restores the default.
func (c *Controller) SelectColor(color string) error {
	if color != "" {
		if _, err := plot.ParseColor(color); err != nil {
			return models.NewError(models.KindPlotGenerationError,
				fmt.Sprintf("unknown color, choose one of %v or #rrggbb", plot.Colors), err)
		}
	}
	c.color = color
	return nil
}

func (c *Controller) readyToRender() (*dataset.Dataset, error) {
	ds, err := c.session.Dataset()
	if err != nil {
		return nil, err
	}
	switch {
	case c.kind == "":
		return nil, models.NewError(models.KindInvalidAxisSelection, "select a chart kind first", nil)
	case c.kind != models.Heatmap && c.state < AxesSelected:
		return nil, models.NewError(models.KindInvalidAxisSelection, "select the x and y columns first", nil).
			WithContext("kind", c.kind)
	}
	return ds, nil
}

// Render draws the selected chart. Every render is computed from scratch.
func (c *Controller) Render() (*plot.Chart, error) {
	ds, err := c.readyToRender()
	if err != nil {
		return nil, err
	}
	chart, err := c.renderer.Render(ds, c.Request())
	if err != nil {
		return nil, err
	}
	c.state = ChartRendered
	c.logger.Info("chart rendered", "kind", chart.Kind, "x", c.x, "y", c.y)
	return chart, nil
}

// RenderHTML draws the selected chart as an interactive page.
func (c *Controller) RenderHTML() ([]byte, error) {
	ds, err := c.readyToRender()
	if err != nil {
		return nil, err
	}
	page, err := c.renderer.RenderHTML(ds, c.Request())
	if err != nil {
		return nil, err
	}
	c.state = ChartRendered
	return page, nil
}

// Plot renders a complete request without touching the selections.
func (c *Controller) Plot(req models.ChartRequest) (*plot.Chart, error) {
	ds, err := c.session.Dataset()
	if err != nil {
		return nil, err
	}
	return c.renderer.Render(ds, req)
}
