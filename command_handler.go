package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pivolan/graphify/config"
	"github.com/pivolan/graphify/domain/models"
	"github.com/pivolan/graphify/plot"
	"github.com/pivolan/graphify/session"
)

const helpText = `Load a CSV file (it may be gzip, lz4 or zip archived), look at it, clean it and draw charts.

/load <path>                 load a dataset, replacing the current one
/preview [n]                 show the first n rows
/inspect                     row and column counts, types, missing values and statistics
/columns                     column names, aliases and types
/clean drop                  remove every row with a missing value
/clean fill <mean|median>    fill missing numbers with the column mean or median
/kind <bar|line|scatter|box|heatmap>
/axes <x> <y>                choose the columns, by name or alias
/color <name|#rrggbb>        ` + "blue red green orange purple pink cyan gray yellow" + `
/plot                        save the chart as PNG
/html                        save the chart as an interactive HTML page
/quit`

// Console is the line-oriented front end: it turns typed commands into
// controller calls and prints the outcome as a notification.
type Console struct {
	ctrl *session.Controller
	cfg  *config.Config
	out  io.Writer
}

func NewConsole(ctrl *session.Controller, cfg *config.Config, out io.Writer) *Console {
	return &Console{ctrl: ctrl, cfg: cfg, out: out}
}

func (c *Console) success(format string, a ...interface{}) {
	fmt.Fprintf(c.out, "OK: "+format+"\n", a...)
}

func (c *Console) warning(format string, a ...interface{}) {
	fmt.Fprintf(c.out, "WARNING: "+format+"\n", a...)
}

func (c *Console) print(text string) {
	fmt.Fprintln(c.out, text)
}

// notifyError reports a failed command. Mistakes in the request are warnings,
// failures to read or draw are errors; neither ends the loop.
func (c *Console) notifyError(err error) {
	var msg string
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
		if appErr.Cause != nil {
			msg = fmt.Sprintf("%s: %v", msg, appErr.Cause)
		}
	} else {
		msg = err.Error()
	}

	switch models.KindOf(err) {
	case models.KindLoadFailure, models.KindPlotGenerationError, "":
		fmt.Fprintf(c.out, "ERROR: %s\n", msg)
	default:
		c.warning("%s", msg)
	}
}

// Run reads commands until /quit or the end of input.
func (c *Console) Run(in io.Reader) error {
	c.print(helpText)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}
		if !c.Handle(scanner.Text()) {
			return nil
		}
	}
}

// Handle runs one command line and reports whether the loop should go on.
func (c *Console) Handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	fields := strings.Fields(line)
	command := strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	args := fields[1:]
	rest := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))

	slog.Debug("command", "command", command, "args", args)

	switch command {
	case "load":
		if rest == "" {
			c.warning("Specify the file after /load")
			return true
		}
		c.handleLoad(rest)
	case "preview":
		c.handlePreview(args)
	case "inspect", "explain":
		c.handleInspect()
	case "columns":
		c.handleColumns()
	case "clean":
		c.handleClean(args)
	case "kind":
		if len(args) == 0 {
			c.warning("Specify the chart kind: bar, line, scatter, box or heatmap")
			return true
		}
		c.handleKind(rest)
	case "axes":
		if len(args) != 2 {
			c.warning("Specify two columns: /axes <x> <y>")
			return true
		}
		c.handleAxes(args[0], args[1])
	case "color", "colour":
		c.handleColor(rest)
	case "plot":
		c.handlePlot()
	case "html":
		c.handleHTML()
	case "help", "start":
		c.print(helpText)
	case "quit", "exit":
		return false
	default:
		c.warning("Unknown command %q. Use /help", fields[0])
	}
	return true
}

func (c *Console) handleLoad(path string) {
	ds, err := c.ctrl.Load(path)
	if err != nil {
		c.notifyError(err)
		return
	}
	c.success("Loaded %s: %d rows, %d columns", ds.Name, ds.Nrow(), ds.Ncol())
	c.handlePreview(nil)
}

func (c *Console) handlePreview(args []string) {
	n := c.cfg.PreviewRows
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v <= 0 {
			c.warning("The row count must be a positive number")
			return
		}
		n = v
	}
	ds, err := c.ctrl.Dataset()
	if err != nil {
		c.notifyError(err)
		return
	}
	names, rows, err := c.ctrl.Preview(n)
	if err != nil {
		c.notifyError(err)
		return
	}
	c.print(GeneratePreviewTable(names, rows, ds.Nrow()))
}

func (c *Console) handleInspect() {
	summary, err := c.ctrl.Inspect()
	if err != nil {
		c.notifyError(err)
		return
	}
	c.print(GenerateSummaryTable(summary))
}

func (c *Console) handleColumns() {
	ds, err := c.ctrl.Dataset()
	if err != nil {
		c.notifyError(err)
		return
	}
	c.print(GenerateColumnsTable(ds.Columns()))
}

func (c *Console) handleClean(args []string) {
	if len(args) == 0 {
		c.warning("Use /clean drop or /clean fill <mean|median>")
		return
	}
	req := models.CleanRequest{Mode: models.CleanMode(args[0])}
	if len(args) > 1 {
		req.Strategy = args[1]
	}
	result, err := c.ctrl.Clean(req)
	if err != nil {
		c.notifyError(err)
		return
	}
	if result.Mode == models.CleanDrop {
		c.success("Dropped %d rows with missing values, %d left", result.RowsBefore-result.RowsAfter, result.RowsAfter)
		return
	}
	c.success("Filled %d missing values with the column %s", result.CellsFilled, result.Strategy)
}

func (c *Console) handleKind(kind string) {
	options, err := c.ctrl.SelectKind(kind)
	if err != nil {
		c.notifyError(err)
		return
	}
	k := c.ctrl.Request().Kind
	c.success("%s selected", k.Title())
	c.print(GenerateAxisTable(k, options))
}

func (c *Console) handleAxes(x, y string) {
	if err := c.ctrl.SelectAxes(x, y); err != nil {
		c.notifyError(err)
		return
	}
	req := c.ctrl.Request()
	c.success("X: %s, Y: %s. Run /plot", req.X, req.Y)
}

func (c *Console) handleColor(color string) {
	if err := c.ctrl.SelectColor(color); err != nil {
		c.notifyError(err)
		return
	}
	if color == "" {
		color = c.cfg.DefaultColor
	}
	c.success("Color: %s", color)
}

func (c *Console) handlePlot() {
	chart, err := c.ctrl.Render()
	if err != nil {
		c.notifyError(err)
		return
	}
	req := c.ctrl.Request()
	req.Kind = chart.Kind
	path, err := saveVisualization(c.cfg.OutputDir, req, ".png", chart.PNG)
	if err != nil {
		c.notifyError(models.NewError(models.KindPlotGenerationError, "cannot save chart", err))
		return
	}
	c.success("%s saved to %s", chart.Title, path)
	c.print(generateVizualDescription(req))
}

func (c *Console) handleHTML() {
	page, err := c.ctrl.RenderHTML()
	if err != nil {
		c.notifyError(err)
		return
	}
	req := c.ctrl.Request()
	path, err := saveVisualization(c.cfg.OutputDir, req, ".html", page)
	if err != nil {
		c.notifyError(models.NewError(models.KindPlotGenerationError, "cannot save chart", err))
		return
	}
	c.success("Interactive %s saved to %s", req.Kind.Title(), path)
}

// newRenderer applies the configured chart size and color.
func newRenderer(cfg *config.Config) *plot.Renderer {
	return plot.NewRenderer(cfg.ChartWidth, cfg.ChartHeight, cfg.DefaultColor)
}
