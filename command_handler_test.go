package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pivolan/graphify/config"
	"github.com/pivolan/graphify/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const salesCSV = `city,revenue,units
Paris,100,1
Berlin,,2
Paris,300,3
Madrid,400,
`

func newTestConsole(t *testing.T) (*Console, *bytes.Buffer, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		OutputDir:    filepath.Join(t.TempDir(), "charts"),
		PreviewRows:  2,
		ChartWidth:   640,
		ChartHeight:  480,
		DefaultColor: "blue",
	}
	out := &bytes.Buffer{}
	ctrl := session.NewController(session.New(), newRenderer(cfg))
	return NewConsole(ctrl, cfg, out), out, cfg
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConsoleBeforeLoad(t *testing.T) {
	c, out, _ := newTestConsole(t)

	for _, cmd := range []string{"/inspect", "/preview", "/columns", "/clean drop", "/kind bar", "/plot"} {
		out.Reset()
		assert.True(t, c.Handle(cmd))
		assert.Contains(t, out.String(), "WARNING: load a dataset first", cmd)
	}
}

func TestConsoleLoadFailureKeepsDataset(t *testing.T) {
	c, out, _ := newTestConsole(t)

	assert.True(t, c.Handle("/load "+writeCSV(t, salesCSV)))
	assert.Contains(t, out.String(), "OK: Loaded sales.csv: 4 rows, 3 columns")
	assert.Contains(t, strings.ToLower(out.String()), "2 of 4 rows")

	out.Reset()
	assert.True(t, c.Handle("/load /definitely/not/here.csv"))
	assert.Contains(t, out.String(), "ERROR:")

	out.Reset()
	c.Handle("/inspect")
	assert.Contains(t, strings.ToLower(out.String()), "4 rows x 3 columns")
}

func TestConsolePlotFlow(t *testing.T) {
	c, out, cfg := newTestConsole(t)
	require.True(t, c.Handle("/load "+writeCSV(t, salesCSV)))

	out.Reset()
	c.Handle("/kind bar")
	assert.Contains(t, out.String(), "OK: Bar Plot selected")
	assert.Contains(t, out.String(), "city")

	out.Reset()
	c.Handle("/axes city revenue")
	assert.Contains(t, out.String(), "OK: X: city, Y: revenue")

	out.Reset()
	c.Handle("/color purple")
	assert.Contains(t, out.String(), "OK: Color: purple")

	out.Reset()
	c.Handle("/plot")
	assert.Contains(t, out.String(), "OK: Bar Plot: revenue by city saved to")

	out.Reset()
	c.Handle("/html")
	assert.Contains(t, out.String(), "OK: Interactive Bar Plot saved to")

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	joined := strings.Join(names, " ")
	assert.Contains(t, joined, "bar_city_revenue_")
	assert.Contains(t, joined, ".png")
	assert.Contains(t, joined, ".html")
}

func TestConsoleWarnings(t *testing.T) {
	c, out, _ := newTestConsole(t)
	require.True(t, c.Handle("/load "+writeCSV(t, salesCSV)))

	tests := []struct {
		command string
		want    string
	}{
		{"/clean fill bogus", "WARNING: fill strategy must be 'mean' or 'median'"},
		{"/clean", "WARNING: Use /clean drop"},
		{"/kind pie", "WARNING: unknown chart kind"},
		{"/axes city", "WARNING: Specify two columns"},
		{"/axes city revenue", "WARNING: select a chart kind first"},
		{"/color rainbow", "ERROR: unknown color"},
		{"/preview abc", "WARNING: The row count must be a positive number"},
		{"/frobnicate", "WARNING: Unknown command"},
		{"/load", "WARNING: Specify the file"},
	}
	for _, tt := range tests {
		out.Reset()
		assert.True(t, c.Handle(tt.command))
		assert.Contains(t, out.String(), tt.want, tt.command)
	}
}

func TestConsoleClean(t *testing.T) {
	c, out, _ := newTestConsole(t)
	require.True(t, c.Handle("/load "+writeCSV(t, salesCSV)))

	out.Reset()
	c.Handle("/clean fill MEAN")
	assert.Contains(t, out.String(), "OK: Filled 2 missing values with the column mean")

	out.Reset()
	c.Handle("/clean drop")
	assert.Contains(t, out.String(), "OK: Dropped 0 rows with missing values, 4 left")
}

func TestConsoleHeatmapWithoutNumericColumns(t *testing.T) {
	c, out, _ := newTestConsole(t)
	require.True(t, c.Handle("/load "+writeCSV(t, "city,country\nParis,FR\n")))

	c.Handle("/kind heatmap")
	out.Reset()
	c.Handle("/plot")
	assert.Contains(t, out.String(), "WARNING: no numeric columns available for a heatmap")
}

func TestConsoleRunStopsOnQuit(t *testing.T) {
	c, out, _ := newTestConsole(t)

	err := c.Run(strings.NewReader("/help\n\n/quit\n/inspect\n"))
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "load a dataset first")
	assert.Contains(t, out.String(), "/load <path>")
}

func TestConsoleRunStopsAtEOF(t *testing.T) {
	c, out, _ := newTestConsole(t)

	require.NoError(t, c.Run(strings.NewReader("/inspect")))
	assert.Contains(t, out.String(), "load a dataset first")
}
