package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pivolan/graphify/dataset"
	"github.com/pivolan/graphify/domain/models"
)

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// GenerateSummaryTable renders the describe view: one row per column, numeric
// statistics for numeric columns and unique/top/freq for categorical ones.
func GenerateSummaryTable(summary models.Summary) string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("%d rows x %d columns", summary.Rows, summary.Cols))
	t.AppendHeader(table.Row{"Column", "Type", "Missing", "Count", "Mean", "Std", "Min", "Median", "Max", "Unique", "Top", "Freq"})

	for _, c := range summary.Columns {
		if c.Type == models.Numeric {
			t.AppendRow(table.Row{c.Name, c.Type, c.Missing, c.Count,
				formatStat(c.Mean), formatStat(c.Std), formatStat(c.Min), formatStat(c.Median), formatStat(c.Max),
				"-", "-", "-"})
			continue
		}
		top, freq := "-", "-"
		if c.TopCount > 0 {
			top, freq = c.Top, strconv.Itoa(c.TopCount)
		}
		t.AppendRow(table.Row{c.Name, c.Type, c.Missing, c.Count,
			"-", "-", "-", "-", "-",
			c.Unique, top, freq})
	}

	t.SetStyle(table.StyleLight)
	return t.Render()
}

// GeneratePreviewTable renders the first rows of a dataset with a row index column.
func GeneratePreviewTable(names []string, rows [][]string, total int) string {
	t := table.NewWriter()
	header := table.Row{"#"}
	for _, name := range names {
		header = append(header, name)
	}
	t.AppendHeader(header)

	for i, row := range rows {
		r := table.Row{i}
		for _, cell := range row {
			r = append(r, cell)
		}
		t.AppendRow(r)
	}
	if len(rows) < total {
		t.AppendFooter(table.Row{"", fmt.Sprintf("%d of %d rows", len(rows), total)})
	}

	t.SetStyle(table.StyleLight)
	return t.Render()
}

// GenerateColumnsTable lists columns with the alias accepted by commands.
func GenerateColumnsTable(columns []dataset.ColumnInfo) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Column", "Alias", "Type"})
	for _, c := range columns {
		t.AppendRow(table.Row{c.Name, c.Alias, c.Type})
	}
	t.SetStyle(table.StyleLight)
	return t.Render()
}

// GenerateAxisTable shows the columns a chart kind accepts on each axis.
func GenerateAxisTable(kind models.ChartKind, options models.AxisOptions) string {
	if kind == models.Heatmap {
		return "Heatmap uses every numeric column, no axes to choose. Run /plot."
	}

	t := table.NewWriter()
	t.SetTitle(kind.Title())
	t.AppendHeader(table.Row{"X axis", "Y axis"})
	rows := len(options.X)
	if len(options.Y) > rows {
		rows = len(options.Y)
	}
	for i := 0; i < rows; i++ {
		var x, y string
		if i < len(options.X) {
			x = options.X[i]
		}
		if i < len(options.Y) {
			y = options.Y[i]
		}
		t.AppendRow(table.Row{x, y})
	}
	t.SetStyle(table.StyleLight)
	return t.Render()
}
