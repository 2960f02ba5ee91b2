package models

import (
	"fmt"
	"strings"
)

// ColumnType is the type tag computed once per column when a dataset is loaded.
type ColumnType int

const (
	Categorical ColumnType = iota
	Numeric
)

func (t ColumnType) String() string {
	switch t {
	case Numeric:
		return "numeric"
	default:
		return "categorical"
	}
}

type ChartKind string

const (
	Bar     ChartKind = "bar"
	Line    ChartKind = "line"
	Scatter ChartKind = "scatter"
	Box     ChartKind = "box"
	Heatmap ChartKind = "heatmap"
)

var ChartKinds = []ChartKind{Bar, Line, Scatter, Box, Heatmap}

// ParseChartKind accepts "bar", "Bar", "bar plot" and similar spellings.
func ParseChartKind(s string) (ChartKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, " plot")
	s = strings.TrimSuffix(s, "plot")
	for _, k := range ChartKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", NewError(KindInvalidAxisSelection, fmt.Sprintf("unknown chart kind %q", s), nil)
}

func (k ChartKind) Title() string {
	switch k {
	case "":
		return ""
	case Heatmap:
		return "Heatmap"
	default:
		return strings.ToUpper(string(k[:1])) + string(k[1:]) + " Plot"
	}
}

type ChartRequest struct {
	Kind  ChartKind
	X     string
	Y     string
	Color string
}

// AxisOptions lists the columns offered for each axis of a chart kind.
type AxisOptions struct {
	X []string
	Y []string
}

type ColumnSummary struct {
	Name    string
	Type    ColumnType
	Missing int

	// numeric columns
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Median float64
	Max    float64

	// categorical columns
	Unique   int
	Top      string
	TopCount int
}

type Summary struct {
	Rows    int
	Cols    int
	Columns []ColumnSummary
}

type CleanMode string

const (
	CleanDrop CleanMode = "drop"
	CleanFill CleanMode = "fill"
)

type FillStrategy string

const (
	FillMean   FillStrategy = "mean"
	FillMedian FillStrategy = "median"
)

// ParseFillStrategy is case-insensitive and ignores surrounding whitespace.
func ParseFillStrategy(s string) (FillStrategy, error) {
	switch FillStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case FillMean:
		return FillMean, nil
	case FillMedian:
		return FillMedian, nil
	}
	return "", NewError(KindInvalidFillStrategy, "fill strategy must be 'mean' or 'median'", nil).
		WithContext("strategy", s)
}

type CleanRequest struct {
	Mode     CleanMode
	Strategy string
}

type CleanResult struct {
	Mode        CleanMode
	Strategy    FillStrategy
	RowsBefore  int
	RowsAfter   int
	CellsFilled int
}
