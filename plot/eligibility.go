package plot

import (
	"github.com/pivolan/graphify/dataset"
	"github.com/pivolan/graphify/domain/models"
)

type axisRule struct {
	x, y models.ColumnType
}

// axisRules lists the column type each axis accepts. Heatmap has no axes.
var axisRules = map[models.ChartKind]axisRule{
	models.Bar:     {x: models.Categorical, y: models.Numeric},
	models.Line:    {x: models.Numeric, y: models.Numeric},
	models.Scatter: {x: models.Numeric, y: models.Numeric},
	models.Box:     {x: models.Categorical, y: models.Numeric},
}

// EligibleColumns returns, in dataset order, the columns offered for each axis of kind.
func EligibleColumns(ds *dataset.Dataset, kind models.ChartKind) models.AxisOptions {
	rule, ok := axisRules[kind]
	if !ok {
		return models.AxisOptions{X: []string{}, Y: []string{}}
	}
	return models.AxisOptions{
		X: nonNil(ds.ColumnsOfType(rule.x)),
		Y: nonNil(ds.ColumnsOfType(rule.y)),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
