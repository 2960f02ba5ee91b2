package dataset

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pivolan/graphify/domain/models"
)

// Clean applies a drop or fill pass to d in place. The strategy of a fill is
// validated before anything is touched.
func Clean(d *Dataset, req models.CleanRequest) (models.CleanResult, error) {
	result := models.CleanResult{RowsBefore: d.Nrow()}

	switch models.CleanMode(strings.ToLower(strings.TrimSpace(string(req.Mode)))) {
	case models.CleanDrop:
		result.Mode = models.CleanDrop
		if err := d.DropMissing(); err != nil {
			return result, err
		}
	case models.CleanFill:
		result.Mode = models.CleanFill
		strategy, err := models.ParseFillStrategy(req.Strategy)
		if err != nil {
			return result, err
		}
		result.Strategy = strategy
		filled, err := d.FillMissing(strategy)
		if err != nil {
			return result, err
		}
		result.CellsFilled = filled
	default:
		return result, models.NewError(models.KindInvalidFillStrategy,
			"clean mode must be 'drop' or 'fill'", nil).WithContext("mode", req.Mode)
	}

	result.RowsAfter = d.Nrow()
	slog.Debug("dataset cleaned", "mode", result.Mode, "strategy", result.Strategy,
		"rows_before", result.RowsBefore, "rows_after", result.RowsAfter, "filled", result.CellsFilled)
	return result, nil
}

// DropMissing removes every row holding at least one missing cell, keeping the order of the rest.
func (d *Dataset) DropMissing() error {
	keep := make([]bool, d.Nrow())
	for i := range keep {
		keep[i] = true
	}
	for _, name := range d.Names() {
		missing, err := d.Missing(name)
		if err != nil {
			return err
		}
		for i, na := range missing {
			if na {
				keep[i] = false
			}
		}
	}

	var idx []int
	for i, k := range keep {
		if k {
			idx = append(idx, i)
		}
	}
	if len(idx) == d.Nrow() {
		return nil
	}
	if len(idx) == 0 {
		d.df = d.emptyFrame()
		return nil
	}

	df := d.df.Subset(idx)
	if df.Err != nil {
		return fmt.Errorf("drop missing rows: %w", df.Err)
	}
	d.df = df
	return nil
}

// emptyFrame keeps the column names and types of d with zero rows.
func (d *Dataset) emptyFrame() dataframe.DataFrame {
	columns := make([]series.Series, 0, d.Ncol())
	for i, name := range d.Names() {
		if d.types[i] == models.Numeric {
			columns = append(columns, series.New([]float64{}, series.Float, name))
		} else {
			columns = append(columns, series.New([]string{}, series.String, name))
		}
	}
	return dataframe.New(columns...)
}

// FillMissing replaces missing numeric cells with the column mean or median
// and returns how many cells were filled. Categorical columns are left alone.
func (d *Dataset) FillMissing(strategy models.FillStrategy) (int, error) {
	if strategy != models.FillMean && strategy != models.FillMedian {
		return 0, models.NewError(models.KindInvalidFillStrategy,
			"fill strategy must be 'mean' or 'median'", nil).WithContext("strategy", strategy)
	}

	filled := 0
	for _, name := range d.NumericColumns() {
		values, err := d.Floats(name)
		if err != nil {
			return filled, err
		}
		present := Present(values)
		if len(present) == len(values) || len(present) == 0 {
			continue
		}

		fill := Mean(present)
		if strategy == models.FillMedian {
			fill = Median(present)
		}

		for i, v := range values {
			if math.IsNaN(v) {
				values[i] = fill
				filled++
			}
		}
		df := d.df.Mutate(series.New(values, series.Float, name))
		if df.Err != nil {
			return filled, fmt.Errorf("fill column %s: %w", name, df.Err)
		}
		d.df = df
	}
	return filled, nil
}
