// Package dataset holds a loaded table together with the type tag of every
// column, and implements the load, inspect, preview and clean operations.
package dataset

import (
	"fmt"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pivolan/graphify/domain/models"
)

type Dataset struct {
	Name    string
	df      dataframe.DataFrame
	types   []models.ColumnType
	aliases []string
}

type ColumnInfo struct {
	Name  string
	Alias string
	Type  models.ColumnType
}

func (d *Dataset) Nrow() int {
	return d.df.Nrow()
}

func (d *Dataset) Ncol() int {
	return d.df.Ncol()
}

func (d *Dataset) Names() []string {
	return d.df.Names()
}

func (d *Dataset) Columns() []ColumnInfo {
	names := d.df.Names()
	cols := make([]ColumnInfo, len(names))
	for i, name := range names {
		cols[i] = ColumnInfo{Name: name, Alias: d.aliases[i], Type: d.types[i]}
	}
	return cols
}

func (d *Dataset) index(name string) int {
	for i, n := range d.df.Names() {
		if n == name {
			return i
		}
	}
	return -1
}

// Lookup resolves a column by its exact name first and then by its alias.
func (d *Dataset) Lookup(name string) (string, bool) {
	if d.index(name) >= 0 {
		return name, true
	}
	names := d.df.Names()
	for i, alias := range d.aliases {
		if alias == name {
			return names[i], true
		}
	}
	want := columnAlias(name, -1)
	for i, alias := range d.aliases {
		if want != "" && alias == want {
			return names[i], true
		}
	}
	return "", false
}

func (d *Dataset) Type(name string) (models.ColumnType, bool) {
	i := d.index(name)
	if i < 0 {
		return models.Categorical, false
	}
	return d.types[i], true
}

func (d *Dataset) ColumnsOfType(t models.ColumnType) []string {
	var out []string
	for i, name := range d.df.Names() {
		if d.types[i] == t {
			out = append(out, name)
		}
	}
	return out
}

func (d *Dataset) NumericColumns() []string {
	return d.ColumnsOfType(models.Numeric)
}

func (d *Dataset) col(name string) (series.Series, error) {
	if d.index(name) < 0 {
		return series.Series{}, fmt.Errorf("unknown column %q", name)
	}
	s := d.df.Col(name)
	if s.Err != nil {
		return series.Series{}, s.Err
	}
	return s, nil
}

// Missing reports, per row, whether the column's cell is missing.
func (d *Dataset) Missing(name string) ([]bool, error) {
	s, err := d.col(name)
	if err != nil {
		return nil, err
	}
	return s.IsNaN(), nil
}

// Floats returns a numeric column with NaN in place of missing cells.
func (d *Dataset) Floats(name string) ([]float64, error) {
	s, err := d.col(name)
	if err != nil {
		return nil, err
	}
	if t, _ := d.Type(name); t != models.Numeric {
		return nil, fmt.Errorf("column %q is %s", name, t)
	}
	values := s.Float()
	for i, na := range s.IsNaN() {
		if na {
			values[i] = nan
		}
	}
	return values, nil
}

// Labels returns any column as display text; numbers use their shortest form.
// The second slice marks missing cells, whose label is "NaN".
func (d *Dataset) Labels(name string) ([]string, []bool, error) {
	s, err := d.col(name)
	if err != nil {
		return nil, nil, err
	}
	missing := s.IsNaN()
	labels := make([]string, s.Len())
	t, _ := d.Type(name)
	if t == models.Numeric {
		for i, v := range s.Float() {
			labels[i] = FormatNumber(v)
		}
	} else {
		copy(labels, s.Records())
	}
	for i, na := range missing {
		if na {
			labels[i] = "NaN"
		}
	}
	return labels, missing, nil
}

func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
