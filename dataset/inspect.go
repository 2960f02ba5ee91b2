package dataset

import (
	"github.com/pivolan/graphify/domain/models"
)

// Inspect returns the shape of d, the type and missing count of every column,
// and describe-style statistics.
func Inspect(d *Dataset) (models.Summary, error) {
	summary := models.Summary{
		Rows:    d.Nrow(),
		Cols:    d.Ncol(),
		Columns: make([]models.ColumnSummary, 0, d.Ncol()),
	}

	for _, info := range d.Columns() {
		cs := models.ColumnSummary{Name: info.Name, Type: info.Type}

		if info.Type == models.Numeric {
			values, err := d.Floats(info.Name)
			if err != nil {
				return summary, err
			}
			present := Present(values)
			cs.Missing = len(values) - len(present)
			cs.Count = len(present)
			cs.Mean = Mean(present)
			cs.Std = StdDev(present)
			cs.Min, cs.Max = MinMax(present)
			cs.Median = Median(present)
		} else {
			labels, missing, err := d.Labels(info.Name)
			if err != nil {
				return summary, err
			}
			counts := map[string]int{}
			for i, label := range labels {
				if missing[i] {
					cs.Missing++
					continue
				}
				cs.Count++
				counts[label]++
				// on a tie the value that reached the count first wins
				if counts[label] > cs.TopCount {
					cs.Top = label
					cs.TopCount = counts[label]
				}
			}
			cs.Unique = len(counts)
		}

		summary.Columns = append(summary.Columns, cs)
	}
	return summary, nil
}

// Preview returns the header and the first n rows as display text.
// n <= 0 returns every row.
func Preview(d *Dataset, n int) ([]string, [][]string, error) {
	rows := d.Nrow()
	if n > 0 && n < rows {
		rows = n
	}

	names := d.Names()
	out := make([][]string, rows)
	for i := range out {
		out[i] = make([]string, len(names))
	}
	for c, name := range names {
		labels, _, err := d.Labels(name)
		if err != nil {
			return nil, nil, err
		}
		for r := 0; r < rows; r++ {
			out[r][c] = labels[r]
		}
	}
	return names, out, nil
}
