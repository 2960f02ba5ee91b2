package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pivolan/go_utils"
	"github.com/pivolan/graphify/domain/models"
)

const SEPARATOR = ','

// naValue is how a missing cell is stored in the dataframe.
const naValue = "NaN"

var missingTokens = []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "None", "<nil>"}

func IsMissing(value string) bool {
	return go_utils.InArray(strings.TrimSpace(value), missingTokens)
}

func isNumber(value string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return err == nil
}

// inferType tags a column numeric when every non-missing cell parses as a number.
// A column without rows stays categorical.
func inferType(values []string) models.ColumnType {
	if len(values) == 0 {
		return models.Categorical
	}
	for _, v := range values {
		if IsMissing(v) {
			continue
		}
		if !isNumber(v) {
			return models.Categorical
		}
	}
	return models.Numeric
}

func loadFailure(name, message string, cause error) error {
	return models.NewError(models.KindLoadFailure, message, cause).WithContext("path", name)
}

// Load reads a comma-separated file with a header row. Compressed inputs
// (.gz, .zip, .lz4) are decompressed transparently.
func Load(path string) (*Dataset, error) {
	rc, err := openSource(path)
	if err != nil {
		return nil, loadFailure(path, fmt.Sprintf("cannot open %s", path), err)
	}
	defer rc.Close()

	ds, err := LoadReader(filepath.Base(path), rc)
	if err != nil {
		return nil, err
	}
	slog.Debug("dataset loaded", "path", path, "rows", ds.Nrow(), "cols", ds.Ncol())
	return ds, nil
}

// LoadReader parses an already opened table; name is only used for messages.
func LoadReader(name string, r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = SEPARATOR
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, loadFailure(name, fmt.Sprintf("%s is not a valid table", name), err)
		}
		return nil, loadFailure(name, fmt.Sprintf("cannot read %s", name), err)
	}
	if len(records) == 0 {
		return nil, loadFailure(name, fmt.Sprintf("%s is empty", name), nil)
	}
	if len(records) == 1 {
		return nil, loadFailure(name, fmt.Sprintf("%s has a header but no rows", name), nil)
	}
	for i, record := range records {
		for _, cell := range record {
			if !utf8.ValidString(cell) {
				return nil, loadFailure(name, fmt.Sprintf("%s line %d is not text", name, i+1), nil)
			}
		}
	}

	headers := normalizeHeaders(records[0])
	rows := records[1:]

	types := make([]models.ColumnType, len(headers))
	gotaTypes := make(map[string]series.Type, len(headers))
	column := make([]string, len(rows))
	for c, header := range headers {
		for r, row := range rows {
			column[r] = row[c]
		}
		types[c] = inferType(column)
		if types[c] == models.Numeric {
			gotaTypes[header] = series.Float
		} else {
			gotaTypes[header] = series.String
		}
	}

	table := make([][]string, 0, len(records))
	table = append(table, headers)
	for _, row := range rows {
		cells := make([]string, len(row))
		for c, v := range row {
			switch {
			case IsMissing(v):
				cells[c] = naValue
			case types[c] == models.Numeric:
				cells[c] = strings.TrimSpace(v)
			default:
				cells[c] = v
			}
		}
		table = append(table, cells)
	}

	df := dataframe.LoadRecords(table,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(gotaTypes),
		dataframe.NaNValues([]string{naValue}),
	)
	if df.Err != nil {
		return nil, loadFailure(name, fmt.Sprintf("cannot build table from %s", name), df.Err)
	}

	return &Dataset{
		Name:    name,
		df:      df,
		types:   types,
		aliases: columnAliases(headers),
	}, nil
}
