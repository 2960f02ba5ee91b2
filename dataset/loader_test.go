package dataset

import (
	"archive/zip"
	"compress/gzip"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pierrec/lz4"
	"github.com/pivolan/graphify/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const salesCSV = `city,revenue,units,Unit Price
Paris,100,1,10.5
Berlin,,2,11
Paris,300,,12
Madrid,400,4,NA
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadString(t *testing.T, content string) *Dataset {
	t.Helper()
	ds, err := LoadReader("test.csv", strings.NewReader(content))
	require.NoError(t, err)
	return ds
}

func TestLoadInfersColumnTypes(t *testing.T) {
	ds, err := Load(writeFile(t, "sales.csv", salesCSV))
	require.NoError(t, err)

	assert.Equal(t, "sales.csv", ds.Name)
	assert.Equal(t, 4, ds.Nrow())
	assert.Equal(t, 4, ds.Ncol())
	assert.Equal(t, []string{"city", "revenue", "units", "Unit Price"}, ds.Names())

	want := map[string]models.ColumnType{
		"city":       models.Categorical,
		"revenue":    models.Numeric,
		"units":      models.Numeric,
		"Unit Price": models.Numeric,
	}
	for name, typ := range want {
		got, ok := ds.Type(name)
		require.True(t, ok, name)
		assert.Equal(t, typ, got, name)
	}
	assert.Equal(t, []string{"revenue", "units", "Unit Price"}, ds.NumericColumns())
}

func TestLoadMissingCells(t *testing.T) {
	ds := loadString(t, salesCSV)

	revenue, err := ds.Floats("revenue")
	require.NoError(t, err)
	assert.Equal(t, 100.0, revenue[0])
	assert.True(t, math.IsNaN(revenue[1]), "missing cell should be NaN")

	missing, err := ds.Missing("Unit Price")
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false, true}, missing)

	_, err = ds.Floats("city")
	assert.Error(t, err)
}

func TestLoadTypeInference(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   models.ColumnType
	}{
		{"integers", []string{"1", "2", "3"}, models.Numeric},
		{"floats with gaps", []string{"1.5", "", "NA", " 2 "}, models.Numeric},
		{"negative and exponent", []string{"-1", "2e3"}, models.Numeric},
		{"text", []string{"1", "two"}, models.Categorical},
		{"all missing", []string{"", "NaN"}, models.Numeric},
		{"no rows", []string{}, models.Categorical},
		{"dates", []string{"2024-01-01", "2024-01-02"}, models.Categorical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferType(tt.values))
		})
	}
}

func TestLoadHeaders(t *testing.T) {
	ds := loadString(t, "name,name,,Город\na,b,c,1\n")

	assert.Equal(t, []string{"name", "name_1", "column_3", "Город"}, ds.Names())

	col, ok := ds.Lookup("gorod")
	assert.True(t, ok)
	assert.Equal(t, "Город", col)

	col, ok = ds.Lookup("name_1")
	assert.True(t, ok)
	assert.Equal(t, "name_1", col)

	_, ok = ds.Lookup("missing")
	assert.False(t, ok)
}

func TestLookupByAlias(t *testing.T) {
	ds := loadString(t, salesCSV)

	col, ok := ds.Lookup("unit_price")
	require.True(t, ok)
	assert.Equal(t, "Unit Price", col)

	col, ok = ds.Lookup("Unit Price")
	require.True(t, ok)
	assert.Equal(t, "Unit Price", col)
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
	}{
		{"nonexistent", filepath.Join(dir, "nope.csv")},
		{"empty", writeFile(t, "empty.csv", "")},
		{"header only", writeFile(t, "header.csv", "a,b\n")},
		{"ragged rows", writeFile(t, "ragged.csv", "a,b\n1,2\n3\n")},
		{"binary", writeFile(t, "blob.csv", "a,b\n\xff\xfe,\x00\x81\n")},
		{"broken gzip", writeFile(t, "data.csv.gz", "definitely not gzip")},
		{"directory", dir},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Load(tt.path)
			assert.Nil(t, ds)
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrLoadFailure)
		})
	}
}

func TestLoadCompressed(t *testing.T) {
	dir := t.TempDir()

	gzPath := filepath.Join(dir, "sales.csv.gz")
	f, err := os.Create(gzPath)
	require.NoError(t, err)
	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte(salesCSV))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, f.Close())

	lzPath := filepath.Join(dir, "sales.csv.lz4")
	f, err = os.Create(lzPath)
	require.NoError(t, err)
	lw := lz4.NewWriter(f)
	_, err = lw.Write([]byte(salesCSV))
	require.NoError(t, err)
	require.NoError(t, lw.Close())
	require.NoError(t, f.Close())

	zipPath := filepath.Join(dir, "sales.zip")
	f, err = os.Create(zipPath)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	small, err := zw.Create("readme.txt")
	require.NoError(t, err)
	_, err = small.Write([]byte("x"))
	require.NoError(t, err)
	big, err := zw.Create("data/sales.csv")
	require.NoError(t, err)
	_, err = big.Write([]byte(salesCSV))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	for _, path := range []string{gzPath, lzPath, zipPath} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			ds, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, 4, ds.Nrow())
			assert.Equal(t, 4, ds.Ncol())

			_, err = os.Stat(path)
			assert.NoError(t, err, "archive must stay on disk")
		})
	}
}
