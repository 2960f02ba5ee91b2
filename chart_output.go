package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pivolan/graphify/dataset"
	"github.com/pivolan/graphify/domain/models"
)

// chartFileName builds <kind>_<x>_<y>_<timestamp><ext>; heatmaps have no axes in the name.
func chartFileName(req models.ChartRequest, ext string, now time.Time) string {
	parts := []string{string(req.Kind)}
	for _, column := range []string{req.X, req.Y} {
		if alias := dataset.Alias(column); alias != "" {
			parts = append(parts, alias)
		}
	}
	parts = append(parts, now.Format("20060102-150405"))
	return strings.Join(parts, "_") + ext
}

// saveVisualization writes a rendered chart into dir and returns its path.
// A name already taken in the same second gets a numeric suffix.
func saveVisualization(dir string, req models.ChartRequest, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create output directory %s: %w", dir, err)
	}

	name := chartFileName(req, ext, time.Now())
	path := filepath.Join(dir, name)
	for i := 1; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, ext), i, ext))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("cannot write %s: %w", path, err)
	}
	return path, nil
}

func generateVizualDescription(req models.ChartRequest) string {
	switch req.Kind {
	case models.Bar:
		return fmt.Sprintf("Bar plot of the mean %s for every %s.", req.Y, req.X)
	case models.Line:
		return fmt.Sprintf("Line plot of %s against %s, sorted by %s.", req.Y, req.X, req.X)
	case models.Scatter:
		return fmt.Sprintf("Scatter plot of %s against %s.", req.Y, req.X)
	case models.Box:
		return fmt.Sprintf("Box plot of the distribution of %s for every %s.", req.Y, req.X)
	case models.Heatmap:
		return "Pearson correlation of every pair of numeric columns, from -1 (blue) to 1 (red)."
	default:
		return fmt.Sprintf("Chart of %s", req.Kind)
	}
}
