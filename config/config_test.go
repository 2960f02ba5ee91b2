package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"GRAPHIFY_OUTPUT_DIR", "GRAPHIFY_PREVIEW_ROWS", "GRAPHIFY_CHART_WIDTH",
		"GRAPHIFY_CHART_HEIGHT", "GRAPHIFY_DEFAULT_COLOR", "GRAPHIFY_LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "charts", cfg.OutputDir)
	assert.Equal(t, 20, cfg.PreviewRows)
	assert.Equal(t, 800, cfg.ChartWidth)
	assert.Equal(t, 600, cfg.ChartHeight)
	assert.Equal(t, "blue", cfg.DefaultColor)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFromEnvFile(t *testing.T) {
	t.Setenv("GRAPHIFY_OUTPUT_DIR", "")
	t.Setenv("GRAPHIFY_LOG_LEVEL", "")
	t.Setenv("GRAPHIFY_PREVIEW_ROWS", "not-a-number")
	t.Setenv("GRAPHIFY_DEFAULT_COLOR", "red")
	// godotenv never overrides variables that are already set, so unset the ones the file provides
	require.NoError(t, os.Unsetenv("GRAPHIFY_OUTPUT_DIR"))
	require.NoError(t, os.Unsetenv("GRAPHIFY_LOG_LEVEL"))

	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("GRAPHIFY_OUTPUT_DIR=out\nGRAPHIFY_LOG_LEVEL=debug\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("GRAPHIFY_OUTPUT_DIR")
		os.Unsetenv("GRAPHIFY_LOG_LEVEL")
	})

	cfg := Load(envFile)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 20, cfg.PreviewRows)
	assert.Equal(t, "red", cfg.DefaultColor)
}
