package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	OutputDir    string
	PreviewRows  int
	ChartWidth   int
	ChartHeight  int
	DefaultColor string
	LogLevel     slog.Level
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the process-wide configuration, loading it on first use.
func GetConfig() *Config {
	once.Do(func() {
		config = Load()
	})
	return config
}

// Load reads the given .env files (".env" when none are given) and then the
// process environment. A missing .env file is not an error.
func Load(files ...string) *Config {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		slog.Warn("cannot read .env file", "error", err)
	}

	return &Config{
		OutputDir:    getString("GRAPHIFY_OUTPUT_DIR", "charts"),
		PreviewRows:  getInt("GRAPHIFY_PREVIEW_ROWS", 20),
		ChartWidth:   getInt("GRAPHIFY_CHART_WIDTH", 800),
		ChartHeight:  getInt("GRAPHIFY_CHART_HEIGHT", 600),
		DefaultColor: getString("GRAPHIFY_DEFAULT_COLOR", "blue"),
		LogLevel:     getLevel("GRAPHIFY_LOG_LEVEL", slog.LevelInfo),
	}
}

func getString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid setting", "key", key, "value", v)
		return def
	}
	return n
}

func getLevel(key string, def slog.Level) slog.Level {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		slog.Warn("ignoring invalid log level", "key", key, "value", v)
		return def
	}
	return level
}
