package main

import (
	"log/slog"
	"os"

	"github.com/pivolan/graphify/config"
	"github.com/pivolan/graphify/session"
)

func main() {
	cfg := config.GetConfig()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	s := session.New()
	ctrl := session.NewController(s, newRenderer(cfg))
	slog.Info("started", "session", s.ID, "output_dir", cfg.OutputDir)

	if err := NewConsole(ctrl, cfg, os.Stdout).Run(os.Stdin); err != nil {
		slog.Error("cannot read commands", "error", err)
		os.Exit(1)
	}
}
