package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"lotowizard/config"
	"lotowizard/internal/adapters/base"
	"lotowizard/internal/analysis"
	"lotowizard/internal/logging"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config file")
	basePath := flag.String("base", "", "path to the historical draw base (overrides config)")
	ultimos := flag.Int("ultimos", 200, "how many recent draws to analyze")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}
	if *basePath != "" {
		cfg.Base.Path = *basePath
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	logging.Setup(cfg.Log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	b, err := base.NewLoader().Load(ctx, cfg.Base.Path)
	if err != nil {
		slog.Error("failed to load base", "err", err, "path", cfg.Base.Path)
		os.Exit(1)
	}

	s, err := analysis.Analyze(b, *ultimos)
	if err != nil {
		slog.Error("analysis failed", "err", err)
		os.Exit(1)
	}

	analysis.Report(os.Stdout, s)
}
