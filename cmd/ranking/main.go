package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"lotowizard/config"
	"lotowizard/internal/logging"
	"lotowizard/internal/ranking"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config file")
	dir := flag.String("dir", "", "directory with backtest_*.csv files (overrides config)")
	top := flag.Int("top", 0, "how many games in the TXT ranking (overrides config)")
	alertas := flag.String("alertas", "", "optional alerts output file")
	minAcertos := flag.Int("min-acertos", 0, "alert threshold on max_acertos (overrides config)")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}
	if *dir != "" {
		cfg.Ranking.Dir = *dir
	}
	if *top > 0 {
		cfg.Ranking.Top = *top
	}
	if *minAcertos > 0 {
		cfg.Ranking.MinAcertos = *minAcertos
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	logging.Setup(cfg.Log)

	entries, err := ranking.Collect(cfg.Ranking.Dir)
	if err != nil {
		slog.Error("failed to collect backtest files", "err", err, "dir", cfg.Ranking.Dir)
		os.Exit(1)
	}
	ranked := ranking.Rank(entries)

	csvPath := filepath.Join(cfg.Ranking.Dir, "ranking_acumulado.csv")
	txtPath := filepath.Join(cfg.Ranking.Dir, "ranking_acumulado.txt")
	if err := ranking.WriteCSV(csvPath, ranked); err != nil {
		slog.Error("failed to write ranking CSV", "err", err, "path", csvPath)
		os.Exit(1)
	}
	if err := ranking.WriteTop(txtPath, ranked, cfg.Ranking.Top); err != nil {
		slog.Error("failed to write ranking TXT", "err", err, "path", txtPath)
		os.Exit(1)
	}
	slog.Info("ranking written", "entries", len(ranked), "csv", csvPath, "txt", txtPath)

	if *alertas != "" {
		hot := ranking.Alerts(entries, cfg.Ranking.MinAcertos)
		if err := ranking.WriteAlerts(*alertas, hot, cfg.Ranking.MinAcertos); err != nil {
			slog.Error("failed to write alerts", "err", err, "path", *alertas)
			os.Exit(1)
		}
		slog.Info("alerts written", "alerts", len(hot), "path", *alertas, "min_acertos", cfg.Ranking.MinAcertos)
	}
}
