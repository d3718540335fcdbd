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
	"lotowizard/internal/backtest"
	"lotowizard/internal/logging"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config file")
	jogos := flag.String("jogos", "", "games file to backtest (required)")
	basePath := flag.String("base", "", "path to the historical draw base (overrides config)")
	ultimos := flag.Int("ultimos", 0, "lookback window in draws (overrides config)")
	csvPath := flag.String("csv", "", "output CSV path (required)")
	outPath := flag.String("out", "", "output TXT report path (default: csv path with .txt)")
	titulo := flag.String("titulo", "", "title for the TXT report")
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
	if *ultimos > 0 {
		cfg.Backtest.Ultimos = *ultimos
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	logging.Setup(cfg.Log)

	if *jogos == "" || *csvPath == "" {
		slog.Error("missing required flags: -jogos and -csv")
		flag.Usage()
		os.Exit(1)
	}
	txtPath := *outPath
	if txtPath == "" {
		txtPath = backtest.DefaultTXTPath(*csvPath)
	}

	slog.Info("backtest starting",
		"jogos", *jogos,
		"base", cfg.Base.Path,
		"ultimos", cfg.Backtest.Ultimos,
		"csv", *csvPath,
		"out", txtPath,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	games, err := backtest.ParseFile(*jogos)
	if err != nil {
		slog.Error("failed to parse games file", "err", err, "path", *jogos)
		os.Exit(1)
	}
	slog.Info("games parsed", "count", len(games))

	b, err := base.NewLoader().Load(ctx, cfg.Base.Path)
	if err != nil {
		slog.Error("failed to load base", "err", err, "path", cfg.Base.Path)
		os.Exit(1)
	}
	slog.Info("base loaded", "concursos", b.Len(), "ultimo", b.UltimoConcurso())

	rows := backtest.Run(games, b, cfg.Backtest.Ultimos)

	if err := backtest.WriteCSV(*csvPath, rows); err != nil {
		slog.Error("failed to write CSV", "err", err, "path", *csvPath)
		os.Exit(1)
	}
	if err := backtest.WriteTXT(txtPath, *titulo, rows, min(cfg.Backtest.Ultimos, b.Len())); err != nil {
		slog.Error("failed to write report", "err", err, "path", txtPath)
		os.Exit(1)
	}

	backtest.FormatReport(os.Stdout, *titulo, rows, min(cfg.Backtest.Ultimos, b.Len()))
	slog.Info("backtest complete", "games", len(rows), "csv", *csvPath, "out", txtPath)
}
