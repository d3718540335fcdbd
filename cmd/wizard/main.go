package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"

	"lotowizard/config"
	"lotowizard/internal/adapters/base"
	"lotowizard/internal/adapters/combo"
	"lotowizard/internal/adapters/report"
	"lotowizard/internal/domain"
	"lotowizard/internal/logging"
	"lotowizard/internal/ports"
	"lotowizard/internal/wizard"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config file")
	modo := flag.String("modo", "", "selection mode: conservador|agressivo (overrides config)")
	ultimos := flag.Int("ultimos", 0, "lookback window in draws (overrides config)")
	finais := flag.Int("finais", 0, "how many games to select (overrides config)")
	basePath := flag.String("base", "", "path to the historical draw base (overrides config)")
	saida := flag.String("saida", "", "output games file (default outputs/jogos_<modo>.txt)")
	combinacoes := flag.String("combinacoes", "", "optional curated combinations file (default: full C(25,15) space)")
	pagina := flag.Int("pagina", 0, "candidates per page (overrides config)")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}
	if *modo != "" {
		cfg.Wizard.Modo = *modo
	}
	if *ultimos > 0 {
		cfg.Wizard.Ultimos = *ultimos
	}
	if *finais != 0 {
		cfg.Wizard.Finais = *finais
	}
	if *basePath != "" {
		cfg.Base.Path = *basePath
	}
	if *saida != "" {
		cfg.Wizard.Saida = *saida
	}
	if *pagina > 0 {
		cfg.Wizard.Pagina = *pagina
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	logging.Setup(cfg.Log)

	m, err := domain.ParseMode(cfg.Wizard.Modo)
	if err != nil {
		slog.Error("invalid mode", "err", err)
		os.Exit(1)
	}
	if cfg.Wizard.Finais <= 0 {
		slog.Error("finais must be positive", "finais", cfg.Wizard.Finais)
		os.Exit(1)
	}
	if cfg.Wizard.Saida == "" {
		cfg.Wizard.Saida = filepath.Join("outputs", fmt.Sprintf("jogos_%s.txt", m))
	}

	runID := uuid.New()
	slog.Info("wizard starting",
		"run_id", runID,
		"config", *configPath,
		"modo", m,
		"ultimos", cfg.Wizard.Ultimos,
		"finais", cfg.Wizard.Finais,
		"base", cfg.Base.Path,
		"saida", cfg.Wizard.Saida,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	b, err := base.NewLoader().Load(ctx, cfg.Base.Path)
	if err != nil {
		slog.Error("failed to load base", "err", err, "path", cfg.Base.Path)
		os.Exit(1)
	}
	slog.Info("base loaded", "concursos", b.Len(), "ultimo", b.UltimoConcurso())

	var combos ports.ComboSource
	if *combinacoes != "" {
		combos, err = combo.NewFileSource(*combinacoes)
		if err != nil {
			slog.Error("failed to load combinations file", "err", err, "path", *combinacoes)
			os.Exit(1)
		}
	} else {
		combos = combo.NewLexicographic()
	}

	writer := report.NewFileWriter(cfg.Wizard.Saida, report.Header{
		Modo:    m,
		Ultimos: cfg.Wizard.Ultimos,
		Finais:  cfg.Wizard.Finais,
		Base:    filepath.Base(cfg.Base.Path),
	})

	wizCfg := wizard.Config{
		Filter: wizard.FilterConfig{
			Modo:                    m,
			Ultimos:                 cfg.Wizard.Ultimos,
			MaxRepetidasConservador: cfg.Wizard.MaxRepetidasConservador,
			MaxRepetidasAgressivo:   cfg.Wizard.MaxRepetidasAgressivo,
			MaxSequencia:            cfg.Wizard.MaxSequencia,
			ScoreMinimo:             cfg.Wizard.ScoreMinimo,
		},
		Finais:   cfg.Wizard.Finais,
		PageSize: cfg.Wizard.Pagina,
	}

	w := wizard.New(wizCfg, combos, writer, report.NewConsole())
	jogos, err := w.Run(ctx, b)
	if err != nil {
		slog.Error("wizard exited with error", "err", err)
		os.Exit(1)
	}

	if len(jogos) == 0 {
		slog.Warn("no candidate survived the filters", "saida", cfg.Wizard.Saida)
		return
	}
	slog.Info("wizard finished", "run_id", runID, "games", len(jogos), "saida", cfg.Wizard.Saida)
}
