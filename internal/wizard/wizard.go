package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"lotowizard/internal/domain"
	"lotowizard/internal/ports"
)

const defaultPageSize = 50_000

// Config contiene la configuración del wizard.
type Config struct {
	Filter FilterConfig
	// Finais es cuántos jogos entrega la selección final.
	Finais int
	// PageSize acota cuántos candidatos se materializan por vez. No cambia
	// el resultado, solo el pico de memoria.
	PageSize int
}

// DefaultConfig devuelve una configuración sensata.
func DefaultConfig() Config {
	return Config{
		Filter:   DefaultFilterConfig(),
		Finais:   5,
		PageSize: defaultPageSize,
	}
}

// Wizard es el orquestador de la selección: recorre la fuente de
// combinaciones una sola vez, filtra, puntúa y retiene los mejores.
type Wizard struct {
	cfg       Config
	combos    ports.ComboSource
	writer    ports.GameWriter
	presenter ports.Presenter
	progress  *rate.Limiter // acota el log de progreso del recorrido
}

// New crea un Wizard con todas las dependencias inyectadas. El writer y el
// presenter pueden ser nil si no se quiere ese efecto.
func New(cfg Config, combos ports.ComboSource, writer ports.GameWriter, presenter ports.Presenter) *Wizard {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	return &Wizard{
		cfg:       cfg,
		combos:    combos,
		writer:    writer,
		presenter: presenter,
		progress:  rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// Run ejecuta la selección completa y entrega el resultado: presenta los
// jogos en consola y los persiste con el writer. Una selección vacía no es
// un error; se escribe igual (archivo vacío) para que el run sea
// reproducible.
func (w *Wizard) Run(ctx context.Context, base *domain.Base) ([]domain.ScoredGame, error) {
	start := time.Now()

	jogos, err := w.Select(ctx, base)
	if err != nil {
		return nil, err
	}

	if w.presenter != nil {
		if err := w.presenter.Present(ctx, jogos); err != nil {
			slog.Warn("presenter error", "err", err)
		}
	}
	if w.writer != nil {
		if err := w.writer.WriteGames(ctx, jogos); err != nil {
			return nil, fmt.Errorf("wizard.Run: write games: %w", err)
		}
	}

	slog.Info("selection complete",
		"games", len(jogos),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return jogos, nil
}

// Select hace el recorrido puro: filtrar, puntuar y retener. No tiene
// efectos aparte del log de progreso, y con los mismos insumos produce
// siempre la misma selección.
func (w *Wizard) Select(ctx context.Context, base *domain.Base) ([]domain.ScoredGame, error) {
	ultimos := w.cfg.Filter.Ultimos
	if ultimos > base.Len() {
		slog.Warn("lookback window larger than base, clamping",
			"ultimos", ultimos,
			"concursos", base.Len(),
		)
		ultimos = base.Len()
	}

	stats := domain.ComputeStats(base, ultimos)
	filter := NewFilter(w.cfg.Filter, base.Ultimos(ultimos))
	sel := NewSelector(w.cfg.Finais)

	slog.Info("scan starting",
		"mode", w.cfg.Filter.Modo,
		"candidates", w.combos.Total(),
		"window", ultimos,
		"max_repetidas", filter.MaxRepetidas(),
		"finais", w.cfg.Finais,
	)

	avaliados, aprovados := 0, 0
	for idx := 0; ; idx++ {
		page, err := w.combos.Page(ctx, idx, w.cfg.PageSize)
		if err != nil {
			return nil, fmt.Errorf("wizard.Select: page %d: %w", idx, err)
		}
		if len(page) == 0 {
			break
		}
		seqBase := idx * w.cfg.PageSize
		for i, g := range page {
			avaliados++
			if !filter.Accepts(g) {
				continue
			}
			score := domain.ScoreGame(g, stats, w.cfg.Filter.Modo)
			if !filter.AcceptsScore(score) {
				continue
			}
			aprovados++
			sel.Offer(domain.ScoredGame{Jogo: g, Score: score, Seq: seqBase + i})
		}
		if w.progress.Allow() {
			slog.Info("scan progress",
				"page", idx,
				"evaluated", avaliados,
				"approved", aprovados,
				"total", w.combos.Total(),
			)
		}
	}

	slog.Info("scan finished",
		"evaluated", avaliados,
		"approved", aprovados,
		"retained", sel.Len(),
	)
	return sel.Results(), nil
}
