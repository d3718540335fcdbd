package backtest

import (
	"log/slog"
	"sort"

	"lotowizard/internal/domain"
)

// FaixaMin es el primer premio de la Lotofácil: 11 acertos. Las faixas de
// premio van de 11 a 15.
const FaixaMin = 11

// NumFaixas es la cantidad de faixas de premio (11, 12, 13, 14 y 15).
const NumFaixas = domain.GameSize - FaixaMin + 1

// Row es el agregado de un jogo contra la ventana de concursos: acertos
// medios, máximos y mínimos, más cuántos concursos cayeron en cada faixa.
type Row struct {
	Jogo  domain.Game
	Media float64
	Max   int
	Min   int
	// Faixas cuenta concursos por cantidad de acertos: índice 0 son 11
	// acertos, índice 4 son 15.
	Faixas [NumFaixas]int
}

// FaixaCount devuelve cuántos concursos de la ventana dieron exactamente
// `acertos` acertos, para acertos en [11,15].
func (r Row) FaixaCount(acertos int) int {
	if acertos < FaixaMin || acertos > domain.GameSize {
		return 0
	}
	return r.Faixas[acertos-FaixaMin]
}

// Run cruza cada jogo contra los ultimos concursos de la base y devuelve
// las filas ordenadas por (media, max) descendente. Empates totales
// conservan el orden de parseo. Si ultimos supera la base se recorta a lo
// disponible.
func Run(games []domain.Game, base *domain.Base, ultimos int) []Row {
	if ultimos > base.Len() {
		slog.Warn("lookback window larger than base, clamping",
			"ultimos", ultimos,
			"concursos", base.Len(),
		)
		ultimos = base.Len()
	}
	janela := base.Ultimos(ultimos)

	rows := make([]Row, 0, len(games))
	for _, g := range games {
		rows = append(rows, matchGame(g, janela))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Media != rows[j].Media {
			return rows[i].Media > rows[j].Media
		}
		return rows[i].Max > rows[j].Max
	})
	return rows
}

// matchGame computa los acertos de un jogo contra cada concurso de la
// ventana.
func matchGame(g domain.Game, janela []domain.Draw) Row {
	row := Row{Jogo: g, Min: domain.GameSize}
	if len(janela) == 0 {
		row.Min = 0
		return row
	}

	total := 0
	for _, d := range janela {
		hits := g.Overlap(d.Dezenas)
		total += hits
		if hits > row.Max {
			row.Max = hits
		}
		if hits < row.Min {
			row.Min = hits
		}
		if hits >= FaixaMin {
			row.Faixas[hits-FaixaMin]++
		}
	}
	row.Media = float64(total) / float64(len(janela))
	return row
}
