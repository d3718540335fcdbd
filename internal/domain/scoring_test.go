package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- DezenaWeight / FreqScore ---

func TestDezenaWeight_SmoothedOnEmptyStats(t *testing.T) {
	var s Stats
	// Sin historia todas las dezenas pesan igual: (0+1)/(0+25) en ambas mezclas.
	assert.InDelta(t, 1.0/25.0, DezenaWeight(s, 1), 1e-9)
	assert.InDelta(t, DezenaWeight(s, 1), DezenaWeight(s, 25), 1e-9)
}

func TestDezenaWeight_PrefersFrequent(t *testing.T) {
	s := ComputeStats(testBase(t), 2)
	// La 16 salió dos veces en la ventana, la 25 una sola.
	assert.Greater(t, DezenaWeight(s, 16), DezenaWeight(s, 25))
}

func TestFreqScore_SumsGameWeights(t *testing.T) {
	var s Stats
	g := mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	assert.InDelta(t, 15.0/25.0, FreqScore(g, s), 1e-9)
}

// --- AtrasoScore ---

func TestAtrasoScore_ZeroWithoutHistory(t *testing.T) {
	var s Stats
	g := mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	assert.Equal(t, 0.0, AtrasoScore(g, s))
}

func TestAtrasoScore_Fraction(t *testing.T) {
	b := &Base{Draws: []Draw{
		{Concurso: 1, Dezenas: mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)},
	}}
	s := ComputeStats(b, 1)

	// Todo el atraso está en 16..25 (1 cada una, suma 10).
	quentes := mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	assert.Equal(t, 0.0, AtrasoScore(quentes, s))

	atrasadas := mustGame(t, 1, 2, 3, 4, 5, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25)
	assert.InDelta(t, 1.0, AtrasoScore(atrasadas, s), 1e-9)
}

// --- Equilibrios ---

func TestEquilibrioParidade(t *testing.T) {
	// 1..15: 7 pares y 8 impares, el reparto más parejo posible.
	equilibrado := mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	assert.InDelta(t, 1.0-1.0/15.0, EquilibrioParidade(equilibrado), 1e-9)

	// 13 impares y 2 pares.
	cargado := mustGame(t, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 2, 4)
	assert.InDelta(t, 1.0-11.0/15.0, EquilibrioParidade(cargado), 1e-9)
}

func TestEquilibrioBaixosAltos(t *testing.T) {
	// 1..15: 13 baixas (<=13) contra 2 altas.
	baixo := mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	assert.InDelta(t, 1.0-11.0/15.0, EquilibrioBaixosAltos(baixo), 1e-9)

	// 7 baixas contra 8 altas.
	parejo := mustGame(t, 1, 2, 3, 4, 5, 6, 7, 14, 15, 16, 17, 18, 19, 20, 21)
	assert.InDelta(t, 1.0-1.0/15.0, EquilibrioBaixosAltos(parejo), 1e-9)
}

// --- CoberturaFaixas ---

func TestCoberturaFaixas_Perfect(t *testing.T) {
	g := mustGame(t, 1, 2, 3, 6, 7, 8, 11, 12, 13, 16, 17, 18, 21, 22, 23)
	assert.InDelta(t, 1.0, CoberturaFaixas(g), 1e-9)
}

func TestCoberturaFaixas_Stacked(t *testing.T) {
	// 1..15 llena tres faixas y deja dos vacías: el peor caso.
	g := mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	assert.InDelta(t, 0.0, CoberturaFaixas(g), 1e-9)
}

// --- SeparacaoModo ---

func hotStats() Stats {
	var s Stats
	for d := 1; d <= GameSize; d++ {
		s.FreqRecente[d] = 2
	}
	s.SumRecente = 30
	return s
}

func TestSeparacaoModo_AgressivoRewardsHot(t *testing.T) {
	s := hotStats()
	quente := Game{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	// mediaJogo=2.0, media=1.2 -> delta = 0.8/1.2
	delta := (2.0 - 1.2) / 1.2
	assert.InDelta(t, delta, SeparacaoModo(quente, s, ModeAgressivo), 1e-9)
	assert.InDelta(t, -delta, SeparacaoModo(quente, s, ModeConservador), 1e-9)
}

func TestSeparacaoModo_ColdGame(t *testing.T) {
	s := hotStats()
	frio := Game{11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25}

	// Solo 11..15 tienen frecuencia: mediaJogo = 10/15.
	delta := (10.0/15.0 - 1.2) / 1.2
	assert.InDelta(t, delta, SeparacaoModo(frio, s, ModeAgressivo), 1e-9)
	assert.InDelta(t, delta, SeparacaoModo(frio, s, ModeConservador), 1e-9) // ya es negativo
}

func TestSeparacaoModo_NoHistory(t *testing.T) {
	var s Stats
	g := Game{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	assert.Equal(t, 0.0, SeparacaoModo(g, s, ModeAgressivo))
}

// --- ScoreGame ---

func TestScoreGame_Deterministic(t *testing.T) {
	s := ComputeStats(testBase(t), 2)
	g := mustGame(t, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 2, 24)

	assert.Equal(t, ScoreGame(g, s, ModeConservador), ScoreGame(g, s, ModeConservador))
	assert.Equal(t, ScoreGame(g, s, ModeAgressivo), ScoreGame(g, s, ModeAgressivo))
}

func TestScoreGame_ModeSeparatesHotGames(t *testing.T) {
	s := hotStats()
	quente := Game{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	assert.Greater(t, ScoreGame(quente, s, ModeAgressivo), ScoreGame(quente, s, ModeConservador))
}

func TestScoreGame_PrefersBalancedCoverage(t *testing.T) {
	var s Stats // sin historia: solo pesan los equilibrios
	repartido := mustGame(t, 1, 2, 3, 6, 7, 8, 11, 12, 13, 16, 17, 18, 21, 22, 23)
	apilado := mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)

	assert.Greater(t, ScoreGame(repartido, s, ModeConservador), ScoreGame(apilado, s, ModeConservador))
}
