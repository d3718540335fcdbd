package backtest_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotowizard/internal/backtest"
	"lotowizard/internal/domain"
)

func baseOf(t *testing.T, games ...domain.Game) *domain.Base {
	t.Helper()
	draws := make([]domain.Draw, len(games))
	for i, g := range games {
		draws[i] = domain.Draw{Concurso: i + 1, Dezenas: g}
	}
	return &domain.Base{Draws: draws}
}

func TestRun_ThreeDrawWindow(t *testing.T) {
	g := game(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	a := game(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)  // 15 acertos
	b := game(t, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16) // 14 acertos
	c := game(t, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25) // 5 acertos

	rows := backtest.Run([]domain.Game{g}, baseOf(t, a, b, c), 3)

	require.Len(t, rows, 1)
	r := rows[0]
	assert.InDelta(t, (15.0+14.0+5.0)/3.0, r.Media, 1e-9)
	assert.Equal(t, 15, r.Max)
	assert.Equal(t, 5, r.Min)
	assert.Equal(t, 1, r.FaixaCount(15))
	assert.Equal(t, 1, r.FaixaCount(14))
	assert.Equal(t, 0, r.FaixaCount(11))
}

func TestRun_FaixasNeverExceedWindow(t *testing.T) {
	g := game(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	b := baseOf(t,
		game(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15),
		game(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 16),
		game(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 16, 17),
	)

	rows := backtest.Run([]domain.Game{g}, b, 3)

	total := 0
	for _, c := range rows[0].Faixas {
		total += c
	}
	assert.Equal(t, 3, total)
}

func TestRun_RanksByMediaThenMax(t *testing.T) {
	alto := game(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	bajo := game(t, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25)
	b := baseOf(t, game(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15))

	// El jogo de media más alta queda primero aunque entró último.
	rows := backtest.Run([]domain.Game{bajo, alto}, b, 1)

	require.Len(t, rows, 2)
	assert.Equal(t, alto, rows[0].Jogo)
	assert.Equal(t, bajo, rows[1].Jogo)
}

func TestRun_StableOnFullTies(t *testing.T) {
	g1 := game(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	g2 := game(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 16)
	// Contra una base disjunta ambos jogos empatan en todo: el orden de
	// parseo decide.
	b := baseOf(t, game(t, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25))

	rows := backtest.Run([]domain.Game{g2, g1}, b, 1)

	require.Len(t, rows, 2)
	assert.Equal(t, g2, rows[0].Jogo)
	assert.Equal(t, g1, rows[1].Jogo)
}

func TestRun_ClampsWindowToBase(t *testing.T) {
	g := game(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	b := baseOf(t, game(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15))

	rows := backtest.Run([]domain.Game{g}, b, 100)

	require.Len(t, rows, 1)
	assert.Equal(t, 15.0, rows[0].Media)
	assert.Equal(t, 15, rows[0].Min)
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	g := game(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	b := baseOf(t, game(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15))
	rows := backtest.Run([]domain.Game{g}, b, 1)

	path := filepath.Join(t.TempDir(), "out", "backtest.csv")
	require.NoError(t, backtest.WriteCSV(path, rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "jogo", records[0][0])
	assert.Equal(t, g.String(), records[1][0])
	assert.Equal(t, "15.00", records[1][1])
	assert.Equal(t, "1", records[1][8]) // faixa 15
}

func TestFormatReport_EmptyRows(t *testing.T) {
	var buf bytes.Buffer

	backtest.FormatReport(&buf, "", nil, 20)

	assert.Contains(t, buf.String(), "Nenhum jogo para reportar.")
}

func TestDefaultTXTPath(t *testing.T) {
	assert.Equal(t, "outputs/backtest_x.txt", backtest.DefaultTXTPath("outputs/backtest_x.csv"))
}
