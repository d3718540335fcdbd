package domain

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGame(t *testing.T, dezenas ...int) Game {
	t.Helper()
	g, err := NewGame(dezenas)
	require.NoError(t, err)
	return g
}

// --- NewGame ---

func TestNewGame_OrdersInput(t *testing.T) {
	g, err := NewGame([]int{15, 3, 9, 1, 25, 7, 11, 2, 20, 5, 13, 18, 22, 4, 6})
	require.NoError(t, err)
	assert.Equal(t, Game{1, 2, 3, 4, 5, 6, 7, 9, 11, 13, 15, 18, 20, 22, 25}, g)
}

func TestNewGame_WrongCount(t *testing.T) {
	_, err := NewGame([]int{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidGame)
}

func TestNewGame_OutOfRange(t *testing.T) {
	_, err := NewGame([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 26})
	assert.ErrorIs(t, err, ErrInvalidGame)

	_, err = NewGame([]int{0, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	assert.ErrorIs(t, err, ErrInvalidGame)
}

func TestNewGame_Duplicated(t *testing.T) {
	_, err := NewGame([]int{1, 1, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	assert.ErrorIs(t, err, ErrInvalidGame)
}

// --- Overlap / Mask ---

func TestGame_Overlap_Itself(t *testing.T) {
	g := mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	assert.Equal(t, GameSize, g.Overlap(g))
}

func TestGame_Overlap_FourteenShared(t *testing.T) {
	a := mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	b := mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 16)
	assert.Equal(t, 14, a.Overlap(b))
	assert.Equal(t, 14, b.Overlap(a))
}

func TestGame_Overlap_Disjoint(t *testing.T) {
	a := mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	b := mustGame(t, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25)
	assert.Equal(t, 5, a.Overlap(b))
}

func TestGame_Mask(t *testing.T) {
	g := mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	assert.Equal(t, GameSize, bits.OnesCount32(g.Mask()))
	assert.NotZero(t, g.Mask()&1) // dezena 1 = bit 0
}

func TestGame_Contains(t *testing.T) {
	g := mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 25)
	assert.True(t, g.Contains(25))
	assert.False(t, g.Contains(15))
	assert.False(t, g.Contains(0))
	assert.False(t, g.Contains(26))
}

// --- MaxRun ---

func TestGame_MaxRun_FullSequence(t *testing.T) {
	g := mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	assert.Equal(t, 15, g.MaxRun())
}

func TestGame_MaxRun_Short(t *testing.T) {
	g := mustGame(t, 1, 2, 3, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 25)
	assert.Equal(t, 4, g.MaxRun())
}

func TestGame_MaxRun_AllPairs(t *testing.T) {
	g := mustGame(t, 1, 2, 4, 5, 7, 8, 10, 11, 13, 14, 16, 17, 19, 20, 22)
	assert.Equal(t, 2, g.MaxRun())
}

// --- String ---

func TestGame_String_ZeroPadded(t *testing.T) {
	g := mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	assert.Equal(t, "01 02 03 04 05 06 07 08 09 10 11 12 13 14 15", g.String())
}

// --- Base ---

func testBase(t *testing.T) *Base {
	t.Helper()
	return &Base{Draws: []Draw{
		{Concurso: 1, Dezenas: mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)},
		{Concurso: 2, Dezenas: mustGame(t, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25)},
		{Concurso: 3, Dezenas: mustGame(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 16, 17, 18, 19, 20)},
	}}
}

func TestBase_Ultimos_Window(t *testing.T) {
	b := testBase(t)
	janela := b.Ultimos(2)
	require.Len(t, janela, 2)
	assert.Equal(t, 2, janela[0].Concurso)
	assert.Equal(t, 3, janela[1].Concurso)
}

func TestBase_Ultimos_ClampedToBase(t *testing.T) {
	b := testBase(t)
	assert.Len(t, b.Ultimos(50), 3)
}

func TestBase_Ultimos_NonPositive(t *testing.T) {
	b := testBase(t)
	assert.Nil(t, b.Ultimos(0))
	assert.Nil(t, b.Ultimos(-1))
}

func TestBase_UltimoConcurso(t *testing.T) {
	b := testBase(t)
	assert.Equal(t, 3, b.UltimoConcurso())
	assert.Equal(t, 0, (&Base{}).UltimoConcurso())
}
