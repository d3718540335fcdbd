package domain

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

const (
	// GameSize es la cantidad de dezenas por jogo.
	GameSize = 15
	// MaxDezena es la dezena más alta del volante (1..25).
	MaxDezena = 25
	// TotalCombinations es C(25,15): el espacio completo de jogos posibles.
	TotalCombinations = 3_268_760
)

// ErrInvalidGame indica que un conjunto de dezenas no forma un jogo válido.
var ErrInvalidGame = errors.New("invalid game")

// Game es un jogo de Lotofácil: 15 dezenas distintas en [1,25], siempre en
// orden ascendente. Al ser un array es comparable y sirve directamente como
// key de map para deduplicar.
type Game [GameSize]int

// NewGame construye un Game a partir de dezenas sueltas, en cualquier orden.
// Valida cardinalidad, rango y duplicados.
func NewGame(dezenas []int) (Game, error) {
	var g Game
	if len(dezenas) != GameSize {
		return g, fmt.Errorf("%w: got %d dezenas, want %d", ErrInvalidGame, len(dezenas), GameSize)
	}
	ordered := make([]int, GameSize)
	copy(ordered, dezenas)
	sort.Ints(ordered)
	for i, d := range ordered {
		if d < 1 || d > MaxDezena {
			return g, fmt.Errorf("%w: dezena %d out of range [1,%d]", ErrInvalidGame, d, MaxDezena)
		}
		if i > 0 && ordered[i-1] == d {
			return g, fmt.Errorf("%w: dezena %d repeated", ErrInvalidGame, d)
		}
		g[i] = d
	}
	return g, nil
}

// Mask devuelve el bitmask del jogo: bit d-1 encendido para cada dezena d.
// Con 25 dezenas entra en un uint32 y la intersección es un AND.
func (g Game) Mask() uint32 {
	var m uint32
	for _, d := range g {
		m |= 1 << uint(d-1)
	}
	return m
}

// Overlap devuelve cuántas dezenas comparte este jogo con otro.
func (g Game) Overlap(other Game) int {
	return bits.OnesCount32(g.Mask() & other.Mask())
}

// Contains devuelve true si la dezena d forma parte del jogo.
func (g Game) Contains(d int) bool {
	if d < 1 || d > MaxDezena {
		return false
	}
	return g.Mask()&(1<<uint(d-1)) != 0
}

// MaxRun devuelve la secuencia más larga de dezenas consecutivas.
// Ej.: [1 2 3 4 7 ...] -> 4.
func (g Game) MaxRun() int {
	best, run := 1, 1
	for i := 1; i < GameSize; i++ {
		if g[i] == g[i-1]+1 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	return best
}

// String formatea el jogo como "01 02 03 ... 25", el formato que usan tanto
// el archivo de jogos como los reportes.
func (g Game) String() string {
	var sb strings.Builder
	for i, d := range g {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02d", d)
	}
	return sb.String()
}
