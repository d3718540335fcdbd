// Package combo implementa las fuentes de jogos candidatos: la enumeración
// lexicográfica completa de C(25,15) y archivos de combinaciones curadas.
package combo

import (
	"context"

	"lotowizard/internal/domain"
)

// pascal guarda los coeficientes binomiales C(n,k) hasta n=25, lo justo
// para desindexar combinaciones del volante.
var pascal = func() [domain.MaxDezena + 1][domain.MaxDezena + 1]int {
	var p [domain.MaxDezena + 1][domain.MaxDezena + 1]int
	for n := 0; n <= domain.MaxDezena; n++ {
		p[n][0] = 1
		for k := 1; k <= n; k++ {
			p[n][k] = p[n-1][k-1] + p[n-1][k]
		}
	}
	return p
}()

// Lexicographic enumera las 3.268.760 combinaciones de 15 dezenas en orden
// lexicográfico. No guarda estado: cada página se reconstruye desindexando
// su primer jogo y avanzando de ahí, así dos recorridos con distinto tamaño
// de página ven exactamente la misma secuencia.
type Lexicographic struct{}

// NewLexicographic crea la fuente del espacio completo.
func NewLexicographic() *Lexicographic {
	return &Lexicographic{}
}

// Total devuelve C(25,15).
func (l *Lexicographic) Total() int {
	return domain.TotalCombinations
}

// Page genera la página idx con hasta size jogos.
func (l *Lexicographic) Page(ctx context.Context, idx, size int) ([]domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if idx < 0 || size <= 0 {
		return nil, nil
	}
	start := idx * size
	if start >= domain.TotalCombinations {
		return nil, nil
	}
	count := size
	if start+count > domain.TotalCombinations {
		count = domain.TotalCombinations - start
	}

	games := make([]domain.Game, 0, count)
	g := unrank(start)
	games = append(games, g)
	for i := 1; i < count; i++ {
		next(&g)
		games = append(games, g)
	}
	return games, nil
}

// unrank devuelve la combinación en la posición r (base 0) del orden
// lexicográfico, usando el sistema numérico combinatorio: en cada posición
// se descuentan los bloques de combinaciones que empiezan con dezenas
// menores hasta ubicar la correcta.
func unrank(r int) domain.Game {
	var g domain.Game
	d := 1
	for i := 0; i < domain.GameSize; i++ {
		for {
			block := pascal[domain.MaxDezena-d][domain.GameSize-i-1]
			if r < block {
				break
			}
			r -= block
			d++
		}
		g[i] = d
		d++
	}
	return g
}

// next avanza g a la siguiente combinación lexicográfica. Devuelve false
// cuando g ya es la última (11..25).
func next(g *domain.Game) bool {
	i := domain.GameSize - 1
	for i >= 0 && g[i] == domain.MaxDezena-(domain.GameSize-1-i) {
		i--
	}
	if i < 0 {
		return false
	}
	g[i]++
	for j := i + 1; j < domain.GameSize; j++ {
		g[j] = g[j-1] + 1
	}
	return true
}
