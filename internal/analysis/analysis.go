// Package analysis calcula las estadísticas estructurales de la base
// histórica: distribución de soma, paridad, secuencias, repetición contra
// el concurso anterior y ocupación del volante 5x5. Sirve para calibrar a
// ojo los umbrales del filtro del wizard.
package analysis

import (
	"fmt"
	"sort"

	"lotowizard/internal/domain"
)

// Distribution resume una métrica por concurso con sus percentiles.
type Distribution struct {
	Min     int
	P5      int
	Mediana int
	P95     int
	Max     int
}

// cardSize es el lado del volante: las 25 dezenas se imprimen en una
// grilla de 5x5, dezena 1 arriba a la izquierda.
const cardSize = 5

// Summary es el resultado del análisis sobre la ventana pedida.
type Summary struct {
	// Janela es cuántos concursos entraron de verdad al análisis.
	Janela int
	// UltimoConcurso es el concurso más reciente analizado.
	UltimoConcurso int

	Soma      Distribution // suma de las 15 dezenas
	Impares   Distribution // cantidad de dezenas impares
	MaxSeq    Distribution // secuencia más larga de consecutivas
	Repetidas Distribution // dezenas compartidas con el concurso anterior

	// RepHist cuenta concursos por cantidad de dezenas repetidas contra
	// el anterior, indexado 0..15.
	RepHist [domain.GameSize + 1]int

	// Linhas y Colunas son la media de dezenas por fila y columna del
	// volante 5x5. En una base pareja rondan 3.
	Linhas  [cardSize]float64
	Colunas [cardSize]float64
}

// Analyze corre el análisis sobre los ultimos concursos de la base. La
// ventana se recorta a lo disponible; una base vacía es error.
func Analyze(base *domain.Base, ultimos int) (Summary, error) {
	if base.Len() == 0 {
		return Summary{}, fmt.Errorf("analysis.Analyze: %w", domain.ErrEmptyBase)
	}
	janela := base.Ultimos(ultimos)

	var (
		somas, impares, seqs, reps []int
		linhas, colunas            [cardSize]int
	)

	// offset del primer concurso de la ventana dentro de la base, para
	// poder comparar contra el concurso inmediatamente anterior aunque
	// quede fuera de la ventana.
	offset := base.Len() - len(janela)
	for i, d := range janela {
		var soma, odd int
		for _, dz := range d.Dezenas {
			soma += dz
			if dz%2 == 1 {
				odd++
			}
			linhas[(dz-1)/cardSize]++
			colunas[(dz-1)%cardSize]++
		}
		somas = append(somas, soma)
		impares = append(impares, odd)
		seqs = append(seqs, d.Dezenas.MaxRun())

		if prev := offset + i - 1; prev >= 0 {
			reps = append(reps, d.Dezenas.Overlap(base.Draws[prev].Dezenas))
		}
	}

	s := Summary{
		Janela:         len(janela),
		UltimoConcurso: base.UltimoConcurso(),
		Soma:           distribution(somas),
		Impares:        distribution(impares),
		MaxSeq:         distribution(seqs),
		Repetidas:      distribution(reps),
	}
	for _, r := range reps {
		s.RepHist[r]++
	}
	for i := range linhas {
		s.Linhas[i] = float64(linhas[i]) / float64(len(janela))
		s.Colunas[i] = float64(colunas[i]) / float64(len(janela))
	}
	return s, nil
}

// distribution ordena los valores y saca min, p5, mediana, p95 y max.
func distribution(vals []int) Distribution {
	if len(vals) == 0 {
		return Distribution{}
	}
	sorted := make([]int, len(vals))
	copy(sorted, vals)
	sort.Ints(sorted)
	return Distribution{
		Min:     sorted[0],
		P5:      percentile(sorted, 5),
		Mediana: percentile(sorted, 50),
		P95:     percentile(sorted, 95),
		Max:     sorted[len(sorted)-1],
	}
}

// percentile toma el percentil p por rango más cercano sobre un slice ya
// ordenado.
func percentile(sorted []int, p int) int {
	idx := (p*(len(sorted)-1) + 50) / 100
	return sorted[idx]
}
