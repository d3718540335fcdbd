package wizard

import (
	"container/heap"
	"sort"

	"lotowizard/internal/domain"
)

// Selector retiene los mejores N jogos vistos durante el recorrido. Es un
// min-heap acotado: la raíz siempre es el peor de los retenidos y se
// desaloja cuando aparece uno mejor, así la memoria queda en O(N) aunque
// pasen millones de candidatos.
//
// El desempate es por seq ascendente: ante scores iguales gana el jogo que
// aparece antes en la enumeración, lo que hace el resultado independiente
// del tamaño de página.
type Selector struct {
	limit int
	h     scoredHeap
}

// NewSelector crea un selector que retiene hasta limit jogos.
func NewSelector(limit int) *Selector {
	s := &Selector{limit: limit}
	if limit > 0 {
		s.h = make(scoredHeap, 0, limit)
	}
	return s
}

// Offer propone un candidato. Entra si hay lugar o si es mejor que el peor
// retenido hasta ahora.
func (s *Selector) Offer(sg domain.ScoredGame) {
	if s.limit <= 0 {
		return
	}
	if len(s.h) < s.limit {
		heap.Push(&s.h, sg)
		return
	}
	if beats(sg, s.h[0]) {
		s.h[0] = sg
		heap.Fix(&s.h, 0)
	}
}

// Len devuelve cuántos jogos hay retenidos.
func (s *Selector) Len() int {
	return len(s.h)
}

// Results devuelve los retenidos ordenados por score descendente y seq
// ascendente. No consume el selector.
func (s *Selector) Results() []domain.ScoredGame {
	out := make([]domain.ScoredGame, len(s.h))
	copy(out, s.h)
	sort.Slice(out, func(i, j int) bool {
		return beats(out[i], out[j])
	})
	return out
}

// beats devuelve true si a debe quedar por delante de b en la selección.
func beats(a, b domain.ScoredGame) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Seq < b.Seq
}

// scoredHeap es un min-heap por "calidad": la raíz es el peor retenido.
type scoredHeap []domain.ScoredGame

func (h scoredHeap) Len() int { return len(h) }

func (h scoredHeap) Less(i, j int) bool { return beats(h[j], h[i]) }

func (h scoredHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *scoredHeap) Push(x any) { *h = append(*h, x.(domain.ScoredGame)) }

func (h *scoredHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
