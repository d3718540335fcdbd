package ports

import (
	"context"

	"lotowizard/internal/domain"
)

// ComboSource entrega el espacio de jogos candidatos en páginas, para que
// el wizard pueda recorrer los millones de combinaciones sin materializar
// todo en memoria.
type ComboSource interface {
	// Total devuelve cuántos jogos produce la fuente en total.
	Total() int

	// Page devuelve la página idx (base 0) con hasta size jogos, en el
	// orden estable de la fuente. El seq global del jogo j de la página
	// es idx*size + j. La última página puede venir corta; una página
	// más allá del final viene vacía.
	Page(ctx context.Context, idx, size int) ([]domain.Game, error)
}
