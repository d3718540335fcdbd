package ports

import (
	"context"

	"lotowizard/internal/domain"
)

// Presenter muestra la selección final al usuario.
type Presenter interface {
	// Present imprime los jogos ordenados por score.
	// En la implementación de consola, imprime una tabla formateada.
	Present(ctx context.Context, games []domain.ScoredGame) error
}
