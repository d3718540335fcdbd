package ports

import (
	"context"

	"lotowizard/internal/domain"
)

// GameWriter persiste los jogos seleccionados para que el backtest (o el
// apostador) los consuma después.
type GameWriter interface {
	// WriteGames escribe los jogos en el destino configurado, uno por
	// línea en el formato "Jogo NN: 01 02 ...". Una selección vacía
	// escribe un archivo vacío, no es un error.
	WriteGames(ctx context.Context, games []domain.ScoredGame) error
}
