package combo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotowizard/internal/adapters/combo"
	"lotowizard/internal/domain"
)

func TestLexicographic_Total(t *testing.T) {
	src := combo.NewLexicographic()
	assert.Equal(t, 3_268_760, src.Total())
}

func TestLexicographic_FirstPage(t *testing.T) {
	src := combo.NewLexicographic()
	page, err := src.Page(context.Background(), 0, 3)
	require.NoError(t, err)
	require.Len(t, page, 3)

	assert.Equal(t, domain.Game{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, page[0])
	assert.Equal(t, domain.Game{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 16}, page[1])
	assert.Equal(t, domain.Game{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 17}, page[2])
}

func TestLexicographic_LastPageEndsAtTop(t *testing.T) {
	src := combo.NewLexicographic()

	// 3.268.760 = 3268 páginas de 1000 + resto de 760.
	page, err := src.Page(context.Background(), 3268, 1000)
	require.NoError(t, err)
	require.Len(t, page, 760)

	ultima := domain.Game{11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25}
	assert.Equal(t, ultima, page[len(page)-1])
}

func TestLexicographic_BeyondEndIsEmpty(t *testing.T) {
	src := combo.NewLexicographic()
	page, err := src.Page(context.Background(), 3269, 1000)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestLexicographic_PageSizeDoesNotChangeOrder(t *testing.T) {
	src := combo.NewLexicographic()
	ctx := context.Background()

	grande, err := src.Page(ctx, 0, 210)
	require.NoError(t, err)

	var chicas []domain.Game
	for idx := 0; len(chicas) < 210; idx++ {
		page, err := src.Page(ctx, idx, 7)
		require.NoError(t, err)
		require.NotEmpty(t, page)
		chicas = append(chicas, page...)
	}

	assert.Equal(t, grande, chicas[:210])
}

func TestLexicographic_UnrankAgreesWithWalk(t *testing.T) {
	src := combo.NewLexicographic()
	ctx := context.Background()

	// Cada página de tamaño 1 arranca desindexando su offset; compararla
	// contra una sola página grande cubre unrank en muchos offsets.
	grande, err := src.Page(ctx, 0, 200)
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		solo, err := src.Page(ctx, i, 1)
		require.NoError(t, err)
		require.Len(t, solo, 1)
		assert.Equal(t, grande[i], solo[0], "offset %d", i)
	}
}

func TestLexicographic_CancelledContext(t *testing.T) {
	src := combo.NewLexicographic()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Page(ctx, 0, 10)
	assert.ErrorIs(t, err, context.Canceled)
}
