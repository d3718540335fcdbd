package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"lotowizard/internal/domain"
)

// Console implementa ports.Presenter.
type Console struct {
	out io.Writer
}

// NewConsole crea un presenter que escribe a stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleWriter crea un presenter para tests.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// Present imprime la selección como tabla ordenada por score.
func (c *Console) Present(_ context.Context, games []domain.ScoredGame) error {
	if len(games) == 0 {
		fmt.Fprintf(c.out, "[%s] nenhum jogo passou os filtros\n", time.Now().Format("15:04:05"))
		return nil
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Jogo", "Score")
	for i, sg := range games {
		table.Append(
			strconv.Itoa(i+1),
			sg.Jogo.String(),
			strconv.FormatFloat(sg.Score, 'f', 4, 64),
		)
	}
	table.Render()
	return nil
}
