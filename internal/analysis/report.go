package analysis

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Report imprime el análisis en formato legible: tabla de distribuciones,
// ocupación del volante, histograma de repetidas y el bloque de sugerencia
// para armar jogos.
func Report(w io.Writer, s Summary) {
	banner := strings.Repeat("=", 64)
	fmt.Fprintf(w, "%s\nANÁLISE DA BASE HISTÓRICA\n%s\n", banner, banner)
	fmt.Fprintf(w, "Janela: últimos %d concursos | Concurso mais recente: %d\n\n", s.Janela, s.UltimoConcurso)

	table := tablewriter.NewWriter(w)
	table.Header("Métrica", "Mín", "P5", "Mediana", "P95", "Máx")
	appendDist(table, "Soma das dezenas", s.Soma)
	appendDist(table, "Dezenas ímpares", s.Impares)
	appendDist(table, "Maior sequência", s.MaxSeq)
	appendDist(table, "Repetidas vs anterior", s.Repetidas)
	table.Render()

	fmt.Fprintln(w, "\nVolante 5x5 (média de dezenas por concurso):")
	grid := tablewriter.NewWriter(w)
	grid.Header("", "1", "2", "3", "4", "5")
	appendMeans(grid, "Linhas", s.Linhas)
	appendMeans(grid, "Colunas", s.Colunas)
	grid.Render()

	fmt.Fprintln(w, "\nRepetidas contra o concurso anterior:")
	for rep, count := range s.RepHist {
		if count == 0 {
			continue
		}
		fmt.Fprintf(w, "  %2d repetidas: %3d concursos %s\n", rep, count, strings.Repeat("#", count))
	}

	fmt.Fprintln(w, "\nSugestão para montar jogos:")
	fmt.Fprintf(w, "  soma entre %d e %d, %d a %d ímpares,\n", s.Soma.P5, s.Soma.P95, s.Impares.P5, s.Impares.P95)
	fmt.Fprintf(w, "  no máximo %d consecutivas e %d a %d repetidas do último concurso\n",
		s.MaxSeq.P95, s.Repetidas.P5, s.Repetidas.P95)
}

func appendDist(table *tablewriter.Table, name string, d Distribution) {
	table.Append(name,
		strconv.Itoa(d.Min),
		strconv.Itoa(d.P5),
		strconv.Itoa(d.Mediana),
		strconv.Itoa(d.P95),
		strconv.Itoa(d.Max),
	)
}

func appendMeans(table *tablewriter.Table, name string, means [cardSize]float64) {
	table.Append(name,
		strconv.FormatFloat(means[0], 'f', 1, 64),
		strconv.FormatFloat(means[1], 'f', 1, 64),
		strconv.FormatFloat(means[2], 'f', 1, 64),
		strconv.FormatFloat(means[3], 'f', 1, 64),
		strconv.FormatFloat(means[4], 'f', 1, 64),
	)
}
