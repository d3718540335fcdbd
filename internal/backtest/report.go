package backtest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// csvHeader es el esquema del CSV de backtest. ranking lo consume tal cual.
var csvHeader = []string{
	"jogo", "media_acertos", "max_acertos", "min_acertos",
	"11", "12", "13", "14", "15",
}

// WriteCSV escribe la tabla de backtest en formato planilla, una fila por
// jogo en el orden del ranking. Crea los directorios intermedios que hagan
// falta.
func WriteCSV(path string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("backtest.WriteCSV: mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("backtest.WriteCSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("backtest.WriteCSV: header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Jogo.String(),
			strconv.FormatFloat(r.Media, 'f', 2, 64),
			strconv.Itoa(r.Max),
			strconv.Itoa(r.Min),
		}
		for _, c := range r.Faixas {
			record = append(record, strconv.Itoa(c))
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("backtest.WriteCSV: row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("backtest.WriteCSV: flush: %w", err)
	}
	return nil
}

// WriteTXT escribe el reporte formateado para humanos: título, tabla y
// leyenda. Deriva del mismo ranking que el CSV.
func WriteTXT(path, titulo string, rows []Row, janela int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("backtest.WriteTXT: mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("backtest.WriteTXT: %w", err)
	}
	defer f.Close()

	FormatReport(f, titulo, rows, janela)
	return nil
}

// FormatReport vuelca el reporte a cualquier writer; WriteTXT y los tests
// comparten este camino.
func FormatReport(w io.Writer, titulo string, rows []Row, janela int) {
	if titulo == "" {
		titulo = "BACKTEST DE JOGOS"
	}
	banner := strings.Repeat("=", 64)
	fmt.Fprintf(w, "%s\n%s\n%s\n", banner, titulo, banner)
	fmt.Fprintf(w, "Janela: últimos %d concursos | Jogos: %d\n\n", janela, len(rows))

	if len(rows) == 0 {
		fmt.Fprintln(w, "Nenhum jogo para reportar.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.Header("#", "Jogo", "Média", "Máx", "Mín", "11", "12", "13", "14", "15")
	for i, r := range rows {
		table.Append(
			strconv.Itoa(i+1),
			r.Jogo.String(),
			strconv.FormatFloat(r.Media, 'f', 2, 64),
			strconv.Itoa(r.Max),
			strconv.Itoa(r.Min),
			strconv.Itoa(r.Faixas[0]),
			strconv.Itoa(r.Faixas[1]),
			strconv.Itoa(r.Faixas[2]),
			strconv.Itoa(r.Faixas[3]),
			strconv.Itoa(r.Faixas[4]),
		)
	}
	table.Render()

	fmt.Fprintln(w, "\nLegenda:")
	fmt.Fprintln(w, "  Média/Máx/Mín = acertos por concurso dentro da janela")
	fmt.Fprintln(w, "  11..15 = em quantos concursos o jogo fez essa faixa de acertos")
}

// DefaultTXTPath deriva el path del TXT a partir del CSV, cambiando la
// extensión.
func DefaultTXTPath(csvPath string) string {
	ext := filepath.Ext(csvPath)
	return strings.TrimSuffix(csvPath, ext) + ".txt"
}
