package ranking

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

// WriteCSV escribe el ranking acumulado completo, una fila por entrada, con
// el modo y el archivo de origen al final.
func WriteCSV(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ranking.WriteCSV: mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ranking.WriteCSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"jogo", "media_acertos", "max_acertos", "min_acertos",
		"11", "12", "13", "14", "15", "modo", "arquivo",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("ranking.WriteCSV: header: %w", err)
	}
	for _, e := range entries {
		record := []string{
			e.Row.Jogo.String(),
			strconv.FormatFloat(e.Row.Media, 'f', 2, 64),
			strconv.Itoa(e.Row.Max),
			strconv.Itoa(e.Row.Min),
		}
		for _, c := range e.Row.Faixas {
			record = append(record, strconv.Itoa(c))
		}
		record = append(record, e.Modo, e.Arquivo)
		if err := w.Write(record); err != nil {
			return fmt.Errorf("ranking.WriteCSV: row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("ranking.WriteCSV: flush: %w", err)
	}
	return nil
}

// WriteTop escribe el TXT con los mejores top jogos del ranking.
func WriteTop(path string, entries []Entry, top int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ranking.WriteTop: mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ranking.WriteTop: %w", err)
	}
	defer f.Close()

	FormatTop(f, entries, top)
	return nil
}

// FormatTop vuelca el top del ranking a cualquier writer.
func FormatTop(w io.Writer, entries []Entry, top int) {
	if top > 0 && len(entries) > top {
		entries = entries[:top]
	}
	banner := strings.Repeat("=", 64)
	fmt.Fprintf(w, "%s\nRANKING ACUMULADO — TOP %d\n%s\n\n", banner, len(entries), banner)

	if len(entries) == 0 {
		fmt.Fprintln(w, "Nenhum jogo no ranking.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.Header("#", "Jogo", "Modo", "Média", "Máx", "Mín", "Arquivo")
	for i, e := range entries {
		table.Append(
			strconv.Itoa(i+1),
			e.Row.Jogo.String(),
			e.Modo,
			strconv.FormatFloat(e.Row.Media, 'f', 2, 64),
			strconv.Itoa(e.Row.Max),
			strconv.Itoa(e.Row.Min),
			e.Arquivo,
		)
	}
	table.Render()
}

// WriteAlerts escribe el archivo de alertas: los jogos en caliente del
// backtest más reciente de cada modo.
func WriteAlerts(path string, alerts []Entry, minAcertos int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ranking.WriteAlerts: mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ranking.WriteAlerts: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "ALERTAS — jogos com max_acertos >= %d\n\n", minAcertos)
	if len(alerts) == 0 {
		fmt.Fprintln(f, "Nenhum jogo atingiu o umbral.")
		return nil
	}
	for _, e := range alerts {
		fmt.Fprintf(f, "[%s] %s | média %.2f | máx %d (%s)\n",
			e.Modo, e.Row.Jogo, e.Row.Media, e.Row.Max, e.Arquivo)
	}
	return nil
}
