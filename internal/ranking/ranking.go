// Package ranking acumula los CSVs de backtest de un directorio en un
// ranking global de jogos y genera alertas para los jogos que vienen
// pegando en las faixas altas.
package ranking

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"lotowizard/internal/backtest"
	"lotowizard/internal/domain"
)

// ErrNoFiles indica que el directorio no tiene ningún CSV de backtest.
var ErrNoFiles = errors.New("no backtest files found")

// Entry es una fila de backtest etiquetada con su archivo de origen.
type Entry struct {
	Row     backtest.Row
	Modo    string
	Arquivo string
	Data    time.Time
}

// fileDate extrae la fecha del nombre de archivo, en el formato con que el
// backtest CLI estampa sus salidas (DD-MM-YYYY_HHhMMmin).
var fileDate = regexp.MustCompile(`(\d{2}-\d{2}-\d{4})_(\d{2})h(\d{2})min`)

// Collect lee todos los backtest_*.csv del directorio y devuelve sus filas
// etiquetadas. El modo sale del nombre del archivo y la fecha del nombre o,
// si no está estampada, del mtime.
func Collect(dir string) ([]Entry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "backtest_*.csv"))
	if err != nil {
		return nil, fmt.Errorf("ranking.Collect: glob: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("ranking.Collect: %s: %w", dir, ErrNoFiles)
	}
	sort.Strings(paths)

	var entries []Entry
	for _, path := range paths {
		rows, err := readCSV(path)
		if err != nil {
			return nil, fmt.Errorf("ranking.Collect: %w", err)
		}
		name := filepath.Base(path)
		data := parseFileDate(path, name)
		modo := parseModo(name)
		for _, r := range rows {
			entries = append(entries, Entry{Row: r, Modo: modo, Arquivo: name, Data: data})
		}
	}
	return entries, nil
}

// Rank ordena las entradas por (media, max, min) descendente. Empates
// totales conservan el orden de llegada.
func Rank(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Row, out[j].Row
		if a.Media != b.Media {
			return a.Media > b.Media
		}
		if a.Max != b.Max {
			return a.Max > b.Max
		}
		return a.Min > b.Min
	})
	return out
}

// Alerts devuelve los jogos del CSV más reciente de cada modo cuyo máximo
// de acertos alcanza el umbral.
func Alerts(entries []Entry, minAcertos int) []Entry {
	latest := make(map[string]time.Time)
	for _, e := range entries {
		if e.Data.After(latest[e.Modo]) {
			latest[e.Modo] = e.Data
		}
	}
	var alerts []Entry
	for _, e := range entries {
		if !e.Data.Equal(latest[e.Modo]) {
			continue
		}
		if e.Row.Max >= minAcertos {
			alerts = append(alerts, e)
		}
	}
	return Rank(alerts)
}

func parseModo(name string) string {
	switch {
	case strings.Contains(name, string(domain.ModeAgressivo)):
		return string(domain.ModeAgressivo)
	case strings.Contains(name, string(domain.ModeConservador)):
		return string(domain.ModeConservador)
	default:
		return "desconhecido"
	}
}

func parseFileDate(path, name string) time.Time {
	if m := fileDate.FindStringSubmatch(name); m != nil {
		stamp := fmt.Sprintf("%s %s:%s", m[1], m[2], m[3])
		if t, err := time.ParseInLocation("02-01-2006 15:04", stamp, time.Local); err == nil {
			return t
		}
	}
	if info, err := os.Stat(path); err == nil {
		return info.ModTime()
	}
	return time.Time{}
}

// readCSV parsea un CSV con el esquema que escribe backtest.WriteCSV. Las
// columnas se resuelven por nombre para tolerar reordenamientos.
func readCSV(path string) ([]backtest.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	col := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		col[strings.TrimSpace(h)] = i
	}
	for _, h := range []string{"jogo", "media_acertos", "max_acertos", "min_acertos"} {
		if _, ok := col[h]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, h)
		}
	}

	rows := make([]backtest.Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		row, err := parseRow(rec, col)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(rec []string, col map[string]int) (backtest.Row, error) {
	var row backtest.Row

	dezenas := make([]int, 0, domain.GameSize)
	for _, fld := range strings.Fields(rec[col["jogo"]]) {
		n, err := strconv.Atoi(fld)
		if err != nil {
			return row, fmt.Errorf("jogo token %q: %w", fld, err)
		}
		dezenas = append(dezenas, n)
	}
	g, err := domain.NewGame(dezenas)
	if err != nil {
		return row, err
	}
	row.Jogo = g

	if row.Media, err = strconv.ParseFloat(rec[col["media_acertos"]], 64); err != nil {
		return row, fmt.Errorf("media_acertos: %w", err)
	}
	if row.Max, err = strconv.Atoi(rec[col["max_acertos"]]); err != nil {
		return row, fmt.Errorf("max_acertos: %w", err)
	}
	if row.Min, err = strconv.Atoi(rec[col["min_acertos"]]); err != nil {
		return row, fmt.Errorf("min_acertos: %w", err)
	}
	for f := backtest.FaixaMin; f <= domain.GameSize; f++ {
		idx, ok := col[strconv.Itoa(f)]
		if !ok || idx >= len(rec) {
			continue
		}
		n, err := strconv.Atoi(rec[idx])
		if err != nil {
			return row, fmt.Errorf("faixa %d: %w", f, err)
		}
		row.Faixas[f-backtest.FaixaMin] = n
	}
	return row, nil
}
