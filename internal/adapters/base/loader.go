// Package base carga la base histórica de concursos desde los formatos
// soportados (.csv, .xlsx, .db/.sqlite) y la normaliza a domain.Base
// infiriendo qué columnas llevan las 15 dezenas.
package base

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"lotowizard/internal/domain"
)

// ErrSchema indica que ninguna estrategia de inferencia logró ubicar las 15
// columnas de dezenas en la fuente tabular.
var ErrSchema = errors.New("schema inference failed")

// Loader carga bases históricas. No guarda estado: cada Load abre,
// normaliza y cierra la fuente.
type Loader struct{}

// NewLoader crea el loader de bases históricas.
func NewLoader() *Loader {
	return &Loader{}
}

// Load despacha por extensión, lee la fuente a una tabla cruda y aplica las
// estrategias de inferencia en orden.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Base, error) {
	var (
		t   *table
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		t, err = readCSV(path)
	case ".xlsx":
		t, err = readXLSX(path)
	case ".db", ".sqlite", ".sqlite3":
		t, err = readSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("base.Load: unsupported extension %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return normalize(t)
}

// table es la forma intermedia común a todos los formatos: encabezados más
// filas de celdas crudas, todavía sin tipos.
type table struct {
	headers []string
	rows    [][]string
}

// strategy intenta ubicar las columnas de dezenas. Devuelve los 15 índices
// en orden, o ok=false si la tabla no encaja con la estrategia.
type strategy struct {
	name string
	fn   func(t *table) (cols []int, ok bool)
}

// normalize aplica las estrategias en orden de prioridad: gana la primera
// que además produce concursos válidos. Si una estrategia elige columnas
// pero las filas no forman jogos válidos, se descarta y sigue la próxima.
func normalize(t *table) (*domain.Base, error) {
	estrategias := []strategy{
		{name: "numeric-columns", fn: numericColumns},
		{name: "name-patterns", fn: namePatterns},
	}
	concursoCol := findConcursoColumn(t.headers)

	var lastErr error
	for _, e := range estrategias {
		cols, ok := e.fn(t)
		if !ok {
			continue
		}
		b, err := buildBase(t, cols, concursoCol)
		if err != nil {
			lastErr = fmt.Errorf("strategy %s: %w", e.name, err)
			continue
		}
		return b, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("base.Load: %w: %v", ErrSchema, lastErr)
	}
	return nil, fmt.Errorf("base.Load: %w: no strategy found 15 draw columns", ErrSchema)
}

// numericColumns toma las primeras 15 columnas cuyo contenido es numérico
// en todas las filas. Aplica solo si hay al menos 15 columnas así.
func numericColumns(t *table) ([]int, bool) {
	if len(t.rows) == 0 {
		return nil, false
	}
	var cols []int
	for c := range t.headers {
		if isNumericColumn(t, c) {
			cols = append(cols, c)
			if len(cols) == domain.GameSize {
				return cols, true
			}
		}
	}
	return nil, false
}

func isNumericColumn(t *table, c int) bool {
	seen := false
	for _, row := range t.rows {
		if c >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[c])
		if cell == "" {
			continue
		}
		if _, err := cellInt(cell); err != nil {
			return false
		}
		seen = true
	}
	return seen
}

// namePatterns busca columnas llamadas D1..D15 o sus variantes largas
// (Dezena 1, dezena_1, Bola1...). Necesita encontrar las 15.
func namePatterns(t *table) ([]int, bool) {
	norm := make(map[string]int, len(t.headers))
	for i, h := range t.headers {
		norm[normHeader(h)] = i
	}
	cols := make([]int, 0, domain.GameSize)
	for i := 1; i <= domain.GameSize; i++ {
		idx, ok := findDezenaColumn(norm, i)
		if !ok {
			return nil, false
		}
		cols = append(cols, idx)
	}
	return cols, true
}

func findDezenaColumn(norm map[string]int, i int) (int, bool) {
	for _, pat := range []string{"d%d", "dezena%d", "dezena_%d", "dezena %d", "bola%d", "bola_%d", "bola %d"} {
		if idx, ok := norm[fmt.Sprintf(pat, i)]; ok {
			return idx, true
		}
	}
	return 0, false
}

// findConcursoColumn ubica la columna con el número de concurso, si existe.
// Devuelve -1 cuando no hay: en ese caso el índice de fila hace de concurso.
func findConcursoColumn(headers []string) int {
	norm := make(map[string]int, len(headers))
	for i, h := range headers {
		norm[normHeader(h)] = i
	}
	for _, key := range []string{"concurso", "numero", "numeroconcurso"} {
		if idx, ok := norm[key]; ok {
			return idx
		}
	}
	return -1
}

func normHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// buildBase materializa los draws desde las columnas elegidas. Una fila con
// dezenas inválidas corta la estrategia entera; una fila sin concurso
// parseable solo se salta.
func buildBase(t *table, cols []int, concursoCol int) (*domain.Base, error) {
	draws := make([]domain.Draw, 0, len(t.rows))
	for i, row := range t.rows {
		dezenas := make([]int, 0, domain.GameSize)
		for _, c := range cols {
			if c >= len(row) {
				return nil, fmt.Errorf("row %d: missing column %d", i+1, c)
			}
			n, err := cellInt(strings.TrimSpace(row[c]))
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			dezenas = append(dezenas, n)
		}
		g, err := domain.NewGame(dezenas)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		concurso := i + 1
		if concursoCol >= 0 {
			if concursoCol >= len(row) {
				continue
			}
			n, err := cellInt(strings.TrimSpace(row[concursoCol]))
			if err != nil {
				continue
			}
			concurso = n
		}
		draws = append(draws, domain.Draw{Concurso: concurso, Dezenas: g})
	}
	if len(draws) == 0 {
		return nil, domain.ErrEmptyBase
	}
	if concursoCol >= 0 {
		sort.SliceStable(draws, func(i, j int) bool {
			return draws[i].Concurso < draws[j].Concurso
		})
	}
	return &domain.Base{Draws: draws}, nil
}

// cellInt parsea una celda numérica. Acepta enteros directos y floats de
// valor entero, que es como algunas planillas exportan las dezenas.
func cellInt(cell string) (int, error) {
	if n, err := strconv.Atoi(cell); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("cell %q is not a number", cell)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("cell %q is not an integer", cell)
	}
	return int(f), nil
}

// dropEmptyRows descarta filas totalmente vacías, comunes al final de
// planillas exportadas.
func dropEmptyRows(rows [][]string) [][]string {
	out := rows[:0]
	for _, row := range rows {
		empty := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out
}

// looksLikeHeader decide si la primera fila es encabezado: basta una celda
// no numérica y no vacía.
func looksLikeHeader(row []string) bool {
	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if _, err := cellInt(cell); err != nil {
			return true
		}
	}
	return false
}

// splitHeader separa encabezado y datos de una matriz cruda. Para fuentes
// sin encabezado genera nombres sintéticos c1..cN.
func splitHeader(rows [][]string) *table {
	rows = dropEmptyRows(rows)
	if len(rows) == 0 {
		return &table{}
	}
	if looksLikeHeader(rows[0]) {
		return &table{headers: rows[0], rows: rows[1:]}
	}
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	headers := make([]string, width)
	for i := range headers {
		headers[i] = fmt.Sprintf("c%d", i+1)
	}
	return &table{headers: headers, rows: rows}
}
