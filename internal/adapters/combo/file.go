package combo

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"lotowizard/internal/domain"
)

// FileSource sirve jogos leídos de un archivo de combinaciones, una por
// línea, con las dezenas separadas por espacios, comas o punto y coma.
// Carga todo en memoria: está pensada para subconjuntos curados, no para
// el espacio completo.
type FileSource struct {
	games []domain.Game
}

// NewFileSource lee y valida el archivo entero. Líneas vacías y líneas
// que empiezan con # se ignoran, los jogos repetidos se colapsan a su
// primera aparición; cualquier otra línea inválida corta la carga con el
// número de línea en el error.
func NewFileSource(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("combo.NewFileSource: %w", err)
	}
	defer f.Close()

	var games []domain.Game
	seen := make(map[domain.Game]struct{})
	sc := bufio.NewScanner(f)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		g, err := parseComboLine(line)
		if err != nil {
			return nil, fmt.Errorf("combo.NewFileSource: %s line %d: %w", path, ln, err)
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		games = append(games, g)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("combo.NewFileSource: read %s: %w", path, err)
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("combo.NewFileSource: no combinations in %s", path)
	}
	return &FileSource{games: games}, nil
}

// Total devuelve cuántas combinaciones tiene el archivo.
func (f *FileSource) Total() int {
	return len(f.games)
}

// Page devuelve la porción [idx*size, idx*size+size) de los jogos, en el
// orden del archivo.
func (f *FileSource) Page(ctx context.Context, idx, size int) ([]domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if idx < 0 || size <= 0 {
		return nil, nil
	}
	start := idx * size
	if start >= len(f.games) {
		return nil, nil
	}
	end := start + size
	if end > len(f.games) {
		end = len(f.games)
	}
	return f.games[start:end], nil
}

func parseComboLine(line string) (domain.Game, error) {
	norm := strings.NewReplacer(",", " ", ";", " ").Replace(line)
	fields := strings.Fields(norm)
	dezenas := make([]int, 0, domain.GameSize)
	for _, fld := range fields {
		n, err := strconv.Atoi(fld)
		if err != nil {
			return domain.Game{}, fmt.Errorf("token %q is not a number", fld)
		}
		dezenas = append(dezenas, n)
	}
	return domain.NewGame(dezenas)
}
