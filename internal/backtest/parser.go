// Package backtest cruza un archivo de jogos contra la ventana de concursos
// más recientes de la base histórica y reporta la distribución de acertos
// de cada jogo.
package backtest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"lotowizard/internal/domain"
)

// ErrNoGames indica que ninguna estrategia de parseo encontró jogos en el
// archivo.
var ErrNoGames = errors.New("no games found")

// ParseFile abre el archivo de jogos y lo parsea.
func ParseFile(path string) ([]domain.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("backtest.ParseFile: %w", err)
	}
	defer f.Close()
	games, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("backtest.ParseFile: %s: %w", path, err)
	}
	return games, nil
}

// Parse extrae los jogos de un texto de formato libre. Primero intenta la
// estrategia por líneas; si ninguna línea parsea, cae a la ventana
// deslizante sobre todos los tokens del archivo. Los jogos repetidos se
// colapsan a su primera aparición.
func Parse(r io.Reader) ([]domain.Game, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("backtest.Parse: read: %w", err)
	}

	games := parseLines(lines)
	if len(games) == 0 {
		games = parseStream(lines)
	}
	games = dedupe(games)
	if len(games) == 0 {
		return nil, ErrNoGames
	}
	return games, nil
}

// parseLines intenta leer un jogo por línea. Una línea califica si sus
// tokens numéricos en [1,25] forman 15 dezenas distintas; con más de 15
// tokens se quedan los últimos 15, así etiquetas tipo "Jogo 01:" no
// contaminan el jogo. Las líneas que no califican simplemente se ignoran.
func parseLines(lines []string) []domain.Game {
	var games []domain.Game
	for _, line := range lines {
		tokens := numericTokens(line)
		if len(tokens) < domain.GameSize {
			continue
		}
		tokens = tokens[len(tokens)-domain.GameSize:]
		g, err := domain.NewGame(tokens)
		if err != nil {
			continue
		}
		games = append(games, g)
	}
	return games
}

// parseStream es el plan B: junta todos los tokens numéricos en [1,25] del
// archivo entero y busca ventanas de 15 tokens consecutivos todos
// distintos. Cada ventana encontrada se consume entera y la búsqueda sigue
// después de ella.
func parseStream(lines []string) []domain.Game {
	var tokens []int
	for _, line := range lines {
		tokens = append(tokens, numericTokens(line)...)
	}

	var games []domain.Game
	for i := 0; i+domain.GameSize <= len(tokens); {
		g, err := domain.NewGame(tokens[i : i+domain.GameSize])
		if err != nil {
			i++
			continue
		}
		games = append(games, g)
		i += domain.GameSize
	}
	return games
}

// numericTokens devuelve los enteros en [1,25] de la línea, en orden.
// Separadores aceptados: espacios, comas, punto y coma y dos puntos.
func numericTokens(line string) []int {
	norm := strings.NewReplacer(",", " ", ";", " ", ":", " ").Replace(line)
	var tokens []int
	for _, fld := range strings.Fields(norm) {
		n, err := strconv.Atoi(fld)
		if err != nil {
			continue
		}
		if n < 1 || n > domain.MaxDezena {
			continue
		}
		tokens = append(tokens, n)
	}
	return tokens
}

// dedupe colapsa jogos idénticos (mismo conjunto, sin importar el orden de
// origen) preservando la primera aparición.
func dedupe(games []domain.Game) []domain.Game {
	seen := make(map[domain.Game]struct{}, len(games))
	out := games[:0]
	for _, g := range games {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}
