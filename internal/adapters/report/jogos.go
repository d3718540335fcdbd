// Package report emite la selección del wizard: el archivo de jogos que
// consume el backtest y la tabla de consola para el usuario.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"lotowizard/internal/domain"
)

// Header son los metadatos que van comentados al inicio del archivo de
// jogos. Solo campos deterministas: dos corridas con los mismos insumos
// producen archivos byte a byte idénticos.
type Header struct {
	Modo    domain.Mode
	Ultimos int
	Finais  int
	Base    string // nombre del archivo de base, sin directorio
}

// FileWriter implementa ports.GameWriter escribiendo un jogo por línea.
type FileWriter struct {
	path   string
	header Header
}

// NewFileWriter crea el writer para el path dado, creando los directorios
// intermedios recién al escribir.
func NewFileWriter(path string, header Header) *FileWriter {
	return &FileWriter{path: path, header: header}
}

// WriteGames escribe el archivo completo. Una selección vacía produce un
// archivo con solo el header, que el parser del backtest ignora.
func (w *FileWriter) WriteGames(_ context.Context, games []domain.ScoredGame) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("report.WriteGames: mkdir: %w", err)
	}
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("report.WriteGames: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "# lotowizard | modo=%s ultimos=%d finais=%d base=%s\n",
		w.header.Modo, w.header.Ultimos, w.header.Finais, w.header.Base)
	for i, sg := range games {
		if _, err := fmt.Fprintf(f, "Jogo %02d: %s\n", i+1, sg.Jogo); err != nil {
			return fmt.Errorf("report.WriteGames: write game %d: %w", i+1, err)
		}
	}
	return nil
}
