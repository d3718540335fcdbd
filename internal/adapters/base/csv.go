package base

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// readCSV lee un archivo delimitado completo. El separador no se asume: se
// huele en la primera línea con contenido entre coma, punto y coma y tab.
func readCSV(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("base.readCSV: %w", err)
	}
	defer f.Close()

	sep, err := sniffSeparator(f)
	if err != nil {
		return nil, fmt.Errorf("base.readCSV: %s: %w", path, err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("base.readCSV: rewind %s: %w", path, err)
	}

	r := csv.NewReader(f)
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("base.readCSV: parse %s: %w", path, err)
	}
	return splitHeader(rows), nil
}

// sniffSeparator elige el delimitador más frecuente en la primera línea no
// vacía. Sin candidatos gana la coma.
func sniffSeparator(f *os.File) (rune, error) {
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		best, count := ',', 0
		for _, cand := range []rune{',', ';', '\t'} {
			if n := strings.Count(line, string(cand)); n > count {
				best, count = cand, n
			}
		}
		return best, nil
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return ',', nil
}
