package base

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX lee la primera hoja de una planilla. Las celdas llegan como
// strings ya formateados; la tipificación queda para la inferencia.
func readXLSX(path string) (*table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("base.readXLSX: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("base.readXLSX: %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("base.readXLSX: read sheet %q: %w", sheets[0], err)
	}
	return splitHeader(rows), nil
}
