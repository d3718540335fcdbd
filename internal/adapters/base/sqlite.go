package base

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// readSQLite lee la primera tabla de usuario de una base SQLite (pure Go,
// sin CGo) y la vuelca como tabla cruda. La conexión se abre de solo
// lectura: esta fuente nunca se escribe.
func readSQLite(ctx context.Context, path string) (*table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("base.readSQLite: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("base.readSQLite: open %q: %w", path, err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	var name string
	err = db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' LIMIT 1`,
	).Scan(&name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("base.readSQLite: %s has no tables", path)
	}
	if err != nil {
		return nil, fmt.Errorf("base.readSQLite: list tables: %w", err)
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s"`, strings.ReplaceAll(name, `"`, `""`)))
	if err != nil {
		return nil, fmt.Errorf("base.readSQLite: read table %q: %w", name, err)
	}
	defer rows.Close()

	headers, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("base.readSQLite: columns: %w", err)
	}

	var data [][]string
	for rows.Next() {
		cells := make([]sql.NullString, len(headers))
		dest := make([]any, len(headers))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("base.readSQLite: scan row: %w", err)
		}
		row := make([]string, len(headers))
		for i, c := range cells {
			if c.Valid {
				row[i] = c.String
			}
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("base.readSQLite: iterate: %w", err)
	}
	return &table{headers: headers, rows: dropEmptyRows(data)}, nil
}
