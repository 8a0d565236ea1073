package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// InitDB opens the generation-history database at path, creating the parent
// directory and the schema when missing. Callers own the returned handle and
// the choice of path.
func InitDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db %s: %w", path, err)
	}

	if err := ApplyMigrations(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}
