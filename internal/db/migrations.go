package db

import (
	"database/sql"
	_ "embed"
	"fmt"

	// _ import for sqlite driver registration
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// ApplyMigrations applies the embedded schema SQL to the database and
// performs lightweight post-creation migrations (adding new columns when needed).
func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	// Ensure new columns exist on upgrades
	if err := ensureGenerationColumns(db); err != nil {
		return err
	}
	return nil
}

// ensureGenerationColumns checks for optional columns and adds them when missing.
func ensureGenerationColumns(db *sql.DB) error {
	rows, err := db.Query("PRAGMA table_info(generations)")
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()
	cols := map[string]bool{}
	for rows.Next() {
		var cid int
		var name string
		var ctype string
		var notnull int
		var dflt interface{}
		var pk int
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return err
		}
		cols[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read table info: %w", err)
	}
	if !cols["loop_enabled"] {
		if _, err := db.Exec("ALTER TABLE generations ADD COLUMN loop_enabled INTEGER NOT NULL DEFAULT 0"); err != nil {
			return err
		}
	}
	if !cols["session_id"] {
		if _, err := db.Exec("ALTER TABLE generations ADD COLUMN session_id TEXT NOT NULL DEFAULT ''"); err != nil {
			return err
		}
	}
	return nil
}
