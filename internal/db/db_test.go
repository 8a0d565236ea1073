package db

import (
	"path/filepath"
	"testing"
)

func TestInitDBCreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "seqr.db")

	dbConn, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB(%s): %v", path, err)
	}
	defer func() { _ = dbConn.Close() }()

	var count int
	row := dbConn.QueryRow("SELECT COUNT(*) FROM generations")
	if err := row.Scan(&count); err != nil {
		t.Fatalf("query generations: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty table, got %d rows", count)
	}
}

func TestApplyMigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqr.db")

	dbConn, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB(%s): %v", path, err)
	}
	defer func() { _ = dbConn.Close() }()

	if err := ApplyMigrations(dbConn); err != nil {
		t.Fatalf("second ApplyMigrations: %v", err)
	}
}
