package history

import (
	"path/filepath"
	"testing"

	"github.com/seqr-cli/seqr/internal/db"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seqr.db")

	dbConn, err := db.InitDB(path)
	if err != nil {
		t.Fatalf("InitDB(%s): %v", path, err)
	}
	t.Cleanup(func() { _ = dbConn.Close() })
	return NewRepository(dbConn)
}

func TestRecordAndList(t *testing.T) {
	r := newTestRepository(t)

	if _, err := r.Record("session-a", "sequence_1.py", 3, false); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if _, err := r.Record("session-a", "sequence_2.py", 5, true); err != nil {
		t.Fatalf("Record: %v", err)
	}

	gens, err := r.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(gens) != 2 {
		t.Fatalf("expected 2 generations, got %d", len(gens))
	}
	// newest first
	if gens[0].Filename != "sequence_2.py" || gens[1].Filename != "sequence_1.py" {
		t.Fatalf("unexpected order: %s, %s", gens[0].Filename, gens[1].Filename)
	}
	if !gens[0].LoopEnabled || gens[1].LoopEnabled {
		t.Fatalf("loop flag lost: %+v", gens)
	}
	if gens[0].ActionCount != 5 {
		t.Fatalf("expected 5 actions, got %d", gens[0].ActionCount)
	}
	if gens[0].SessionID != "session-a" {
		t.Fatalf("unexpected session id %q", gens[0].SessionID)
	}
}

func TestListEmpty(t *testing.T) {
	r := newTestRepository(t)

	gens, err := r.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(gens) != 0 {
		t.Fatalf("expected no generations, got %d", len(gens))
	}
}
