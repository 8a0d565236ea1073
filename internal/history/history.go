// Package history records script generations in the seqr database.
package history

import (
	"database/sql"
	"fmt"
)

// Generation is one recorded script generation.
type Generation struct {
	ID          int64
	SessionID   string
	Filename    string
	ActionCount int
	LoopEnabled bool
	CreatedAt   string
}

// Repository provides access to the generation log.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Record inserts a generation row and returns its ID.
func (r *Repository) Record(sessionID, filename string, actionCount int, loopEnabled bool) (int64, error) {
	loop := 0
	if loopEnabled {
		loop = 1
	}
	res, err := r.db.Exec(`INSERT INTO generations (session_id, filename, action_count, loop_enabled, created_at)
		VALUES (?, ?, ?, ?, datetime('now'))`, sessionID, filename, actionCount, loop)
	if err != nil {
		return 0, fmt.Errorf("insert generation: %w", err)
	}
	return res.LastInsertId()
}

// List returns all recorded generations, newest first.
func (r *Repository) List() ([]Generation, error) {
	rows, err := r.db.Query(`SELECT id, session_id, filename, action_count, loop_enabled, created_at
		FROM generations ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Generation
	for rows.Next() {
		var g Generation
		var loop int
		if err := rows.Scan(&g.ID, &g.SessionID, &g.Filename, &g.ActionCount, &loop, &g.CreatedAt); err != nil {
			return nil, err
		}
		g.LoopEnabled = loop != 0
		out = append(out, g)
	}
	return out, rows.Err()
}
