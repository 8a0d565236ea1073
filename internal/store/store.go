// Package store persists the action registry as a JSON config document.
//
// The document has the shape {"elements": {...}, "sequences": [...]} where
// elements maps action ids to action records and sequences is the ordered
// list of ids defining replay order. Every mutation writes the whole document
// back to disk, keeping in-memory and persisted state in lock-step.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seqr-cli/seqr/internal/action"
)

// ErrConfigAccess wraps failures to read or write the config document.
// Callers recover by continuing with the in-memory state.
var ErrConfigAccess = errors.New("config access")

// Document is the persisted form of the registry.
type Document struct {
	Elements  map[string]action.Record `json:"elements"`
	Sequences []string                 `json:"sequences"`
}

func emptyDocument() Document {
	return Document{Elements: map[string]action.Record{}, Sequences: []string{}}
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		Elements  map[string]json.RawMessage `json:"elements"`
		Sequences []string                   `json:"sequences"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Elements = make(map[string]action.Record, len(raw.Elements))
	for id, msg := range raw.Elements {
		rec, err := action.UnmarshalRecord(msg)
		if err != nil {
			return fmt.Errorf("element %s: %w", id, err)
		}
		d.Elements[id] = rec
	}
	d.Sequences = raw.Sequences
	if d.Sequences == nil {
		d.Sequences = []string{}
	}
	return nil
}

// Registry is the in-memory action registry backed by a config file at path.
type Registry struct {
	path string
	doc  Document
}

// Load reads the config document at path. A missing file yields an empty
// registry with no error; an unreadable or unparsable file yields an empty
// registry together with an ErrConfigAccess-wrapped error so callers can
// report it without aborting.
func Load(path string) (*Registry, error) {
	r := &Registry{path: path, doc: emptyDocument()}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return r, fmt.Errorf("%w: read %s: %w", ErrConfigAccess, path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return r, fmt.Errorf("%w: parse %s: %w", ErrConfigAccess, path, err)
	}
	r.doc = doc
	return r, nil
}

// Path returns the config file location backing this registry.
func (r *Registry) Path() string { return r.path }

// Len returns the number of recorded actions.
func (r *Registry) Len() int { return len(r.doc.Sequences) }

// Sequence returns the ordered action ids.
func (r *Registry) Sequence() []string {
	out := make([]string, len(r.doc.Sequences))
	copy(out, r.doc.Sequences)
	return out
}

// Get returns the record stored under id.
func (r *Registry) Get(id string) (action.Record, bool) {
	rec, ok := r.doc.Elements[id]
	return rec, ok
}

// Ordered resolves the sequence into its records in replay order.
func (r *Registry) Ordered() ([]action.Record, error) {
	out := make([]action.Record, 0, len(r.doc.Sequences))
	for _, id := range r.doc.Sequences {
		rec, ok := r.doc.Elements[id]
		if !ok {
			return nil, fmt.Errorf("sequence references unknown action id %q", id)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Append stores rec under id, appends id to the sequence, and persists. On a
// persist failure the in-memory change is rolled back so no partial state
// survives.
func (r *Registry) Append(id string, rec action.Record) error {
	r.doc.Elements[id] = rec
	r.doc.Sequences = append(r.doc.Sequences, id)
	if err := r.save(); err != nil {
		delete(r.doc.Elements, id)
		r.doc.Sequences = r.doc.Sequences[:len(r.doc.Sequences)-1]
		return err
	}
	return nil
}

// Reset clears the document and persists the empty state unconditionally.
func (r *Registry) Reset() error {
	r.doc = emptyDocument()
	return r.save()
}

func (r *Registry) save() error {
	data, err := json.MarshalIndent(r.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create %s: %w", ErrConfigAccess, dir, err)
		}
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrConfigAccess, r.path, err)
	}
	return nil
}
