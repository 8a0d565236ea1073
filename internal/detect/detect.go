// Package detect consumes the output of an external screen-element detector.
// The detector itself (vision, OCR, captioning) is a separate pipeline; seqr
// only reads the element manifest it produces for a screenshot.
package detect

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/seqr-cli/seqr/internal/action"
)

// Element is one detected screen element.
type Element struct {
	ID          int                `json:"id"`
	Name        string             `json:"name"`
	Coordinates action.Coordinates `json:"coordinates"`
	BBox        []float64          `json:"bbox,omitempty"`
}

// Manifest is the detector output for one screenshot.
type Manifest struct {
	Image    string    `json:"image,omitempty"`
	Elements []Element `json:"elements"`
}

// LoadManifest reads a detector manifest from path.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m, nil
}

// Find returns the element with the given id.
func (m Manifest) Find(id int) (Element, bool) {
	for _, e := range m.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}
