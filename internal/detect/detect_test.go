package detect

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleManifest = `{
  "image": "screen_annotated.png",
  "elements": [
    {"id": 0, "name": "Element 0: OK button", "coordinates": [640, 480], "bbox": [600, 460, 680, 500]},
    {"id": 1, "name": "Element 1: Cancel", "coordinates": [800, 480]}
  ]
}`

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "elements.json")
	if err := os.WriteFile(path, []byte(sampleManifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest(writeManifest(t))
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if len(m.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(m.Elements))
	}
	e := m.Elements[0]
	if e.Name != "Element 0: OK button" || e.Coordinates.X != 640 || e.Coordinates.Y != 480 {
		t.Fatalf("unexpected element %+v", e)
	}
	if len(e.BBox) != 4 {
		t.Fatalf("expected bbox, got %+v", e.BBox)
	}
}

func TestFind(t *testing.T) {
	m, err := LoadManifest(writeManifest(t))
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if _, ok := m.Find(1); !ok {
		t.Fatalf("expected element 1")
	}
	if _, ok := m.Find(99); ok {
		t.Fatalf("did not expect element 99")
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Fatalf("expected error for missing manifest")
	}
}
