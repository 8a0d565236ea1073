package cmd

import (
	"path/filepath"
	"testing"

	"github.com/seqr-cli/seqr/internal/config"
	"github.com/seqr-cli/seqr/internal/store"
)

// isolateEnv redirects all seqr state into a temp directory for one test.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvSeqrHome, home)
	t.Setenv(config.EnvSeqrConfig, filepath.Join(home, "config.json"))
	t.Setenv(config.EnvSeqrScripts, filepath.Join(home, "scripts"))
	t.Setenv(config.EnvSeqrDB, filepath.Join(home, "seqr.db"))
	return home
}

func loadRegistry(t *testing.T) *store.Registry {
	t.Helper()
	path, err := config.ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath(): %v", err)
	}
	reg, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return reg
}
