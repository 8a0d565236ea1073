package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDirEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	_ = os.Setenv(EnvSeqrHome, tmp)
	defer func() { _ = os.Unsetenv(EnvSeqrHome) }()

	d, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir(): %v", err)
	}
	if d != tmp {
		t.Fatalf("expected %s got %s", tmp, d)
	}
}

func TestConfigPathEnvOverride(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "custom.json")
	_ = os.Setenv(EnvSeqrConfig, tmp)
	defer func() { _ = os.Unsetenv(EnvSeqrConfig) }()

	p, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath(): %v", err)
	}
	if p != tmp {
		t.Fatalf("expected %s got %s", tmp, p)
	}
}

func TestScriptsDirDefaultsUnderDataDir(t *testing.T) {
	tmp := t.TempDir()
	_ = os.Setenv(EnvSeqrHome, tmp)
	defer func() { _ = os.Unsetenv(EnvSeqrHome) }()
	_ = os.Unsetenv(EnvSeqrScripts)

	p, err := ScriptsDir()
	if err != nil {
		t.Fatalf("ScriptsDir(): %v", err)
	}
	if p != filepath.Join(tmp, "scripts") {
		t.Fatalf("expected scripts under data dir, got %s", p)
	}
}

func TestDBPathEnvOverride(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "custom.db")
	_ = os.Setenv(EnvSeqrDB, tmp)
	defer func() { _ = os.Unsetenv(EnvSeqrDB) }()

	p, err := DBPath()
	if err != nil {
		t.Fatalf("DBPath(): %v", err)
	}
	if p != tmp {
		t.Fatalf("expected %s got %s", tmp, p)
	}
}

func TestEnsureDataDirCreatesDir(t *testing.T) {
	_ = os.Unsetenv(EnvSeqrHome)
	tmp := t.TempDir()
	// fake home by setting HOME/USERPROFILE
	_ = os.Setenv("HOME", tmp)
	_ = os.Setenv("USERPROFILE", tmp)

	d, err := EnsureDataDir()
	if err != nil {
		t.Fatalf("EnsureDataDir(): %v", err)
	}
	if _, err := os.Stat(d); err != nil {
		t.Fatalf("expected dir %s to exist: %v", d, err)
	}
}
