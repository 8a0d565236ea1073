// Package config resolves the on-disk locations used by seqr.
package config

import (
	"os"
	"path/filepath"
)

// Environment overrides for every path seqr touches. They exist so tests and
// scripted setups can redirect all state away from the user's home.
const (
	EnvSeqrHome    = "SEQR_HOME"
	EnvSeqrConfig  = "SEQR_CONFIG"
	EnvSeqrScripts = "SEQR_SCRIPTS"
	EnvSeqrDB      = "SEQR_DB"
)

// DataDir returns the directory used to store seqr data.
func DataDir() (string, error) {
	if d := os.Getenv(EnvSeqrHome); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".seqr"), nil
}

// EnsureDataDir creates the data directory if needed and returns its path.
func EnsureDataDir() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return "", err
	}
	return d, nil
}

// ConfigPath returns the path of the persisted action registry document.
func ConfigPath() (string, error) {
	if p := os.Getenv(EnvSeqrConfig); p != "" {
		return p, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.json"), nil
}

// ScriptsDir returns the directory generated scripts are written to.
func ScriptsDir() (string, error) {
	if p := os.Getenv(EnvSeqrScripts); p != "" {
		return p, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "scripts"), nil
}

// DBPath returns the full path to the SQLite history database file.
func DBPath() (string, error) {
	if p := os.Getenv(EnvSeqrDB); p != "" {
		return p, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "seqr.db"), nil
}
