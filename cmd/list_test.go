package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	local := &cobra.Command{RunE: listCmd.RunE}
	local.Flags().String("filter", "", "")
	local.Flags().Bool("fuzzy", false, "")
	return local
}

func writeScript(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir scripts dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte("import pyautogui\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestListCommand_EmptyDirectory(t *testing.T) {
	isolateEnv(t)

	var out bytes.Buffer
	local := newListCommand()
	local.SetOut(&out)
	if err := local.RunE(local, nil); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "no scripts generated yet") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestListCommand_SortedAndPyOnly(t *testing.T) {
	home := isolateEnv(t)
	scripts := filepath.Join(home, "scripts")
	writeScript(t, scripts, "sequence_2.py")
	writeScript(t, scripts, "sequence_1.py")
	writeScript(t, scripts, "notes.txt")

	var out bytes.Buffer
	local := newListCommand()
	local.SetOut(&out)
	if err := local.RunE(local, nil); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	want := "- sequence_1.py\n- sequence_2.py\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestListCommand_SubstringFilter(t *testing.T) {
	home := isolateEnv(t)
	scripts := filepath.Join(home, "scripts")
	writeScript(t, scripts, "sequence_1.py")
	writeScript(t, scripts, "sequence_12.py")

	var out bytes.Buffer
	local := newListCommand()
	local.SetOut(&out)
	if err := local.Flags().Set("filter", "_12"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := local.RunE(local, nil); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if got := out.String(); got != "- sequence_12.py\n" {
		t.Fatalf("got %q", got)
	}
}

func TestListCommand_FuzzyFilter(t *testing.T) {
	home := isolateEnv(t)
	scripts := filepath.Join(home, "scripts")
	writeScript(t, scripts, "sequence_1.py")
	writeScript(t, scripts, "other.py")

	var out bytes.Buffer
	local := newListCommand()
	local.SetOut(&out)
	if err := local.Flags().Set("filter", "sq1"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := local.Flags().Set("fuzzy", "true"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := local.RunE(local, nil); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if got := out.String(); got != "- sequence_1.py\n" {
		t.Fatalf("got %q", got)
	}
}
