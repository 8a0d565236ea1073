// Package script turns an ordered action sequence into a standalone,
// replayable pyautogui program. The generator only emits text; running the
// result is the target environment's concern.
package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/seqr-cli/seqr/internal/action"
	"github.com/seqr-cli/seqr/internal/keycmd"
)

// ErrGenerate wraps I/O failures while naming or writing a script.
var ErrGenerate = errors.New("generate script")

// wheelStep converts one logical wheel click into pyautogui scroll units.
// One unscaled click is barely visible, so this is fixed rather than
// configurable.
const wheelStep = 100

const preamble = `import pyautogui
import time
from ctypes import windll
import win32con
import win32api
import keyboard

def execute_sequence():
    # Initialize
    pyautogui.FAILSAFE = True
    print("Starting sequence...")
    time.sleep(3)  # Initial delay to switch windows
`

const epilogue = `    print("Sequence completed!")

if __name__ == "__main__":
    print("Press Ctrl+C to stop the sequence")
    try:
        execute_sequence()
    except KeyboardInterrupt:
        print("\nSequence stopped by user")
`

// Script is a generated automation program with its suggested filename.
type Script struct {
	Text     string
	Filename string
}

// Generator emits scripts into a scripts directory.
type Generator struct {
	scriptsDir string
}

// NewGenerator returns a Generator writing into scriptsDir.
func NewGenerator(scriptsDir string) *Generator {
	return &Generator{scriptsDir: scriptsDir}
}

// Generate builds the script text for actions in order. With loop enabled
// the action blocks are wrapped in an infinite loop at one extra indentation
// level; a keyboard interrupt leaves the loop through the entry-point guard,
// which prints a stop message. An empty sequence skips the loop scaffolding,
// since `while True:` with no body is not valid Python. The suggested
// filename numbers the script after the current entry count of the scripts
// directory, so out-of-band deletions change the next number.
func (g *Generator) Generate(actions []action.Record, loop bool) (Script, error) {
	var b strings.Builder
	b.WriteString(preamble)

	indent := "    "
	if loop && len(actions) > 0 {
		b.WriteString("    while True:\n")
		indent = "        "
	}

	for _, rec := range actions {
		emitAction(&b, rec, indent)
	}

	b.WriteString(epilogue)

	name, err := g.nextFilename()
	if err != nil {
		return Script{}, err
	}
	return Script{Text: b.String(), Filename: name}, nil
}

// Write saves s into the scripts directory and returns the full path. The
// text is built entirely in memory first, so a failed write never leaves a
// partially generated sequence behind a valid name.
func (g *Generator) Write(s Script) (string, error) {
	if err := os.MkdirAll(g.scriptsDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create %s: %w", ErrGenerate, g.scriptsDir, err)
	}
	path := filepath.Join(g.scriptsDir, s.Filename)
	if err := os.WriteFile(path, []byte(s.Text), 0o644); err != nil {
		return "", fmt.Errorf("%w: write %s: %w", ErrGenerate, path, err)
	}
	return path, nil
}

func (g *Generator) nextFilename() (string, error) {
	entries, err := os.ReadDir(g.scriptsDir)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("%w: list %s: %w", ErrGenerate, g.scriptsDir, err)
	}
	return fmt.Sprintf("sequence_%d.py", len(entries)+1), nil
}

func emitAction(b *strings.Builder, rec action.Record, ind string) {
	name := pyQuote(rec.DisplayName())
	fmt.Fprintf(b, "\n%s# Action: %s\n", ind, name)
	fmt.Fprintf(b, "%sprint(\"Executing: %s\")\n", ind, name)

	switch a := rec.(type) {
	case action.Wheel:
		emitWheel(b, a, ind)
	case action.Click:
		fmt.Fprintf(b, "%spyautogui.moveTo(%d, %d, duration=0.5)\n", ind, a.Coordinates.X, a.Coordinates.Y)
		fmt.Fprintf(b, "%spyautogui.click()\n", ind)
	case action.RightClick:
		fmt.Fprintf(b, "%spyautogui.moveTo(%d, %d, duration=0.5)\n", ind, a.Coordinates.X, a.Coordinates.Y)
		fmt.Fprintf(b, "%spyautogui.rightClick()\n", ind)
	case action.Text:
		fmt.Fprintf(b, "%spyautogui.write(\"%s\")\n", ind, pyQuote(a.Value))
	case action.Keys:
		emitKeys(b, a, ind)
	}

	if p := rec.PauseSeconds(); p > 0 {
		fmt.Fprintf(b, "%stime.sleep(%s)  # Pause for %s seconds\n", ind, formatSeconds(p), formatSeconds(p))
	}
}

func emitWheel(b *strings.Builder, a action.Wheel, ind string) {
	amount := a.Clicks * wheelStep
	if a.Direction == action.Down || a.Direction == action.Left {
		amount = -amount
	}
	call := "hscroll"
	if a.Direction.Vertical() {
		call = "scroll"
	}
	fmt.Fprintf(b, "%spyautogui.%s(%d)  # Scroll %s\n", ind, call, amount, a.Direction)
}

func emitKeys(b *strings.Builder, a action.Keys, ind string) {
	normalized := strings.ToLower(strings.TrimSpace(a.Value))

	// ESC gets a two-phase emission: the high-level send plus raw key events
	// through the Windows API. Some fullscreen targets drop one or the other.
	if normalized == "esc" || normalized == "escape" {
		fmt.Fprintf(b, "%s# Using both keyboard library and Windows API for reliable ESC\n", ind)
		fmt.Fprintf(b, "%skeyboard.send('esc', do_press=True, do_release=True)\n", ind)
		fmt.Fprintf(b, "%stime.sleep(0.1)\n", ind)
		b.WriteString("\n")
		fmt.Fprintf(b, "%s# Backup method using Windows API with scan code\n", ind)
		fmt.Fprintf(b, "%sscan_code = 0x01  # ESC scan code\n", ind)
		fmt.Fprintf(b, "%swindll.user32.keybd_event(win32con.VK_ESCAPE, scan_code, 0, 0)  # Key down\n", ind)
		fmt.Fprintf(b, "%stime.sleep(0.1)\n", ind)
		fmt.Fprintf(b, "%swindll.user32.keybd_event(win32con.VK_ESCAPE, scan_code, win32con.KEYEVENTF_KEYUP, 0)  # Key up\n", ind)
		return
	}

	// Stored values were validated at add time; re-validate anyway so a
	// hand-edited config still produces a syntactically complete script.
	cmd, err := keycmd.Validate(a.Value)
	switch {
	case err != nil:
		fmt.Fprintf(b, "%s# Warning: Invalid key command %s\n", ind, normalized)
	case cmd.Kind == keycmd.Single:
		fmt.Fprintf(b, "%spyautogui.press(\"%s\")\n", ind, cmd.Normalized)
	default:
		fmt.Fprintf(b, "%spyautogui.hotkey(*\"%s\".split('+'))\n", ind, cmd.Normalized)
	}
}

// pyQuote escapes s for use inside a double-quoted Python string literal.
func pyQuote(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func formatSeconds(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}
