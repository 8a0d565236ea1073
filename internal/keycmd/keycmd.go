// Package keycmd validates keyboard command strings before they are recorded
// in a sequence or emitted into a generated script. Single keys are resolved
// through an alias table and checked against an allow-list; combinations like
// "ctrl+c" are checked for format only, never for per-key legality.
package keycmd

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrEmptyCommand         = errors.New("empty key command")
	ErrUnknownSingleKey     = errors.New("single key not in allowed list")
	ErrMalformedCombination = errors.New("invalid key combination format")
)

// Kind classifies a validated key command.
type Kind int

const (
	// Single is one allow-listed key press.
	Single Kind = iota
	// Combination is a "+"-joined set of key tokens.
	Combination
)

func (k Kind) String() string {
	if k == Combination {
		return "combination"
	}
	return "single"
}

// Command is the result of a successful validation.
type Command struct {
	// Normalized is the lower-cased, trimmed form. For single keys it is the
	// alias-resolved canonical token.
	Normalized string
	Kind       Kind
}

// aliases maps common variations to the canonical key name.
var aliases = map[string]string{
	"del":   "delete",
	"esc":   "escape",
	"ins":   "insert",
	"ret":   "return",
	"enter": "return",
	"pgup":  "pageup",
	"pgdn":  "pagedown",
	"break": "pause",
	"space": "spacebar",
}

// allowedSingleKeys is the allow-list for single key presses, including the
// common variations of each key.
var allowedSingleKeys = map[string]bool{
	// Function keys
	"f1": true, "f2": true, "f3": true, "f4": true, "f5": true, "f6": true,
	"f7": true, "f8": true, "f9": true, "f10": true, "f11": true, "f12": true,

	// Navigation
	"up": true, "down": true, "left": true, "right": true,
	"pageup": true, "pgup": true, "pagedown": true, "pgdn": true,
	"home": true, "end": true,

	// Control keys
	"return": true, "enter": true,
	"escape": true, "esc": true,
	"tab":      true,
	"spacebar": true, "space": true,
	"backspace": true,
	"delete":    true, "del": true,
	"insert": true, "ins": true,
	"pause": true, "break": true,
}

// Validate normalizes raw and checks it against the alias table and the
// allow-list. It never panics; every outcome is a typed error or a Command.
func Validate(raw string) (Command, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Command{}, ErrEmptyCommand
	}

	if !strings.Contains(normalized, "+") {
		if canonical, ok := aliases[normalized]; ok {
			normalized = canonical
		}
		if !allowedSingleKeys[normalized] {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownSingleKey, normalized)
		}
		return Command{Normalized: normalized, Kind: Single}, nil
	}

	// Combinations are format-checked only: every "+"-separated segment must
	// be non-blank. Individual keys are deliberately not allow-listed.
	for _, part := range strings.Split(normalized, "+") {
		if strings.TrimSpace(part) == "" {
			return Command{}, fmt.Errorf("%w: %q", ErrMalformedCombination, raw)
		}
	}
	return Command{Normalized: normalized, Kind: Combination}, nil
}

// Aliases returns a copy of the alias table, keyed by alias token.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}
