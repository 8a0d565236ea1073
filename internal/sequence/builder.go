// Package sequence builds validated action records from caller input and
// appends them to the registry in insertion order.
package sequence

import (
	"errors"
	"fmt"

	"github.com/seqr-cli/seqr/internal/action"
	"github.com/seqr-cli/seqr/internal/keycmd"
	"github.com/seqr-cli/seqr/internal/store"
)

// Builder errors. Key command failures propagate the keycmd errors unchanged.
var (
	ErrUnknownActionKind = errors.New("unknown action kind")
	ErrMissingField      = errors.New("missing action field")
	ErrInvalidClicks     = errors.New("invalid click count")
)

// WheelValue carries caller input for a wheel action.
type WheelValue struct {
	Direction string
	// Clicks of 0 defaults to 1.
	Clicks int
}

// ElementValue carries caller input for click actions, usually taken from a
// detector element.
type ElementValue struct {
	Name        string
	Coordinates action.Coordinates
}

// Added describes a successful AddAction for caller confirmation.
type Added struct {
	ID    string
	Name  string
	Pause float64
}

// Builder appends actions to a registry.
type Builder struct {
	reg *store.Registry
}

// NewBuilder returns a Builder over reg.
func NewBuilder(reg *store.Registry) *Builder {
	return &Builder{reg: reg}
}

// AddAction validates value for the given kind, allocates the next action id,
// appends the record, and persists the registry. The id is derived from the
// current sequence length, so a failed add leaves no gap in numbering: the
// next successful add reuses the same index.
func (b *Builder) AddAction(kind action.Kind, value any, pause float64) (Added, error) {
	var rec action.Record

	switch kind {
	case action.KindWheel:
		v, ok := value.(WheelValue)
		if !ok {
			return Added{}, fmt.Errorf("%w: wheel action needs a direction and click count", ErrMissingField)
		}
		dir, err := action.ParseDirection(v.Direction)
		if err != nil {
			return Added{}, err
		}
		if v.Clicks < 0 {
			return Added{}, fmt.Errorf("%w: %d", ErrInvalidClicks, v.Clicks)
		}
		clicks := v.Clicks
		if clicks == 0 {
			clicks = 1
		}
		rec = action.NewWheel(dir, clicks, pause)

	case action.KindClick, action.KindRightClick:
		v, ok := value.(ElementValue)
		if !ok || v.Name == "" {
			return Added{}, fmt.Errorf("%w: click action needs an element name and coordinates", ErrMissingField)
		}
		if kind == action.KindClick {
			rec = action.NewClick(v.Name, v.Coordinates, pause)
		} else {
			rec = action.NewRightClick(v.Name, v.Coordinates, pause)
		}

	case action.KindText:
		v, ok := value.(string)
		if !ok {
			return Added{}, fmt.Errorf("%w: text action needs a string value", ErrMissingField)
		}
		rec = action.NewText(v, pause)

	case action.KindKeys:
		v, ok := value.(string)
		if !ok {
			return Added{}, fmt.Errorf("%w: keys action needs a string value", ErrMissingField)
		}
		if _, err := keycmd.Validate(v); err != nil {
			return Added{}, err
		}
		rec = action.NewKeys(v, pause)

	default:
		return Added{}, fmt.Errorf("%w: %q", ErrUnknownActionKind, kind)
	}

	id := fmt.Sprintf("action_%d", b.reg.Len())
	if err := b.reg.Append(id, rec); err != nil {
		return Added{}, err
	}
	return Added{ID: id, Name: rec.DisplayName(), Pause: pause}, nil
}

// Reset clears the sequence and persists the empty document. Resetting an
// already empty sequence persists again; the operation is idempotent.
func (b *Builder) Reset() error {
	return b.reg.Reset()
}
