// Package action defines the closed set of automation action records that
// make up a sequence, along with their persisted JSON form.
package action

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind identifies an action record variant. The set is closed; both the
// sequence builder and the script generator switch exhaustively over it.
type Kind string

const (
	KindWheel      Kind = "wheel"
	KindClick      Kind = "click"
	KindRightClick Kind = "right_click"
	KindText       Kind = "text"
	KindKeys       Kind = "keys"
)

// ErrInvalidDirection reports a wheel direction outside up/down/left/right.
var ErrInvalidDirection = errors.New("invalid wheel direction")

// Direction is a scroll wheel direction.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// ParseDirection normalizes s (case-insensitive) into a Direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Up, Down, Left, Right:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Vertical reports whether the direction scrolls along the vertical axis.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// Coordinates is a screen position. It persists as a two-element JSON array
// to match the element detector's output shape.
type Coordinates struct {
	X int
	Y int
}

func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.X, c.Y})
}

func (c *Coordinates) UnmarshalJSON(data []byte) error {
	var arr [2]int
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("coordinates: %w", err)
	}
	c.X, c.Y = arr[0], arr[1]
	return nil
}

// Record is one unit of automation in a sequence. The display name is frozen
// at creation time so generated output stays stable even if the shared
// formatting rules change later.
type Record interface {
	Kind() Kind
	DisplayName() string
	// PauseSeconds is the delay emitted after the action body when positive.
	PauseSeconds() float64

	isRecord()
}

// Wheel scrolls the wheel a number of clicks in one direction.
type Wheel struct {
	Direction Direction
	Clicks    int
	Name      string
	Pause     float64
}

// Click moves the pointer to Coordinates and performs a primary click.
type Click struct {
	Name        string
	Coordinates Coordinates
	Pause       float64
}

// RightClick is identical in shape to Click with a secondary click.
type RightClick struct {
	Name        string
	Coordinates Coordinates
	Pause       float64
}

// Text types a literal string.
type Text struct {
	Value string
	Name  string
	Pause float64
}

// Keys presses a key or key combination. Value holds the raw command as
// supplied by the caller; normalization happens at validation and emission.
type Keys struct {
	Value string
	Name  string
	Pause float64
}

// NewWheel builds a wheel record with its frozen display name.
func NewWheel(dir Direction, clicks int, pause float64) Wheel {
	return Wheel{
		Direction: dir,
		Clicks:    clicks,
		Name:      fmt.Sprintf("Scroll %s (%d clicks)", dir, clicks),
		Pause:     pause,
	}
}

// NewClick builds a click record named after the target element.
func NewClick(name string, at Coordinates, pause float64) Click {
	return Click{Name: name, Coordinates: at, Pause: pause}
}

// NewRightClick builds a right-click record named after the target element.
func NewRightClick(name string, at Coordinates, pause float64) RightClick {
	return RightClick{Name: name, Coordinates: at, Pause: pause}
}

// NewText builds a text record. The display name truncates the value to 20
// characters with an ellipsis marker when longer.
func NewText(value string, pause float64) Text {
	display := value
	if runes := []rune(value); len(runes) > 20 {
		display = string(runes[:20]) + "..."
	}
	return Text{Value: value, Name: "Type text: " + display, Pause: pause}
}

// NewKeys builds a keys record around the raw key command.
func NewKeys(value string, pause float64) Keys {
	return Keys{Value: value, Name: "Press keys: " + value, Pause: pause}
}

func (w Wheel) Kind() Kind            { return KindWheel }
func (w Wheel) DisplayName() string   { return w.Name }
func (w Wheel) PauseSeconds() float64 { return w.Pause }
func (w Wheel) isRecord()             {}

func (c Click) Kind() Kind            { return KindClick }
func (c Click) DisplayName() string   { return c.Name }
func (c Click) PauseSeconds() float64 { return c.Pause }
func (c Click) isRecord()             {}

func (c RightClick) Kind() Kind            { return KindRightClick }
func (c RightClick) DisplayName() string   { return c.Name }
func (c RightClick) PauseSeconds() float64 { return c.Pause }
func (c RightClick) isRecord()             {}

func (t Text) Kind() Kind            { return KindText }
func (t Text) DisplayName() string   { return t.Name }
func (t Text) PauseSeconds() float64 { return t.Pause }
func (t Text) isRecord()             {}

func (k Keys) Kind() Kind            { return KindKeys }
func (k Keys) DisplayName() string   { return k.Name }
func (k Keys) PauseSeconds() float64 { return k.Pause }
func (k Keys) isRecord()             {}
