package action

import (
	"encoding/json"
	"fmt"
)

func (w Wheel) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      Kind      `json:"type"`
		Direction Direction `json:"direction"`
		Clicks    int       `json:"clicks"`
		Name      string    `json:"name"`
		Pause     float64   `json:"pause"`
	}{KindWheel, w.Direction, w.Clicks, w.Name, w.Pause})
}

func (c Click) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        Kind        `json:"type"`
		Name        string      `json:"name"`
		Coordinates Coordinates `json:"coordinates"`
		Pause       float64     `json:"pause"`
	}{KindClick, c.Name, c.Coordinates, c.Pause})
}

func (c RightClick) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        Kind        `json:"type"`
		Name        string      `json:"name"`
		Coordinates Coordinates `json:"coordinates"`
		Pause       float64     `json:"pause"`
	}{KindRightClick, c.Name, c.Coordinates, c.Pause})
}

func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  Kind    `json:"type"`
		Value string  `json:"value"`
		Name  string  `json:"name"`
		Pause float64 `json:"pause"`
	}{KindText, t.Value, t.Name, t.Pause})
}

func (k Keys) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  Kind    `json:"type"`
		Value string  `json:"value"`
		Name  string  `json:"name"`
		Pause float64 `json:"pause"`
	}{KindKeys, k.Value, k.Name, k.Pause})
}

// UnmarshalRecord decodes one persisted action object into its concrete
// record type based on the "type" field.
func UnmarshalRecord(data []byte) (Record, error) {
	var env struct {
		Type        Kind        `json:"type"`
		Name        string      `json:"name"`
		Pause       float64     `json:"pause"`
		Direction   Direction   `json:"direction"`
		Clicks      int         `json:"clicks"`
		Coordinates Coordinates `json:"coordinates"`
		Value       string      `json:"value"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode action: %w", err)
	}
	switch env.Type {
	case KindWheel:
		return Wheel{Direction: env.Direction, Clicks: env.Clicks, Name: env.Name, Pause: env.Pause}, nil
	case KindClick:
		return Click{Name: env.Name, Coordinates: env.Coordinates, Pause: env.Pause}, nil
	case KindRightClick:
		return RightClick{Name: env.Name, Coordinates: env.Coordinates, Pause: env.Pause}, nil
	case KindText:
		return Text{Value: env.Value, Name: env.Name, Pause: env.Pause}, nil
	case KindKeys:
		return Keys{Value: env.Value, Name: env.Name, Pause: env.Pause}, nil
	default:
		return nil, fmt.Errorf("decode action: unknown type %q", env.Type)
	}
}
