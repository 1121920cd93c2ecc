package chart

import (
	"encoding/json"
	"os"

	"github.com/tableplan/tableplan/pkg/errors"
	"github.com/tableplan/tableplan/pkg/geom"
	"github.com/tableplan/tableplan/pkg/viewport"
)

// =============================================================================
// Layout - Computed Seating Output
// =============================================================================

// Rect is an axis-aligned rectangle in world space.
type Rect struct {
	Min geom.Vec2 `json:"min"`
	Max geom.Vec2 `json:"max"`
}

// Seat is a computed seat placement in absolute world coordinates.
// Angle is the facing direction in radians; Number starts at 1 and is
// contiguous per table.
type Seat struct {
	Position geom.Vec2 `json:"position"`
	Angle    float64   `json:"angle"`
	Number   int       `json:"number"`
}

// TableLayout pairs a table with its computed geometry.
type TableLayout struct {
	Table  Table  `json:"table"`
	Bounds Rect   `json:"bounds"`
	Seats  []Seat `json:"seats"`
}

// Layout is the serialization format for a computed seating layout: every
// table's seats in world space, the world extent of the room, and the
// viewport transform that frames it.
type Layout struct {
	Name      string             `json:"name,omitempty"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Bounds    Rect               `json:"bounds"`
	Transform viewport.Transform `json:"transform"`
	Tables    []TableLayout      `json:"tables"`
}

// SeatTotal returns the number of seats across all tables.
func (l *Layout) SeatTotal() int {
	total := 0
	for i := range l.Tables {
		total += len(l.Tables[i].Seats)
	}
	return total
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal layout")
	}
	if len(l.Tables) == 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidFormat, "layout must contain tables")
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return Layout{}, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return UnmarshalLayout(data)
}
