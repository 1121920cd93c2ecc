package chart

import (
	"github.com/google/uuid"

	"github.com/tableplan/tableplan/pkg/errors"
	"github.com/tableplan/tableplan/pkg/geom"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Shape identifies the footprint of a table. The set is closed: the seat
// geometry engine fails loudly on anything else.
type Shape string

// Supported table shapes.
const (
	ShapeRound  Shape = "round"
	ShapeRect   Shape = "rect"
	ShapeSquare Shape = "square"
)

// Valid reports whether s is one of the supported shapes.
func (s Shape) Valid() bool {
	switch s {
	case ShapeRound, ShapeRect, ShapeSquare:
		return true
	}
	return false
}

// =============================================================================
// Table - Input Entity for Seat Geometry
// =============================================================================

// Size holds a table's footprint dimensions in world units.
// For round tables only Width is used (as the diameter); for square tables
// Width is authoritative by convention though equality is not enforced.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SeatConfig annotates a rectangular table with a corner-seat preference.
//
// Presence matters: a nil *SeatConfig selects the perimeter-distribution
// fallback, while a present config with CornerSeats == 0 still routes
// through the corner-priority policy. This distinction is deliberate and
// preserved from the editor's behavior.
type SeatConfig struct {
	CornerSeats int `json:"corner_seats"`
}

// Table is the sole input entity to seat geometry. The geometry engines
// treat it as a read-only projection; nothing here is mutated.
type Table struct {
	ID          string      `json:"id,omitempty"`
	Name        string      `json:"name,omitempty"`
	Shape       Shape       `json:"shape"`
	Position    geom.Vec2   `json:"position"`
	Size        Size        `json:"size"`
	SeatCount   int         `json:"seat_count"`
	RotationDeg float64     `json:"rotation,omitempty"`
	Seats       *SeatConfig `json:"seat_config,omitempty"`
}

// Validate checks the schema contract the geometry engines assume.
func (t *Table) Validate() error {
	if !t.Shape.Valid() {
		return errors.New(errors.ErrCodeInvalidShape, "unsupported table shape: %q", t.Shape)
	}
	if err := errors.ValidateTableSize(t.Size.Width, t.Size.Height); err != nil {
		return err
	}
	if err := errors.ValidateSeatCount(t.SeatCount); err != nil {
		return err
	}
	if t.Seats != nil {
		if err := errors.ValidateCornerSeats(t.Seats.CornerSeats); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Chart - A Room Full of Tables
// =============================================================================

// Chart is a named room and its tables.
type Chart struct {
	Name   string  `json:"name,omitempty"`
	Tables []Table `json:"tables"`
}

// Validate checks the chart name and every table.
// Tables are validated in order; the first failure is returned with the
// table's position in the file for context.
func (c *Chart) Validate() error {
	if c.Name != "" {
		if err := errors.ValidateChartName(c.Name); err != nil {
			return err
		}
	}
	for i := range c.Tables {
		if err := c.Tables[i].Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidChart, err, "table %d (%s)", i, c.Tables[i].ID)
		}
	}
	return nil
}

// Table returns the table with the given ID, if present.
func (c *Chart) Table(id string) (*Table, bool) {
	for i := range c.Tables {
		if c.Tables[i].ID == id {
			return &c.Tables[i], true
		}
	}
	return nil, false
}

// assignIDs gives every table without an ID a fresh UUID so downstream
// consumers (renderer, API responses) can address tables individually.
func (c *Chart) assignIDs() {
	for i := range c.Tables {
		if c.Tables[i].ID == "" {
			c.Tables[i].ID = uuid.NewString()
		}
	}
}

// =============================================================================
// Document - One or More Rooms per File
// =============================================================================

// Document is the top-level file format: one or more rooms.
// A file containing a bare chart object is read as a single-room document.
type Document struct {
	Rooms []Chart `json:"rooms"`
}

// Room returns the room with the given name.
// An empty name selects the only room of a single-room document.
func (d *Document) Room(name string) (*Chart, error) {
	if name == "" {
		if len(d.Rooms) == 1 {
			return &d.Rooms[0], nil
		}
		return nil, errors.New(errors.ErrCodeRoomNotFound, "document has %d rooms, specify one by name", len(d.Rooms))
	}
	for i := range d.Rooms {
		if d.Rooms[i].Name == name {
			return &d.Rooms[i], nil
		}
	}
	return nil, errors.New(errors.ErrCodeRoomNotFound, "no room named %q", name)
}

// Validate checks every room.
func (d *Document) Validate() error {
	if len(d.Rooms) == 0 {
		return errors.New(errors.ErrCodeInvalidChart, "document contains no rooms")
	}
	for i := range d.Rooms {
		if err := d.Rooms[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
