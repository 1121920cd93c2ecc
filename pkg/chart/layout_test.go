package chart

import (
	"path/filepath"
	"testing"

	"github.com/tableplan/tableplan/pkg/errors"
	"github.com/tableplan/tableplan/pkg/geom"
	"github.com/tableplan/tableplan/pkg/viewport"
)

func testLayout() Layout {
	return Layout{
		Name:      "main",
		Width:     800,
		Height:    600,
		Bounds:    Rect{Min: geom.Vec2{X: -50, Y: -50}, Max: geom.Vec2{X: 150, Y: 150}},
		Transform: viewport.Transform{Zoom: 2, Pan: geom.Vec2{X: 300, Y: 200}},
		Tables: []TableLayout{
			{
				Table:  Table{ID: "t1", Shape: ShapeRound, Size: Size{Width: 100, Height: 100}, SeatCount: 2},
				Bounds: Rect{Min: geom.Vec2{X: -50, Y: -50}, Max: geom.Vec2{X: 50, Y: 50}},
				Seats: []Seat{
					{Position: geom.Vec2{X: 80, Y: 0}, Number: 1},
					{Position: geom.Vec2{X: -80, Y: 0}, Angle: 3.14159, Number: 2},
				},
			},
		},
	}
}

func TestSeatTotal(t *testing.T) {
	l := testLayout()
	if got := l.SeatTotal(); got != 2 {
		t.Errorf("SeatTotal() = %d, want 2", got)
	}

	empty := Layout{}
	if got := empty.SeatTotal(); got != 0 {
		t.Errorf("empty SeatTotal() = %d, want 0", got)
	}
}

func TestLayoutRoundtrip(t *testing.T) {
	l := testLayout()

	data, err := MarshalLayout(l)
	if err != nil {
		t.Fatalf("MarshalLayout() error: %v", err)
	}

	got, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout() error: %v", err)
	}
	if got.Transform.Zoom != 2 {
		t.Errorf("zoom = %v, want 2", got.Transform.Zoom)
	}
	if got.SeatTotal() != 2 {
		t.Errorf("seats = %d, want 2", got.SeatTotal())
	}
}

func TestUnmarshalLayoutNoTables(t *testing.T) {
	_, err := UnmarshalLayout([]byte(`{"width": 800, "height": 600}`))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestLayoutFileRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.layout.json")

	if err := WriteLayoutFile(testLayout(), path); err != nil {
		t.Fatalf("WriteLayoutFile() error: %v", err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile() error: %v", err)
	}
	if got.Name != "main" {
		t.Errorf("name = %q, want main", got.Name)
	}
}

func TestReadLayoutFileMissing(t *testing.T) {
	_, err := ReadLayoutFile(filepath.Join(t.TempDir(), "nope.layout.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}
