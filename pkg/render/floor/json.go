package floor

import (
	"encoding/json"

	"github.com/tableplan/tableplan/pkg/chart"
	"github.com/tableplan/tableplan/pkg/geom"
	"github.com/tableplan/tableplan/pkg/viewport"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style    string
	withGrid bool
	gridSize float64
}

// WithJSONStyle records the style name (e.g. "simple", "blueprint") in the
// JSON output for documentation or round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONGrid includes the computed grid lines in the JSON output.
func WithJSONGrid() JSONOption {
	return func(r *jsonRenderer) { r.withGrid = true; r.gridSize = geom.DefaultGridSize }
}

type jsonOutput struct {
	Name      string             `json:"name,omitempty"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Style     string             `json:"style,omitempty"`
	Bounds    chart.Rect         `json:"bounds"`
	Transform viewport.Transform `json:"transform"`
	Tables    []jsonTable        `json:"tables"`
	Grid      *jsonGrid          `json:"grid,omitempty"`
}

type jsonTable struct {
	ID       string     `json:"id"`
	Name     string     `json:"name,omitempty"`
	Shape    string     `json:"shape"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	Rotation float64    `json:"rotation,omitempty"`
	Bounds   chart.Rect `json:"bounds"`
	Seats    []jsonSeat `json:"seats"`
}

type jsonSeat struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Angle  float64 `json:"angle"`
	Number int     `json:"number"`
}

type jsonGrid struct {
	Size        float64  `json:"size"`
	MajorEvery  int      `json:"major_every"`
	Verticals   []jsonGL `json:"verticals"`
	Horizontals []jsonGL `json:"horizontals"`
}

type jsonGL struct {
	Coord float64 `json:"coord"`
	Major bool    `json:"major,omitempty"`
}

// RenderJSON exports the layout as a pretty-printed JSON document: every
// table with its seats in world coordinates, the framing transform, and
// optionally the grid. This is the data interchange format for external
// tools and the server API.
func RenderJSON(l chart.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Name:      l.Name,
		Width:     l.Width,
		Height:    l.Height,
		Style:     r.style,
		Bounds:    l.Bounds,
		Transform: l.Transform,
		Tables:    buildJSONTables(l),
	}

	if r.withGrid {
		out.Grid = buildJSONGrid(l, r.gridSize)
	}

	return json.MarshalIndent(out, "", "  ")
}

func buildJSONTables(l chart.Layout) []jsonTable {
	tables := make([]jsonTable, 0, len(l.Tables))
	for _, tl := range l.Tables {
		seats := make([]jsonSeat, len(tl.Seats))
		for i, s := range tl.Seats {
			seats[i] = jsonSeat{X: s.Position.X, Y: s.Position.Y, Angle: s.Angle, Number: s.Number}
		}
		tables = append(tables, jsonTable{
			ID:       tl.Table.ID,
			Name:     tl.Table.Name,
			Shape:    string(tl.Table.Shape),
			X:        tl.Table.Position.X,
			Y:        tl.Table.Position.Y,
			Width:    tl.Table.Size.Width,
			Height:   tl.Table.Size.Height,
			Rotation: tl.Table.RotationDeg,
			Bounds:   tl.Bounds,
			Seats:    seats,
		})
	}
	return tables
}

func buildJSONGrid(l chart.Layout, size float64) *jsonGrid {
	vp := viewport.Viewport{Width: l.Width, Height: l.Height}
	grid := viewport.GridLines(vp, l.Transform, size, viewport.DefaultMajorEvery)

	out := &jsonGrid{
		Size:        size,
		MajorEvery:  viewport.DefaultMajorEvery,
		Verticals:   make([]jsonGL, len(grid.Verticals)),
		Horizontals: make([]jsonGL, len(grid.Horizontals)),
	}
	for i, gl := range grid.Verticals {
		out.Verticals[i] = jsonGL{Coord: gl.Coord, Major: gl.Major}
	}
	for i, gl := range grid.Horizontals {
		out.Horizontals[i] = jsonGL{Coord: gl.Coord, Major: gl.Major}
	}
	return out
}
