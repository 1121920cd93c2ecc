package floor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tableplan/tableplan/pkg/chart"
	"github.com/tableplan/tableplan/pkg/geom"
	"github.com/tableplan/tableplan/pkg/render/floor/styles"
	"github.com/tableplan/tableplan/pkg/viewport"
)

func testLayout() chart.Layout {
	return chart.Layout{
		Name:      "main",
		Width:     800,
		Height:    600,
		Bounds:    chart.Rect{Min: geom.Vec2{X: -80, Y: -80}, Max: geom.Vec2{X: 480, Y: 280}},
		Transform: viewport.Transform{Zoom: 1, Pan: geom.Vec2{X: 100, Y: 100}},
		Tables: []chart.TableLayout{
			{
				Table: chart.Table{
					ID:        "b",
					Name:      "Family",
					Shape:     chart.ShapeRect,
					Position:  geom.Vec2{X: 400, Y: 200},
					Size:      chart.Size{Width: 160, Height: 80},
					SeatCount: 2,
				},
				Bounds: chart.Rect{Min: geom.Vec2{X: 320, Y: 160}, Max: geom.Vec2{X: 480, Y: 240}},
				Seats: []chart.Seat{
					{Position: geom.Vec2{X: 360, Y: 130}, Angle: 1.57, Number: 1},
					{Position: geom.Vec2{X: 440, Y: 130}, Angle: 1.57, Number: 2},
				},
			},
			{
				Table: chart.Table{
					ID:        "a",
					Name:      "Head <Table>",
					Shape:     chart.ShapeRound,
					Position:  geom.Vec2{X: 0, Y: 0},
					Size:      chart.Size{Width: 100, Height: 100},
					SeatCount: 1,
				},
				Bounds: chart.Rect{Min: geom.Vec2{X: -50, Y: -50}, Max: geom.Vec2{X: 50, Y: 50}},
				Seats: []chart.Seat{
					{Position: geom.Vec2{X: 80, Y: 0}, Angle: 1.57, Number: 1},
				},
			},
		},
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testLayout()))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.0 600.0"`) {
		t.Errorf("unexpected SVG header: %s", svg[:80])
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("SVG not closed")
	}

	// Round table drawn as a circle, rect table as a rect.
	if !strings.Contains(svg, `<circle id="table-a" class="table"`) {
		t.Error("missing round table circle")
	}
	if !strings.Contains(svg, `<rect id="table-b" class="table"`) {
		t.Error("missing rect table")
	}

	// Three seats total.
	if got := strings.Count(svg, `class="seat"`); got != 3 {
		t.Errorf("seat count = %d, want 3", got)
	}

	// Labels are XML-escaped.
	if !strings.Contains(svg, "Head &lt;Table&gt;") {
		t.Error("label not escaped")
	}

	// Tables render in ID order regardless of input order.
	if strings.Index(svg, `id="table-a"`) > strings.Index(svg, `id="table-b"`) {
		t.Error("tables not sorted by ID")
	}
}

func TestRenderSVGAppliesTransform(t *testing.T) {
	l := testLayout()
	l.Transform = viewport.Transform{Zoom: 2, Pan: geom.Vec2{X: 100, Y: 100}}
	svg := string(RenderSVG(l))

	// Round table center (0,0) world lands at (100,100) screen with
	// radius 100 (width/2 * zoom).
	if !strings.Contains(svg, `cx="100.0" cy="100.0" r="100.0"`) {
		t.Error("transform not applied to round table")
	}
}

func TestRenderSVGRotation(t *testing.T) {
	l := testLayout()
	l.Tables[0].Table.RotationDeg = 45
	svg := string(RenderSVG(l))

	if !strings.Contains(svg, `transform="rotate(45.0`) {
		t.Error("missing rotation transform on rect table")
	}
}

func TestRenderSVGGrid(t *testing.T) {
	plain := string(RenderSVG(testLayout()))
	if strings.Contains(plain, "<line") {
		t.Error("grid drawn without WithGrid")
	}

	grid := string(RenderSVG(testLayout(), WithGrid()))
	if !strings.Contains(grid, "<line") {
		t.Error("WithGrid produced no grid lines")
	}
	// Both pitches present.
	if !strings.Contains(grid, `stroke-width="1.5"`) || !strings.Contains(grid, `stroke-width="1.0"`) {
		t.Error("expected both major and minor grid lines")
	}
}

func TestRenderSVGGridSize(t *testing.T) {
	fine := strings.Count(string(RenderSVG(testLayout(), WithGridSize(20))), "<line")
	coarse := strings.Count(string(RenderSVG(testLayout(), WithGridSize(80))), "<line")
	if coarse >= fine {
		t.Errorf("coarse grid has %d lines, fine grid %d; want fewer coarse lines", coarse, fine)
	}
}

func TestRenderSVGSeatNumbers(t *testing.T) {
	svg := string(RenderSVG(testLayout(), WithSeatNumbers()))
	if got := strings.Count(svg, `class="seat-number"`); got != 3 {
		t.Errorf("seat number count = %d, want 3", got)
	}
}

func TestRenderSVGBlueprintStyle(t *testing.T) {
	svg := string(RenderSVG(testLayout(), WithStyle(styles.Blueprint{})))
	if !strings.Contains(svg, "blueprint-grain") {
		t.Error("blueprint defs missing")
	}
	if !strings.Contains(svg, `fill="none"`) {
		t.Error("blueprint tables should be unfilled outlines")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	a := RenderSVG(testLayout(), WithGrid(), WithSeatNumbers())
	b := RenderSVG(testLayout(), WithGrid(), WithSeatNumbers())
	if !bytes.Equal(a, b) {
		t.Error("identical inputs produced different SVG")
	}
}
