package floor

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"

	"github.com/tableplan/tableplan/pkg/chart"
	"github.com/tableplan/tableplan/pkg/geom"
	"github.com/tableplan/tableplan/pkg/render/floor/styles"
	"github.com/tableplan/tableplan/pkg/viewport"
)

// seatRadius is the drawn seat radius in world units, scaled by the
// viewport zoom at render time.
const seatRadius = 12.0

// Label font bounds in screen units.
const (
	labelFontBase = 14.0
	labelFontMin  = 8.0
	labelFontMax  = 28.0
)

const tableInteractionCSS = `
    .table { transition: stroke-width 0.2s ease; }
    .table.highlight { stroke-width: 4; }
    .seat { transition: r 0.2s ease; }
    .seat.highlight { stroke-width: 3; }`

const tableInteractionJS = `
    function highlight(id) {
      document.querySelectorAll('.table').forEach(t => t.classList.toggle('highlight', t.id === 'table-' + id));
      document.querySelectorAll('.seat').forEach(s => s.classList.toggle('highlight', s.dataset.table === id));
    }
    function clearHighlight() {
      document.querySelectorAll('.table, .seat').forEach(el => el.classList.remove('highlight'));
    }
    document.querySelectorAll('.table').forEach(el => {
      el.addEventListener('mouseenter', () => highlight(el.id.replace('table-', '')));
      el.addEventListener('mouseleave', clearHighlight);
    });`

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       styles.Style
	showGrid    bool
	seatNumbers bool
	gridSize    float64
}

// WithStyle selects the visual style. Defaults to [styles.Simple].
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithGrid draws the background grid at the default pitch.
func WithGrid() SVGOption { return func(r *svgRenderer) { r.showGrid = true } }

// WithGridSize draws the background grid at a custom world-unit pitch.
func WithGridSize(size float64) SVGOption {
	return func(r *svgRenderer) { r.showGrid = true; r.gridSize = size }
}

// WithSeatNumbers labels each seat with its number.
func WithSeatNumbers() SVGOption { return func(r *svgRenderer) { r.seatNumbers = true } }

// RenderSVG renders a computed layout as an interactive SVG document. The
// layout's own transform frames the content; tables are drawn in stable ID
// order so output is deterministic.
func RenderSVG(l chart.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	vp := viewport.Viewport{Width: l.Width, Height: l.Height}
	tr := l.Transform

	tables := buildTables(l, tr)
	slices.SortFunc(tables, func(a, b styles.Table) int {
		return cmp.Compare(a.ID, b.ID)
	})

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	r.style.RenderDefs(&buf)
	r.style.RenderBackground(&buf, l.Width, l.Height)

	if r.showGrid {
		renderGrid(&buf, r, vp, tr)
	}

	for _, t := range tables {
		r.style.RenderTable(&buf, t)
	}
	renderSeats(&buf, &r, l, tr)
	for _, t := range tables {
		r.style.RenderLabel(&buf, t)
	}

	renderTableInteraction(&buf)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, gridSize: geom.DefaultGridSize}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// renderGrid draws the world-space grid as full-span screen lines.
func renderGrid(buf *bytes.Buffer, r svgRenderer, vp viewport.Viewport, tr viewport.Transform) {
	grid := viewport.GridLines(vp, tr, r.gridSize, viewport.DefaultMajorEvery)
	for _, gl := range grid.Verticals {
		x := viewport.WorldToScreen(geom.Vec2{X: gl.Coord}, tr).X
		r.style.RenderGridLine(buf, styles.GridLine{X1: x, Y1: 0, X2: x, Y2: vp.Height, Major: gl.Major})
	}
	for _, gl := range grid.Horizontals {
		y := viewport.WorldToScreen(geom.Vec2{Y: gl.Coord}, tr).Y
		r.style.RenderGridLine(buf, styles.GridLine{X1: 0, Y1: y, X2: vp.Width, Y2: y, Major: gl.Major})
	}
}

func renderSeats(buf *bytes.Buffer, r *svgRenderer, l chart.Layout, tr viewport.Transform) {
	for _, tl := range l.Tables {
		for _, seat := range tl.Seats {
			p := viewport.WorldToScreen(seat.Position, tr)
			s := styles.Seat{
				TableID: tl.Table.ID,
				CX:      p.X, CY: p.Y,
				R:      seatRadius * tr.Zoom,
				Number: seat.Number,
			}
			r.style.RenderSeat(buf, s)
			if r.seatNumbers {
				renderSeatNumber(buf, s)
			}
		}
	}
}

// renderSeatNumber draws the seat number centered on the seat; style
// independent so both styles stay legible.
func renderSeatNumber(buf *bytes.Buffer, s styles.Seat) {
	fmt.Fprintf(buf, `  <text class="seat-number" x="%.1f" y="%.1f" font-family="Helvetica, Arial, sans-serif" font-size="%.1f" fill="#64748b" text-anchor="middle" dominant-baseline="central">%d</text>`+"\n",
		s.CX, s.CY, s.R*1.1, s.Number)
}

func renderTableInteraction(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", tableInteractionCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", tableInteractionJS)
}

func buildTables(l chart.Layout, tr viewport.Transform) []styles.Table {
	tables := make([]styles.Table, 0, len(l.Tables))
	for _, tl := range l.Tables {
		center := viewport.WorldToScreen(tl.Table.Position, tr)
		tables = append(tables, styles.Table{
			ID:          tl.Table.ID,
			Label:       tl.Table.Name,
			Shape:       string(tl.Table.Shape),
			CX:          center.X,
			CY:          center.Y,
			W:           tl.Table.Size.Width * tr.Zoom,
			H:           tl.Table.Size.Height * tr.Zoom,
			RotationDeg: tl.Table.RotationDeg,
			FontSize:    geom.Clamp(labelFontBase*tr.Zoom, labelFontMin, labelFontMax),
		})
	}
	return tables
}
