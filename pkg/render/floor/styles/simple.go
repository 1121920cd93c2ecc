package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Simple is a clean flat style: white canvas, light gray grid, slate
// outlines. The default for CLI output.
type Simple struct{}

const (
	simpleBackground = "#ffffff"
	simpleGridMinor  = "#eef1f5"
	simpleGridMajor  = "#d8dee7"
	simpleTableFill  = "#f8fafc"
	simpleStroke     = "#334155"
	simpleSeatFill   = "#e2e8f0"
	simpleText       = "#1e293b"
)

// RenderDefs writes nothing; the simple style needs no defs.
func (Simple) RenderDefs(buf *bytes.Buffer) {}

// RenderBackground fills the canvas.
func (Simple) RenderBackground(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		width, height, simpleBackground)
}

// RenderGridLine draws a thin line, slightly darker at the major pitch.
func (Simple) RenderGridLine(buf *bytes.Buffer, gl GridLine) {
	color := simpleGridMinor
	width := 1.0
	if gl.Major {
		color = simpleGridMajor
		width = 1.5
	}
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>`+"\n",
		gl.X1, gl.Y1, gl.X2, gl.Y2, color, width)
}

// RenderTable draws the table footprint: a circle for round tables, a
// rotated rect otherwise.
func (Simple) RenderTable(buf *bytes.Buffer, t Table) {
	if t.Shape == "round" {
		fmt.Fprintf(buf, `  <circle id="table-%s" class="table" cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
			xmlEscape(t.ID), t.CX, t.CY, t.W/2, simpleTableFill, simpleStroke)
		return
	}
	fmt.Fprintf(buf, `  <rect id="table-%s" class="table" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s" stroke="%s" stroke-width="2"%s/>`+"\n",
		xmlEscape(t.ID), t.CX-t.W/2, t.CY-t.H/2, t.W, t.H, simpleTableFill, simpleStroke, rotateAttr(t))
}

// RenderSeat draws a small filled circle.
func (Simple) RenderSeat(buf *bytes.Buffer, s Seat) {
	fmt.Fprintf(buf, `  <circle class="seat" data-table="%s" data-seat="%d" cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="1.5"/>`+"\n",
		xmlEscape(s.TableID), s.Number, s.CX, s.CY, s.R, simpleSeatFill, simpleStroke)
}

// RenderLabel centers the table name on the table.
func (Simple) RenderLabel(buf *bytes.Buffer, t Table) {
	if t.Label == "" {
		return
	}
	fmt.Fprintf(buf, `  <text class="table-label" x="%.1f" y="%.1f" font-family="Helvetica, Arial, sans-serif" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		t.CX, t.CY, t.FontSize, simpleText, xmlEscape(t.Label))
}

// rotateAttr returns an SVG transform attribute for a rotated table, or the
// empty string for axis-aligned tables.
func rotateAttr(t Table) string {
	if t.RotationDeg == 0 {
		return ""
	}
	return fmt.Sprintf(` transform="rotate(%.1f %.1f %.1f)"`, t.RotationDeg, t.CX, t.CY)
}

// xmlEscape escapes text for safe embedding in SVG attributes and content.
func xmlEscape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// Ensure Simple implements Style.
var _ Style = Simple{}
