package styles

import (
	"bytes"
	"fmt"
)

// Blueprint is an architectural drawing style: deep blue canvas, faint white
// grid, white outlined shapes with no fill.
type Blueprint struct{}

const (
	blueprintBackground = "#10316b"
	blueprintGridMinor  = "rgba(255,255,255,0.08)"
	blueprintGridMajor  = "rgba(255,255,255,0.18)"
	blueprintStroke     = "#f4f6fb"
)

// RenderDefs writes a subtle paper-grain filter used by the background.
func (Blueprint) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="blueprint-grain">
      <feTurbulence type="fractalNoise" baseFrequency="0.8" numOctaves="2" result="noise"/>
      <feColorMatrix in="noise" type="matrix" values="0 0 0 0 1  0 0 0 0 1  0 0 0 0 1  0 0 0 0.03 0"/>
      <feComposite operator="over" in2="SourceGraphic"/>
    </filter>
  </defs>
`)
}

// RenderBackground fills the canvas with the blueprint blue.
func (Blueprint) RenderBackground(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s" filter="url(#blueprint-grain)"/>`+"\n",
		width, height, blueprintBackground)
}

// RenderGridLine draws a translucent white line.
func (Blueprint) RenderGridLine(buf *bytes.Buffer, gl GridLine) {
	color := blueprintGridMinor
	if gl.Major {
		color = blueprintGridMajor
	}
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
		gl.X1, gl.Y1, gl.X2, gl.Y2, color)
}

// RenderTable draws the table outline with no fill.
func (Blueprint) RenderTable(buf *bytes.Buffer, t Table) {
	if t.Shape == "round" {
		fmt.Fprintf(buf, `  <circle id="table-%s" class="table" cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
			xmlEscape(t.ID), t.CX, t.CY, t.W/2, blueprintStroke)
		return
	}
	fmt.Fprintf(buf, `  <rect id="table-%s" class="table" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="1.5"%s/>`+"\n",
		xmlEscape(t.ID), t.CX-t.W/2, t.CY-t.H/2, t.W, t.H, blueprintStroke, rotateAttr(t))
}

// RenderSeat draws a dashed outline circle.
func (Blueprint) RenderSeat(buf *bytes.Buffer, s Seat) {
	fmt.Fprintf(buf, `  <circle class="seat" data-table="%s" data-seat="%d" cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="1" stroke-dasharray="3 2"/>`+"\n",
		xmlEscape(s.TableID), s.Number, s.CX, s.CY, s.R, blueprintStroke)
}

// RenderLabel centers the table name in a drafting hand.
func (Blueprint) RenderLabel(buf *bytes.Buffer, t Table) {
	if t.Label == "" {
		return
	}
	fmt.Fprintf(buf, `  <text class="table-label" x="%.1f" y="%.1f" font-family="'Courier New', monospace" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="central" letter-spacing="1">%s</text>`+"\n",
		t.CX, t.CY, t.FontSize, blueprintStroke, xmlEscape(t.Label))
}

// Ensure Blueprint implements Style.
var _ Style = Blueprint{}
