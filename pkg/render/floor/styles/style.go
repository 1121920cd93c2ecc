package styles

import "bytes"

// Style defines the visual appearance for floor plan rendering.
// Implementations control how the background, grid, tables, seats, and
// labels are drawn. All coordinates handed to a Style are in screen space.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderBackground writes the canvas background.
	RenderBackground(buf *bytes.Buffer, width, height float64)
	// RenderGridLine writes a single grid line.
	RenderGridLine(buf *bytes.Buffer, gl GridLine)
	// RenderTable writes the SVG for a single table shape.
	RenderTable(buf *bytes.Buffer, t Table)
	// RenderSeat writes the SVG for a single seat.
	RenderSeat(buf *bytes.Buffer, s Seat)
	// RenderLabel writes the table's name text.
	RenderLabel(buf *bytes.Buffer, t Table)
}

// Table contains all data needed to render a single table.
type Table struct {
	ID          string  // Table identifier
	Label       string  // Display name
	Shape       string  // "round", "rect", or "square"
	CX, CY      float64 // Center in screen coordinates
	W, H        float64 // Screen-space dimensions
	RotationDeg float64 // Clockwise rotation about the center
	FontSize    float64 // Label font size, already zoom-scaled
}

// Seat contains positioning data for rendering a single seat.
type Seat struct {
	TableID string  // Owning table
	CX, CY  float64 // Center in screen coordinates
	R       float64 // Radius, already zoom-scaled
	Number  int     // Seat number within the table
}

// GridLine is a full-height or full-width line across the canvas.
type GridLine struct {
	X1, Y1, X2, Y2 float64
	Major          bool // Emphasized line at the coarser pitch
}
