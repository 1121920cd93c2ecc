package viewport

import (
	"math"

	"github.com/tableplan/tableplan/pkg/geom"
)

// DefaultMajorEvery tags every Nth grid line as major.
const DefaultMajorEvery = 5

// MaxGridLines caps enumeration per axis. Near-minimum zoom over a large
// viewport can request tens of thousands of lines; enumeration stops at the
// cap instead of erroring.
const MaxGridLines = 400

// GridLine is a single grid line at a world coordinate, perpendicular to
// the axis it belongs to.
type GridLine struct {
	Coord float64 `json:"coord"`
	Major bool    `json:"major"`
}

// Grid holds the grid lines visible in a viewport plus the world bounds
// they cover.
type Grid struct {
	Verticals   []GridLine `json:"verticals"`
	Horizontals []GridLine `json:"horizontals"`
	WorldBounds Bounds     `json:"world_bounds"`
}

// GridLines enumerates the grid lines covering the world bounds visible in
// the viewport, snapped outward to multiples of gridSize. A line is major
// when its grid index (round(coord/gridSize)) is a multiple of majorEvery.
//
// Enumeration is capped at MaxGridLines per axis.
func GridLines(vp Viewport, t Transform, gridSize float64, majorEvery int) Grid {
	wb := WorldBounds(vp, t)
	return Grid{
		Verticals:   axisLines(wb.Min.X, wb.Max.X, gridSize, majorEvery),
		Horizontals: axisLines(wb.Min.Y, wb.Max.Y, gridSize, majorEvery),
		WorldBounds: wb,
	}
}

// DefaultGridLines enumerates grid lines with the standard grid pitch and
// major interval.
func DefaultGridLines(vp Viewport, t Transform) Grid {
	return GridLines(vp, t, geom.DefaultGridSize, DefaultMajorEvery)
}

// axisLines walks from the first grid multiple at or below min to the first
// at or above max, stopping at the line cap.
func axisLines(min, max, gridSize float64, majorEvery int) []GridLine {
	start := math.Floor(min/gridSize) * gridSize
	end := math.Ceil(max/gridSize) * gridSize

	var lines []GridLine
	for coord := start; coord <= end; coord += gridSize {
		if len(lines) >= MaxGridLines {
			break
		}
		index := int(math.Round(coord / gridSize))
		lines = append(lines, GridLine{
			Coord: coord,
			Major: index%majorEvery == 0,
		})
	}
	return lines
}
