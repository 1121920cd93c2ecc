package seating

import (
	"math"

	"github.com/tableplan/tableplan/pkg/chart"
	"github.com/tableplan/tableplan/pkg/geom"
)

// TableBounds computes the axis-aligned bounding box of a table's footprint
// in absolute world space: the width×height rectangle is rotated about the
// table center corner by corner, then translated to the table's position.
//
// Round tables use the same rectangle model — there is no shape branching
// here. Callers needing a tighter circular bound must special-case it.
func TableBounds(t chart.Table) (min, max geom.Vec2) {
	halfW := t.Size.Width / 2
	halfH := t.Size.Height / 2

	corners := [4]geom.Vec2{
		{X: -halfW, Y: -halfH},
		{X: halfW, Y: -halfH},
		{X: halfW, Y: halfH},
		{X: -halfW, Y: halfH},
	}

	min = geom.Vec2{X: math.Inf(1), Y: math.Inf(1)}
	max = geom.Vec2{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, c := range corners {
		p := geom.RotateDeg(c, t.RotationDeg)
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}

	return min.Add(t.Position), max.Add(t.Position)
}

// ChartBounds reduces TableBounds over a table collection, returning the
// world-space extent of the whole chart. ok is false for an empty
// collection.
func ChartBounds(tables []chart.Table) (min, max geom.Vec2, ok bool) {
	if len(tables) == 0 {
		return geom.Vec2{}, geom.Vec2{}, false
	}

	min = geom.Vec2{X: math.Inf(1), Y: math.Inf(1)}
	max = geom.Vec2{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, t := range tables {
		tMin, tMax := TableBounds(t)
		min.X = math.Min(min.X, tMin.X)
		min.Y = math.Min(min.Y, tMin.Y)
		max.X = math.Max(max.X, tMax.X)
		max.Y = math.Max(max.Y, tMax.Y)
	}
	return min, max, true
}

// SnapToGrid rounds each coordinate of p to the nearest multiple of the
// default grid pitch.
func SnapToGrid(p geom.Vec2) geom.Vec2 {
	return geom.SnapPoint(p, geom.DefaultGridSize)
}
