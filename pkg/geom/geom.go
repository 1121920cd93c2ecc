// Package geom provides the 2D vector math shared by the seating and
// viewport engines: points, clockwise rotation in a y-down coordinate
// system, grid snapping, and linear interpolation helpers.
package geom

import "math"

// Vec2 is a point or vector in either world or screen space. Which space
// applies is determined by context; values from different spaces must never
// be mixed without an explicit transform.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the componentwise sum v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns the componentwise difference v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// RotateDeg rotates p by the given angle in degrees about the origin.
// Rotation is clockwise in a y-down coordinate system:
//
//	x' = x·cosθ − y·sinθ
//	y' = x·sinθ + y·cosθ
//
// The seating engine depends on this exact convention: seat layouts are
// computed axis-aligned and then rotated rigidly, so relative spacing is
// invariant under rotation.
func RotateDeg(p Vec2, degrees float64) Vec2 {
	theta := degrees * math.Pi / 180
	sin, cos := math.Sincos(theta)
	return Vec2{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// DefaultGridSize is the canvas grid pitch in world units, shared by grid
// snapping and grid-line enumeration.
const DefaultGridSize = 20.0

// Clamp constrains v to the inclusive range [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Snap rounds v to the nearest multiple of gridSize.
func Snap(v, gridSize float64) float64 {
	return math.Round(v/gridSize) * gridSize
}

// SnapPoint rounds each coordinate of p independently to the nearest
// multiple of gridSize.
func SnapPoint(p Vec2, gridSize float64) Vec2 {
	return Vec2{X: Snap(p.X, gridSize), Y: Snap(p.Y, gridSize)}
}

// Lerp linearly interpolates between a and b by t. t is not clamped;
// values outside [0, 1] extrapolate.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec2 linearly interpolates each component of a and b by t.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}
