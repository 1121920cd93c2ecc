package viewport

import (
	"github.com/tableplan/tableplan/pkg/geom"
)

// Zoom limits. Every operation that produces a Transform clamps into this
// range, so a Transform in the wild always satisfies it.
const (
	MinZoom = 0.1
	MaxZoom = 8.0
)

// DefaultFitPadding is the margin in screen pixels that FitTransform leaves
// on each side of the fitted bounds.
const DefaultFitPadding = 20.0

// Transform defines the world→screen affine map: screen = world·Zoom + Pan.
// Pan is in screen-space pixels.
type Transform struct {
	Zoom float64   `json:"zoom"`
	Pan  geom.Vec2 `json:"pan"`
}

// Identity is the neutral transform: world coordinates map directly to
// screen pixels.
var Identity = Transform{Zoom: 1}

// Viewport is the rendering surface size in pixels. Callers supply it fresh
// each frame; it is never stored here.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bounds is a world-space rectangle with precomputed extent.
type Bounds struct {
	Min    geom.Vec2 `json:"min"`
	Max    geom.Vec2 `json:"max"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
}

// ScreenToWorld converts a screen-space point to world space.
func ScreenToWorld(screen geom.Vec2, t Transform) geom.Vec2 {
	return geom.Vec2{
		X: (screen.X - t.Pan.X) / t.Zoom,
		Y: (screen.Y - t.Pan.Y) / t.Zoom,
	}
}

// WorldToScreen converts a world-space point to screen space.
// It is the exact inverse of ScreenToWorld for the same transform.
func WorldToScreen(world geom.Vec2, t Transform) geom.Vec2 {
	return geom.Vec2{
		X: world.X*t.Zoom + t.Pan.X,
		Y: world.Y*t.Zoom + t.Pan.Y,
	}
}

// WorldBounds returns the world-space rectangle visible in the viewport
// under the given transform, derived from the screen corners (0,0) and
// (width, height).
func WorldBounds(vp Viewport, t Transform) Bounds {
	min := ScreenToWorld(geom.Vec2{}, t)
	max := ScreenToWorld(geom.Vec2{X: vp.Width, Y: vp.Height}, t)
	return Bounds{
		Min:    min,
		Max:    max,
		Width:  max.X - min.X,
		Height: max.Y - min.Y,
	}
}

// FitTransform computes the transform that fits a world-space bounding box
// into the viewport with padding pixels of margin on each side, centered.
//
// Degenerate bounds (zero or negative width/height) yield the identity
// transform rather than an error.
func FitTransform(min, max geom.Vec2, vp Viewport, padding float64) Transform {
	boundsW := max.X - min.X
	boundsH := max.Y - min.Y
	if boundsW <= 0 || boundsH <= 0 {
		return Identity
	}

	availW := vp.Width - 2*padding
	availH := vp.Height - 2*padding

	zoom := availW / boundsW
	if h := availH / boundsH; h < zoom {
		zoom = h
	}
	zoom = geom.Clamp(zoom, MinZoom, MaxZoom)

	// Pan so the bounds' center lands on the viewport's center.
	center := geom.Vec2{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}
	return Transform{
		Zoom: zoom,
		Pan: geom.Vec2{
			X: vp.Width/2 - center.X*zoom,
			Y: vp.Height/2 - center.Y*zoom,
		},
	}
}

// ZoomAtPoint produces a transform with the new zoom level, keeping the
// world point currently under the screen-space anchor fixed at the anchor.
//
// The zoom is clamped to [MinZoom, MaxZoom]. When the clamped value equals
// the current zoom, the input transform is returned unchanged so callers
// can detect no-ops by comparison.
func ZoomAtPoint(t Transform, anchor geom.Vec2, newZoom float64) Transform {
	clamped := geom.Clamp(newZoom, MinZoom, MaxZoom)
	if clamped == t.Zoom {
		return t
	}

	// The anchor's world point must re-project onto the anchor:
	// anchor = world·zoom' + pan'  =>  pan' = anchor − world·zoom'
	world := ScreenToWorld(anchor, t)
	return Transform{
		Zoom: clamped,
		Pan: geom.Vec2{
			X: anchor.X - world.X*clamped,
			Y: anchor.Y - world.Y*clamped,
		},
	}
}

// LerpTransform linearly interpolates zoom and pan between a and b.
// Zoom interpolation is linear, not geometric; the animation layer eases
// the t parameter instead.
func LerpTransform(a, b Transform, t float64) Transform {
	return Transform{
		Zoom: geom.Lerp(a.Zoom, b.Zoom, t),
		Pan:  geom.LerpVec2(a.Pan, b.Pan, t),
	}
}
