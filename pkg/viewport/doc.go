// Package viewport implements the screen/world coordinate transform engine
// for the seating-chart canvas.
//
// A [Transform] defines the affine map from world space to screen space:
//
//	screen = world · zoom + pan
//
// All functions are pure: state (the current transform, the viewport size)
// is owned by the caller and passed explicitly. Nothing here panics for
// finite numeric input.
//
// # Operations
//
//   - [ScreenToWorld], [WorldToScreen]: exact inverse coordinate conversions
//   - [WorldBounds]: the world rectangle visible in a viewport
//   - [FitTransform]: zoom/pan that frames a world bounds with padding
//   - [ZoomAtPoint]: zoom keeping a screen anchor point fixed
//   - [GridLines]: visible grid line enumeration with major tagging
//   - [LerpTransform]: linear easing between transforms for animation
//
// # Resource Bounds
//
// Zoom is clamped to [MinZoom, MaxZoom] by every operation that produces a
// transform, and grid enumeration is capped at [MaxGridLines] per axis.
// Both caps are deliberate guards against degenerate zoom input, not bugs.
package viewport
