// Package floor renders computed seating layouts as final output formats.
//
// # Overview
//
// A renderer transforms a [chart.Layout] into a document:
//
//   - SVG: the floor plan as scalable vector graphics with hover
//     interactivity, via [RenderSVG]
//   - JSON: layout data export for external tools, via [RenderJSON]
//
// The layout's own viewport transform frames the content, so a layout
// produced with fit-to-bounds renders centered with padding and a layout
// carrying an editor's live transform renders exactly what the editor shows.
//
// # SVG Options
//
//   - [WithStyle]: visual style ([styles.Simple] or [styles.Blueprint])
//   - [WithGrid] / [WithGridSize]: draw the background grid
//   - [WithSeatNumbers]: label each seat with its number
//
// Basic usage:
//
//	svg := floor.RenderSVG(layout,
//	    floor.WithStyle(styles.Blueprint{}),
//	    floor.WithGrid(),
//	)
//
// # Adding New Formats
//
// To add a new output format, create a renderer function following the
// pattern func RenderFoo(l chart.Layout, opts ...FooOption) ([]byte, error),
// read l.Tables for positioned tables and seats, l.Transform for framing,
// and register it in internal/cli for CLI support.
package floor
