// Package chart provides the domain model and serialization types for
// seating charts.
//
// This package defines the canonical wire format for tableplan's chart data,
// used for JSON files, API requests, and caching.
//
// # Architecture
//
// The package sits at the serialization boundary between external input and
// the pure geometry engines:
//
//   - [Chart], [Table]: Input types (this package)
//   - pkg/seating: seat placement for a single [Table]
//   - pkg/viewport: screen/world transforms for a rendered chart
//   - [Layout]: computed output (absolute seat positions, fitted transform)
//
// # Core Types
//
//   - [Chart]: a named room with its tables
//   - [Document]: one or more rooms in a single file
//   - [Table]: a single table (shape, size, position, rotation, seats)
//   - [SeatConfig]: optional corner-seat annotation for rectangular tables
//
// # Chart Serialization
//
// Charts use a simple JSON format:
//
//	{
//	  "name": "Main Hall",
//	  "tables": [
//	    {"shape": "round", "position": {"x": 100, "y": 100},
//	     "size": {"width": 100, "height": 100}, "seat_count": 8}
//	  ]
//	}
//
// Common operations:
//
//	doc, _ := chart.ReadDocumentFile("hall.json")  // File → Document
//	c, _ := doc.Room("Main Hall")                  // Pick a room
//	min, max, ok := seating.ChartBounds(c.Tables)  // World-space extent
//
// Tables missing an ID are assigned a fresh UUID during unmarshalling so
// every table is addressable downstream.
//
// # Validation
//
// [Chart.Validate] enforces the schema contract the geometry engines assume:
// known shapes, positive sizes, and seat counts in [1, 20]. The engines
// themselves do not re-validate.
//
// # Concurrency
//
// All types are plain values; functions are safe for concurrent use.
package chart
