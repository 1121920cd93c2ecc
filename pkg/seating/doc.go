// Package seating implements deterministic seat placement around tables.
//
// Given a [chart.Table], [Positions] computes an ordered list of seat
// placements: position relative to the table center, absolute facing angle,
// and a contiguous seat number starting at 1. The function is pure —
// identical shape, seat count, size, rotation, and seat config always yield
// identical output, and the table's identity and world position never
// affect the relative layout. Translation to world space is the caller's
// job (renderer, pipeline).
//
// # Placement Policies
//
//   - Round: seats ring the table at radius width/2 + [SeatOffset], evenly
//     spaced, numbered in circular order.
//   - Square: seats are dealt across the four sides top→right→bottom→left,
//     the remainder going to the earlier sides, evenly spaced within each
//     side.
//   - Rect: perimeter distribution by default; when a table carries a seat
//     config and has more than four seats, up to four seats are pinned to
//     the table ends first (long axis before short axis) and the rest are
//     split across the two long edges.
//
// A rectangular table with a seat config whose CornerSeats is zero still
// routes through the corner-priority policy; only the absence of the config
// selects perimeter distribution. This mirrors the editor's behavior and is
// covered by tests as a deliberate edge case.
//
// Rotation is always applied last, as a rigid rotation of every placed seat
// about the table center, so rotating a table never changes seat spacing.
package seating
