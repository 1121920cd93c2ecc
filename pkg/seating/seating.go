package seating

import (
	"math"

	"github.com/tableplan/tableplan/pkg/chart"
	"github.com/tableplan/tableplan/pkg/errors"
	"github.com/tableplan/tableplan/pkg/geom"
)

// SeatOffset is the fixed distance in world units between a table edge and
// the center of each seat. All shapes share it.
const SeatOffset = 30.0

// maxCornerSeats bounds the corner-priority policy; a rectangle has four ends.
const maxCornerSeats = 4

// SeatPosition is a single computed seat placement.
//
// Position is relative to the table center with rotation already applied;
// Angle is the absolute facing direction in radians; Number starts at 1 and
// follows placement order.
type SeatPosition struct {
	Position geom.Vec2
	Angle    float64
	Number   int
}

// Positions computes the ordered seat placements for a table.
//
// The result has exactly t.SeatCount entries for valid seat counts; callers
// are responsible for keeping SeatCount within the schema range. An
// unrecognized shape is a programmer or data error and returns a structured
// INVALID_SHAPE error rather than silently defaulting.
func Positions(t chart.Table) ([]SeatPosition, error) {
	switch t.Shape {
	case chart.ShapeRound:
		return roundSeats(t), nil
	case chart.ShapeSquare:
		return squareSeats(t), nil
	case chart.ShapeRect:
		return rectSeats(t), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidShape, "unsupported table shape: %q", t.Shape)
}

// =============================================================================
// Round Tables
// =============================================================================

// roundSeats places seats evenly around a circle of radius width/2 +
// SeatOffset. Seat i sits at angle i·(2π/n) plus the table rotation, facing
// the seat angle + π/2, numbered in circular order.
func roundSeats(t chart.Table) []SeatPosition {
	n := t.SeatCount
	if n <= 0 {
		return nil
	}

	radius := t.Size.Width/2 + SeatOffset
	step := 2 * math.Pi / float64(n)
	rot := t.RotationDeg * math.Pi / 180

	seats := make([]SeatPosition, n)
	for i := 0; i < n; i++ {
		angle := float64(i)*step + rot
		sin, cos := math.Sincos(angle)
		seats[i] = SeatPosition{
			Position: geom.Vec2{X: radius * cos, Y: radius * sin},
			Angle:    angle + math.Pi/2,
			Number:   i + 1,
		}
	}
	return seats
}

// =============================================================================
// Square Tables
// =============================================================================

// side describes one square or rectangle side for seat placement: the span
// between its two corners, the outward offset direction, and the inward
// facing angle for seats on it.
type side struct {
	start, end geom.Vec2
	outward    geom.Vec2
	facing     float64
}

// squareSeats distributes seats across the four sides in top→right→bottom→
// left order. Width is the authoritative dimension; side k receives
// ⌊n/4⌋ plus one extra when k < n mod 4. Rotation is applied rigidly after
// placement.
func squareSeats(t chart.Table) []SeatPosition {
	n := t.SeatCount
	if n <= 0 {
		return nil
	}

	half := t.Size.Width / 2
	sides := [4]side{
		{ // top, left to right
			start: geom.Vec2{X: -half, Y: -half}, end: geom.Vec2{X: half, Y: -half},
			outward: geom.Vec2{Y: -1}, facing: math.Pi / 2,
		},
		{ // right, top to bottom
			start: geom.Vec2{X: half, Y: -half}, end: geom.Vec2{X: half, Y: half},
			outward: geom.Vec2{X: 1}, facing: math.Pi,
		},
		{ // bottom, left to right
			start: geom.Vec2{X: -half, Y: half}, end: geom.Vec2{X: half, Y: half},
			outward: geom.Vec2{Y: 1}, facing: -math.Pi / 2,
		},
		{ // left, top to bottom
			start: geom.Vec2{X: -half, Y: -half}, end: geom.Vec2{X: -half, Y: half},
			outward: geom.Vec2{X: -1}, facing: 0,
		},
	}

	base := n / 4
	extra := n % 4

	seats := make([]SeatPosition, 0, n)
	number := 1
	for k, s := range sides {
		count := base
		if k < extra {
			count++
		}
		for i := 0; i < count; i++ {
			seats = append(seats, sideSeat(s, i, count, number))
			number++
		}
	}
	return rotateSeats(seats, t.RotationDeg)
}

// sideSeat places seat i of count along a side at equal fractional
// intervals between the corners, offset outward by SeatOffset. A single
// seat lands at the midpoint.
func sideSeat(s side, i, count, number int) SeatPosition {
	frac := float64(i+1) / float64(count+1)
	pos := geom.LerpVec2(s.start, s.end, frac).Add(s.outward.Scale(SeatOffset))
	return SeatPosition{Position: pos, Angle: s.facing, Number: number}
}

// rotateSeats applies the table rotation rigidly to every seat position and
// facing angle. Placement happens axis-aligned first; keeping this as a
// separate final step is what makes seat spacing invariant under rotation.
func rotateSeats(seats []SeatPosition, degrees float64) []SeatPosition {
	if degrees == 0 {
		return seats
	}
	rad := degrees * math.Pi / 180
	for i := range seats {
		seats[i].Position = geom.RotateDeg(seats[i].Position, degrees)
		seats[i].Angle += rad
	}
	return seats
}

// =============================================================================
// Rectangular Tables
// =============================================================================

// rectSeats selects between the two rectangular policies. Perimeter
// distribution handles small tables and tables without a seat config; the
// corner-priority policy needs both more than four seats and a present
// config. A config with zero corner seats still selects corner-priority —
// only absence selects the fallback.
func rectSeats(t chart.Table) []SeatPosition {
	if t.SeatCount <= 4 || t.Seats == nil {
		return perimeterSeats(t)
	}
	return cornerPrioritySeats(t)
}

// perimeterSeats distributes seats at equal arc-length intervals along the
// rectangle's perimeter, walking clockwise from the top-left corner of the
// top edge. Seat 1 sits at the walk's origin, so it always lands on the top
// edge regardless of aspect ratio. Each seat is offset SeatOffset outward
// from the edge it falls on and faces inward.
func perimeterSeats(t chart.Table) []SeatPosition {
	n := t.SeatCount
	if n <= 0 {
		return nil
	}

	w, h := t.Size.Width, t.Size.Height
	perimeter := 2 * (w + h)
	spacing := perimeter / float64(n)

	seats := make([]SeatPosition, n)
	for i := 0; i < n; i++ {
		d := float64(i) * spacing
		seats[i] = perimeterSeat(d, w, h, i+1)
	}
	return rotateSeats(seats, t.RotationDeg)
}

// perimeterSeat maps a clockwise arc-length distance from the top-left
// corner to a seat on the corresponding edge.
func perimeterSeat(d, w, h float64, number int) SeatPosition {
	switch {
	case d < w: // top edge, left to right
		return SeatPosition{
			Position: geom.Vec2{X: -w/2 + d, Y: -h/2 - SeatOffset},
			Angle:    math.Pi / 2,
			Number:   number,
		}
	case d < w+h: // right edge, top to bottom
		return SeatPosition{
			Position: geom.Vec2{X: w/2 + SeatOffset, Y: -h/2 + (d - w)},
			Angle:    math.Pi,
			Number:   number,
		}
	case d < 2*w+h: // bottom edge, right to left
		return SeatPosition{
			Position: geom.Vec2{X: w/2 - (d - w - h), Y: h/2 + SeatOffset},
			Angle:    -math.Pi / 2,
			Number:   number,
		}
	default: // left edge, bottom to top
		return SeatPosition{
			Position: geom.Vec2{X: -w/2 - SeatOffset, Y: h/2 - (d - 2*w - h)},
			Angle:    0,
			Number:   number,
		}
	}
}

// cornerPrioritySeats pins up to min(cornerSeats, seatCount, 4) seats to
// the table ends, long axis first, then short axis, and splits the
// remaining seats as evenly as possible across the two long edges, the
// extra seat going to the first edge. The third and fourth pinned seats sit
// at the long-edge midpoints, so an edge whose midpoint is taken
// distributes its share per half-edge instead of across the full span.
// Corner seats are numbered first in priority order, then edge seats in
// edge-traversal order.
func cornerPrioritySeats(t chart.Table) []SeatPosition {
	n := t.SeatCount
	w, h := t.Size.Width, t.Size.Height

	corners := t.Seats.CornerSeats
	if corners > n {
		corners = n
	}
	if corners > maxCornerSeats {
		corners = maxCornerSeats
	}
	if corners < 0 {
		corners = 0
	}

	horizontal := w >= h
	ends := endSeats(w, h, horizontal)
	edges := longEdges(w, h, horizontal)

	seats := make([]SeatPosition, 0, n)
	number := 1
	for i := 0; i < corners; i++ {
		s := ends[i]
		s.Number = number
		seats = append(seats, s)
		number++
	}

	remaining := n - corners
	firstCount := (remaining + 1) / 2
	counts := [2]int{firstCount, remaining - firstCount}
	for e, edge := range edges {
		centerTaken := corners >= 3+e
		for i := 0; i < counts[e]; i++ {
			if centerTaken {
				seats = append(seats, halfEdgeSeat(edge, i, counts[e], number))
			} else {
				seats = append(seats, sideSeat(edge, i, counts[e], number))
			}
			number++
		}
	}
	return rotateSeats(seats, t.RotationDeg)
}

// halfEdgeSeat places seat i of count on an edge whose midpoint is occupied
// by a pinned seat. The first ⌈count/2⌉ seats spread at equal fractional
// intervals between the start corner and the midpoint, the rest between the
// midpoint and the end corner, so no seat ever lands on the midpoint itself.
func halfEdgeSeat(s side, i, count, number int) SeatPosition {
	firstHalf := (count + 1) / 2
	var frac float64
	if i < firstHalf {
		frac = float64(i+1) / float64(firstHalf+1) / 2
	} else {
		secondHalf := count - firstHalf
		frac = 0.5 + float64(i-firstHalf+1)/float64(secondHalf+1)/2
	}
	pos := geom.LerpVec2(s.start, s.end, frac).Add(s.outward.Scale(SeatOffset))
	return SeatPosition{Position: pos, Angle: s.facing, Number: number}
}

// endSeats returns the four pinned end positions in priority order for the
// given orientation: the long axis ends first, then the short axis ends.
func endSeats(w, h float64, horizontal bool) [4]SeatPosition {
	left := SeatPosition{Position: geom.Vec2{X: -w/2 - SeatOffset}, Angle: 0}
	right := SeatPosition{Position: geom.Vec2{X: w/2 + SeatOffset}, Angle: math.Pi}
	top := SeatPosition{Position: geom.Vec2{Y: -h/2 - SeatOffset}, Angle: math.Pi / 2}
	bottom := SeatPosition{Position: geom.Vec2{Y: h/2 + SeatOffset}, Angle: -math.Pi / 2}

	if horizontal {
		return [4]SeatPosition{left, right, top, bottom}
	}
	return [4]SeatPosition{top, bottom, left, right}
}

// longEdges returns the two long edges in traversal order for the given
// orientation: top then bottom for horizontal tables, left then right for
// vertical ones.
func longEdges(w, h float64, horizontal bool) [2]side {
	if horizontal {
		return [2]side{
			{
				start: geom.Vec2{X: -w / 2, Y: -h / 2}, end: geom.Vec2{X: w / 2, Y: -h / 2},
				outward: geom.Vec2{Y: -1}, facing: math.Pi / 2,
			},
			{
				start: geom.Vec2{X: -w / 2, Y: h / 2}, end: geom.Vec2{X: w / 2, Y: h / 2},
				outward: geom.Vec2{Y: 1}, facing: -math.Pi / 2,
			},
		}
	}
	return [2]side{
		{
			start: geom.Vec2{X: -w / 2, Y: -h / 2}, end: geom.Vec2{X: -w / 2, Y: h / 2},
			outward: geom.Vec2{X: -1}, facing: 0,
		},
		{
			start: geom.Vec2{X: w / 2, Y: -h / 2}, end: geom.Vec2{X: w / 2, Y: h / 2},
			outward: geom.Vec2{X: 1}, facing: math.Pi,
		},
	}
}
