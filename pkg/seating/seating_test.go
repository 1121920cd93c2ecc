package seating

import (
	"math"
	"testing"

	"github.com/tableplan/tableplan/pkg/chart"
	"github.com/tableplan/tableplan/pkg/errors"
	"github.com/tableplan/tableplan/pkg/geom"
)

func roundTable(seats int) chart.Table {
	return chart.Table{
		ID:        "t1",
		Shape:     chart.ShapeRound,
		Size:      chart.Size{Width: 100, Height: 100},
		SeatCount: seats,
	}
}

func TestRoundSeatScenario(t *testing.T) {
	seats, err := Positions(roundTable(4))
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}
	if len(seats) != 4 {
		t.Fatalf("got %d seats, want 4", len(seats))
	}

	want := []geom.Vec2{
		{X: 80, Y: 0},
		{X: 0, Y: 80},
		{X: -80, Y: 0},
		{X: 0, Y: -80},
	}
	for i, s := range seats {
		if math.Abs(s.Position.X-want[i].X) > 0.1 || math.Abs(s.Position.Y-want[i].Y) > 0.1 {
			t.Errorf("seat %d at %v, want %v", s.Number, s.Position, want[i])
		}
		if s.Number != i+1 {
			t.Errorf("seat %d numbered %d", i, s.Number)
		}
	}
}

func TestRoundSymmetry(t *testing.T) {
	for n := 1; n <= 20; n++ {
		seats, err := Positions(roundTable(n))
		if err != nil {
			t.Fatalf("Positions(n=%d): %v", n, err)
		}
		if len(seats) != n {
			t.Fatalf("n=%d: got %d seats", n, len(seats))
		}

		wantRadius := 100.0/2 + SeatOffset
		wantStep := 2 * math.Pi / float64(n)
		for i, s := range seats {
			r := geom.Distance(geom.Vec2{}, s.Position)
			if math.Abs(r-wantRadius) > 1e-9 {
				t.Errorf("n=%d seat %d radius %v, want %v", n, i+1, r, wantRadius)
			}
			if s.Number != i+1 {
				t.Errorf("n=%d seat %d numbered %d", n, i, s.Number)
			}
			if i > 0 {
				prev := math.Atan2(seats[i-1].Position.Y, seats[i-1].Position.X)
				curr := math.Atan2(s.Position.Y, s.Position.X)
				diff := math.Mod(curr-prev+4*math.Pi, 2*math.Pi)
				if math.Abs(diff-wantStep) > 1e-9 {
					t.Errorf("n=%d seats %d-%d angular spacing %v, want %v", n, i, i+1, diff, wantStep)
				}
			}
		}
	}
}

func TestRoundRotationPreservesRadii(t *testing.T) {
	base, _ := Positions(roundTable(7))

	for _, deg := range []float64{15, 45, 90, 123.4, 180, 359, -60} {
		table := roundTable(7)
		table.RotationDeg = deg
		rotated, err := Positions(table)
		if err != nil {
			t.Fatalf("Positions(rot=%v): %v", deg, err)
		}
		for i := range rotated {
			r0 := geom.Distance(geom.Vec2{}, base[i].Position)
			r1 := geom.Distance(geom.Vec2{}, rotated[i].Position)
			if math.Abs(r0-r1) > 1e-9 {
				t.Errorf("rot=%v seat %d radius changed: %v -> %v", deg, i+1, r0, r1)
			}
			// The facing angle shifts by exactly the rotation amount.
			wantAngle := base[i].Angle + deg*math.Pi/180
			if math.Abs(rotated[i].Angle-wantAngle) > 1e-9 {
				t.Errorf("rot=%v seat %d angle %v, want %v", deg, i+1, rotated[i].Angle, wantAngle)
			}
		}
	}
}

func TestSquareDistribution(t *testing.T) {
	tests := []struct {
		name      string
		seatCount int
		wantSides [4]int // top, right, bottom, left
	}{
		{"eight seats, two per side", 8, [4]int{2, 2, 2, 2}},
		{"six seats favor early sides", 6, [4]int{2, 2, 1, 1}},
		{"five seats", 5, [4]int{2, 1, 1, 1}},
		{"four seats", 4, [4]int{1, 1, 1, 1}},
		{"three seats leave left empty", 3, [4]int{1, 1, 1, 0}},
		{"one seat on top", 1, [4]int{1, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := chart.Table{
				Shape:     chart.ShapeSquare,
				Size:      chart.Size{Width: 100, Height: 100},
				SeatCount: tt.seatCount,
			}
			seats, err := Positions(table)
			if err != nil {
				t.Fatalf("Positions: %v", err)
			}
			if len(seats) != tt.seatCount {
				t.Fatalf("got %d seats, want %d", len(seats), tt.seatCount)
			}

			var got [4]int
			for _, s := range seats {
				switch {
				case s.Position.Y < -50: // above the table
					got[0]++
				case s.Position.X > 50:
					got[1]++
				case s.Position.Y > 50:
					got[2]++
				case s.Position.X < -50:
					got[3]++
				}
			}
			if got != tt.wantSides {
				t.Errorf("side counts = %v, want %v", got, tt.wantSides)
			}
		})
	}
}

func TestSquareSingleSeatCentered(t *testing.T) {
	table := chart.Table{
		Shape:     chart.ShapeSquare,
		Size:      chart.Size{Width: 100, Height: 100},
		SeatCount: 1,
	}
	seats, _ := Positions(table)
	// One seat on the top side, centered at the midpoint.
	if math.Abs(seats[0].Position.X) > 1e-9 {
		t.Errorf("single seat at x=%v, want centered at 0", seats[0].Position.X)
	}
	if math.Abs(seats[0].Position.Y-(-80)) > 1e-9 {
		t.Errorf("single seat at y=%v, want -80", seats[0].Position.Y)
	}
}

func TestSquareUsesWidthOnly(t *testing.T) {
	a := chart.Table{Shape: chart.ShapeSquare, Size: chart.Size{Width: 100, Height: 100}, SeatCount: 8}
	b := chart.Table{Shape: chart.ShapeSquare, Size: chart.Size{Width: 100, Height: 70}, SeatCount: 8}

	sa, _ := Positions(a)
	sb, _ := Positions(b)
	for i := range sa {
		if sa[i] != sb[i] {
			t.Errorf("seat %d differs with height change: %+v vs %+v", i+1, sa[i], sb[i])
		}
	}
}

func TestRectPerimeterFallback(t *testing.T) {
	table := chart.Table{
		Shape:     chart.ShapeRect,
		Size:      chart.Size{Width: 120, Height: 80},
		SeatCount: 4,
	}
	seats, err := Positions(table)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}

	// First seat lands on the top edge at the fixed offset.
	first := seats[0]
	if math.Abs(first.Position.Y-(-70)) > 1e-9 {
		t.Errorf("first seat at y=%v, want -70 (top edge)", first.Position.Y)
	}
	if first.Position.X < -60 || first.Position.X > 60 {
		t.Errorf("first seat at x=%v, outside the top edge span", first.Position.X)
	}

	// Every seat sits exactly SeatOffset outside one of the four edges.
	for _, s := range seats {
		onTop := math.Abs(s.Position.Y-(-70)) < 1e-9
		onBottom := math.Abs(s.Position.Y-70) < 1e-9
		onLeft := math.Abs(s.Position.X-(-90)) < 1e-9
		onRight := math.Abs(s.Position.X-90) < 1e-9
		if !onTop && !onBottom && !onLeft && !onRight {
			t.Errorf("seat %d at %v is not offset from any edge", s.Number, s.Position)
		}
	}
}

func TestRectPerimeterFallbackTallTable(t *testing.T) {
	// The walk starts at the top-left corner, so the first seat stays on
	// the top edge even when the sides are far longer than the top.
	table := chart.Table{
		Shape:     chart.ShapeRect,
		Size:      chart.Size{Width: 50, Height: 200},
		SeatCount: 4,
	}
	seats, err := Positions(table)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}

	first := seats[0]
	if math.Abs(first.Position.Y-(-130)) > 1e-9 {
		t.Errorf("first seat at y=%v, want -130 (top edge)", first.Position.Y)
	}
	if math.Abs(first.Position.X-(-25)) > 1e-9 {
		t.Errorf("first seat at x=%v, want -25 (top-left corner)", first.Position.X)
	}
}

func TestRectFallbackWhenConfigAbsent(t *testing.T) {
	// Ten seats but no seat config: perimeter distribution applies.
	table := chart.Table{
		Shape:     chart.ShapeRect,
		Size:      chart.Size{Width: 200, Height: 100},
		SeatCount: 10,
	}
	seats, err := Positions(table)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}
	if len(seats) != 10 {
		t.Fatalf("got %d seats", len(seats))
	}

	// Perimeter spacing is uniform: consecutive arc distances equal P/n.
	// Spot-check that no seat is pinned at a table end (corner-priority
	// signature: a seat at y == 0 on the left/right side).
	for _, s := range seats {
		atEnd := (math.Abs(s.Position.Y) < 1e-9) && (math.Abs(math.Abs(s.Position.X)-130) < 1e-9)
		if atEnd {
			t.Errorf("seat %d pinned at table end %v; expected perimeter distribution", s.Number, s.Position)
		}
	}
}

func TestRectCornerPriority(t *testing.T) {
	two := 2
	table := chart.Table{
		Shape:     chart.ShapeRect,
		Size:      chart.Size{Width: 200, Height: 100},
		SeatCount: 8,
		Seats:     &chart.SeatConfig{CornerSeats: two},
	}
	seats, err := Positions(table)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}
	if len(seats) != 8 {
		t.Fatalf("got %d seats, want 8", len(seats))
	}

	// Horizontal table: seats 1 and 2 pinned to the left and right ends.
	if seats[0].Position.X != -130 || seats[0].Position.Y != 0 {
		t.Errorf("seat 1 at %v, want left end (-130, 0)", seats[0].Position)
	}
	if seats[1].Position.X != 130 || seats[1].Position.Y != 0 {
		t.Errorf("seat 2 at %v, want right end (130, 0)", seats[1].Position)
	}

	// Remaining six split 3/3 over the two long edges.
	var top, bottom int
	for _, s := range seats[2:] {
		switch {
		case s.Position.Y < 0:
			top++
		case s.Position.Y > 0:
			bottom++
		}
	}
	if top != 3 || bottom != 3 {
		t.Errorf("edge split = %d/%d, want 3/3", top, bottom)
	}
}

func TestRectCornerPriorityOddSplit(t *testing.T) {
	table := chart.Table{
		Shape:     chart.ShapeRect,
		Size:      chart.Size{Width: 200, Height: 100},
		SeatCount: 7,
		Seats:     &chart.SeatConfig{CornerSeats: 2},
	}
	seats, _ := Positions(table)

	// Five edge seats: the extra goes to the first (top) edge.
	var top, bottom int
	for _, s := range seats[2:] {
		if s.Position.Y < 0 {
			top++
		} else {
			bottom++
		}
	}
	if top != 3 || bottom != 2 {
		t.Errorf("edge split = %d/%d, want 3/2", top, bottom)
	}
}

func TestRectFourCornerSeatsAvoidMidpoints(t *testing.T) {
	// Seats 3 and 4 occupy the long-edge midpoints, so the edge
	// distribution must place its seats per half-edge around them.
	table := chart.Table{
		Shape:     chart.ShapeRect,
		Size:      chart.Size{Width: 200, Height: 100},
		SeatCount: 7,
		Seats:     &chart.SeatConfig{CornerSeats: 4},
	}
	seats, err := Positions(table)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}

	want := []geom.Vec2{
		{X: -130, Y: 0},  // left end
		{X: 130, Y: 0},   // right end
		{X: 0, Y: -80},   // top midpoint
		{X: 0, Y: 80},    // bottom midpoint
		{X: -50, Y: -80}, // top edge, first half
		{X: 50, Y: -80},  // top edge, second half
		{X: -50, Y: 80},  // bottom edge, first half
	}
	for i, s := range seats {
		if math.Abs(s.Position.X-want[i].X) > 1e-9 || math.Abs(s.Position.Y-want[i].Y) > 1e-9 {
			t.Errorf("seat %d at %v, want %v", s.Number, s.Position, want[i])
		}
	}
}

func TestRectSeatsNeverCoincide(t *testing.T) {
	sizes := []chart.Size{
		{Width: 200, Height: 100},
		{Width: 100, Height: 200},
	}
	for _, size := range sizes {
		for n := 5; n <= 12; n++ {
			for corners := 0; corners <= 4; corners++ {
				table := chart.Table{
					Shape:     chart.ShapeRect,
					Size:      size,
					SeatCount: n,
					Seats:     &chart.SeatConfig{CornerSeats: corners},
				}
				seats, err := Positions(table)
				if err != nil {
					t.Fatalf("Positions(n=%d, corners=%d): %v", n, corners, err)
				}
				for i := range seats {
					for j := i + 1; j < len(seats); j++ {
						if geom.Distance(seats[i].Position, seats[j].Position) < 1e-9 {
							t.Errorf("%gx%g n=%d corners=%d: seats %d and %d share %v",
								size.Width, size.Height, n, corners,
								seats[i].Number, seats[j].Number, seats[i].Position)
						}
					}
				}
			}
		}
	}
}

func TestRectVerticalOrientation(t *testing.T) {
	table := chart.Table{
		Shape:     chart.ShapeRect,
		Size:      chart.Size{Width: 100, Height: 200},
		SeatCount: 6,
		Seats:     &chart.SeatConfig{CornerSeats: 2},
	}
	seats, _ := Positions(table)

	// Vertical table: ends are top and bottom.
	if seats[0].Position.Y != -130 || seats[0].Position.X != 0 {
		t.Errorf("seat 1 at %v, want top end (0, -130)", seats[0].Position)
	}
	if seats[1].Position.Y != 130 || seats[1].Position.X != 0 {
		t.Errorf("seat 2 at %v, want bottom end (0, 130)", seats[1].Position)
	}

	// Long edges are left and right.
	var left, right int
	for _, s := range seats[2:] {
		if s.Position.X < 0 {
			left++
		} else {
			right++
		}
	}
	if left != 2 || right != 2 {
		t.Errorf("edge split = %d/%d, want 2/2", left, right)
	}
}

// A seat config with zero corner seats still routes through the
// corner-priority policy; only a missing config selects perimeter
// distribution. Surprising, but intentional: the two inputs are distinct
// states in the editor.
func TestRectZeroCornerSeatsStillCornerPolicy(t *testing.T) {
	zero := chart.Table{
		Shape:     chart.ShapeRect,
		Size:      chart.Size{Width: 200, Height: 100},
		SeatCount: 6,
		Seats:     &chart.SeatConfig{CornerSeats: 0},
	}
	seats, err := Positions(zero)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}

	// No pinned ends, all six seats split 3/3 across the long edges —
	// which is not what the perimeter walk produces for this table.
	var top, bottom, other int
	for _, s := range seats {
		switch {
		case math.Abs(s.Position.Y-(-80)) < 1e-9:
			top++
		case math.Abs(s.Position.Y-80) < 1e-9:
			bottom++
		default:
			other++
		}
	}
	if top != 3 || bottom != 3 || other != 0 {
		t.Errorf("split = top %d / bottom %d / other %d, want 3/3/0", top, bottom, other)
	}
}

func TestInvalidShape(t *testing.T) {
	table := chart.Table{
		Shape:     "hexagon",
		Size:      chart.Size{Width: 100, Height: 100},
		SeatCount: 4,
	}
	_, err := Positions(table)
	if err == nil {
		t.Fatal("expected error for unknown shape")
	}
	if !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidShape)
	}
}

func TestPositionsDeterministic(t *testing.T) {
	table := chart.Table{
		ID:          "a",
		Name:        "Alpha",
		Shape:       chart.ShapeRect,
		Position:    geom.Vec2{X: 500, Y: -300},
		Size:        chart.Size{Width: 180, Height: 90},
		SeatCount:   9,
		RotationDeg: 33,
		Seats:       &chart.SeatConfig{CornerSeats: 3},
	}

	first, err := Positions(table)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}
	second, _ := Positions(table)
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("seat %d differs between identical calls", i+1)
		}
	}

	// Identity and world position do not affect the relative layout.
	moved := table
	moved.ID = "b"
	moved.Name = "Beta"
	moved.Position = geom.Vec2{X: -1, Y: 2}
	third, _ := Positions(moved)
	for i := range first {
		if first[i] != third[i] {
			t.Errorf("seat %d affected by id/name/position", i+1)
		}
	}
}

func TestNumberingContiguous(t *testing.T) {
	tables := []chart.Table{
		{Shape: chart.ShapeRound, Size: chart.Size{Width: 100, Height: 100}, SeatCount: 13},
		{Shape: chart.ShapeSquare, Size: chart.Size{Width: 80, Height: 80}, SeatCount: 11, RotationDeg: 45},
		{Shape: chart.ShapeRect, Size: chart.Size{Width: 200, Height: 100}, SeatCount: 10, Seats: &chart.SeatConfig{CornerSeats: 4}},
		{Shape: chart.ShapeRect, Size: chart.Size{Width: 200, Height: 100}, SeatCount: 3},
	}

	for _, table := range tables {
		seats, err := Positions(table)
		if err != nil {
			t.Fatalf("Positions(%s): %v", table.Shape, err)
		}
		if len(seats) != table.SeatCount {
			t.Errorf("%s: got %d seats, want %d", table.Shape, len(seats), table.SeatCount)
		}
		for i, s := range seats {
			if s.Number != i+1 {
				t.Errorf("%s: seat index %d numbered %d", table.Shape, i, s.Number)
			}
		}
	}
}
