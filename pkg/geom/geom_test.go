package geom

import (
	"math"
	"testing"
)

const tol = 1e-9

func almostEqual(a, b float64) bool { return math.Abs(a-b) < tol }

func vecAlmostEqual(a, b Vec2) bool { return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) }

func TestRotateDeg(t *testing.T) {
	tests := []struct {
		name    string
		p       Vec2
		degrees float64
		want    Vec2
	}{
		{
			name:    "zero rotation",
			p:       Vec2{X: 10, Y: 5},
			degrees: 0,
			want:    Vec2{X: 10, Y: 5},
		},
		{
			name:    "quarter turn moves +x to +y",
			p:       Vec2{X: 1, Y: 0},
			degrees: 90,
			want:    Vec2{X: 0, Y: 1},
		},
		{
			name:    "half turn negates",
			p:       Vec2{X: 3, Y: -4},
			degrees: 180,
			want:    Vec2{X: -3, Y: 4},
		},
		{
			name:    "full turn is identity",
			p:       Vec2{X: 7, Y: 2},
			degrees: 360,
			want:    Vec2{X: 7, Y: 2},
		},
		{
			name:    "negative angle rotates the other way",
			p:       Vec2{X: 1, Y: 0},
			degrees: -90,
			want:    Vec2{X: 0, Y: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateDeg(tt.p, tt.degrees)
			if !vecAlmostEqual(got, tt.want) {
				t.Errorf("RotateDeg(%v, %v) = %v, want %v", tt.p, tt.degrees, got, tt.want)
			}
		})
	}
}

func TestRotateDegPreservesLength(t *testing.T) {
	p := Vec2{X: 12.5, Y: -7.25}
	origin := Vec2{}
	for _, deg := range []float64{0, 17, 45, 90, 133.7, 270, 359, 720, -42} {
		got := RotateDeg(p, deg)
		if !almostEqual(Distance(origin, got), Distance(origin, p)) {
			t.Errorf("rotation by %v changed length: %v -> %v", deg, Distance(origin, p), Distance(origin, got))
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name           string
		v, min, max    float64
		want           float64
	}{
		{"below range", -5, 0, 10, 0},
		{"above range", 15, 0, 10, 10},
		{"inside range", 5, 0, 10, 5},
		{"at lower bound", 0, 0, 10, 0},
		{"at upper bound", 10, 0, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.min, tt.max); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		name     string
		v, grid  float64
		want     float64
	}{
		{"rounds up", 17, 20, 20},
		{"rounds down", 23, 20, 20},
		{"exact multiple", 40, 20, 40},
		{"negative value", -17, 20, -20},
		{"fine grid", 3.2, 0.5, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Snap(tt.v, tt.grid); !almostEqual(got, tt.want) {
				t.Errorf("Snap(%v, %v) = %v, want %v", tt.v, tt.grid, got, tt.want)
			}
		})
	}
}

func TestSnapPointIdempotent(t *testing.T) {
	points := []Vec2{
		{X: 17, Y: 23},
		{X: -31.4, Y: 88.8},
		{X: 0, Y: 0},
		{X: 9.999, Y: 10.001},
	}
	for _, p := range points {
		once := SnapPoint(p, 20)
		twice := SnapPoint(once, 20)
		if once != twice {
			t.Errorf("SnapPoint not idempotent for %v: %v != %v", p, once, twice)
		}
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 0, 10, 0, 0},
		{"end", 0, 10, 1, 10},
		{"midpoint", 0, 10, 0.5, 5},
		{"extrapolates", 0, 10, 2, 20},
		{"negative range", 10, -10, 0.25, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); !almostEqual(got, tt.want) {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestLerpVec2(t *testing.T) {
	a := Vec2{X: 0, Y: 100}
	b := Vec2{X: 50, Y: 0}
	got := LerpVec2(a, b, 0.5)
	want := Vec2{X: 25, Y: 50}
	if !vecAlmostEqual(got, want) {
		t.Errorf("LerpVec2 = %v, want %v", got, want)
	}
}

func TestVecArithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale = %v", got)
	}
	if got := Distance(a, Vec2{}); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}
