package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestWrapAngleRange(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"pi stays pi", math.Pi, math.Pi},
		{"minus pi maps to pi", -math.Pi, math.Pi},
		{"three pi", 3 * math.Pi, math.Pi},
		{"just over pi", math.Pi + 0.5, -math.Pi + 0.5},
		{"minus half pi", -math.Pi / 2, -math.Pi / 2},
		{"many turns", 10*math.Pi + 1, 1},
		{"NaN", math.NaN(), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := WrapAngle(tc.in)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("WrapAngle(%f) = %f, expected %f", tc.in, got, tc.want)
			}
		})
	}
}

func TestWrapAngleProperty(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 10000; i++ {
		a := Uniform(r, -1000, 1000)
		got := WrapAngle(a)
		if got <= -math.Pi || got > math.Pi {
			t.Fatalf("WrapAngle(%f) = %f, outside (-Pi, Pi]", a, got)
		}
		// Same direction as the input
		if math.Abs(math.Sin(got)-math.Sin(a)) > 1e-6 || math.Abs(math.Cos(got)-math.Cos(a)) > 1e-6 {
			t.Fatalf("WrapAngle(%f) = %f changed direction", a, got)
		}
	}
}

func TestEasing(t *testing.T) {
	for _, ease := range []func(float64) float64{EaseOutQuad, EaseOutCubic} {
		if ease(0) != 0 || ease(1) != 1 {
			t.Errorf("easing should map 0->0 and 1->1, got %f and %f", ease(0), ease(1))
		}
		if ease(0.5) <= 0.5 {
			t.Errorf("ease-out should be ahead of linear at 0.5, got %f", ease(0.5))
		}
	}
}

func TestPointDist(t *testing.T) {
	if d := (Point{X: 0, Y: 0}).Dist(Point{X: 3, Y: 4}); d != 5 {
		t.Errorf("Dist = %f, expected 5", d)
	}
}
