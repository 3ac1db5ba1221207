package core

import "testing"

func TestUniformRange(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		v := Uniform(r, 60, 76)
		if v < 60 || v >= 76 {
			t.Fatalf("Uniform(60, 76) = %v out of range", v)
		}
	}
}

func TestUniformIntInclusive(t *testing.T) {
	r := NewRand(7)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := UniformInt(r, 1, 3)
		if v < 1 || v > 3 {
			t.Fatalf("UniformInt(1, 3) = %d out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected all of 1..3 to appear, saw %v", seen)
	}
	if UniformInt(r, 5, 5) != 5 {
		t.Error("degenerate range should return min")
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed should produce same sequence")
		}
	}
}

func TestChanceBounds(t *testing.T) {
	r := NewRand(1)
	for i := 0; i < 100; i++ {
		if Chance(r, 0) {
			t.Fatal("Chance(0) returned true")
		}
		if !Chance(r, 1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}
