package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0.5, 1, 0, 0.5}, // swapped bounds
	}
	for _, c := range cases {
		got := Clamp(c.value, c.min, c.max)
		if got != c.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.value, c.min, c.max, got, c.want)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values within eps to compare equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Fatal("expected distant values to compare unequal")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatal("expected zero eps to fall back to default")
	}
}

func TestDBRoundTrip(t *testing.T) {
	for _, db := range []float64{-60, -20, -6, 0, 6, 20} {
		got := LinearToDB(DBToLinear(db))
		if math.Abs(got-db) > 1e-9 {
			t.Fatalf("round trip %v dB = %v", db, got)
		}
	}
}

func TestLinearToDBEdges(t *testing.T) {
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("LinearToDB(0) should be -Inf")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("LinearToDB(-1) should be NaN")
	}
}
