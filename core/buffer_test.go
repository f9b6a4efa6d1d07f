package core

import "testing"

func TestEnsureLenReusesCapacity(t *testing.T) {
	buf := make([]float64, 2, 8)
	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}
	if &out[0] != &buf[0] {
		t.Fatal("expected the original backing array to be reused")
	}
}

func TestEnsureLenGrows(t *testing.T) {
	buf := make([]float64, 2)
	out := EnsureLen(buf, 16)
	if len(out) != 16 {
		t.Fatalf("len = %d, want 16", len(out))
	}
}

func TestEnsureLenNonPositive(t *testing.T) {
	out := EnsureLen([]float64{1, 2, 3}, 0)
	if len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}

func TestEnsureLenComplex(t *testing.T) {
	buf := make([]complex128, 0, 4)
	out := EnsureLenComplex(buf, 4)
	if len(out) != 4 {
		t.Fatalf("len = %d, want 4", len(out))
	}
}

func TestZero(t *testing.T) {
	buf := []float64{1, -2, 3}
	Zero(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}
