package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicSquare(t *testing.T) {
	s := DeterministicSquare(100, 48000, 0.5, 960)
	for i, v := range s {
		want := 0.5
		if i%480 >= 240 {
			want = -0.5
		}
		if v != want {
			t.Fatalf("s[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestAlternatingSigns(t *testing.T) {
	s := AlternatingSigns(3, 12)
	want := []float64{1, 1, 1, -1, -1, -1, 1, 1, 1, -1, -1, -1}
	RequireSliceNearlyEqual(t, s, want, 0)
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDCAndToFloat32(t *testing.T) {
	d := ToFloat32(DC(0.5, 4))
	for i, v := range d {
		if v != 0.5 {
			t.Fatalf("DC[%d] = %v, want 0.5", i, v)
		}
	}
}
