package testutil

import (
	"math"
	"testing"
)

func TestSine(t *testing.T) {
	s := Sine[float32](1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	// Quarter period at 1 kHz / 48 kHz is sample 12.
	if math.Abs(float64(s[12])-1) > 1e-6 {
		t.Fatalf("s[12] = %v, want 1", s[12])
	}
}

func TestNoise_Reproducible(t *testing.T) {
	a := Noise[float32](42, 1.0, 64)
	b := Noise[float32](42, 1.0, 64)
	RequireIdentical(t, a, b)

	for i, v := range a {
		if v < -1 || v >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, v)
		}
	}
}

func TestNoise_DifferentSeeds(t *testing.T) {
	a := Noise[float64](1, 1.0, 16)
	b := Noise[float64](2, 1.0, 16)
	if d, _ := MaxAbsDiff(a, b); d == 0 {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse[float32](8, 3)
	for i, v := range imp {
		want := float32(0)
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("imp[%d] = %v, want %v", i, v, want)
		}
	}

	for _, v := range Impulse[float32](4, 10) {
		if v != 0 {
			t.Fatal("out-of-range impulse should be silent")
		}
	}
}

func TestClone_Independent(t *testing.T) {
	src := []float32{1, 2, 3}
	dst := Clone(src)
	dst[0] = 9
	if src[0] != 1 {
		t.Fatal("clone aliases source")
	}
}
