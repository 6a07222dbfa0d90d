package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -1, 0, 1, 0},
		{"above", 2, 0, 1, 1},
		{"nan", math.NaN(), 1, 2, 1},
		{"inf", math.Inf(1), 1, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Fatalf("Clamp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	for _, v := range []float64{0, -1, 1e300} {
		if !IsFinite(v) {
			t.Fatalf("IsFinite(%v) = false", v)
		}
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(v) {
			t.Fatalf("IsFinite(%v) = true", v)
		}
	}
}

func TestDBConversions(t *testing.T) {
	for _, db := range []float64{-24, -6, 0, 6, 24} {
		got := LinearToDB(DBToLinear(db))
		if math.Abs(got-db) > 1e-10 {
			t.Fatalf("LinearToDB(DBToLinear(%v)) = %v", db, got)
		}
	}

	if g := DBToLinear(6); math.Abs(g-1.99526231496888) > 1e-12 {
		t.Fatalf("DBToLinear(6) = %v", g)
	}
	if DBToLinear(0) != 1 {
		t.Fatalf("DBToLinear(0) = %v, want 1", DBToLinear(0))
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}
