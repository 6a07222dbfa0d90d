package testutil

import (
	"math"
	"testing"
)

// MaxAbsDiff returns the largest |a[i]-b[i]| over the common prefix of a
// and b together with its index. The index is -1 when no pair differs.
func MaxAbsDiff[T Sample](a, b []T) (float64, int) {
	worst, at := 0.0, -1
	for i := range min(len(a), len(b)) {
		if d := math.Abs(float64(a[i]) - float64(b[i])); d > worst {
			worst, at = d, i
		}
	}

	return worst, at
}

// RequireNearlyEqual fails t when got and want differ in length or any
// element differs by more than eps.
func RequireNearlyEqual[T Sample](t *testing.T, got, want []T, eps float64) {
	t.Helper()
	requireSameLen(t, len(got), len(want))

	if d, i := MaxAbsDiff(got, want); d > eps {
		t.Fatalf("[%d]: got %v, want %v (|diff| %g > %g)", i, got[i], want[i], d, eps)
	}
}

// RequireIdentical fails t unless got and want match bit for bit.
func RequireIdentical[T Sample](t *testing.T, got, want []T) {
	t.Helper()
	requireSameLen(t, len(got), len(want))

	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("[%d]: got %v, want %v", i, got[i], want[i])
		}
	}
}

// RequireFinite fails t on the first NaN or Inf in data.
func RequireFinite[T Sample](t *testing.T, data []T) {
	t.Helper()

	for i, v := range data {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("[%d]: %v is not finite", i, v)
		}
	}
}

func requireSameLen(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Fatalf("len = %d, want %d", got, want)
	}
}
