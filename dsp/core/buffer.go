package core

// Widen copies single-precision samples into a float64 buffer and returns
// the number of samples copied (the shorter of the two lengths).
func Widen(dst []float64, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float64(src[i])
	}

	return n
}

// Narrow copies float64 samples back into a single-precision buffer and
// returns the number of samples copied.
func Narrow(dst []float32, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i])
	}

	return n
}

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen[T float32 | float64](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}

	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]T, n)
}
