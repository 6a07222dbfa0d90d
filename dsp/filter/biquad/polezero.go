package biquad

import (
	"math"
	"math/cmplx"
)

// Poles returns the roots of z^2 + A1*z + A2, the poles of the section.
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the roots of B0*z^2 + B1*z + B2. When B0 is zero the
// missing roots are reported as 0.
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// Stable reports whether both poles have magnitude below 1.
func (c *Coefficients) Stable() bool {
	p := c.Poles()
	return cmplx.Abs(p[0]) < 1 && cmplx.Abs(p[1]) < 1
}

// quadraticRoots solves a*x^2 + b*x + c = 0. Real roots use the form that
// avoids cancellation between -b and the square root.
func quadraticRoots(a, b, c float64) [2]complex128 {
	switch {
	case a == 0 && b == 0:
		return [2]complex128{}
	case a == 0:
		return [2]complex128{complex(-c/b, 0), 0}
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		re, im := -b/(2*a), math.Sqrt(-disc)/(2*a)
		return [2]complex128{complex(re, im), complex(re, -im)}
	}

	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	if q == 0 {
		return [2]complex128{}
	}

	return [2]complex128{complex(q/a, 0), complex(c/q, 0)}
}
