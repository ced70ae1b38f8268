package geom

import (
	"math"
	"slices"
)

func finite(fs ...float64) bool {
	for _, f := range fs {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
	}
	return true
}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0, in increasing order.
//
// If the equation is nearly linear, the root of the linear part is returned;
// the other root might be out of representable range. In the degenerate case
// where all coefficients are zero, so that all values of x satisfy the
// equation, a single 0 is returned. Callers that need to distinguish that case
// must check the coefficients themselves.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if c2 == 0 || !finite(sc0, sc1) {
		root := -c0 / c1
		switch {
		case finite(root):
			return [2]float64{root}, 1
		case c0 == 0 && c1 == 0:
			return [2]float64{0}, 1
		default:
			return [2]float64{}, 0
		}
	}

	var r1 float64
	disc := sc1*sc1 - 4*sc0
	if math.IsInf(disc, 0) {
		// sc1² overflowed. Take one root of sc1 x + x² = 0 and derive the
		// other from the product of the roots.
		r1 = -sc1
	} else {
		if disc < 0 {
			return [2]float64{}, 0
		}
		if disc == 0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// Avoid cancellation by never subtracting quantities of equal sign.
		r1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(disc), sc1))
	}
	r2 := sc0 / r1
	if !finite(r2) {
		return [2]float64{r1}, 1
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return [2]float64{r1, r2}, 2
}

// SolveCubic finds real roots of a cubic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² + c3 x³ = 0, in increasing
// order. The second return value states how many roots were found. When c3 is
// zero or so small that the normalized coefficients overflow, the equation is
// solved as a quadratic.
//
// The method is Jim Blinn's, as presented in
// https://momentsingraphics.de/CubicRoots.html.
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	inv := 1 / c3
	b := c2 * (1.0 / 3.0 * inv)
	c := c1 * (1.0 / 3.0 * inv)
	d := c0 * inv
	if c3 == 0 || !finite(b, c, d) {
		roots, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{roots[0], roots[1]}, n
	}

	// Hessian coefficients δ1, δ2, δ3.
	h1 := math.FMA(-b, b, c)
	h2 := math.FMA(-c, b, d)
	h3 := b*d - c*c
	disc := 4*h1*h3 - h2*h2
	// Constant term of the depressed cubic.
	dq := math.FMA(-2*b, h1, h2)

	var out [3]float64
	var n int
	switch {
	case disc < 0:
		// One real root.
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * dq
		out[0] = math.Cbrt(r+sq) + math.Cbrt(r-sq) - b
		n = 1
	case disc == 0:
		// A double root and a single root.
		t := math.Copysign(math.Sqrt(-h1), dq)
		out[0] = t - b
		out[1] = -2*t - b
		n = 2
	default:
		// Three real roots, found trigonometrically.
		th := math.Atan2(math.Sqrt(disc), -dq) * (1.0 / 3.0)
		sin, cos := math.Sincos(th)
		s3 := sin * math.Sqrt(3)
		scale := 2 * math.Sqrt(-h1)
		out[0] = math.FMA(scale, cos, -b)
		out[1] = math.FMA(scale, 0.5*(-cos+s3), -b)
		out[2] = math.FMA(scale, 0.5*(-cos-s3), -b)
		n = 3
	}
	slices.Sort(out[:n])
	return out, n
}
