package geom

import (
	"iter"
	"math"
)

// QuadBez is a quadratic Bézier curve.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// CubicBez is a cubic Bézier curve.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// rootSlop is how far outside [0, 1] a polynomial root may fall, due to
// rounding, and still be reported (clamped) as an endpoint root.
const rootSlop = 1e-12

// unitRoots filters roots to those within the unit interval.
func unitRoots(roots []float64) []float64 {
	var out []float64
	for _, t := range roots {
		if t < -rootSlop || t > 1+rootSlop {
			continue
		}
		t = min(max(t, 0), 1)
		if n := len(out); n > 0 && out[n-1] == t {
			// Double roots at an endpoint collapse after clamping.
			continue
		}
		out = append(out, t)
	}
	return out
}

// Return polynomial coefficients given quadratic Bézier coordinates.
func quadBezCoefficients(x0, x1, x2 float64) (_, _, _ float64) {
	return x0, 2*(x1-x0), x2 - 2*x1 + x0
}

// Return polynomial coefficients given cubic Bézier coordinates.
func cubicBezCoefficients(x0, x1, x2, x3 float64) (_, _, _, _ float64) {
	return x0,
		3 * (x1 - x0),
		3 * (x2 - 2*x1 + x0),
		x3 - 3*x2 + 3*x1 - x0
}

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point   { return q.P2 }

func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2)
	c := Vec2(q.P2).Mul(t)
	return Point(a.Add(b.Add(c).Mul(t)))
}

func (q QuadBez) ValueAt(t float64, dim Dim) float64 {
	c0, c1, c2 := quadBezCoefficients(q.P0.Coord(dim), q.P1.Coord(dim), q.P2.Coord(dim))
	return c0 + t*(c1+t*c2)
}

// Differentiate returns the derivative curve (hodograph), a line from
// 2(P1 − P0) to 2(P2 − P1).
func (q QuadBez) Differentiate() Segment {
	return Segment{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez) Deriv(t float64) Vec2 {
	return Vec2(q.Differentiate().Eval(t))
}

// Roots returns the parameters in [0, 1] at which coordinate dim equals v, in
// increasing order. A curve that is constant along dim and lies on the level
// set returns [ErrInfiniteSolutions].
func (q QuadBez) Roots(v float64, dim Dim) ([]float64, error) {
	c0, c1, c2 := quadBezCoefficients(q.P0.Coord(dim), q.P1.Coord(dim), q.P2.Coord(dim))
	c0 -= v
	if c1 == 0 && c2 == 0 {
		if c0 == 0 {
			return nil, geomErr("QuadBez.Roots", ErrInfiniteSolutions, "v", v, "dim", dim)
		}
		return nil, nil
	}
	roots, n := SolveQuadratic(c0, c1, c2)
	return unitRoots(roots[:n]), nil
}

// Nearest finds the point on the curve closest to pt by solving for the roots
// of the derivative of the squared distance, which is a cubic.
func (q QuadBez) Nearest(pt Point) (distSq, t float64) {
	d0 := q.P1.Sub(q.P0)
	d1 := Vec2(q.P0).Add(Vec2(q.P2)).Sub(Vec2(q.P1).Mul(2))
	d := q.P0.Sub(pt)
	roots, n := SolveCubic(
		d.Dot(d0),
		2*d0.Hypot2()+d.Dot(d1),
		3*d1.Dot(d0),
		d1.Hypot2(),
	)

	distSq, t = pt.DistanceSquared(q.P0), 0
	if d2 := pt.DistanceSquared(q.P2); d2 < distSq {
		distSq, t = d2, 1
	}
	for _, rt := range roots[:n] {
		if !(rt >= 0 && rt <= 1) {
			continue
		}
		if d2 := pt.DistanceSquared(q.Eval(rt)); d2 < distSq {
			distSq, t = d2, rt
		}
	}
	return distSq, t
}

func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

func (q QuadBez) Reverse() QuadBez {
	return QuadBez{q.P2, q.P1, q.P0}
}

// Raise returns the cubic Bézier describing the same curve.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Lerp(q.P1, 2.0/3.0),
		q.P2.Lerp(q.P1, 2.0/3.0),
		q.P2,
	}
}

// Curve wraps the curve in a [Curve].
func (q QuadBez) Curve() Curve {
	return Curve{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3)
	cc := Vec2(c.P2).Mul(mt * 3)
	d := Vec2(c.P3)
	return Point(a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t)))
}

func (c CubicBez) ValueAt(t float64, dim Dim) float64 {
	c0, c1, c2, c3 := cubicBezCoefficients(c.P0.Coord(dim), c.P1.Coord(dim), c.P2.Coord(dim), c.P3.Coord(dim))
	return c0 + t*(c1+t*(c2+t*c3))
}

// Differentiate returns the derivative curve (hodograph).
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Deriv(t float64) Vec2 {
	return Vec2(c.Differentiate().Eval(t))
}

// Roots returns the parameters in [0, 1] at which coordinate dim equals v, in
// increasing order. A curve that is constant along dim and lies on the level
// set returns [ErrInfiniteSolutions].
func (c CubicBez) Roots(v float64, dim Dim) ([]float64, error) {
	c0, c1, c2, c3 := cubicBezCoefficients(c.P0.Coord(dim), c.P1.Coord(dim), c.P2.Coord(dim), c.P3.Coord(dim))
	c0 -= v
	if c1 == 0 && c2 == 0 && c3 == 0 {
		if c0 == 0 {
			return nil, geomErr("CubicBez.Roots", ErrInfiniteSolutions, "v", v, "dim", dim)
		}
		return nil, nil
	}
	roots, n := SolveCubic(c0, c1, c2, c3)
	return unitRoots(roots[:n]), nil
}

// QuadApprox is one piece of a quadratic approximation of a cubic Bézier,
// covering the cubic's parameters from T0 to T1.
type QuadApprox struct {
	T0, T1 float64
	Quad   QuadBez
}

// Quadratics approximates the cubic by quadratic Béziers that stay within
// accuracy of it. The pieces split the parameter range evenly and are not in
// general G1 continuous. At least one piece is always produced.
func (c CubicBez) Quadratics(accuracy float64) iter.Seq[QuadApprox] {
	return func(yield func(QuadApprox) bool) {
		// The error of the best approximating quadratic is proportional to
		// the third derivative, which is constant, so it shrinks with the
		// cube of the number of pieces. 432 is (36 / √3)².
		maxHypot2 := 432 * accuracy * accuracy
		p1x2 := Vec2(c.P1).Mul(3).Sub(Vec2(c.P0))
		p2x2 := Vec2(c.P2).Mul(3).Sub(Vec2(c.P3))
		err := p2x2.Sub(p1x2).Hypot2()
		n := max(int(math.Ceil(math.Sqrt(math.Cbrt(err/maxHypot2)))), 1)

		for i := range n {
			t0 := float64(i) / float64(n)
			t1 := float64(i+1) / float64(n)
			seg := c.Subsegment(t0, t1)
			p1x2 := Vec2(seg.P1).Mul(3).Sub(Vec2(seg.P0))
			p2x2 := Vec2(seg.P2).Mul(3).Sub(Vec2(seg.P3))
			q := QuadBez{seg.P0, Point(p1x2.Add(p2x2).Mul(0.25)), seg.P3}
			if !yield(QuadApprox{t0, t1, q}) {
				return
			}
		}
	}
}

// Nearest finds the point on the curve closest to pt.
//
// The cubic is approximated by quadratics within accuracy, each of which is
// solved exactly. The best candidate is then polished with Newton iterations
// on the cubic itself. A non-positive accuracy means [DefaultEpsilon].
func (c CubicBez) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	if !(accuracy > 0) {
		accuracy = DefaultEpsilon
	}
	distSq = math.Inf(1)
	for qa := range c.Quadratics(accuracy) {
		if d2, qt := qa.Quad.Nearest(pt); d2 < distSq {
			distSq, t = d2, qa.T0+qt*(qa.T1-qa.T0)
		}
	}

	distSq = pt.DistanceSquared(c.Eval(t))
	dd := c.Differentiate()
	rt := c.refineNearest(pt, t, accuracy, dd, dd.Differentiate())
	if d2 := pt.DistanceSquared(c.Eval(rt)); d2 < distSq {
		distSq, t = d2, rt
	}
	return distSq, t
}

func (c CubicBez) refineNearest(pt Point, t, accuracy float64, dd QuadBez, ddd Segment) float64 {
	for range 16 {
		e := c.Eval(t).Sub(pt)
		d1 := Vec2(dd.Eval(t))
		d2 := Vec2(ddd.Eval(t))
		f := e.Dot(d1)
		df := d1.Dot(d1) + e.Dot(d2)
		if df == 0 {
			break
		}
		next := min(max(t-f/df, 0), 1)
		done := math.Abs(next-t) < accuracy
		t = next
		if done {
			break
		}
	}
	return t
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) / 3
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(-scale))
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

// Curve wraps the curve in a [Curve].
func (c CubicBez) Curve() Curve {
	return Curve{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}
