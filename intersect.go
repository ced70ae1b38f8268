package geom

import (
	"math"
)

// Intersection describes a point shared by two curves by its parameter on
// each of them.
type Intersection struct {
	T0 float64
	T1 float64
}

// linear is a ray or segment as p + d·t for t ∈ [0, hi].
type linear struct {
	p  Point
	d  Vec2
	hi float64
}

func (r Ray) linear() linear {
	return linear{r.origin, r.versor, math.Inf(1)}
}

func (s Segment) linear() linear {
	return linear{s.P0, s.P1.Sub(s.P0), 1}
}

// project returns the parameter of the point of l nearest to pt and its
// distance.
func (l linear) project(pt Point) (t, dist float64) {
	dd := l.d.Hypot2()
	if dd != 0 {
		t = min(max(pt.Sub(l.p).Dot(l.d)/dd, 0), l.hi)
	}
	return t, pt.Distance(l.p.Translate(l.d.Mul(t)))
}

// alongside reports whether o is bounded and both of its endpoints lie
// within eps of the line through l. Such an o is treated as parallel to l
// however small its angle is, since it never strays further than eps.
func (l linear) alongside(o linear, eps float64) bool {
	if math.IsInf(o.hi, 0) {
		return false
	}
	la := l.d.Hypot()
	off := func(pt Point) float64 {
		return math.Abs(pt.Sub(l.p).Cross(l.d)) / la
	}
	return off(o.p) <= eps && off(o.p.Translate(o.d.Mul(o.hi))) <= eps
}

// clampParam clamps t to [0, hi] if it lies within slop of that range.
func (l linear) clampParam(t, slop float64) (float64, bool) {
	if t < -slop || t > l.hi+slop {
		return 0, false
	}
	return min(max(t, 0), l.hi), true
}

// IntersectRays returns the intersection of two rays. Rays that overlap along
// a stretch of positive length return [ErrInfiniteSolutions].
func IntersectRays(a, b Ray) ([]Intersection, error) {
	return intersectLinear("IntersectRays", a.linear(), b.linear())
}

// IntersectRaySegment returns the intersection of a ray and a segment. T0 is
// the parameter on the ray and T1 the one on the segment. Collinear inputs
// that overlap along a stretch of positive length return
// [ErrInfiniteSolutions].
func IntersectRaySegment(r Ray, s Segment) ([]Intersection, error) {
	return intersectLinear("IntersectRaySegment", r.linear(), s.linear())
}

// IntersectSegments returns the intersection of two segments. Collinear
// segments that overlap along a stretch of positive length return
// [ErrInfiniteSolutions].
func IntersectSegments(a, b Segment) ([]Intersection, error) {
	return intersectLinear("IntersectSegments", a.linear(), b.linear())
}

func intersectLinear(op string, a, b linear) ([]Intersection, error) {
	const eps = DefaultEpsilon
	la := a.d.Hypot()
	lb := b.d.Hypot()

	switch {
	case la == 0 && lb == 0:
		if a.p.Near(b.p, eps) {
			return []Intersection{{0, 0}}, nil
		}
		return nil, nil
	case la == 0:
		if u, dist := b.project(a.p); dist <= eps {
			return []Intersection{{0, u}}, nil
		}
		return nil, nil
	case lb == 0:
		if t, dist := a.project(b.p); dist <= eps {
			return []Intersection{{t, 0}}, nil
		}
		return nil, nil
	}

	qp := b.p.Sub(a.p)
	det := a.d.Cross(b.d)
	if det != 0 && !a.alongside(b, eps) && !b.alongside(a, eps) {
		t, ok := a.clampParam(qp.Cross(b.d)/det, eps/la)
		if !ok {
			return nil, nil
		}
		u, ok := b.clampParam(qp.Cross(a.d)/det, eps/lb)
		if !ok {
			return nil, nil
		}
		return []Intersection{{t, u}}, nil
	}

	if !a.alongside(b, eps) && b.alongside(a, eps) {
		// Measure the overlap along the line that the other one hugs.
		xs, err := intersectLinear(op, b, a)
		for i, x := range xs {
			xs[i] = Intersection{x.T1, x.T0}
		}
		return xs, err
	}

	// Parallel. Unless collinear there is nothing to find.
	if math.Abs(qp.Cross(a.d))/la > eps {
		return nil, nil
	}
	// Map b's parameter range onto a's.
	dd := la * la
	k := b.d.Dot(a.d) / dd
	tb0 := qp.Dot(a.d) / dd
	tb1 := tb0 + k*b.hi
	lo := max(0, min(tb0, tb1))
	hi := min(a.hi, max(tb0, tb1))
	switch {
	case (lo-hi)*la > eps:
		return nil, nil
	case (hi-lo)*la > eps:
		return nil, geomErr(op, ErrInfiniteSolutions, "overlap", [2]float64{lo, hi})
	default:
		u, _ := b.project(a.p.Translate(a.d.Mul(lo)))
		return []Intersection{{lo, u}}, nil
	}
}
