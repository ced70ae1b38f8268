package geom

import (
	"fmt"
)

// Segment is a bounded line segment from P0 to P1, parametrized for
// t ∈ [0, 1]. It is the result of clipping a ray or another segment to a
// finite parameter range.
type Segment struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.P1.Sub(s.P0).Hypot()
}

func (s Segment) Start() Point { return s.P0 }
func (s Segment) End() Point   { return s.P1 }

func (s Segment) Midpoint() Point {
	return s.P0.Midpoint(s.P1)
}

func (s Segment) Eval(t float64) Point {
	return s.P0.Lerp(s.P1, t)
}

func (s Segment) ValueAt(t float64, dim Dim) float64 {
	a := s.P0.Coord(dim)
	return a + (s.P1.Coord(dim)-a)*t
}

// Deriv returns the derivative, P1 − P0, for every t.
func (s Segment) Deriv(t float64) Vec2 {
	return s.P1.Sub(s.P0)
}

// Roots returns the parameters in [0, 1] at which coordinate dim equals v.
//
// A segment with no extent along dim whose endpoints lie on the level set
// satisfies the equation everywhere; Roots then returns
// [ErrInfiniteSolutions].
func (s Segment) Roots(v float64, dim Dim) ([]float64, error) {
	a := s.P0.Coord(dim)
	d := s.P1.Coord(dim) - a
	if d == 0 {
		if a == v {
			return nil, geomErr("Segment.Roots", ErrInfiniteSolutions, "segment", s, "v", v, "dim", dim)
		}
		return nil, nil
	}
	t := (v - a) / d
	if t < 0 || t > 1 {
		return nil, nil
	}
	return []float64{t}, nil
}

// Nearest returns the parameter of the point on the segment closest to pt and
// the squared distance to it.
func (s Segment) Nearest(pt Point) (distSq, t float64) {
	d := s.P1.Sub(s.P0)
	dotp := d.Dot(pt.Sub(s.P0))
	dSquared := d.Dot(d)
	switch {
	case dotp <= 0:
		return pt.Sub(s.P0).Hypot2(), 0
	case dotp >= dSquared:
		return pt.Sub(s.P1).Hypot2(), 1
	default:
		t := dotp / dSquared
		return pt.Sub(s.Eval(t)).Hypot2(), t
	}
}

// CrossingPoint computes the point where the two segments, if extended to
// infinity, would cross. It returns false for parallel segments.
func (s Segment) CrossingPoint(o Segment) (Point, bool) {
	ab := s.P1.Sub(s.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(s.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

func (s Segment) Translate(v Vec2) Segment {
	return Segment{s.P0.Translate(v), s.P1.Translate(v)}
}

func (s Segment) Transform(aff Affine) Segment {
	return Segment{s.P0.Transform(aff), s.P1.Transform(aff)}
}

func (s Segment) Reverse() Segment {
	return Segment{s.P1, s.P0}
}

func (s Segment) Subsegment(start, end float64) Segment {
	return Segment{s.Eval(start), s.Eval(end)}
}

func (s Segment) Subdivide() (Segment, Segment) {
	return s.Subsegment(0, 0.5), s.Subsegment(0.5, 1)
}

// Curve wraps the segment in a [Curve].
func (s Segment) Curve() Curve {
	return Curve{Kind: SegmentKind, P0: s.P0, P1: s.P1}
}

func (s Segment) IsInf() bool {
	return s.P0.IsInf() || s.P1.IsInf()
}

func (s Segment) IsNaN() bool {
	return s.P0.IsNaN() || s.P1.IsNaN()
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment{%s, %s}", s.P0, s.P1)
}
