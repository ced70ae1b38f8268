package geom

import (
	"fmt"
	"math"
	"slices"
)

// Rect is an axis-aligned rectangle, such as a curve's bounding box or the
// visible part of a canvas.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns X1 − X0. It may be negative.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1 − Y0. It may be negative.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether pt lies inside r or on its boundary.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// UnionPoint computes the union with one point.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return r.UnionPoint(Pt(o.X0, o.Y0)).UnionPoint(Pt(o.X1, o.Y1))
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{r.X0 + v.X, r.Y0 + v.Y, r.X1 + v.X, r.Y1 + v.Y}
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) || math.IsInf(r.Y0, 0) || math.IsInf(r.X1, 0) || math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) || math.IsNaN(r.Y0) || math.IsNaN(r.X1) || math.IsNaN(r.Y1)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{%s, %s}", Pt(r.X0, r.Y0), Pt(r.X1, r.Y1))
}

// clip returns the parameter range of l that lies inside r, using the
// Liang–Barsky algorithm.
func (r Rect) clip(l linear) (t0, t1 float64, ok bool) {
	t0, t1 = 0, l.hi
	edge := func(p, q float64) bool {
		// p·t ≤ q must hold inside the rectangle.
		switch {
		case p == 0:
			return q >= 0
		case p < 0:
			t0 = max(t0, q/p)
		default:
			t1 = min(t1, q/p)
		}
		return t0 <= t1
	}
	ok = edge(-l.d.X, l.p.X-r.X0) &&
		edge(l.d.X, r.X1-l.p.X) &&
		edge(-l.d.Y, l.p.Y-r.Y0) &&
		edge(l.d.Y, r.Y1-l.p.Y)
	return t0, t1, ok
}

// ClipRay returns the part of ray inside r, for drawing a guide across a
// viewport. It returns false if the ray misses r. A degenerate ray clips to
// a zero-length segment when its origin lies inside r.
func (r Rect) ClipRay(ray Ray) (Segment, bool) {
	t0, t1, ok := r.clip(ray.linear())
	if !ok {
		return Segment{}, false
	}
	if ray.IsDegenerate() {
		t1 = 0
	}
	return ray.Subsegment(t0, t1), true
}

// ClipSegment returns the part of s inside r. It returns false if s misses r.
func (r Rect) ClipSegment(s Segment) (Segment, bool) {
	t0, t1, ok := r.clip(s.linear())
	if !ok {
		return Segment{}, false
	}
	return s.Subsegment(t0, t1), true
}

// Extrema returns the parameters in (0, 1) at which the derivative of one of
// the coordinates vanishes, in increasing order.
func (q QuadBez) Extrema() []float64 {
	var out []float64
	d0 := q.P1.Sub(q.P0)
	dd := q.P2.Sub(q.P1).Sub(d0)
	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			out = append(out, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			out = append(out, t)
			if len(out) == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out
}

// Extrema returns the parameters in (0, 1) at which the derivative of one of
// the coordinates vanishes, in increasing order.
func (c CubicBez) Extrema() []float64 {
	var out []float64
	oneCoord := func(d0, d1, d2 float64) {
		roots, n := SolveQuadratic(d0, 2*(d1-d0), d0-2*d1+d2)
		for _, t := range roots[:n] {
			if t > 0 && t < 1 {
				out = append(out, t)
			}
		}
	}
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	slices.Sort(out)
	return out
}

// BoundingBox returns the smallest rectangle containing the curve. Rays are
// unbounded, and BoundingBox returns false for them.
func (c Curve) BoundingBox() (Rect, bool) {
	var ex []float64
	switch c.Kind {
	case RayKind:
		return Rect{}, false
	case SegmentKind:
		return NewRectFromPoints(c.P0, c.P1), true
	case QuadKind:
		ex = c.Quad().Extrema()
	case CubicKind:
		ex = c.Cubic().Extrema()
	default:
		panic(c.badKind())
	}
	bbox := NewRectFromPoints(c.Eval(0), c.Eval(1))
	for _, t := range ex {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox, true
}
