package geom

import (
	"fmt"
	"math"
)

// CurveKind identifies which primitive a [Curve] holds.
type CurveKind int

const (
	// A ray, unbounded in one direction.
	RayKind CurveKind = iota + 1
	// A bounded line segment.
	SegmentKind
	// A quadratic Bézier curve.
	QuadKind
	// A cubic Bézier curve.
	CubicKind
)

func (k CurveKind) String() string {
	switch k {
	case RayKind:
		return "ray"
	case SegmentKind:
		return "segment"
	case QuadKind:
		return "quad"
	case CubicKind:
		return "cubic"
	default:
		return fmt.Sprintf("CurveKind(%d)", int(k))
	}
}

// Curve is a tagged union of the parametric curves in this package: [Ray],
// [Segment], [QuadBez] and [CubicBez].
//
// The meaning of the points depends on Kind. For RayKind, P0 is the origin and
// P1 holds the coordinates of the versor. Segments use P0 and P1, quadratic
// Béziers P0 through P2, and cubic Béziers all four points.
//
// The zero Curve has no kind. Calling methods on it panics.
type Curve struct {
	// The family of curves is closed, so a struct is used instead of an
	// interface. This keeps curves comparable and avoids allocating.

	Kind CurveKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

func (c Curve) badKind() string {
	return fmt.Sprintf("invalid Curve kind %v", c.Kind)
}

// Ray returns the ray represented by this curve. This is only valid when
// Kind == RayKind.
func (c Curve) Ray() Ray { return Ray{origin: c.P0, versor: Vec2(c.P1)} }

// Segment returns the segment represented by this curve. This is only valid
// when Kind == SegmentKind.
func (c Curve) Segment() Segment { return Segment{c.P0, c.P1} }

// Quad returns the quadratic Bézier represented by this curve. This is only
// valid when Kind == QuadKind.
func (c Curve) Quad() QuadBez { return QuadBez{c.P0, c.P1, c.P2} }

// Cubic returns the cubic Bézier represented by this curve. This is only
// valid when Kind == CubicKind.
func (c Curve) Cubic() CubicBez { return CubicBez{c.P0, c.P1, c.P2, c.P3} }

// IsBounded reports whether the curve's parameter domain is finite.
func (c Curve) IsBounded() bool {
	return c.Kind != RayKind
}

// Domain returns the range of valid parameters. For rays the upper bound is
// +Inf.
func (c Curve) Domain() (lo, hi float64) {
	if c.Kind == RayKind {
		return 0, math.Inf(1)
	}
	return 0, 1
}

func (c Curve) Eval(t float64) Point {
	switch c.Kind {
	case RayKind:
		return c.Ray().Eval(t)
	case SegmentKind:
		return c.Segment().Eval(t)
	case QuadKind:
		return c.Quad().Eval(t)
	case CubicKind:
		return c.Cubic().Eval(t)
	default:
		panic(c.badKind())
	}
}

// ValueAt evaluates a single coordinate of the curve at t.
func (c Curve) ValueAt(t float64, dim Dim) float64 {
	switch c.Kind {
	case RayKind:
		return c.Ray().ValueAt(t, dim)
	case SegmentKind:
		return c.Segment().ValueAt(t, dim)
	case QuadKind:
		return c.Quad().ValueAt(t, dim)
	case CubicKind:
		return c.Cubic().ValueAt(t, dim)
	default:
		panic(c.badKind())
	}
}

// Deriv returns the first derivative at t.
func (c Curve) Deriv(t float64) Vec2 {
	switch c.Kind {
	case RayKind:
		return c.Ray().Deriv(t)
	case SegmentKind:
		return c.Segment().Deriv(t)
	case QuadKind:
		return c.Quad().Deriv(t)
	case CubicKind:
		return c.Cubic().Deriv(t)
	default:
		panic(c.badKind())
	}
}

// UnitTangentAt returns the normalized derivative at t. It returns false where
// the derivative vanishes, for example on degenerate rays or at the cusp
// endpoints of a Bézier whose control point coincides with its endpoint.
func (c Curve) UnitTangentAt(t float64) (Vec2, bool) {
	return c.Deriv(t).Normalize()
}

// Start returns Eval(0).
func (c Curve) Start() Point {
	return c.P0
}

// Roots returns the parameters within the curve's domain at which coordinate
// dim equals v, in increasing order. See the Roots methods of the individual
// curve types for when [ErrInfiniteSolutions] is returned.
func (c Curve) Roots(v float64, dim Dim) ([]float64, error) {
	switch c.Kind {
	case RayKind:
		return c.Ray().Roots(v, dim)
	case SegmentKind:
		return c.Segment().Roots(v, dim)
	case QuadKind:
		return c.Quad().Roots(v, dim)
	case CubicKind:
		return c.Cubic().Roots(v, dim)
	default:
		panic(c.badKind())
	}
}

// Nearest returns the parameter of the point on the curve closest to pt and
// the squared distance to it. The accuracy is only used by cubic Béziers; the
// other kinds are solved exactly.
func (c Curve) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	switch c.Kind {
	case RayKind:
		return c.Ray().Nearest(pt)
	case SegmentKind:
		return c.Segment().Nearest(pt)
	case QuadKind:
		return c.Quad().Nearest(pt)
	case CubicKind:
		return c.Cubic().Nearest(pt, accuracy)
	default:
		panic(c.badKind())
	}
}

// Distance returns the distance from pt to the nearest point on the curve.
func (c Curve) Distance(pt Point, accuracy float64) float64 {
	distSq, _ := c.Nearest(pt, accuracy)
	return math.Sqrt(distSq)
}

// Portion returns the part of the curve between the parameters start and end
// as a new bounded curve. Portions of rays are segments; the other kinds keep
// their kind. If start > end, the portion runs backwards.
func (c Curve) Portion(start, end float64) Curve {
	switch c.Kind {
	case RayKind:
		return c.Ray().Portion(start, end)
	case SegmentKind:
		return c.Segment().Subsegment(start, end).Curve()
	case QuadKind:
		return c.Quad().Subsegment(start, end).Curve()
	case CubicKind:
		return c.Cubic().Subsegment(start, end).Curve()
	default:
		panic(c.badKind())
	}
}

func (c Curve) Transform(aff Affine) Curve {
	switch c.Kind {
	case RayKind:
		return c.Ray().Transform(aff).Curve()
	case SegmentKind:
		return c.Segment().Transform(aff).Curve()
	case QuadKind:
		return c.Quad().Transform(aff).Curve()
	case CubicKind:
		return c.Cubic().Transform(aff).Curve()
	default:
		panic(c.badKind())
	}
}

// Reverse returns the curve traversed in the opposite direction. For rays this
// keeps the origin and negates the versor.
func (c Curve) Reverse() Curve {
	switch c.Kind {
	case RayKind:
		return c.Ray().Reverse().Curve()
	case SegmentKind:
		return c.Segment().Reverse().Curve()
	case QuadKind:
		return c.Quad().Reverse().Curve()
	case CubicKind:
		return c.Cubic().Reverse().Curve()
	default:
		panic(c.badKind())
	}
}

func (c Curve) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c Curve) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}
