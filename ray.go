package geom

import (
	"fmt"
	"math"
)

// Ray is a half-line: an origin and a unit direction vector, the versor,
// parametrized as origin + versor·t for t ∈ [0, ∞).
//
// A ray whose versor is the zero vector is degenerate. Degenerate rays arise
// naturally, for example while a user is still dragging out a guide, and all
// operations have defined results for them.
//
// The zero value is a degenerate ray at the origin; use [DefaultRay] for a
// ray along the positive x axis.
type Ray struct {
	origin Point
	versor Vec2
}

// DefaultRay starts at (0, 0) and points along the positive x axis.
var DefaultRay = Ray{versor: Vec2{X: 1}}

// NewRay returns the ray starting at origin with direction angle, in radians.
func NewRay(origin Point, angle float64) Ray {
	return Ray{origin: origin, versor: VecFromAngle(angle)}
}

// RayThrough returns the ray starting at a and passing through b. If a and b
// coincide, the ray is degenerate.
func RayThrough(a, b Point) Ray {
	return RayAlong(a, b.Sub(a))
}

// RayAlong returns the ray starting at origin in the direction of dir, which
// need not be normalized. A zero dir yields a degenerate ray.
func RayAlong(origin Point, dir Vec2) Ray {
	v, _ := dir.Normalize()
	return Ray{origin: origin, versor: v}
}

func (r Ray) Origin() Point { return r.origin }
func (r Ray) Versor() Vec2  { return r.versor }

// WithOrigin returns a copy of r that starts at origin.
func (r Ray) WithOrigin(origin Point) Ray {
	r.origin = origin
	return r
}

// WithVersor returns a copy of r pointing along dir. The direction is
// normalized; a zero dir yields a degenerate ray.
func (r Ray) WithVersor(dir Vec2) Ray {
	return RayAlong(r.origin, dir)
}

// Angle returns the direction of the ray in radians, in (-π, π].
func (r Ray) Angle() float64 {
	return r.versor.Angle()
}

// WithAngle returns a copy of r with the same origin, pointing at angle.
func (r Ray) WithAngle(angle float64) Ray {
	return NewRay(r.origin, angle)
}

// IsDegenerate reports whether the versor is exactly the zero vector.
func (r Ray) IsDegenerate() bool {
	return r.versor.IsZero()
}

// Eval returns origin + versor·t. It accepts any t, including negative values
// that lie behind the origin.
func (r Ray) Eval(t float64) Point {
	return r.origin.Translate(r.versor.Mul(t))
}

// ValueAt returns a single coordinate of Eval(t).
func (r Ray) ValueAt(t float64, dim Dim) float64 {
	return r.origin.Coord(dim) + r.versor.Coord(dim)*t
}

// Deriv returns the derivative at t, which is the versor everywhere.
func (r Ray) Deriv(t float64) Vec2 {
	return r.versor
}

// UnitTangentAt returns the unit tangent at t. It returns false for a
// degenerate ray.
func (r Ray) UnitTangentAt(t float64) (Vec2, bool) {
	return r.versor, !r.IsDegenerate()
}

func (r Ray) Start() Point { return r.origin }

// Roots returns the parameters t ≥ 0 at which the coordinate dim of the ray
// equals v. There is at most one such t.
//
// When the versor has no component along dim and the origin's coordinate along
// the other axis equals v, the ray is considered to satisfy the equation
// everywhere and Roots returns [ErrInfiniteSolutions]. Any other ray without a
// component along dim has no roots.
func (r Ray) Roots(v float64, dim Dim) ([]float64, error) {
	d := r.versor.Coord(dim)
	if d != 0 {
		t := (v - r.origin.Coord(dim)) / d
		if t >= 0 {
			return []float64{t}, nil
		}
		return nil, nil
	}
	if r.origin.Coord(dim.Other()) == v {
		return nil, geomErr("Ray.Roots", ErrInfiniteSolutions, "ray", r, "v", v, "dim", dim)
	}
	return nil, nil
}

// Nearest returns the parameter of the point on the ray closest to pt, and the
// squared distance to it. Points behind the origin project onto the origin.
// For a degenerate ray, t is always 0.
func (r Ray) Nearest(pt Point) (distSq, t float64) {
	t = max(0, pt.Sub(r.origin).Dot(r.versor))
	return pt.DistanceSquared(r.Eval(t)), t
}

// Reverse returns the ray with the same origin pointing the opposite way.
func (r Ray) Reverse() Ray {
	r.versor = r.versor.Negate()
	return r
}

// Subsegment returns the bounded segment from Eval(start) to Eval(end).
func (r Ray) Subsegment(start, end float64) Segment {
	return Segment{r.Eval(start), r.Eval(end)}
}

// Portion returns the part of the ray between start and end as a bounded
// curve.
func (r Ray) Portion(start, end float64) Curve {
	return r.Subsegment(start, end).Curve()
}

// Transform maps the ray through aff.
//
// The origin and the point one unit along the ray are transformed as points,
// and the versor is recomputed from their normalized difference. The
// parametrization is not preserved: the result has a unit versor even when aff
// scales. A singular aff can collapse the ray into a degenerate one.
func (r Ray) Transform(aff Affine) Ray {
	return RayThrough(
		r.origin.Transform(aff),
		r.origin.Translate(r.versor).Transform(aff),
	)
}

// Curve wraps the ray in a [Curve].
func (r Ray) Curve() Curve {
	return Curve{Kind: RayKind, P0: r.origin, P1: Point(r.versor)}
}

// Equal reports whether r and o have exactly the same origin and versor. Use
// [SameRays] to compare with a tolerance.
func (r Ray) Equal(o Ray) bool {
	return r == o
}

func (r Ray) IsInf() bool {
	return r.origin.IsInf() || r.versor.IsInf()
}

func (r Ray) IsNaN() bool {
	return r.origin.IsNaN() || r.versor.IsNaN()
}

func (r Ray) String() string {
	if r.IsDegenerate() {
		return fmt.Sprintf("Ray{%s, degenerate}", r.origin)
	}
	return fmt.Sprintf("Ray{%s, %s, %g°}", r.origin, r.versor, r.Angle()*180/math.Pi)
}
