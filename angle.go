package geom

import (
	"math"
)

// NormalizeAngle maps a to the equivalent angle in [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		// a was a tiny negative number.
		a = 0
	}
	return a
}

// VecAngleBetween returns the signed angle from a to b in (-π, π]. It is
// positive when b lies in the direction of positive rotation from a.
func VecAngleBetween(a, b Vec2) float64 {
	return math.Atan2(a.Cross(b), a.Dot(b))
}

// AngleBetween returns the angle swept when rotating the versor of r1 onto
// the versor of r2, in [0, 2π].
//
// With clockwise set, the sweep is in the direction of positive rotation,
// which is clockwise in the y-down coordinate systems used for drawing (see
// [Rotate]). Otherwise the angle is measured the other way around, as
// 2π minus the clockwise angle. AngleBetween(r, r, true) is 0 for any r.
func AngleBetween(r1, r2 Ray, clockwise bool) float64 {
	a := VecAngleBetween(r1.versor, r2.versor)
	if a < 0 {
		a += 2 * math.Pi
	}
	if !clockwise {
		a = 2*math.Pi - a
	}
	return a
}

// AngleBisector returns the ray that bisects the angle swept from r1 to r2 in
// the direction of positive rotation, that is the angle reported by
// AngleBetween(r1, r2, true). Swapping the arguments yields the opposite ray
// unless the rays are parallel.
//
// The rays must share their origin, within [DefaultEpsilon]; otherwise
// AngleBisector returns [ErrDomain]. The bisector passes through the midpoint
// of the two points at unit distance along the rays, mirrored through the
// origin when the clockwise angle from r1 to r2 exceeds π. When the rays point
// in opposite directions the midpoint is the origin itself, and the bisector
// is r1 turned by a quarter turn in the direction of positive rotation.
func AngleBisector(r1, r2 Ray) (Ray, error) {
	if !r1.origin.Near(r2.origin, DefaultEpsilon) {
		return Ray{}, geomErr("AngleBisector", ErrDomain, "r1", r1, "r2", r2)
	}
	o := r1.origin
	m := r1.Eval(1).Midpoint(r2.Eval(1))
	if AngleBetween(r1, r2, true) > math.Pi {
		m = m.ReflectThrough(o)
	}
	b := RayThrough(o, m)
	if b.IsDegenerate() {
		b = RayAlong(o, r1.versor.Turn90())
	}
	return b, nil
}
