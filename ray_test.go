package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRayBasics(t *testing.T) {
	r := RayThrough(Pt(0, 0), Pt(1, 0))
	if a := r.Angle(); a != 0 {
		t.Errorf("got angle %v, want 0", a)
	}
	diff(t, r.Eval(5), Pt(5, 0))
	if _, tt := r.Nearest(Pt(3, 4)); tt != 3 {
		t.Errorf("got nearest t = %v, want 3", tt)
	}
	if d := DistanceToRay(Pt(3, 4), r); d != 4 {
		t.Errorf("got distance %v, want 4", d)
	}
	if v := r.ValueAt(2.5, X); v != 2.5 {
		t.Errorf("got ValueAt %v, want 2.5", v)
	}
	diff(t, r.Deriv(7), Vec(1, 0))
}

func TestRayDefault(t *testing.T) {
	diff(t, DefaultRay.Origin(), Pt(0, 0))
	diff(t, DefaultRay.Versor(), Vec(1, 0))
	if DefaultRay.IsDegenerate() {
		t.Error("DefaultRay is degenerate")
	}
	if !(Ray{}).IsDegenerate() {
		t.Error("zero Ray isn't degenerate")
	}
}

func TestRayDegenerate(t *testing.T) {
	r := RayThrough(Pt(2, 3), Pt(2, 3))
	if !r.IsDegenerate() {
		t.Fatal("ray through coincident points isn't degenerate")
	}
	for _, pt := range []Point{Pt(0, 0), Pt(2, 3), Pt(-5, 100)} {
		if _, tt := r.Nearest(pt); tt != 0 {
			t.Errorf("nearest t for %s = %v, want 0", pt, tt)
		}
	}
	if _, ok := r.UnitTangentAt(0); ok {
		t.Error("degenerate ray has a tangent")
	}
	if !r.WithVersor(Vec2{}).IsDegenerate() || !DefaultRay.WithVersor(Vec2{}).IsDegenerate() {
		t.Error("zero versor should make ray degenerate")
	}
	if !r.Transform(Rotate(1)).IsDegenerate() {
		t.Error("transformed degenerate ray isn't degenerate")
	}
}

func TestRayVersorIsUnit(t *testing.T) {
	rays := []Ray{
		NewRay(Pt(1, 2), 0.3),
		RayThrough(Pt(-4, 7), Pt(100, -3)),
		DefaultRay.WithVersor(Vec(3, 4)),
		DefaultRay.WithAngle(2.5),
		RayThrough(Pt(0, 0), Pt(1, 1)).Transform(Skew(3, 0).ThenScale(5, 0.1)),
	}
	for _, r := range rays {
		if h := r.Versor().Hypot(); math.Abs(h-1) > 1e-12 {
			t.Errorf("%s: versor has length %v", r, h)
		}
	}
	diff(t, DefaultRay.WithVersor(Vec(3, 4)).Versor(), Vec(0.6, 0.8))
}

func TestRayAngleRoundTrip(t *testing.T) {
	for _, a := range []float64{0, 0.5, 1, math.Pi / 2, 3, -0.5, -3} {
		r := DefaultRay.WithOrigin(Pt(4, 5)).WithAngle(a)
		diff(t, r.Angle(), a, cmpopts.EquateApprox(0, 1e-12))
		diff(t, r.Origin(), Pt(4, 5))
	}
	// Angles are only recovered modulo 2π.
	r := NewRay(Pt(0, 0), 2*math.Pi+1)
	diff(t, r.Angle(), 1.0, cmpopts.EquateApprox(0, 1e-12))
}

func TestRayNearestInverse(t *testing.T) {
	for _, a := range []float64{0, 0.3, 1.7, -2.2} {
		r := NewRay(Pt(-3, 8), a)
		for _, tt := range []float64{0, 0.001, 1, 17.5, 1e4} {
			_, got := r.Nearest(r.Eval(tt))
			diff(t, got, tt, cmpopts.EquateApprox(0, 1e-9))
		}
	}
}

func TestRayNearestBehindOrigin(t *testing.T) {
	r := NewRay(Pt(0, 0), 0)
	distSq, tt := r.Nearest(Pt(-3, 4))
	if tt != 0 {
		t.Errorf("got t = %v, want 0", tt)
	}
	if distSq != 25 {
		t.Errorf("got squared distance %v, want 25", distSq)
	}
}

func TestRayReverse(t *testing.T) {
	r := NewRay(Pt(1, -2), 0.7)
	rev := r.Reverse()
	diff(t, rev.Origin(), r.Origin())
	diff(t, rev.Versor(), r.Versor().Negate())
	if !SameRays(rev.Reverse(), r, 1e-12) {
		t.Error("double reverse isn't the same ray")
	}
	if SameRays(rev, r, 1e-6) {
		t.Error("reversed ray is the same ray")
	}
}

func TestRayRoots(t *testing.T) {
	r := RayThrough(Pt(1, 1), Pt(3, 1))
	roots, err := r.Roots(5, X)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, roots, []float64{4})

	// Target behind the origin.
	roots, err = r.Roots(-3, X)
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 0 {
		t.Errorf("got roots %v, want none", roots)
	}

	// Vertical ray.
	v := RayThrough(Pt(3, 5), Pt(3, 10))
	_, err = v.Roots(5, X)
	if !errors.Is(err, ErrInfiniteSolutions) {
		t.Errorf("got error %v, want ErrInfiniteSolutions", err)
	}
	var gerr *GeometryError
	if !errors.As(err, &gerr) || gerr.Op != "Ray.Roots" {
		t.Errorf("got error %#v, want *GeometryError for Ray.Roots", err)
	}
	roots, err = v.Roots(4, X)
	if err != nil || len(roots) != 0 {
		t.Errorf("got (%v, %v), want no roots and no error", roots, err)
	}
	roots, err = v.Roots(7, Y)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, roots, []float64{2})

	for _, root := range []float64{0, 2.5, 10} {
		r := NewRay(Pt(-1, 2), 0.9)
		target := r.ValueAt(root, Y)
		roots, err := r.Roots(target, Y)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, roots, []float64{root}, cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestRayPortion(t *testing.T) {
	r := NewRay(Pt(2, 2), math.Pi/4)
	seg := r.Subsegment(1, 3)
	assertNear(t, seg.P0, r.Eval(1), 1e-12)
	assertNear(t, seg.P1, r.Eval(3), 1e-12)

	c := r.Portion(1, 3)
	if c.Kind != SegmentKind {
		t.Fatalf("got kind %v, want segment", c.Kind)
	}
	diff(t, c.Segment(), seg)
	if !c.IsBounded() {
		t.Error("portion of a ray isn't bounded")
	}
}

func TestRayTransform(t *testing.T) {
	r := RayThrough(Pt(1, 1), Pt(2, 2))
	affs := []Affine{
		Identity,
		Translate(Vec(5, -3)),
		Rotate(0.8),
		Scale(3, 0.5),
		Skew(2, 0).ThenScale(3, 1).ThenTranslate(Vec(1, 2)),
	}
	for _, aff := range affs {
		tr := r.Transform(aff)
		assertNear(t, tr.Origin(), r.Origin().Transform(aff), 1e-12)
		want, _ := r.Eval(1).Transform(aff).Sub(r.Origin().Transform(aff)).Normalize()
		if !tr.Versor().Near(want, 1e-12) {
			t.Errorf("got versor %s, want %s", tr.Versor(), want)
		}
		// Points on the ray stay on the transformed ray.
		for _, tt := range []float64{0, 1, 7.5} {
			if !NearRay(r.Eval(tt).Transform(aff), tr, 1e-9) {
				t.Errorf("%v: point at %v left the ray", aff, tt)
			}
		}
	}
}
