package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAngleBetween(t *testing.T) {
	r := NewRay(Pt(1, 1), 0.4)
	if a := AngleBetween(r, r, true); a != 0 {
		t.Errorf("angle between ray and itself = %v, want 0", a)
	}

	x := RayThrough(Pt(0, 0), Pt(1, 0))
	y := RayThrough(Pt(0, 0), Pt(0, 1))
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, AngleBetween(x, y, true), math.Pi/2, approx)
	diff(t, AngleBetween(x, y, false), 3*math.Pi/2, approx)
	diff(t, AngleBetween(y, x, true), 3*math.Pi/2, approx)
	diff(t, AngleBetween(y, x, false), math.Pi/2, approx)
}

func TestNormalizeAngle(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, NormalizeAngle(-math.Pi/2), 3*math.Pi/2, approx)
	diff(t, NormalizeAngle(5*math.Pi), math.Pi, approx)
	diff(t, NormalizeAngle(1), 1.0, approx)
	if a := NormalizeAngle(-1e-300); a < 0 || a >= 2*math.Pi {
		t.Errorf("got %v, want angle in [0, 2π)", a)
	}
}

func TestAngleBisector(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	r1 := NewRay(Pt(0, 0), 0)
	r2 := NewRay(Pt(0, 0), math.Pi/2)
	b, err := AngleBisector(r1, r2)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, b.Angle(), math.Pi/4, approx)
	diff(t, b.Origin(), Pt(0, 0))

	// The bisected angle is the one swept from r1 to r2 by positive
	// rotation, so swapping the rays flips the bisector.
	b, err = AngleBisector(r2, r1)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, b.Angle(), -3*math.Pi/4, approx)

	// Shared origin away from zero.
	o := Pt(5, -2)
	b, err = AngleBisector(NewRay(o, 0.2), NewRay(o, 1.0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, b.Angle(), 0.6, approx)
	diff(t, b.Origin(), o)

	// Opposite rays.
	b, err = AngleBisector(RayThrough(o, Pt(6, -2)), RayThrough(o, Pt(4, -2)))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, b.Versor(), Vec(0, 1), approx)
}

func TestAngleBisectorDomain(t *testing.T) {
	_, err := AngleBisector(NewRay(Pt(0, 0), 0), NewRay(Pt(1, 0), math.Pi/2))
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("got error %v, want ErrDomain", err)
	}
	var gerr *GeometryError
	if !errors.As(err, &gerr) || gerr.Op != "AngleBisector" {
		t.Errorf("got error %#v, want *GeometryError for AngleBisector", err)
	}

	// Origins within tolerance are accepted.
	if _, err := AngleBisector(NewRay(Pt(0, 0), 0), NewRay(Pt(1e-9, 0), 1)); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}
