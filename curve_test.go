package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func testCurves() []Curve {
	return []Curve{
		NewRay(Pt(1, 2), 0.6).Curve(),
		Segment{Pt(-1, -1), Pt(4, 3)}.Curve(),
		QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}.Curve(),
		CubicBez{Pt(0, 0), Pt(1, 3), Pt(4, -1), Pt(5, 2)}.Curve(),
	}
}

func TestCurveDispatch(t *testing.T) {
	r := NewRay(Pt(1, 2), 0.6)
	c := r.Curve()
	diff(t, c.Ray(), r)
	diff(t, c.Eval(3), r.Eval(3))
	diff(t, c.Deriv(3), r.Versor())
	diff(t, c.ValueAt(3, Y), r.ValueAt(3, Y))
	diff(t, c.Reverse().Ray(), r.Reverse())
	diff(t, c.Transform(Rotate(1)).Ray(), r.Transform(Rotate(1)))

	lo, hi := c.Domain()
	if lo != 0 || !math.IsInf(hi, 1) || c.IsBounded() {
		t.Errorf("ray domain is [%v, %v], want [0, +Inf)", lo, hi)
	}

	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	diff(t, q.Curve().Quad(), q)
	diff(t, q.Curve().Portion(0.25, 0.5).Quad(), q.Subsegment(0.25, 0.5))
	lo, hi = q.Curve().Domain()
	if lo != 0 || hi != 1 || !q.Curve().IsBounded() {
		t.Errorf("quad domain is [%v, %v], want [0, 1]", lo, hi)
	}
}

func TestCurvePortion(t *testing.T) {
	for _, c := range testCurves() {
		p := c.Portion(0.2, 0.7)
		if !p.IsBounded() {
			t.Errorf("%v: portion isn't bounded", c.Kind)
		}
		for _, tt := range []float64{0, 0.5, 1} {
			assertNear(t, p.Eval(tt), c.Eval(0.2+0.5*tt), 1e-12)
		}
	}
}

func TestCurveTransform(t *testing.T) {
	aff := Skew(0.5, 0).ThenRotate(0.3).ThenTranslate(Vec(2, -1))
	for _, c := range testCurves() {
		tc := c.Transform(aff)
		if tc.Kind != c.Kind {
			t.Errorf("transform changed kind from %v to %v", c.Kind, tc.Kind)
		}
		for _, tt := range []float64{0, 0.3, 1} {
			want := c.Eval(tt).Transform(aff)
			if dist := tc.Distance(want, 1e-12); dist > 1e-7 {
				t.Errorf("%v: transformed point at %v is %g off the curve", c.Kind, tt, dist)
			}
		}
	}
}

func TestCurveReverse(t *testing.T) {
	for _, c := range testCurves()[1:] {
		rev := c.Reverse()
		for _, tt := range []float64{0, 0.4, 1} {
			assertNear(t, rev.Eval(tt), c.Eval(1-tt), 1e-12)
		}
		diff(t, rev.Reverse(), c)
	}
}

func TestCurveNearestAndRoots(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-6)
	for _, c := range testCurves() {
		for _, tt := range []float64{0.1, 0.5, 0.9} {
			pt := c.Eval(tt)
			distSq, got := c.Nearest(pt, 1e-12)
			diff(t, distSq, 0.0, approx)
			assertNear(t, c.Eval(got), pt, 1e-6)

			roots, err := c.Roots(pt.X, X)
			if err != nil {
				t.Fatal(err)
			}
			found := false
			for _, r := range roots {
				diff(t, c.ValueAt(r, X), pt.X, approx)
				if math.Abs(r-tt) < 1e-6 {
					found = true
				}
			}
			if !found {
				t.Errorf("%v: root %v not among %v", c.Kind, tt, roots)
			}
		}
	}
}

func TestCurveUnitTangent(t *testing.T) {
	v, ok := Segment{Pt(0, 0), Pt(0, 5)}.Curve().UnitTangentAt(0.5)
	if !ok {
		t.Fatal("segment has no tangent")
	}
	diff(t, v, Vec(0, 1))

	if _, ok := (Ray{}).Curve().UnitTangentAt(0); ok {
		t.Error("degenerate ray has a tangent")
	}
	// Control point coincides with the start point.
	cusp := CubicBez{Pt(0, 0), Pt(0, 0), Pt(1, 1), Pt(2, 0)}.Curve()
	if _, ok := cusp.UnitTangentAt(0); ok {
		t.Error("vanishing derivative has a tangent")
	}
}

func TestCurveRootsInfinite(t *testing.T) {
	c := RayThrough(Pt(3, 5), Pt(3, 10)).Curve()
	if _, err := c.Roots(5, X); !errors.Is(err, ErrInfiniteSolutions) {
		t.Errorf("got error %v, want ErrInfiniteSolutions", err)
	}
}

func TestCurveInvalidKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero Curve")
		}
	}()
	Curve{}.Eval(0)
}
