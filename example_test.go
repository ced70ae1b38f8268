package geom_test

import (
	"errors"
	"fmt"
	"math"

	"honnef.co/go/geom"
)

func ExampleRay() {
	r := geom.RayThrough(geom.Pt(0, 0), geom.Pt(1, 0))
	_, t := r.Nearest(geom.Pt(3, 4))

	fmt.Println(r.Angle())
	fmt.Println(r.Eval(5))
	fmt.Println(t)
	fmt.Println(geom.DistanceToRay(geom.Pt(3, 4), r))
	// Output:
	// 0
	// (5, 0)
	// 3
	// 4
}

func ExampleRay_Roots() {
	r := geom.RayThrough(geom.Pt(3, 5), geom.Pt(3, 10))
	_, err := r.Roots(5, geom.X)
	fmt.Println(errors.Is(err, geom.ErrInfiniteSolutions))
	fmt.Println(err)
	// Output:
	// true
	// Ray.Roots: infinite solutions
}

func ExampleAngleBisector() {
	r1 := geom.NewRay(geom.Pt(0, 0), 0)
	r2 := geom.NewRay(geom.Pt(0, 0), math.Pi/2)
	b, err := geom.AngleBisector(r1, r2)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", b.Angle())

	_, err = geom.AngleBisector(r1, r2.WithOrigin(geom.Pt(1, 0)))
	fmt.Println(err)
	// Output:
	// 0.7854
	// AngleBisector: invalid domain
}

func ExampleCurve_Portion() {
	r := geom.NewRay(geom.Pt(1, 1), 0)
	c := r.Curve().Portion(2, 4)
	fmt.Println(c.Kind, c.Segment())
	// Output:
	// segment Segment{(3, 1), (5, 1)}
}
