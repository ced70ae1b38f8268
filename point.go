package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Dim names one of the two axes of the plane.
type Dim int

const (
	X Dim = 0
	Y Dim = 1
)

// Other returns the orthogonal axis.
func (d Dim) Other() Dim {
	return 1 - d
}

func (d Dim) String() string {
	switch d {
	case X:
		return "X"
	case Y:
		return "Y"
	default:
		return fmt.Sprintf("Dim(%d)", int(d))
	}
}

// Point is a position in the plane. Use [Vec2] for displacements.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PointFromF64 converts an x/image vector to a point.
func PointFromF64(v f64.Vec2) Point {
	return Point{X: v[0], Y: v[1]}
}

// F64 returns the point in the representation used by golang.org/x/image.
func (pt Point) F64() f64.Vec2 {
	return f64.Vec2{pt.X, pt.Y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Coord returns the coordinate along dim.
func (pt Point) Coord(dim Dim) float64 {
	if dim == X {
		return pt.X
	}
	return pt.Y
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// ReflectThrough returns the point mirrored through center, 2·center − pt.
func (pt Point) ReflectThrough(center Point) Point {
	return Point{
		X: 2*center.X - pt.X,
		Y: 2*center.Y - pt.Y,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return a.Distance(b)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
