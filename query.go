package geom

import (
	"math"
)

// DistanceToRay returns the distance from pt to the nearest point of r.
func DistanceToRay(pt Point, r Ray) float64 {
	distSq, _ := r.Nearest(pt)
	return math.Sqrt(distSq)
}

// NearRay reports whether pt lies within eps of r.
func NearRay(pt Point, r Ray, eps float64) bool {
	return DistanceToRay(pt, r) <= eps
}

// SameRays reports whether r1 and r2 have near origins and near versors.
func SameRays(r1, r2 Ray, eps float64) bool {
	return r1.origin.Near(r2.origin, eps) && r1.versor.Near(r2.versor, eps)
}
