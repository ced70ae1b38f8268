package geom

// DefaultEpsilon is the tolerance used by operations that don't take one
// explicitly. It suits document coordinates of typical drawings.
const DefaultEpsilon = 1e-6

// Near reports whether a and b differ by at most eps.
func Near(a, b, eps float64) bool {
	d := a - b
	return d <= eps && -d <= eps
}

// Near reports whether the distance between pt and o is at most eps.
func (pt Point) Near(o Point, eps float64) bool {
	return pt.Distance(o) <= eps
}

// Near reports whether the distance between the tips of v and o is at most
// eps.
func (v Vec2) Near(o Vec2, eps float64) bool {
	return v.Sub(o).Hypot() <= eps
}
