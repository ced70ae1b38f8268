// Package geom is a 2D geometry kernel: points, vectors, affine transforms and
// a small closed family of parametric curves, together with the numerical
// routines that editors need for snapping, guides and path editing. These are
// root finding, nearest points, distances, intersections, tangents and angle
// bisectors.
//
// # Points and vectors
//
// [Point] is a position and [Vec2] a displacement. Subtracting two points
// yields a vector, and translating a point by a vector yields a point. [Dim]
// selects a single coordinate, for operations such as [Ray.ValueAt] and
// [Ray.Roots] that work on one axis at a time.
//
// # Curves
//
// The package provides four curve types:
//   - [Ray], a half-line with a unit direction, parametrized for t ∈ [0, ∞)
//   - [Segment], a bounded line segment, t ∈ [0, 1]
//   - [QuadBez] and [CubicBez], Bézier curves, t ∈ [0, 1]
//
// [Curve] is a tagged union over all of them. It is a plain value, so curves
// can be stored, compared and copied without allocating. Clipping any curve to
// a parameter range with Portion yields a bounded curve; the portion of a ray
// is a segment.
//
// All types are immutable values. Operations such as [Ray.Reverse],
// [Ray.WithAngle] or [Ray.Transform] return new values.
//
// # Tolerances and failures
//
// Geometric computations accumulate rounding error, so comparisons take an
// explicit tolerance, see [Near], [Point.Near] and [SameRays].
// [DefaultEpsilon] is used where an operation has no tolerance parameter.
//
// Degenerate input, such as a [Ray] built from two coincident points, is
// normal during interactive editing and never causes an error; see
// [Ray.IsDegenerate]. Two conditions are reported as errors, wrapped in a
// [*GeometryError]:
//   - [ErrInfiniteSolutions], when root finding or intersection has infinitely
//     many answers. This is distinct from an empty result.
//   - [ErrDomain], when an operation's precondition is violated, such as
//     bisecting rays with different origins.
//
// # Orientation
//
// Angles follow the convention of [Rotate]: positive angles rotate the positive
// x axis into the positive y axis. In the y-down coordinate systems common in
// graphics this is clockwise, which is the sense of "clockwise" used by
// [AngleBetween].
//
// # Logging
//
// The package is silent by default. [SetLogger] installs a [log/slog] logger
// that receives debug records whenever an operation reports a geometric error.
package geom
