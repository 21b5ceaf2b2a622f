// Package bezier provides the numerical helpers that Bézier curve algorithms
// such as subdivision, intersection and containment tests are built on.
//
// The helpers are pure functions on plain values. They never retain their
// inputs, never modify them, and are safe for concurrent use.
//
// # Orientation
//
// [Cross] computes the 2D cross product of two vectors, the signed area of
// the parallelogram they span. Its sign tells whether the second vector is a
// counter-clockwise or clockwise turn from the first, see [Orient] and
// [OrientPoints]. The exact algebraic formula is used, as orientation tests are
// most sensitive to error precisely when the result is close to zero.
//
// # Bounding boxes
//
// [BBox] computes the axis-aligned [BoundingBox] of a set of control points.
// By the convex hull property of Bézier curves, this box also contains the
// curve itself. Control points can be passed as a slice of [Point], as a flat
// slice of interleaved coordinates ([BBoxFlat]), or as the rows of a gonum
// matrix ([BBoxMatrix]). An empty point set has no bounding box and is
// rejected with [ErrInvalidInput].
//
// # Wiggling parameters into [0, 1]
//
// Curve parameters computed by intersection algorithms are known to lie in
// [0, 1] in exact arithmetic but may land slightly outside of it after
// rounding, for example at −1e-16 or 1.0000000000000002. [WiggleInterval]
// decides whether such a value is noise, which it snaps to the nearest end of
// the interval, or a genuine out-of-range value, which it rejects. The
// decision uses the fixed tolerance [WiggleTolerance].
//
// [CheckInterval] offers the same policy with error values, distinguishing
// invalid (non-finite) input from values that are merely out of tolerance.
package bezier
