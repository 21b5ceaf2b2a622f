package bezier

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// BoundingBox is an axis-aligned box. Boxes returned by [BBox], [BBoxFlat]
// and [BBoxMatrix] satisfy Left <= Right and Bottom <= Top.
type BoundingBox struct {
	Left, Right float64
	Bottom, Top float64
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]", b.Left, b.Right, b.Bottom, b.Top)
}

// Width returns Right − Left.
func (b BoundingBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns Top − Bottom.
func (b BoundingBox) Height() float64 {
	return b.Top - b.Bottom
}

// Contains reports whether pt lies in the closed box. Points on the boundary
// are contained.
func (b BoundingBox) Contains(pt Point) bool {
	return InInterval(pt.X, b.Left, b.Right) &&
		InInterval(pt.Y, b.Bottom, b.Top)
}

// UnionPoint returns the smallest box enclosing b and pt.
//
// A succession of UnionPoint operations on a series of points, starting with
// the zero-area box of the first point, yields their bounding box.
func (b BoundingBox) UnionPoint(pt Point) BoundingBox {
	return BoundingBox{
		Left:   min(b.Left, pt.X),
		Right:  max(b.Right, pt.X),
		Bottom: min(b.Bottom, pt.Y),
		Top:    max(b.Top, pt.Y),
	}
}

// Union returns the smallest box enclosing b and o.
//
// The bounding box of a point set is the union of the bounding boxes of any
// partition of it, which allows computing it in segments.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		Left:   min(b.Left, o.Left),
		Right:  max(b.Right, o.Right),
		Bottom: min(b.Bottom, o.Bottom),
		Top:    max(b.Top, o.Top),
	}
}

// Intersects reports whether the closed boxes b and o share at least one
// point. Boxes that only touch along an edge or at a corner intersect.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return b.Left <= o.Right && o.Left <= b.Right &&
		b.Bottom <= o.Top && o.Bottom <= b.Top
}

func pointBox(pt Point) BoundingBox {
	return BoundingBox{
		Left:   pt.X,
		Right:  pt.X,
		Bottom: pt.Y,
		Top:    pt.Y,
	}
}

// bboxOf scans the n points returned by at. Points with a NaN or infinite
// coordinate are rejected.
func bboxOf(n int, at func(i int) Point) (BoundingBox, error) {
	var b BoundingBox
	for i := range n {
		pt := at(i)
		if pt.IsNaN() || pt.IsInf() {
			return BoundingBox{}, fmt.Errorf("bounding box: point %d is %v: %w", i, pt, ErrInvalidInput)
		}
		if i == 0 {
			b = pointBox(pt)
		} else {
			b = b.UnionPoint(pt)
		}
	}
	return b, nil
}

// BBox returns the bounding box of pts. Every side of the box is equal to a
// coordinate of one of the points; no margin is added.
//
// It returns an error matching [ErrInvalidInput] if pts is empty or if any
// coordinate is NaN or infinite.
func BBox(pts []Point) (BoundingBox, error) {
	if len(pts) == 0 {
		return BoundingBox{}, fmt.Errorf("bounding box of empty point set: %w", ErrInvalidInput)
	}
	return bboxOf(len(pts), func(i int) Point { return pts[i] })
}

// BBoxFlat is like [BBox] but takes the n points as interleaved coordinates
// x0, y0, x1, y1, …. Values past the first 2n are ignored.
//
// It returns an error matching [ErrInvalidInput] if n is not positive, if
// coords is too short to hold n points or if any coordinate is not finite.
func BBoxFlat(n int, coords []float64) (BoundingBox, error) {
	if n <= 0 {
		return BoundingBox{}, fmt.Errorf("bounding box of %d points: %w", n, ErrInvalidInput)
	}
	// Not 2*n, which overflows for huge n.
	if len(coords)/2 < n {
		return BoundingBox{}, fmt.Errorf("bounding box of %d points, but only %d coordinates: %w",
			n, len(coords), ErrInvalidInput)
	}
	return bboxOf(n, func(i int) Point { return Pt(coords[2*i], coords[2*i+1]) })
}

// BBoxMatrix is like [BBox] but takes the points as the rows of an n×2
// matrix, with x in the first column and y in the second. The matrix is only
// read through At.
//
// It returns an error matching [ErrInvalidInput] if nodes has no rows,
// doesn't have exactly two columns or holds a coordinate that is not finite.
func BBoxMatrix(nodes mat.Matrix) (BoundingBox, error) {
	r, c := nodes.Dims()
	if c != 2 {
		return BoundingBox{}, fmt.Errorf("bounding box of %d×%d nodes, want 2 columns: %w", r, c, ErrInvalidInput)
	}
	if r == 0 {
		return BoundingBox{}, fmt.Errorf("bounding box of empty point set: %w", ErrInvalidInput)
	}
	return bboxOf(r, func(i int) Point { return Pt(nodes.At(i, 0), nodes.At(i, 1)) })
}
