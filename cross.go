package bezier

import "fmt"

// Cross returns the cross product a.X*b.Y − a.Y*b.X, the z component of the
// 3D cross product of a and b embedded in the z = 0 plane. It is the signed
// area of the parallelogram spanned by a and b: positive if b is a
// counter-clockwise turn from a, negative if it is clockwise and zero if the
// vectors are collinear.
//
// Both products are rounded before subtracting, so the result is the plain
// IEEE evaluation of the formula on every architecture. In particular,
// Cross(a, b) == -Cross(b, a) and Cross(a, a) == 0 hold exactly for finite
// inputs.
func Cross(a, b Vec2) float64 {
	// The conversions prevent the compiler from fusing into an FMA.
	return float64(a.X*b.Y) - float64(a.Y*b.X)
}

// Orientation describes the turn direction between two vectors.
type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "Clockwise"
	case Collinear:
		return "Collinear"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Orient classifies the sign of [Cross](a, b). No tolerance is applied; only
// an exact zero is considered collinear. A NaN cross product, from non-finite
// inputs or from products that overflow to the same infinity, is also
// reported as Collinear.
func Orient(a, b Vec2) Orientation {
	switch c := Cross(a, b); {
	case c > 0:
		return CounterClockwise
	case c < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// OrientPoints returns the orientation of the turn p0 → p1 → p2.
func OrientPoints(p0, p1, p2 Point) Orientation {
	return Orient(p1.Sub(p0), p2.Sub(p0))
}
