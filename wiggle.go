package bezier

import (
	"fmt"
	"math"
)

// WiggleTolerance is the distance outside of [0, 1] that [WiggleInterval]
// attributes to roundoff. It is 2⁻⁴⁴ ≈ 5.7e-14, that is, 2⁸ machine epsilons,
// which bounds the error accumulated by the subdivision and Newton steps that
// produce curve parameters.
const WiggleTolerance = 0x1p-44

// WiggleInterval snaps a curve parameter that is known to lie in [0, 1] in
// exact arithmetic, but may have drifted out of it due to roundoff, back into
// the interval.
//
// Values in [0, 1] are returned unchanged. Values in [−WiggleTolerance, 0)
// become 0 and values in (1, 1+WiggleTolerance] become 1. Both tolerance
// edges are inclusive. For all other values, including NaN and infinities,
// ok is false and the returned value is NaN.
func WiggleInterval(value float64) (result float64, ok bool) {
	switch {
	case 0 <= value && value <= 1:
		return value, true
	case -WiggleTolerance <= value && value < 0:
		return 0, true
	case 1 < value && value <= 1+WiggleTolerance:
		return 1, true
	default:
		// NaN fails every comparison and ends up here, as do the infinities.
		return math.NaN(), false
	}
}

// CheckInterval is like [WiggleInterval] but reports failure as an error. The
// error matches [ErrInvalidInput] if value is NaN or infinite, and
// [ErrOutOfTolerance] if it is finite but too far outside of [0, 1].
func CheckInterval(value float64) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return math.NaN(), fmt.Errorf("interval parameter %g: %w", value, ErrInvalidInput)
	}
	if v, ok := WiggleInterval(value); ok {
		return v, nil
	}
	return math.NaN(), fmt.Errorf("interval parameter %g not within %g of [0, 1]: %w",
		value, WiggleTolerance, ErrOutOfTolerance)
}

// InInterval reports whether value lies in the closed interval [start, end].
// NaN is never in an interval.
func InInterval(value, start, end float64) bool {
	return start <= value && value <= end
}
