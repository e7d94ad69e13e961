package cast

import (
	"fmt"
	"math"
	"math/bits"
)

// TryConvert converts src to D and writes it through dst. It fails
// without writing anything when dst is nil or the value of src is not
// exactly representable in D; fractional parts of floating-point
// sources are truncated toward zero first, matching Go's conversion
// semantics. The returned error wraps one of [ErrRange],
// [ErrPrecision] or [ErrNilDestination].
func TryConvert[D, S Number](dst *D, src S) error {
	if dst == nil {
		return fmt.Errorf("cast: cannot convert %v (%s) to %s: %w",
			src, typeName[S](), typeName[D](), ErrNilDestination)
	}

	sk := kindOf[S]()
	dk := kindOf[D]()

	switch {
	case sk.floating && dk.floating:
		if dk.width < sk.width {
			f := float64(src)
			if !math.IsNaN(f) && float64(float32(f)) != f {
				return convErr[D](src, ErrPrecision)
			}
		}
	case sk.floating:
		t, ok := truncToInt(float64(src), dk)
		if !ok {
			return convErr[D](src, ErrRange)
		}
		*dst = D(t)
		return nil
	case dk.floating:
		// A source narrower than the destination always fits the
		// mantissa budget.
		if sk.width >= dk.width {
			_, mag := splitInt(src)
			if !fitsMantissa(mag, dk.mantissa) {
				return convErr[D](src, ErrPrecision)
			}
		}
	default:
		neg, mag := splitInt(src)
		if neg {
			if !dk.signed || mag > dk.minMagnitude() {
				return convErr[D](src, ErrRange)
			}
		} else if mag > dk.maxValue() {
			return convErr[D](src, ErrRange)
		}
	}

	*dst = D(src)
	return nil
}

// Convert converts src to D, invoking the panic handler when the value
// is not exactly representable. If the handler returns instead of
// terminating, Convert returns the zero value of D.
func Convert[D, S Number](src S) D {
	var dst D
	if err := TryConvert(&dst, src); err != nil {
		failConversion(err)
	}
	return dst
}

// fitsMantissa reports whether mag needs no more significant bits than
// the mantissa budget allows. Trailing zero bits do not count: they
// are absorbed by the exponent, so a large multiple of a power of two
// can still be exact.
func fitsMantissa(mag uint64, mantissa uint) bool {
	if mag == 0 {
		return true
	}
	relevant := mag >> uint(bits.TrailingZeros64(mag))
	return uint(bits.Len64(relevant)) <= mantissa
}

// truncToInt truncates f toward zero and checks the result against the
// integer kind's representable interval. The upper bound is exclusive:
// 2^(width-1) for signed kinds and 2^width for unsigned ones, both
// exact as float64 values. NaN never converts.
func truncToInt(f float64, k numKind) (float64, bool) {
	if math.IsNaN(f) {
		return 0, false
	}
	t := math.Trunc(f)
	if k.signed {
		limit := math.Ldexp(1, int(k.width)-1)
		if t < -limit || limit <= t {
			return 0, false
		}
		return t, true
	}
	limit := math.Ldexp(1, int(k.width))
	if t < 0 || limit <= t {
		return 0, false
	}
	return t, true
}

func convErr[D, S Number](src S, sentinel error) error {
	return fmt.Errorf("cast: cannot convert %v (%s) to %s: %w",
		src, typeName[S](), typeName[D](), sentinel)
}

func typeName[T Number]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
