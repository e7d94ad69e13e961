package cast

import (
	"math"
	"unsafe"
)

// Significant-bit budgets for exact integer to float conversion: the
// stored mantissa bits plus the implicit leading bit.
const (
	float32Mantissa = 24
	float64Mantissa = 54
)

// numKind describes the numeric shape of a type parameter: how wide it
// is, whether it can hold negative values, and, for floating-point
// kinds, how many significant bits fit its mantissa budget.
type numKind struct {
	width    uint // size in bits
	signed   bool
	floating bool
	mantissa uint // zero for integer kinds
}

// kindOf derives the kind of T from value probes rather than a type
// switch, so defined types with a numeric underlying type classify the
// same as the built-ins.
func kindOf[T Number]() numKind {
	var zero T
	k := numKind{width: uint(unsafe.Sizeof(zero)) * 8}
	half := 0.5
	if T(half) != zero { // conversion truncates 0.5 away for integer kinds
		k.floating = true
		k.signed = true
		if k.width == 32 {
			k.mantissa = float32Mantissa
		} else {
			k.mantissa = float64Mantissa
		}
		return k
	}
	k.signed = zero-1 < zero
	return k
}

// maxValue returns the largest value an integer kind can hold,
// expressed in the common uint64 domain.
func (k numKind) maxValue() uint64 {
	if k.signed {
		return 1<<(k.width-1) - 1
	}
	if k.width == 64 {
		return math.MaxUint64
	}
	return 1<<k.width - 1
}

// minMagnitude returns the magnitude of a signed kind's minimum value.
func (k numKind) minMagnitude() uint64 {
	return 1 << (k.width - 1)
}

// splitInt decomposes a value of an integer kind into sign and
// magnitude. The magnitude of the minimum signed value survives the
// negation because the conversion to uint64 is defined to wrap.
func splitInt[S Number](v S) (neg bool, mag uint64) {
	if v < 0 {
		return true, uint64(-int64(v))
	}
	return false, uint64(v)
}
