package cast

import (
	"fmt"

	"github.com/spf13/cast"
)

// To converts v to the numeric type T.
//
// Sources whose dynamic type is a primitive numeric type go through
// the checked rules of [TryConvert]; strings go through the strict
// text bridge for integer destinations. Other [cast.Basic] inputs
// (bool, time.Time, time.Duration, strings for float destinations) are
// handled by [cast.ToE] and follow its more lenient rules. T must be
// one of the built-in numeric types; defined types are only reachable
// through [TryConvert].
func To[T Number](v any) (T, error) {
	var zero T

	switch any(zero).(type) {
	case int:
		return toNumber[T, int](v)
	case int8:
		return toNumber[T, int8](v)
	case int16:
		return toNumber[T, int16](v)
	case int32:
		return toNumber[T, int32](v)
	case int64:
		return toNumber[T, int64](v)
	case uint:
		return toNumber[T, uint](v)
	case uint8:
		return toNumber[T, uint8](v)
	case uint16:
		return toNumber[T, uint16](v)
	case uint32:
		return toNumber[T, uint32](v)
	case uint64:
		return toNumber[T, uint64](v)
	case float32:
		return toNumber[T, float32](v)
	case float64:
		return toNumber[T, float64](v)
	case uintptr:
		// uintptr is not a cast.Basic type, so only checked numeric
		// sources can reach it.
		if !isNumericVal(v) {
			return zero, fmt.Errorf("cast: unsupported conversion to %T from %T", zero, v)
		}
		return toStrict[T, uintptr](v)
	default:
		return zero, fmt.Errorf("cast: unsupported destination type %T", zero)
	}
}

// ToMust converts v to type T, invoking the panic handler on failure.
// If the handler returns, ToMust returns the zero value of T.
func ToMust[T Number](v any) T {
	to, err := To[T](v)
	if err != nil {
		failConversion(err)
		var zero T
		return zero
	}
	return to
}

// toNumber converts v to the numeric type N and re-types the result as
// T (which is the caller's type parameter). Numeric sources use the
// checked engine, strings the text bridge, and everything else
// cast.ToE.
func toNumber[T any, N BasicNumber](v any) (T, error) {
	if isNumericVal(v) {
		return toStrict[T, N](v)
	}

	if s, ok := v.(string); ok && !kindOf[N]().floating {
		var dst N
		if err := textToInt(&dst, s); err != nil {
			var zero T
			return zero, err
		}
		return any(dst).(T), nil
	}

	return toBase[T, N](v)
}

// toStrict converts v's dynamic numeric value to N via [TryConvert]
// and re-types the result as T.
func toStrict[T any, N Number](v any) (T, error) {
	var dst N
	var err error

	switch src := v.(type) {
	case int:
		err = TryConvert(&dst, src)
	case int8:
		err = TryConvert(&dst, src)
	case int16:
		err = TryConvert(&dst, src)
	case int32:
		err = TryConvert(&dst, src)
	case int64:
		err = TryConvert(&dst, src)
	case uint:
		err = TryConvert(&dst, src)
	case uint8:
		err = TryConvert(&dst, src)
	case uint16:
		err = TryConvert(&dst, src)
	case uint32:
		err = TryConvert(&dst, src)
	case uint64:
		err = TryConvert(&dst, src)
	case uintptr:
		err = TryConvert(&dst, src)
	case float32:
		err = TryConvert(&dst, src)
	case float64:
		err = TryConvert(&dst, src)
	default:
		err = fmt.Errorf("cast: unsupported conversion to %s from %T", typeName[N](), v)
	}
	if err != nil {
		var zero T
		return zero, err
	}

	return any(dst).(T), nil
}

// toBase converts to the basic type B using spf13/cast and re-types
// the result as T.
func toBase[T any, B Basic](v any) (T, error) {
	converted, err := cast.ToE[B](v)
	if err != nil {
		var zero T
		return zero, err
	}

	return any(converted).(T), nil
}

// isNumericVal reports whether v's dynamic type is one of the
// primitive numeric types eligible for checked conversion.
func isNumericVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return true
	default:
		return false
	}
}
