package cast

import (
	"fmt"
	"strconv"
)

// TryFromString parses s as an integer literal and converts the result
// to T. The whole string must be consumed: no surrounding whitespace
// or trailing characters are tolerated. Base prefixes (0b, 0o, 0x and
// a leading 0 for octal) select the base, as in [strconv.ParseInt]
// with base 0. Parsing goes through the widest signed or unsigned
// integer, chosen by T's signedness, and then through the same range
// rules as [TryConvert], so every in-range value of T is reachable and
// nothing outside it is.
func TryFromString[T Integer](dst *T, s string) error {
	if dst == nil {
		return fmt.Errorf("cast: cannot convert %q to %s: %w",
			s, typeName[T](), ErrNilDestination)
	}
	return textToInt(dst, s)
}

// FromString is the panic-handler form of [TryFromString].
func FromString[T Integer](s string) T {
	var dst T
	if err := textToInt(&dst, s); err != nil {
		failConversion(err)
	}
	return dst
}

// TryBoolFromString parses s as a signed integer literal and stores
// whether it is nonzero. Any string the integer parser rejects is
// rejected here too.
func TryBoolFromString(dst *bool, s string) error {
	if dst == nil {
		return fmt.Errorf("cast: cannot convert %q to bool: %w", s, ErrNilDestination)
	}
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return fmt.Errorf("cast: cannot parse %q as bool: %w", s, ErrSyntax)
	}
	*dst = v != 0
	return nil
}

// BoolFromString is the panic-handler form of [TryBoolFromString].
func BoolFromString(s string) bool {
	var dst bool
	if err := TryBoolFromString(&dst, s); err != nil {
		failConversion(err)
	}
	return dst
}

// textToInt funnels s through the widest integer of dst's signedness
// and then through the integer range rules.
func textToInt[T Number](dst *T, s string) error {
	if kindOf[T]().signed {
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return parseErr[T](s)
		}
		return TryConvert(dst, v)
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return parseErr[T](s)
	}
	return TryConvert(dst, v)
}

func parseErr[T Number](s string) error {
	return fmt.Errorf("cast: cannot parse %q as %s: %w", s, typeName[T](), ErrSyntax)
}
