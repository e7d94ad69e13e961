package cast

import (
	"github.com/spf13/cast"
	"golang.org/x/exp/constraints"
)

// Signed is an alias for [constraints.Signed].
type Signed = constraints.Signed

// Unsigned is an alias for [constraints.Unsigned].
type Unsigned = constraints.Unsigned

// Integer is an alias for [constraints.Integer].
type Integer = constraints.Integer

// Float is an alias for [constraints.Float].
type Float = constraints.Float

// Basic is an alias for [cast.Basic].
type Basic = cast.Basic

// Number is a constraint that matches all primitive numeric types this
// package converts between.
type Number interface {
	constraints.Integer | constraints.Float
}

// BasicNumber is a constraint that matches types that are both
// [cast.Basic] and [Number].
type BasicNumber interface {
	cast.Basic
	Number
}
