package cast

import "errors"

// Every failure from this package wraps exactly one of these
// sentinels; use [errors.Is] to tell them apart. Callers that do not
// need the distinction can treat any non-nil error as "does not fit".
var (
	// ErrRange reports that the source value's sign or magnitude
	// places it outside the destination type's representable domain.
	ErrRange = errors.New("value out of range of destination type")

	// ErrPrecision reports that the source value is in range but
	// cannot be represented by the destination without loss.
	ErrPrecision = errors.New("value not exactly representable in destination type")

	// ErrSyntax reports that a string input is empty, contains
	// characters beyond a valid integer literal, or overflows the
	// widest intermediate type during parsing.
	ErrSyntax = errors.New("invalid integer string")

	// ErrNilDestination reports a nil destination pointer.
	ErrNilDestination = errors.New("nil destination")
)
