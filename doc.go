// Package cast provides checked conversions between primitive numeric
// types.
//
// A plain Go conversion silently truncates, wraps around, or loses
// floating-point precision. Every conversion in this package either
// preserves the exact value or fails:
//
//   - integer to integer conversions fail when the value falls outside
//     the destination's range,
//   - integer to float conversions fail when the value needs more
//     significant bits than the destination's mantissa holds,
//   - float to integer conversions truncate toward zero and fail when
//     the truncated value is out of range,
//   - string conversions require the whole string to be a valid
//     integer literal.
//
// Each conversion comes in two forms. The fallible form ([TryConvert],
// [TryFromString], [TryBoolFromString], [To]) reports failure through
// an error and leaves the destination untouched. The direct form
// ([Convert], [FromString], [BoolFromString], [ToMust]) reports
// failure through a process-wide handler; the default handler prints a
// diagnostic and exits the process, see [SetPanicHandler]. Use the
// direct form where a failed conversion is a programming error.
package cast
