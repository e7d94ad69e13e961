package cast

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestIsNumericVal(t *testing.T) {
	t.Run("numerics", func(t *testing.T) {
		numerics := map[string]bool{
			"int":     isNumericVal(int(0)),
			"int8":    isNumericVal(int8(0)),
			"int16":   isNumericVal(int16(0)),
			"int32":   isNumericVal(int32(0)),
			"int64":   isNumericVal(int64(0)),
			"uint":    isNumericVal(uint(0)),
			"uint8":   isNumericVal(uint8(0)),
			"uint16":  isNumericVal(uint16(0)),
			"uint32":  isNumericVal(uint32(0)),
			"uint64":  isNumericVal(uint64(0)),
			"uintptr": isNumericVal(uintptr(0)),
			"float32": isNumericVal(float32(0)),
			"float64": isNumericVal(float64(0)),
		}

		for name, got := range numerics {
			if !got {
				t.Fatalf("expected %s to be a numeric type", name)
			}
		}
	})

	t.Run("nonNumerics", func(t *testing.T) {
		cases := map[string]bool{
			"string":        isNumericVal("0"),
			"bool":          isNumericVal(true),
			"time.Duration": isNumericVal(time.Second),
			"nil":           isNumericVal(nil),
		}

		for name, got := range cases {
			if got {
				t.Fatalf("expected %s to not be a numeric type", name)
			}
		}
	})
}

func TestToUsesCheckedRulesForNumericInputs(t *testing.T) {
	t.Run("withinRange", func(t *testing.T) {
		got, err := To[int8](int64(math.MaxInt8))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != int8(math.MaxInt8) {
			t.Fatalf("expected %d, got %d", int8(math.MaxInt8), got)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := To[int8](int64(math.MaxInt8) + 1)
		if err == nil {
			t.Fatalf("expected error for overflow conversion")
		}

		if !errors.Is(err, ErrRange) {
			t.Fatalf("expected ErrRange, got %v", err)
		}
	})

	t.Run("lossyFloat", func(t *testing.T) {
		_, err := To[float32](uint32(math.MaxUint32))
		if !errors.Is(err, ErrPrecision) {
			t.Fatalf("expected ErrPrecision, got %v", err)
		}
	})

	t.Run("uintptrDestination", func(t *testing.T) {
		got, err := To[uintptr](42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != 42 {
			t.Fatalf("expected 42, got %d", got)
		}

		if _, err := To[uintptr]("42"); err == nil {
			t.Fatalf("expected error for string to uintptr conversion")
		}
	})
}

func TestToWithNonNumericInputs(t *testing.T) {
	t.Run("stringNumber", func(t *testing.T) {
		got, err := To[int]("42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != 42 {
			t.Fatalf("expected 42, got %d", got)
		}
	})

	t.Run("stringNumberOutOfRange", func(t *testing.T) {
		_, err := To[uint8]("-5")
		if err == nil {
			t.Fatalf("expected error for negative string into unsigned")
		}
	})

	t.Run("stringFloat", func(t *testing.T) {
		got, err := To[float64]("3.5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != 3.5 {
			t.Fatalf("expected 3.5, got %v", got)
		}
	})

	t.Run("bool", func(t *testing.T) {
		got, err := To[int](true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != 1 {
			t.Fatalf("expected 1, got %d", got)
		}
	})

	t.Run("duration", func(t *testing.T) {
		got, err := To[int64](time.Second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != int64(time.Second) {
			t.Fatalf("expected %d, got %d", int64(time.Second), got)
		}
	})

	t.Run("invalidString", func(t *testing.T) {
		_, err := To[int]("not-a-number")
		if err == nil {
			t.Fatalf("expected error for invalid input")
		}
	})
}

func TestToMust(t *testing.T) {
	t.Run("returnsValue", func(t *testing.T) {
		restorePanicHandler(t, func(msg string) {
			t.Fatalf("handler invoked for a valid conversion: %s", msg)
		})

		got := ToMust[int](float64(99))
		if got != 99 {
			t.Fatalf("expected 99, got %d", got)
		}
	})

	t.Run("invokesHandlerOnError", func(t *testing.T) {
		var msg string
		restorePanicHandler(t, func(m string) { msg = m })

		got := ToMust[int8](int64(math.MaxInt8) + 1)
		if got != 0 {
			t.Fatalf("expected zero value after handled failure, got %d", got)
		}

		if msg == "" {
			t.Fatalf("expected handler to receive a message")
		}
	})
}
