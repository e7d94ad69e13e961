package cast

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
)

// PanicHandler is invoked by the non-Try conversion forms when a value
// cannot be represented in the destination type. msg describes the
// failing conversion, including the source and destination type names
// and the call site. A handler that returns makes the failed
// conversion yield the destination type's zero value.
type PanicHandler func(msg string)

var panicHandler atomic.Pointer[PanicHandler]

var hookLog = slog.New(slog.NewTextHandler(os.Stderr, nil))

// SetPanicHandler replaces the process-wide handler invoked on failed
// non-Try conversions and returns the previous one (nil if the default
// was in effect). Passing nil restores the default handler, which logs
// the message to stderr and exits the process with status 1.
//
// The swap itself is atomic. Replace the handler before conversions
// run on other goroutines, or provide your own ordering.
func SetPanicHandler(h PanicHandler) PanicHandler {
	var old *PanicHandler
	if h == nil {
		old = panicHandler.Swap(nil)
	} else {
		old = panicHandler.Swap(&h)
	}
	if old == nil {
		return nil
	}
	return *old
}

// failConversion reports err through the current panic handler,
// annotated with the call site of the conversion that failed. It must
// be called directly by the exported conversion function so that the
// caller sits two frames up.
func failConversion(err error) {
	msg := err.Error()
	if _, file, line, ok := runtime.Caller(2); ok {
		msg = fmt.Sprintf("%s (%s:%d)", msg, file, line)
	}
	if h := panicHandler.Load(); h != nil {
		(*h)(msg)
		return
	}
	hookLog.Error(msg)
	os.Exit(1)
}
