// Package trace emits optional diagnostics for handle and borrow lifecycle
// events.
//
// Tracing is disabled by default and costs a single boolean check per event
// when off. Installing a zap logger turns it on; every Rc retain, release
// and free, and every borrow grant, denial and guard release is then logged
// at Debug level with the relevant counter or state attached.
//
// The primitives themselves are single-owner constructs, so the trace
// configuration follows the same contract: install the logger before
// exercising the primitives and do not reconfigure concurrently with them.
package trace

import "go.uber.org/zap"

var (
	enabled bool
	logger  = zap.NewNop()
)

// SetLogger installs l as the event sink and enables tracing.
// A nil l disables tracing instead.
func SetLogger(l *zap.Logger) {
	if l == nil {
		Disable()
		return
	}
	logger = l
	enabled = true
}

// Disable turns tracing off and drops the installed logger.
func Disable() {
	logger = zap.NewNop()
	enabled = false
}

// Enabled reports whether events are currently being logged.
func Enabled() bool {
	return enabled
}

// RcRetain records a refcount increment; count is the count after it.
func RcRetain(count uint64) {
	if !enabled {
		return
	}
	logger.Debug("rc retain", zap.Uint64("refcount", count))
}

// RcRelease records a refcount decrement that left the allocation alive;
// count is the count after it.
func RcRelease(count uint64) {
	if !enabled {
		return
	}
	logger.Debug("rc release", zap.Uint64("refcount", count))
}

// RcFree records the final drop severing access to a shared value.
func RcFree() {
	if !enabled {
		return
	}
	logger.Debug("rc free")
}

// BorrowShared records a granted shared borrow; readers is the reader count
// after the grant.
func BorrowShared(readers int64) {
	if !enabled {
		return
	}
	logger.Debug("borrow granted", zap.String("mode", "shared"), zap.Int64("readers", readers))
}

// BorrowExclusive records a granted exclusive borrow.
func BorrowExclusive() {
	if !enabled {
		return
	}
	logger.Debug("borrow granted", zap.String("mode", "exclusive"))
}

// BorrowDenied records a denied borrow request. op names the requested
// operation, state the conflicting borrow state.
func BorrowDenied(op, state string) {
	if !enabled {
		return
	}
	logger.Debug("borrow denied", zap.String("op", op), zap.String("state", state))
}

// BorrowReleased records a guard release. kind names the guard kind, state
// the borrow state after the release.
func BorrowReleased(kind, state string) {
	if !enabled {
		return
	}
	logger.Debug("borrow released", zap.String("guard", kind), zap.String("state", state))
}
