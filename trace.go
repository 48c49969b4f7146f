package borrowcell

import (
	"go.uber.org/zap"

	"github.com/kolkov/borrowcell/internal/trace"
)

// SetTraceLogger wires the primitives' lifecycle events to l and enables
// tracing. Passing nil disables tracing. Install the logger before
// exercising the primitives; the trace configuration follows the same
// single-owner contract they do.
func SetTraceLogger(l *zap.Logger) {
	trace.SetLogger(l)
}

// DisableTrace turns lifecycle tracing off.
func DisableTrace() {
	trace.Disable()
}

// TraceEnabled reports whether lifecycle tracing is active.
func TraceEnabled() bool {
	return trace.Enabled()
}
