package schemette

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global syntax tracer. Clients select an adapter by
// assigning gtrace.SyntaxTracer before interpreting; the default tracer
// discards everything.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}
