/*
Package precond checks caller preconditions for the rmq packages.

A failing check produces a *Violation, which unwraps to ErrViolation and to
the kind of violation (ErrIndexOutOfRange, ErrRange). Violations are returned
to the caller before any state is touched; they are never retried or clamped.

Checks run according to a Mode. With Disabled no check is evaluated at all,
and invalid input leads to undefined behavior. The default mode is Enabled,
unless the module is built with tag `rmq_nochecks`.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package precond

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// T traces to a global core-tracer. If no core-tracer has been configured,
// a Go log based tracer is installed.
func T() tracing.Trace {
	if gtrace.CoreTracer == nil {
		gtrace.CoreTracer = gologadapter.New()
	}
	return gtrace.CoreTracer
}
