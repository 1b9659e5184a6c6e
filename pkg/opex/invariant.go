package opex

import (
	"github.com/zeebo/errs"
)

// Invariant is the class of errors raised (as panics) when a Result is used
// against its contract. They are bugs, never domain failures: Call and CallErr
// let them propagate regardless of the failure type.
var Invariant = errs.Class("opex invariant")

// visitFailure returns the captured failure typed as E.
func (r Result[V, E]) visitFailure() E {
	if r.failure == nil {
		panic(Invariant.New("failure visited on a successful result"))
	}
	e, ok := r.failure.cause.(E)
	if !ok {
		panic(Invariant.New("captured failure %T is not a %s", r.failure.cause, typeOf[E]()))
	}
	return e
}
