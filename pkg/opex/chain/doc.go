// Package chain provides a fluent wrapper around opex.Result[V, E]
// for building synchronous pipelines that carry a context to each step.
//
// Key operations:
// - Start/FromValue/Try: begin a chain from a Result, a value or a function
// - Then: continue with a step returning a Result
// - Map: transform the value
// - Recover: replace a failure with the Result of a handler
// - Ensure: fail when a value does not satisfy a predicate
// - Tap/TapErr: side effects without changing the result
// - And/Or: select between chains, first failure or first success wins
// - RepeatWhile: repeat a step while a condition holds
// - Finally: collapse the chain into a final value via handlers
//
// Then and Map also exist as package functions for steps that change the
// value type.
package chain
