// Package opex provides Result[V, E], a container holding either a success
// value of type V or a captured failure of type E, together with combinators
// for composing fallible steps without recovering panics at every call site.
//
// Key operations:
// - FromValue/FromFailure/MakeFailure/Of: construct a Result
// - Call/CallErr: run a function and capture panics (and errors) assignable to E
// - Unwrap: return the value or re-panic with the original failure
// - Map/MapErr/AndThen/OrElse: transform the value or the failure
// - AndSelect/OrSelect/AllOf/AnyOf: short-circuit selection between Results
// - Fold/Inspect/InspectErr/Ensure: reduce, tap or validate
// - Describe: best-effort failure message that never panics
//
// A failure is stored once and shared by every Result it passes through
// unchanged; FailureID identifies it across a pipeline. Contract breaches
// inside the package panic with an Invariant class error which Call never
// captures.
package opex
