package opex

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// failure is the captured side of a Result. It is never modified after
// capture, so Results passing it along share it instead of copying it.
type failure struct {
	id         uuid.UUID
	capturedAt time.Time
	cause      any
}

func capture(cause any) *failure {
	if IsNil(cause) {
		panic(Invariant.New("nil failure cannot be captured"))
	}
	return &failure{
		id:         uuid.New(),
		capturedAt: time.Now().UTC(),
		cause:      cause,
	}
}

// Result holds either a value of type V or a failure of type E.
//
// The zero Result is a success holding the zero V.
type Result[V, E any] struct {
	value   V
	failure *failure // nil for a success
}

// FromValue returns a successful Result holding v.
func FromValue[V, E any](v V) Result[V, E] {
	return Result[V, E]{value: v}
}

// Ok is a shorter spelling of FromValue.
func Ok[V, E any](v V) Result[V, E] {
	return FromValue[V, E](v)
}

// FromFailure returns a failed Result capturing err. Any value assignable
// to E is accepted; the dynamic type of err is kept. It panics with an
// Invariant error if err is nil.
func FromFailure[V, E any](err E) Result[V, E] {
	return Result[V, E]{failure: capture(err)}
}

// MakeFailure builds the failure with newFailure and captures it.
func MakeFailure[V, E, A any](newFailure func(A) E, arg A) Result[V, E] {
	return FromFailure[V, E](newFailure(arg))
}

// Failf captures fmt.Errorf(format, args...).
func Failf[V any](format string, args ...any) Result[V, error] {
	return FromFailure[V, error](fmt.Errorf(format, args...))
}

// Of converts a (value, error) pair.
func Of[V any](v V, err error) Result[V, error] {
	if err != nil {
		return FromFailure[V, error](err)
	}
	return FromValue[V, error](v)
}

func retype[V, E any](f *failure) Result[V, E] {
	return Result[V, E]{failure: f}
}

func (r Result[V, E]) IsOk() bool {
	return r.failure == nil
}

func (r Result[V, E]) IsErr() bool {
	return r.failure != nil
}

// Unwrap returns the value. On a failed Result it panics with the original
// failure value, so a recover (or Call) upstream sees its concrete type.
func (r Result[V, E]) Unwrap() V {
	if r.failure != nil {
		panic(r.failure.cause)
	}
	return r.value
}

func (r Result[V, E]) UnwrapOr(def V) V {
	if r.failure != nil {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the value, or orElse applied to the failure.
func (r Result[V, E]) UnwrapOrElse(orElse func(E) V) V {
	if r.failure != nil {
		return orElse(r.visitFailure())
	}
	return r.value
}

// Value returns the value and true, or the zero V and false.
func (r Result[V, E]) Value() (V, bool) {
	if r.failure != nil {
		var zero V
		return zero, false
	}
	return r.value, true
}

// Failure returns the captured failure and true, or the zero E and false.
func (r Result[V, E]) Failure() (E, bool) {
	if r.failure == nil {
		var zero E
		return zero, false
	}
	return r.visitFailure(), true
}

// Err returns nil on success. A failure implementing error is returned
// as is; any other failure is wrapped in a *FailureError.
func (r Result[V, E]) Err() error {
	if r.failure == nil {
		return nil
	}
	if err, ok := r.failure.cause.(error); ok {
		return err
	}
	return &FailureError{Cause: r.failure.cause, ID: r.failure.id}
}

// Get returns the value and Err.
func (r Result[V, E]) Get() (V, error) {
	if r.failure != nil {
		var zero V
		return zero, r.Err()
	}
	return r.value, nil
}

// FailureID identifies the captured failure. Combinators that pass a
// failure through keep its ID. It is uuid.Nil on success.
func (r Result[V, E]) FailureID() uuid.UUID {
	if r.failure == nil {
		return uuid.Nil
	}
	return r.failure.id
}

// CapturedAt is the UTC time the failure was captured.
func (r Result[V, E]) CapturedAt() time.Time {
	if r.failure == nil {
		return time.Time{}
	}
	return r.failure.capturedAt
}

func (r Result[V, E]) String() string {
	if r.failure != nil {
		return fmt.Sprintf("Err(%s)", r.Describe())
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// FailureError adapts a failure that is not an error to the error interface.
type FailureError struct {
	Cause any
	ID    uuid.UUID
}

func (e *FailureError) Error() string {
	if msg := describe(e.Cause); msg != "" {
		return msg
	}
	return fmt.Sprintf("opex: failure of type %T", e.Cause)
}
