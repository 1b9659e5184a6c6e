package opex

import (
	"errors"
	"runtime"
)

// Call runs fn and wraps what it returns. A panic whose value is an E is
// captured as the failure; any other panic propagates out of Call.
// Runtime errors and Invariant errors always propagate, even when E is
// error or any, so an E that is or wraps runtime.Error is never captured.
// A value wrapping an E is not an E: it propagates unconverted.
func Call[V, E any](fn func() V) (res Result[V, E]) {
	defer func() {
		if r := recover(); r != nil {
			res = recovered[V, E](r)
		}
	}()
	return FromValue[V, E](fn())
}

// CallErr is Call for functions following the (value, error) convention.
// A returned error that is not an E propagates as a panic, exactly like a
// panic Call does not capture.
func CallErr[V, E any](fn func() (V, error)) (res Result[V, E]) {
	defer func() {
		if r := recover(); r != nil {
			res = recovered[V, E](r)
		}
	}()

	v, err := fn()
	if err != nil {
		panic(err)
	}
	return FromValue[V, E](v)
}

func recovered[V, E any](r any) Result[V, E] {
	if isBug(r) {
		panic(r)
	}
	e, ok := r.(E)
	if !ok || IsNil(e) {
		panic(r)
	}
	return FromFailure[V, E](e)
}

func isBug(r any) bool {
	err, ok := r.(error)
	if !ok {
		return false
	}
	var rtErr runtime.Error
	return Invariant.Has(err) || errors.As(err, &rtErr)
}
