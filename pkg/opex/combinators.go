package opex

// Map applies f to the value. A failure passes through untouched.
func Map[V, V2, E any](r Result[V, E], f func(V) V2) Result[V2, E] {
	if r.failure != nil {
		return retype[V2, E](r.failure)
	}
	return FromValue[V2, E](f(r.value))
}

// Map is the same-typed form of the package function Map.
func (r Result[V, E]) Map(f func(V) V) Result[V, E] {
	return Map(r, f)
}

// MapErr applies f to the failure and captures what it returns as a new
// failure. A value passes through untouched.
func MapErr[V, E, E2 any](r Result[V, E], f func(E) E2) Result[V, E2] {
	if r.failure == nil {
		return FromValue[V, E2](r.value)
	}
	return FromFailure[V, E2](f(r.visitFailure()))
}

// AndThen returns f(value), or the failure retyped without calling f.
//
// The Result f returns must carry the same failure type E: Go has no
// subtyping between type parameters, so crossing failure types goes
// through MapErr explicitly.
func AndThen[V, V2, E any](r Result[V, E], f func(V) Result[V2, E]) Result[V2, E] {
	if r.failure != nil {
		return retype[V2, E](r.failure)
	}
	return f(r.value)
}

func (r Result[V, E]) AndThen(f func(V) Result[V, E]) Result[V, E] {
	return AndThen(r, f)
}

// OrElse returns f(failure), or r itself when it holds a value.
// f keeps the failure type; apply MapErr to the result to change it.
func OrElse[V, E any](r Result[V, E], f func(E) Result[V, E]) Result[V, E] {
	if r.failure == nil {
		return r
	}
	return f(r.visitFailure())
}

func (r Result[V, E]) OrElse(f func(E) Result[V, E]) Result[V, E] {
	return OrElse(r, f)
}

// AndSelect returns other if r holds a value, otherwise r.
func (r Result[V, E]) AndSelect(other Result[V, E]) Result[V, E] {
	if r.failure == nil {
		return other
	}
	return r
}

// OrSelect returns r if it holds a value, otherwise other.
func (r Result[V, E]) OrSelect(other Result[V, E]) Result[V, E] {
	if r.failure != nil {
		return other
	}
	return r
}

// AllOf folds rs with AndSelect: the first failure, else the last Result.
func AllOf[V, E any](rs ...Result[V, E]) Result[V, E] {
	var acc Result[V, E]
	for i, r := range rs {
		if i == 0 {
			acc = r
			continue
		}
		acc = acc.AndSelect(r)
	}
	return acc
}

// AnyOf folds rs with OrSelect: the first success, else the last Result.
func AnyOf[V, E any](rs ...Result[V, E]) Result[V, E] {
	var acc Result[V, E]
	for i, r := range rs {
		if i == 0 {
			acc = r
			continue
		}
		acc = acc.OrSelect(r)
	}
	return acc
}

// Fold reduces r to a single value with onOk or onErr.
func Fold[V, E, Out any](r Result[V, E], onOk func(V) Out, onErr func(E) Out) Out {
	if r.failure != nil {
		return onErr(r.visitFailure())
	}
	return onOk(r.value)
}

// Inspect calls f with the value, if any, and returns r unchanged.
func (r Result[V, E]) Inspect(f func(V)) Result[V, E] {
	if r.failure == nil {
		f(r.value)
	}
	return r
}

// InspectErr calls f with the failure, if any, and returns r unchanged.
func (r Result[V, E]) InspectErr(f func(E)) Result[V, E] {
	if r.failure != nil {
		f(r.visitFailure())
	}
	return r
}

// Ensure turns a success whose value does not satisfy valid into the
// failure built by newFailure.
func (r Result[V, E]) Ensure(valid func(V) bool, newFailure func(V) E) Result[V, E] {
	if r.failure != nil || valid(r.value) {
		return r
	}
	return FromFailure[V, E](newFailure(r.value))
}
