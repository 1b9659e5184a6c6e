package chain

import (
	"context"

	"github.com/ib-77/opex/pkg/opex"
)

// Chain wraps an opex.Result with the context handed to every step
type Chain[V, E any] struct {
	ctx context.Context
	res opex.Result[V, E]
}

func Start[V, E any](ctx context.Context, r opex.Result[V, E]) Chain[V, E] {
	return Chain[V, E]{ctx: ctx, res: r}
}

func FromValue[V, E any](ctx context.Context, v V) Chain[V, E] {
	return Start(ctx, opex.FromValue[V, E](v))
}

// Try starts a chain with opex.Call: panics with an E become the failure.
func Try[V, E any](ctx context.Context, fn func(ctx context.Context) V) Chain[V, E] {
	return Start(ctx, opex.Call[V, E](func() V { return fn(ctx) }))
}

func (c Chain[V, E]) Result() opex.Result[V, E] {
	return c.res
}

func (c Chain[V, E]) Context() context.Context {
	return c.ctx
}

// Outcome exposes the result without its type parameters
func (c Chain[V, E]) Outcome() opex.Outcome {
	return c.res
}

func (c Chain[V, E]) with(r opex.Result[V, E]) Chain[V, E] {
	return Chain[V, E]{ctx: c.ctx, res: r}
}

// Then composes steps that already return opex.Result[V, E]
func (c Chain[V, E]) Then(onSuccess func(ctx context.Context, v V) opex.Result[V, E]) Chain[V, E] {
	return Then(c, onSuccess)
}

// Map transforms the successful value
func (c Chain[V, E]) Map(onSuccess func(ctx context.Context, v V) V) Chain[V, E] {
	return Map(c, onSuccess)
}

// Recover hands the failure to onFailure and continues with its result
func (c Chain[V, E]) Recover(onFailure func(ctx context.Context, e E) opex.Result[V, E]) Chain[V, E] {
	return c.with(c.res.OrElse(func(e E) opex.Result[V, E] { return onFailure(c.ctx, e) }))
}

// Ensure fails the chain with newFailure(v) when valid(v) does not hold
func (c Chain[V, E]) Ensure(valid func(ctx context.Context, v V) bool,
	newFailure func(ctx context.Context, v V) E) Chain[V, E] {

	return c.with(c.res.Ensure(
		func(v V) bool { return valid(c.ctx, v) },
		func(v V) E { return newFailure(c.ctx, v) }))
}

// Tap triggers a side effect on success without changing the result
func (c Chain[V, E]) Tap(onSuccess func(ctx context.Context, v V)) Chain[V, E] {
	c.res.Inspect(func(v V) { onSuccess(c.ctx, v) })
	return c
}

// TapErr triggers a side effect on failure without changing the result
func (c Chain[V, E]) TapErr(onFailure func(ctx context.Context, e E)) Chain[V, E] {
	c.res.InspectErr(func(e E) { onFailure(c.ctx, e) })
	return c
}

// And returns the first failing chain among c and required, or the last
// chain when all succeed.
func (c Chain[V, E]) And(required ...Chain[V, E]) Chain[V, E] {
	out := c
	for _, r := range required {
		if out.res.IsErr() {
			return out
		}
		out = r
	}
	return out
}

// Or returns the first succeeding chain among c and alternatives, or the
// last chain when all fail.
func (c Chain[V, E]) Or(alternatives ...Chain[V, E]) Chain[V, E] {
	out := c
	for _, a := range alternatives {
		if out.res.IsOk() {
			return out
		}
		out = a
	}
	return out
}

// RepeatWhile applies step as long as the chain holds a value satisfying while
func (c Chain[V, E]) RepeatWhile(step func(ctx context.Context, v V) opex.Result[V, E],
	while func(ctx context.Context, v V) bool) Chain[V, E] {

	for {
		v, ok := c.res.Value()
		if !ok || !while(c.ctx, v) {
			return c
		}
		c = c.Then(step)
	}
}

// Then chains a step that may change the value type
func Then[V, V2, E any](c Chain[V, E], onSuccess func(ctx context.Context, v V) opex.Result[V2, E]) Chain[V2, E] {
	return Chain[V2, E]{
		ctx: c.ctx,
		res: opex.AndThen(c.res, func(v V) opex.Result[V2, E] { return onSuccess(c.ctx, v) }),
	}
}

// Map chains a pure transformation that may change the value type
func Map[V, V2, E any](c Chain[V, E], onSuccess func(ctx context.Context, v V) V2) Chain[V2, E] {
	return Chain[V2, E]{
		ctx: c.ctx,
		res: opex.Map(c.res, func(v V) V2 { return onSuccess(c.ctx, v) }),
	}
}

// Finally collapses the chain to a final value
func Finally[V, E, Out any](c Chain[V, E],
	onSuccess func(ctx context.Context, v V) Out,
	onFailure func(ctx context.Context, e E) Out) Out {

	return opex.Fold(c.res,
		func(v V) Out { return onSuccess(c.ctx, v) },
		func(e E) Out { return onFailure(c.ctx, e) })
}
