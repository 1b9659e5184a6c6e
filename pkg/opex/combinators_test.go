package opex

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gearResult = Result[gear, *testFailure]

func gearFunction(fail bool) gearResult {
	if fail {
		return MakeFailure[gear, *testFailure](newTestFailure, "fail!")
	}
	return FromValue[gear, *testFailure](gear{id: 7})
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, FromValue[int, error](3).Map(func(x int) int { return x + 2 }).Unwrap())

	s := Map(FromValue[int, error](12), strconv.Itoa)
	assert.Equal(t, "12", s.Unwrap())

	bad := gearFunction(true)
	called := false
	mapped := Map(bad, func(g gear) string {
		called = true
		return "never"
	})
	assert.False(t, called)
	assert.True(t, mapped.IsErr())
	assert.Equal(t, bad.FailureID(), mapped.FailureID())
	assert.Equal(t, bad.Describe(), mapped.Describe())

	// the receiver is left untouched
	good := gearFunction(false)
	_ = Map(good, func(g gear) int { return g.id * 2 })
	assert.Equal(t, 7, good.Unwrap().id)
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	toOther := func(e *testFailure) otherFailure { return otherFailure{nested: e} }

	good := gearFunction(false)
	mapped := MapErr(good, toOther)
	require.True(t, mapped.IsOk())
	assert.Equal(t, good.Unwrap(), mapped.Unwrap())

	bad := gearFunction(true)
	remapped := MapErr(bad, toOther)
	require.True(t, remapped.IsErr())
	assert.True(t, bad.IsErr())
	assert.Equal(t, bad.Describe(), remapped.Describe())
	assert.NotEqual(t, bad.FailureID(), remapped.FailureID())

	other, ok := remapped.Failure()
	require.True(t, ok)
	assert.Equal(t, "fail!", other.nested.msg)
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	no := func(int) Result[int, runtimeFailure] {
		return FromFailure[int, runtimeFailure](newTestFailure("no"))
	}
	r := FromValue[int, runtimeFailure](3).AndThen(no)
	assert.True(t, r.IsErr())
	assert.Equal(t, "no", r.Describe())

	double := func(x int) Result[string, error] { return FromValue[string, error](strconv.Itoa(x * 2)) }
	assert.Equal(t, "8", AndThen(FromValue[int, error](4), double).Unwrap())

	// f(v) is returned as is
	fixed := FromFailure[string, error](errors.New("fixed"))
	out := AndThen(FromValue[int, error](1), func(int) Result[string, error] { return fixed })
	assert.Equal(t, fixed.FailureID(), out.FailureID())

	called := false
	bad := gearFunction(true)
	chained := AndThen(bad, func(g gear) Result[int, *testFailure] {
		called = true
		return FromValue[int, *testFailure](g.id)
	})
	assert.False(t, called)
	assert.Equal(t, bad.FailureID(), chained.FailureID())
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	fix := func(e *testFailure) gearResult {
		return FromValue[gear, *testFailure](gear{id: len(e.msg)})
	}

	good := gearFunction(false)
	assert.Equal(t, good.Unwrap(), good.OrElse(fix).Unwrap())

	bad := gearFunction(true)
	healed := OrElse(bad, fix)
	require.True(t, healed.IsOk())
	assert.Equal(t, len("fail!"), healed.Unwrap().id)
	assert.True(t, bad.IsErr())

	rethrown := bad.OrElse(func(e *testFailure) gearResult {
		return FromFailure[gear, *testFailure](newTestFailure("again: " + e.msg))
	})
	assert.Equal(t, "again: fail!", rethrown.Describe())
}

func TestAndSelect(t *testing.T) {
	t.Parallel()

	a := FromValue[int, error](1)
	b := FromValue[int, error](2)
	e1 := FromFailure[int, error](errors.New("e1"))
	e2 := FromFailure[int, error](errors.New("e2"))

	assert.Equal(t, 2, a.AndSelect(b).Unwrap())
	assert.Equal(t, e2.FailureID(), a.AndSelect(e2).FailureID())
	assert.Equal(t, e1.FailureID(), e1.AndSelect(b).FailureID())
	assert.Equal(t, e1.FailureID(), e1.AndSelect(e2).FailureID())
}

func TestOrSelect(t *testing.T) {
	t.Parallel()

	a := FromValue[int, error](1)
	b := FromValue[int, error](2)
	e1 := FromFailure[int, error](errors.New("e1"))
	e2 := FromFailure[int, error](errors.New("e2"))

	assert.Equal(t, 1, a.OrSelect(b).Unwrap())
	assert.Equal(t, 1, a.OrSelect(e2).Unwrap())
	assert.Equal(t, 2, e1.OrSelect(b).Unwrap())
	assert.Equal(t, e2.FailureID(), e1.OrSelect(e2).FailureID())
}

func TestAllOfAnyOf(t *testing.T) {
	t.Parallel()

	a := FromValue[int, error](1)
	b := FromValue[int, error](2)
	e1 := FromFailure[int, error](errors.New("e1"))
	e2 := FromFailure[int, error](errors.New("e2"))

	assert.True(t, AllOf[int, error]().IsOk())
	assert.Equal(t, 2, AllOf(a, b).Unwrap())
	assert.Equal(t, e1.FailureID(), AllOf(a, e1, b, e2).FailureID())

	assert.True(t, AnyOf[int, error]().IsOk())
	assert.Equal(t, 2, AnyOf(e1, b, a).Unwrap())
	assert.Equal(t, e2.FailureID(), AnyOf(e1, e2).FailureID())
}

func TestFold(t *testing.T) {
	t.Parallel()

	show := func(r gearResult) string {
		return Fold(r,
			func(g gear) string { return "gear " + strconv.Itoa(g.id) },
			func(e *testFailure) string { return "failed: " + e.msg })
	}
	assert.Equal(t, "gear 7", show(gearFunction(false)))
	assert.Equal(t, "failed: fail!", show(gearFunction(true)))
}

func TestInspect(t *testing.T) {
	t.Parallel()

	var seen []string
	onValue := func(g gear) { seen = append(seen, "value") }
	onErr := func(e *testFailure) { seen = append(seen, e.msg) }

	good := gearFunction(false)
	assert.Equal(t, good, good.Inspect(onValue).InspectErr(onErr))
	bad := gearFunction(true)
	assert.Equal(t, bad.FailureID(), bad.Inspect(onValue).InspectErr(onErr).FailureID())

	assert.Equal(t, []string{"value", "fail!"}, seen)
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	positive := func(x int) bool { return x > 0 }
	notPositive := func(x int) error { return errors.New(strconv.Itoa(x) + " is not positive") }

	assert.Equal(t, 3, FromValue[int, error](3).Ensure(positive, notPositive).Unwrap())
	assert.Equal(t, "-1 is not positive", FromValue[int, error](-1).Ensure(positive, notPositive).Describe())

	bad := FromFailure[int, error](errors.New("earlier"))
	assert.Equal(t, bad.FailureID(), bad.Ensure(positive, notPositive).FailureID())
}
