package opex

type testFailure struct {
	msg string
}

func (e *testFailure) Error() string {
	return e.msg
}

func newTestFailure(msg string) *testFailure {
	return &testFailure{msg: msg}
}

// runtimeFailure plays the part of a general failure class; testFailure
// values are also runtimeFailures.
type runtimeFailure interface {
	error
	runtimeFailure()
}

func (e *testFailure) runtimeFailure() {}

type otherFailure struct {
	nested *testFailure
}

func (e otherFailure) Error() string {
	return e.nested.msg
}

type gear struct {
	id int
}

func recoverPanic(fn func()) (r any) {
	defer func() {
		r = recover()
	}()
	fn()
	return nil
}
