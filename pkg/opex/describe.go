package opex

import (
	"fmt"
	"reflect"
)

// Describe returns a human-readable message for the failure: Error() for
// errors, String() for fmt.Stringers, the text of string-like failures and
// "" for anything else. It returns "" on success and never panics.
func (r Result[V, E]) Describe() string {
	if r.failure == nil {
		return ""
	}
	return describe(r.failure.cause)
}

func describe(cause any) (msg string) {
	defer func() {
		if recover() != nil {
			msg = ""
		}
	}()

	switch c := cause.(type) {
	case error:
		return c.Error()
	case fmt.Stringer:
		return c.String()
	case string:
		return c
	case []byte:
		return string(c)
	case []rune:
		return string(c)
	}

	if v := reflect.ValueOf(cause); v.Kind() == reflect.String {
		return v.String()
	}
	return ""
}
