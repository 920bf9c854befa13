package primitive

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// isSimpleCallable reports whether a function type can be invoked without
// arguments and yields a value, optionally followed by an error.
func isSimpleCallable(t reflect.Type) bool {
	switch {
	case t.NumIn() == 0:
	case t.NumIn() == 1 && t.IsVariadic():
	default:
		return false
	}

	switch t.NumOut() {
	case 1:
		return true
	case 2:
		return t.Out(1).Implements(errorType)
	default:
		return false
	}
}

// IsSimpleCallable reports whether v is a function that takes no arguments.
func IsSimpleCallable(v any) bool {
	return Of(v) == KindCallable
}

// IsCallable reports whether v is a non-nil function of any signature.
func IsCallable(v any) bool {
	k := Of(v)
	return k == KindCallable || k == KindFunc
}

// Call invokes a function that takes no arguments and returns its first result.
// A non-nil trailing error result is returned as the error.
func Call(v any) (any, error) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() || rv.Kind() != reflect.Func || !isSimpleCallable(rv.Type()) {
		return nil, errors.Newf("%T cannot be called without arguments", v)
	}

	out := rv.Call(nil)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}

	return out[0].Interface(), nil
}
