package primitive

import "reflect"

// IsSequence reports whether v is a slice or array other than text.
func IsSequence(v any) bool {
	return Of(v) == KindSequence
}

// Elements returns the elements of a sequence, or nil when v is not one.
func Elements(v any) []any {
	if !IsSequence(v) {
		return nil
	}

	if s, ok := v.([]any); ok {
		return s
	}

	rv := indirect(reflect.ValueOf(v))
	out := make([]any, 0, rv.Len())

	for i := range rv.Len() {
		out = append(out, rv.Index(i).Interface())
	}

	return out
}
