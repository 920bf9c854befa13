package primitive

import "reflect"

// IsEmpty reports whether v belongs to the empty-value set: nil (including nil
// pointers, maps, slices and functions), the empty string, an empty sequence or
// an empty mapping. Zero numbers and false are not empty.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return true
		}
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	}

	if _, ok := v.(Getter); ok {
		if l, ok := v.(interface{ Len() int }); ok {
			return l.Len() == 0
		}
	}

	return false
}
