package primitive

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

var (
	truthy = map[string]struct{}{"t": {}, "T": {}, "true": {}, "True": {}, "TRUE": {}, "1": {}}
	falsy  = map[string]struct{}{"f": {}, "F": {}, "false": {}, "False": {}, "FALSE": {}, "0": {}}
)

// Text returns the string form of v. Strings (including named string types)
// are returned as is, byte slices are decoded as UTF-8, Stringers use String
// and everything else is formatted with fmt. Nil is the empty string.
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		if utf8.Valid(x) {
			return string(x)
		}

		return strings.ToValidUTF8(string(x), string(utf8.RuneError))
	case fmt.Stringer:
		return x.String()
	}

	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return ""
	}

	if rv.Kind() == reflect.String {
		return rv.String()
	}

	if rv.CanInterface() {
		return fmt.Sprint(rv.Interface())
	}

	return fmt.Sprint(v)
}

// ParseBool maps v onto a boolean. Native booleans, the integers 1 and 0 and
// the tokens t/T/true/True/TRUE/1 and f/F/false/False/FALSE/0 are recognised;
// ok is false for anything else.
func ParseBool(v any) (value, ok bool) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return false, false
	}

	switch fromValue(rv) {
	case KindBool:
		return rv.Bool(), true
	case KindInteger, KindFloat:
		s := Text(rv.Interface())
		if s == "1" {
			return true, true
		}

		if s == "0" {
			return false, true
		}

		return false, false
	case KindText:
		s := Text(v)
		if _, found := truthy[s]; found {
			return true, true
		}

		if _, found := falsy[s]; found {
			return false, true
		}
	}

	return false, false
}

// Equal compares two values the way choice and enum membership needs it:
// identical comparable values are equal, scalars are equal when their text
// forms match (so a JSON 1.0 equals a declared 1), everything else is
// compared deeply.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == tb && ta.Comparable() {
		return a == b
	}

	if Of(a).IsScalar() && Of(b).IsScalar() {
		return Text(a) == Text(b)
	}

	return reflect.DeepEqual(a, b)
}
