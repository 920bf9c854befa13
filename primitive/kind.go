package primitive

import (
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies a runtime value by the way the conversion engine treats it.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindNil
	KindText
	KindBool
	KindInteger
	KindFloat
	KindSequence
	KindMapping
	KindCallable // function taking no arguments
	KindFunc     // any other function
	KindTime
	KindStruct
	KindOther

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Getter is implemented by ordered or custom mappings that are not Go maps.
type Getter interface {
	Get(key string) (any, bool)
}

var timeType = reflect.TypeOf(time.Time{})

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInteger, KindFloat:
		return true
	}
}

// IsScalar reports whether values of this kind compare by their text form.
func (k KindEnum) IsScalar() bool {
	switch k {
	default:
		return false
	case KindText, KindBool, KindInteger, KindFloat:
		return true
	}
}

// Of classifies v. Pointers are looked through; a nil pointer is KindNil.
func Of(v any) KindEnum {
	if v == nil {
		return KindNil
	}

	if _, ok := v.(Getter); ok {
		return KindMapping
	}

	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return KindNil
	}

	return fromValue(rv)
}

func fromValue(rv reflect.Value) KindEnum {
	if rv.Type() == timeType {
		return KindTime
	}

	switch rv.Kind() {
	case reflect.String:
		return KindText
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindInteger
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Slice:
		if rv.IsNil() {
			return KindNil
		}

		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return KindText
		}

		return KindSequence
	case reflect.Array:
		return KindSequence
	case reflect.Map:
		if rv.IsNil() {
			return KindNil
		}

		return KindMapping
	case reflect.Func:
		if rv.IsNil() {
			return KindNil
		}

		if isSimpleCallable(rv.Type()) {
			return KindCallable
		}

		return KindFunc
	case reflect.Struct:
		return KindStruct
	default:
		return KindOther
	}
}

// indirect dereferences pointers and interfaces. The result is invalid when
// a nil is reached.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}

		rv = rv.Elem()
	}

	return rv
}

// Indirect returns the value v points to, or nil for a nil pointer.
// Values that are not pointers are returned unchanged.
func Indirect(v any) any {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return v
	}

	rv = indirect(rv)
	if !rv.IsValid() {
		return nil
	}

	if !rv.CanInterface() {
		return v
	}

	return rv.Interface()
}
