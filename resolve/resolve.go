package resolve

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"schema-serializer/internal/match"
	"schema-serializer/primitive"
)

// TagName is the struct tag consulted for attribute names before the json tag.
const TagName = "serializer"

// Path resolves a dotted path against source. An empty path returns source.
func Path(source any, path string) (any, error) {
	if path == "" {
		return source, nil
	}

	current := source

	for _, segment := range strings.Split(path, ".") {
		next, err := step(current, segment)
		if err != nil {
			if ae, ok := err.(*AttributeResolutionError); ok {
				ae.Path = path
			}

			return nil, err
		}

		current = next
	}

	return current, nil
}

// Key looks key up in a mapping. The second result is false when data is not
// a mapping. A missing key yields nil.
func Key(data any, key string) (any, bool) {
	if data == nil {
		return nil, false
	}

	if g, ok := data.(primitive.Getter); ok {
		if primitive.Indirect(data) == nil {
			return nil, false
		}

		v, _ := g.Get(key)
		return v, true
	}

	if m, ok := data.(map[string]any); ok {
		return m[key], true
	}

	rv := reflect.ValueOf(data)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !v.IsValid() {
		return nil, true
	}

	return v.Interface(), true
}

func step(current any, segment string) (any, error) {
	if v, ok := Key(current, segment); ok {
		return v, nil
	}

	return attribute(current, segment)
}

func attribute(current any, segment string) (any, error) {
	fail := &AttributeResolutionError{Path: segment, Segment: segment, Type: fmt.Sprintf("%T", current)}

	if current == nil {
		fail.Type = "nil"
		return nil, fail
	}

	orig := reflect.ValueOf(current)

	rv := orig
	derefed := false

	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, fail
		}

		rv = rv.Elem()
		derefed = true
	}

	if rv.Kind() == reflect.Struct {
		if index, ok := fieldIndex(rv.Type(), segment); ok {
			fv, err := rv.FieldByIndexErr(index)
			if err != nil || !fv.CanInterface() {
				// nil embedded pointer on the way
				return nil, fail
			}

			return fv.Interface(), nil
		}
	}

	if m := lookupMethod(orig, segment); m.IsValid() {
		return m.Interface(), nil
	}

	if derefed {
		if m := lookupMethod(rv, segment); m.IsValid() {
			return m.Interface(), nil
		}
	}

	return nil, fail
}

// lookupMethod finds an exported method by exact or normalised name.
func lookupMethod(rv reflect.Value, segment string) reflect.Value {
	if m := rv.MethodByName(segment); m.IsValid() {
		return m
	}

	norm := match.NormalizeIdent(segment)
	t := rv.Type()

	for i := range t.NumMethod() {
		if match.NormalizeIdent(t.Method(i).Name) == norm {
			return rv.Method(i)
		}
	}

	return reflect.Value{}
}

type fieldKey struct {
	t       reflect.Type
	segment string
}

type fieldEntry struct {
	index []int
	ok    bool
}

var fieldCache sync.Map // fieldKey -> fieldEntry

// fieldIndex finds the exported field named by segment, trying the exact Go
// name, the serializer tag, the json tag and finally the normalised name.
func fieldIndex(t reflect.Type, segment string) ([]int, bool) {
	key := fieldKey{t: t, segment: segment}
	if cached, ok := fieldCache.Load(key); ok {
		e := cached.(fieldEntry)
		return e.index, e.ok
	}

	index, ok := findField(t, segment)
	fieldCache.Store(key, fieldEntry{index: index, ok: ok})

	return index, ok
}

func findField(t reflect.Type, segment string) ([]int, bool) {
	fields := make([]reflect.StructField, 0, t.NumField())

	for _, f := range reflect.VisibleFields(t) {
		if f.IsExported() && !f.Anonymous {
			fields = append(fields, f)
		}
	}

	for _, f := range fields {
		if f.Name == segment {
			return f.Index, true
		}
	}

	for _, tag := range []string{TagName, "json"} {
		for _, f := range fields {
			if name := tagName(f.Tag.Get(tag)); name != "" && name == segment {
				return f.Index, true
			}
		}
	}

	norm := match.NormalizeIdent(segment)

	for _, f := range fields {
		if match.NormalizeIdent(f.Name) == norm {
			return f.Index, true
		}
	}

	return nil, false
}

func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}

	return name
}
