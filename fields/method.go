package fields

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"schema-serializer/validators"
)

// ErrMethodMissing matches every MethodMissingError.
var ErrMethodMissing = errors.New("method missing")

// MethodMissingError reports a method field whose method the schema lacks.
type MethodMissingError struct {
	Method string
	Schema string
}

func (e *MethodMissingError) Error() string {
	return fmt.Sprintf("the method `%s` is missing, ensure it is registered on schema `%s`", e.Method, e.Schema)
}

// Is reports whether target is ErrMethodMissing.
func (e *MethodMissingError) Is(target error) bool {
	return target == ErrMethodMissing
}

// MethodPrefix is prepended to the field name when no method name is given.
const MethodPrefix = "get_"

// MethodField outputs the result of a schema method. It is read only.
type MethodField struct {
	Base

	method string
}

// Method declares a computed field. An empty name means get_<field>.
func Method(name string, opts ...Option) *MethodField {
	f := &MethodField{method: name}
	f.Base = newBase("MethodField", "method", f, opts)
	f.finish(validators.Method())

	return f
}

// MethodName returns the method this field calls when declared as field.
func (f *MethodField) MethodName(field string) string {
	if f.method != "" {
		return f.method
	}

	return MethodPrefix + field
}

// ReadOnly is always true.
func (f *MethodField) ReadOnly() bool { return true }

// ExtractNative calls the method registered on the owning schema with source.
func (f *MethodField) ExtractNative(source any, name string, ctx Context) (any, error) {
	method := f.MethodName(name)

	if ctx.Parent == nil {
		return nil, &MethodMissingError{Method: method}
	}

	fn, ok := ctx.Parent.Method(method)
	if !ok {
		return nil, &MethodMissingError{Method: method, Schema: ctx.Parent.Name()}
	}

	v, err := fn(source)
	if err != nil {
		return nil, errors.Wrapf(err, "method %s", method)
	}

	return v, nil
}
