package fields

import (
	"schema-serializer/primitive"
	"schema-serializer/validators"
)

// CharField holds text.
type CharField struct {
	Base
}

// Char declares a text field.
func Char(opts ...Option) *CharField {
	f := &CharField{}
	f.Base = newBase("CharField", "string", f, opts)
	f.finish()

	return f
}

// FromNative returns the text form of value.
func (f *CharField) FromNative(value any) (any, error) {
	if primitive.IsEmpty(value) {
		return nil, nil
	}

	return primitive.Text(value), nil
}

// RawField passes values through without validation.
type RawField struct {
	Base
}

// Raw declares a field that applies no conversion or default validation.
func Raw(opts ...Option) *RawField {
	f := &RawField{}
	f.Base = newBase("RawField", "raw", f, opts)
	f.finish()

	return f
}

// URLField holds URLs.
type URLField struct {
	CharField
}

// URL declares a URL field. Schemes default to validators.DefaultSchemes.
func URL(opts ...Option) *URLField {
	f := &URLField{}
	f.Base = newBase("UrlField", "url", f, opts)
	f.finish(validators.URL(f.schemes))

	return f
}

// EmailField holds e-mail addresses.
type EmailField struct {
	CharField
}

// Email declares an e-mail field.
func Email(opts ...Option) *EmailField {
	f := &EmailField{}
	f.Base = newBase("EmailField", "email", f, opts)
	f.finish(validators.Email(f.blacklist))

	return f
}

// DictField holds a mapping.
type DictField struct {
	Base
}

// Dict declares a mapping field.
func Dict(opts ...Option) *DictField {
	f := &DictField{}
	f.Base = newBase("DictField", "dict", f, opts)
	f.finish(validators.Dict())

	return f
}

// FromNative requires a mapping.
func (f *DictField) FromNative(value any) (any, error) {
	if primitive.IsEmpty(value) {
		return nil, nil
	}

	if primitive.Of(value) != primitive.KindMapping {
		return nil, conversionErr(f.typeName, value, nil)
	}

	return value, nil
}

// BooleanField holds a boolean.
type BooleanField struct {
	Base
}

// Boolean declares a boolean field.
func Boolean(opts ...Option) *BooleanField {
	f := &BooleanField{}
	f.Base = newBase("BooleanField", "boolean", f, opts)
	f.finish(validators.Boolean())

	return f
}

// FromNative reads the boolean tokens.
func (f *BooleanField) FromNative(value any) (any, error) {
	if primitive.IsEmpty(value) {
		return nil, nil
	}

	b, ok := primitive.ParseBool(value)
	if !ok {
		return nil, conversionErr(f.typeName, value, nil)
	}

	return b, nil
}
