package fields

import (
	"schema-serializer/primitive"
	"schema-serializer/validators"
)

// ChoiceField holds one of a fixed set of values.
type ChoiceField struct {
	Base

	choices *validators.ChoiceValidator
}

// Choice declares a field restricted to choices.
func Choice(choices []validators.Choice, opts ...Option) *ChoiceField {
	f := &ChoiceField{choices: validators.OneOf(choices)}
	f.Base = newBase("ChoiceField", "choice", f, opts)
	f.finish(f.choices)

	return f
}

// Choices returns the allowed choices.
func (f *ChoiceField) Choices() []validators.Choice {
	return f.choices.Choices()
}

// FromNative returns the declared value equal to value.
func (f *ChoiceField) FromNative(value any) (any, error) {
	if primitive.IsEmpty(value) {
		return nil, nil
	}

	c, ok := f.choices.Lookup(value)
	if !ok {
		return nil, conversionErr(f.typeName, value, nil)
	}

	return c.Value, nil
}

// EnumField maps raw values to named enumerants.
type EnumField struct {
	Base

	members *validators.EnumValidator
}

// Enum declares a field over members.
func Enum(members []validators.Enumerant, opts ...Option) *EnumField {
	f := &EnumField{members: validators.Enum(members)}
	f.Base = newBase("EnumField", "enum", f, opts)
	f.finish(f.members)

	return f
}

// Members returns the enumerants.
func (f *EnumField) Members() []validators.Enumerant {
	return f.members.Members()
}

// ToNative renders an enumerant as its value.
func (f *EnumField) ToNative(value any) (any, error) {
	if e, ok := primitive.Indirect(value).(validators.Enumerant); ok {
		return NativeValue(e.Value)
	}

	return NativeValue(value)
}

// FromNative returns the enumerant whose value equals value.
func (f *EnumField) FromNative(value any) (any, error) {
	if primitive.IsEmpty(value) {
		return nil, nil
	}

	e, ok := f.members.Lookup(value)
	if !ok {
		return nil, conversionErr(f.typeName, value, nil)
	}

	return e, nil
}
