package fields

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schema-serializer/primitive"
	"schema-serializer/validators"
)

// NumberField holds a number. Number and Float fields restore float64,
// Integer fields int64 and Decimal fields decimal.Decimal.
type NumberField struct {
	Base

	parse func(any) (any, error)
}

func newNumber(typeName, typeLabel string, v validators.Validator, parse func(any) (any, error), opts []Option) *NumberField {
	f := &NumberField{parse: parse}
	f.Base = newBase(typeName, typeLabel, f, opts)
	f.finish(v)

	return f
}

// Number declares a float64 field.
func Number(opts ...Option) *NumberField {
	return newNumber("NumberField", "number", validators.Number(), parseFloat, opts)
}

// Integer declares an int64 field.
func Integer(opts ...Option) *NumberField {
	return newNumber("IntegerField", "integer", validators.Integer(), func(v any) (any, error) {
		return primitive.ToInt64(v)
	}, opts)
}

// Float declares a float64 field.
func Float(opts ...Option) *NumberField {
	return newNumber("FloatField", "float", validators.Float(), parseFloat, opts)
}

// Decimal declares an exact decimal field. Native output is the canonical
// decimal string.
func Decimal(opts ...Option) *NumberField {
	return newNumber("DecimalField", "decimal", validators.Decimal(), func(v any) (any, error) {
		return primitive.ToDecimal(v)
	}, opts)
}

func parseFloat(v any) (any, error) {
	return primitive.ToFloat64(v)
}

// ToNative renders decimals as their canonical string.
func (f *NumberField) ToNative(value any) (any, error) {
	v, err := NativeValue(value)
	if err != nil {
		return nil, err
	}

	if d, ok := v.(decimal.Decimal); ok {
		return d.String(), nil
	}

	return v, nil
}

// FromNative parses the number.
func (f *NumberField) FromNative(value any) (any, error) {
	if primitive.IsEmpty(value) {
		return nil, nil
	}

	v, err := f.parse(value)
	if err != nil {
		return nil, conversionErr(f.typeName, value, err)
	}

	return v, nil
}

// UUIDField holds a uuid.UUID.
type UUIDField struct {
	Base
}

// UUID declares a UUID field.
func UUID(opts ...Option) *UUIDField {
	f := &UUIDField{}
	f.Base = newBase("UUIDField", "uuid", f, opts)
	f.finish(validators.UUID())

	return f
}

// ToNative renders UUIDs in the hyphenated form.
func (f *UUIDField) ToNative(value any) (any, error) {
	if u, ok := primitive.Indirect(value).(uuid.UUID); ok {
		return u.String(), nil
	}

	return NativeValue(value)
}

// FromNative parses the 36 character form.
func (f *UUIDField) FromNative(value any) (any, error) {
	if primitive.IsEmpty(value) {
		return nil, nil
	}

	u, ok := validators.ParseUUID(value)
	if !ok {
		return nil, conversionErr(f.typeName, value, nil)
	}

	return u, nil
}
