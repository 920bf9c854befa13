package validators

import (
	"time"

	"github.com/google/uuid"

	"schema-serializer/primitive"
)

// NumberValidator checks that a value reads as a number of some flavour.
type NumberValidator struct {
	Base

	parse func(any) error
}

func newNumber(typeName, typeLabel, message string, parse func(any) error, opts []Option) *NumberValidator {
	return &NumberValidator{
		Base:  newBase(typeName, typeLabel, map[string]string{KeyInvalid: message}, opts),
		parse: parse,
	}
}

// Number accepts anything that reads as a float64.
func Number(opts ...Option) *NumberValidator {
	return newNumber("NumberValidator", "number", "Not a valid number.", parseFloat, opts)
}

// Integer accepts integers, integral floats and base 10 integer text.
func Integer(opts ...Option) *NumberValidator {
	return newNumber("IntegerValidator", "integer", "Ensure the value {value} is of type integer.",
		func(v any) error {
			_, err := primitive.ToInt64(v)
			return err
		}, opts)
}

// Float accepts anything that reads as a float64.
func Float(opts ...Option) *NumberValidator {
	return newNumber("FloatValidator", "float", "Ensure the value {value} is of type float.", parseFloat, opts)
}

// Decimal accepts anything that reads as an exact decimal.
func Decimal(opts ...Option) *NumberValidator {
	return newNumber("DecimalValidator", "decimal", "Ensure the value {value} is of type decimal.",
		func(v any) error {
			_, err := primitive.ToDecimal(v)
			return err
		}, opts)
}

func parseFloat(v any) error {
	_, err := primitive.ToFloat64(v)
	return err
}

func (v *NumberValidator) IsValid(value any) bool {
	return v.parse(value) == nil
}

func (v *NumberValidator) Validate(value any) *Failure {
	return v.check(value, v.IsValid, nil)
}

// UUIDValidator checks UUIDs.
type UUIDValidator struct {
	Base
}

// UUID accepts uuid.UUID values and the 36 character hyphenated text form.
func UUID(opts ...Option) *UUIDValidator {
	return &UUIDValidator{
		Base: newBase("UUIDValidator", "uuid", map[string]string{
			KeyInvalid: "Ensure the value {value} is of type uuid.",
		}, opts),
	}
}

// ParseUUID reads value as a UUID. Text must use the 36 character form.
func ParseUUID(value any) (uuid.UUID, bool) {
	switch x := primitive.Indirect(value).(type) {
	case uuid.UUID:
		return x, true
	case [16]byte:
		return uuid.UUID(x), true
	}

	if primitive.Of(value) != primitive.KindText {
		return uuid.Nil, false
	}

	s := primitive.Text(value)
	if len(s) != 36 {
		return uuid.Nil, false
	}

	u, err := uuid.Parse(s)

	return u, err == nil
}

func (v *UUIDValidator) IsValid(value any) bool {
	_, ok := ParseUUID(value)
	return ok
}

func (v *UUIDValidator) Validate(value any) *Failure {
	return v.check(value, v.IsValid, nil)
}

// DateTimeValidator checks timestamps against a layout.
type DateTimeValidator struct {
	Base

	layout string
	date   bool
}

// DateTime accepts time.Time values and text matching layout. An empty
// layout means primitive.ISO8601.
func DateTime(layout string, opts ...Option) *DateTimeValidator {
	if layout == "" {
		layout = primitive.ISO8601
	}

	return &DateTimeValidator{
		Base: newBase("DateTimeValidator", "date_time", map[string]string{
			KeyInvalid: "Ensure the DateTime value {value} is of format {format}.",
		}, opts),
		layout: layout,
	}
}

// Date accepts time.Time values and text matching a date layout. An empty
// layout means primitive.DateLayout.
func Date(layout string, opts ...Option) *DateTimeValidator {
	if layout == "" {
		layout = primitive.DateLayout
	}

	return &DateTimeValidator{
		Base: newBase("DateValidator", "date", map[string]string{
			KeyInvalid: "Ensure the Date value {value} is of format {format}.",
		}, opts),
		layout: layout,
		date:   true,
	}
}

// Layout returns the configured layout.
func (v *DateTimeValidator) Layout() string { return v.layout }

func (v *DateTimeValidator) IsValid(value any) bool {
	if _, ok := primitive.Indirect(value).(time.Time); ok {
		return true
	}

	if primitive.Of(value) != primitive.KindText {
		return false
	}

	var err error
	if v.date {
		_, err = primitive.ParseDate(v.layout, primitive.Text(value))
	} else {
		_, err = primitive.ParseTime(v.layout, primitive.Text(value))
	}

	return err == nil
}

func (v *DateTimeValidator) Validate(value any) *Failure {
	return v.check(value, v.IsValid, Params{"format": v.layout})
}

// BooleanValidator checks boolean tokens.
type BooleanValidator struct {
	Base
}

// Boolean accepts native booleans, 1 and 0, and the tokens
// t/T/true/True/TRUE/1 and f/F/false/False/FALSE/0.
func Boolean(opts ...Option) *BooleanValidator {
	return &BooleanValidator{
		Base: newBase("BooleanValidator", "boolean", map[string]string{
			KeyInvalid: "Ensure the value {value} is of type boolean.",
		}, opts),
	}
}

func (v *BooleanValidator) IsValid(value any) bool {
	_, ok := primitive.ParseBool(value)
	return ok
}

func (v *BooleanValidator) Validate(value any) *Failure {
	return v.check(value, v.IsValid, nil)
}

// DictValidator checks for mappings.
type DictValidator struct {
	Base
}

// Dict accepts maps and other mapping values.
func Dict(opts ...Option) *DictValidator {
	return &DictValidator{
		Base: newBase("DictValidator", "dict", map[string]string{
			KeyInvalid: "Ensure the value {value} is of type dict.",
		}, opts),
	}
}

func (v *DictValidator) IsValid(value any) bool {
	return primitive.Of(value) == primitive.KindMapping
}

func (v *DictValidator) Validate(value any) *Failure {
	return v.check(value, v.IsValid, nil)
}
