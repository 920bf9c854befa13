package validators

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"schema-serializer/primitive"
)

// MaxValueValidator requires numbers strictly below a bound.
type MaxValueValidator struct {
	Base

	bound decimal.Decimal
	raw   any
}

// MaxValue accepts values strictly less than bound. Comparison is exact
// decimal; text is parsed first and non-numeric values fail.
func MaxValue(bound any, opts ...Option) *MaxValueValidator {
	v := &MaxValueValidator{
		Base: newBase("MaxValueValidator", "max_value", map[string]string{
			KeyInvalid: "Ensure this value is less than {max_value}.",
		}, opts),
		raw: bound,
	}

	d, err := primitive.ToDecimal(bound)
	if err != nil {
		v.err = errors.CombineErrors(v.err, errors.Wrap(err, "max_value bound"))
	}

	v.bound = d

	return v
}

func (v *MaxValueValidator) IsValid(value any) bool {
	d, err := primitive.ToDecimal(value)
	return err == nil && d.LessThan(v.bound)
}

func (v *MaxValueValidator) Validate(value any) *Failure {
	return v.check(value, v.IsValid, Params{"max_value": v.raw})
}

// MinValueValidator requires numbers at or above a bound.
type MinValueValidator struct {
	Base

	bound decimal.Decimal
	raw   any
}

// MinValue accepts values greater than or equal to bound.
func MinValue(bound any, opts ...Option) *MinValueValidator {
	v := &MinValueValidator{
		Base: newBase("MinValueValidator", "min_value", map[string]string{
			KeyInvalid: "Ensure this value is greater than or equal to {min_value}.",
		}, opts),
		raw: bound,
	}

	d, err := primitive.ToDecimal(bound)
	if err != nil {
		v.err = errors.CombineErrors(v.err, errors.Wrap(err, "min_value bound"))
	}

	v.bound = d

	return v
}

func (v *MinValueValidator) IsValid(value any) bool {
	d, err := primitive.ToDecimal(value)
	return err == nil && d.GreaterThanOrEqual(v.bound)
}

func (v *MinValueValidator) Validate(value any) *Failure {
	return v.check(value, v.IsValid, Params{"min_value": v.raw})
}

// MaxLengthValidator bounds the character count of the text form.
type MaxLengthValidator struct {
	Base

	limit int
}

// MaxLength accepts values whose text form has at most n characters.
func MaxLength(n int, opts ...Option) *MaxLengthValidator {
	v := &MaxLengthValidator{
		Base: newBase("MaxLengthValidator", "max_length", map[string]string{
			KeyInvalid: "Ensure the value has at most {max_length} characters (it has {length} characters).",
		}, opts),
		limit: n,
	}

	if n < 0 {
		v.err = errors.CombineErrors(v.err, errors.Newf("max_length must not be negative, got %d", n))
	}

	return v
}

func (v *MaxLengthValidator) IsValid(value any) bool {
	return length(value) <= v.limit
}

func (v *MaxLengthValidator) Validate(value any) *Failure {
	return v.check(value, v.IsValid, Params{"max_length": v.limit, "length": length(value)})
}

// MinLengthValidator bounds the character count of the text form from below.
type MinLengthValidator struct {
	Base

	limit int
}

// MinLength accepts values whose text form has at least n characters.
func MinLength(n int, opts ...Option) *MinLengthValidator {
	v := &MinLengthValidator{
		Base: newBase("MinLengthValidator", "min_length", map[string]string{
			KeyInvalid: "Ensure the value has at least {min_length} characters (it has {length} characters).",
		}, opts),
		limit: n,
	}

	if n < 0 {
		v.err = errors.CombineErrors(v.err, errors.Newf("min_length must not be negative, got %d", n))
	}

	return v
}

func (v *MinLengthValidator) IsValid(value any) bool {
	return length(value) >= v.limit
}

func (v *MinLengthValidator) Validate(value any) *Failure {
	return v.check(value, v.IsValid, Params{"min_length": v.limit, "length": length(value)})
}

func length(value any) int {
	return utf8.RuneCountInString(primitive.Text(value))
}
