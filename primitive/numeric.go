package primitive

import (
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// ErrNotNumeric is returned when a value has no numeric reading.
var ErrNotNumeric = errors.New("value is not numeric")

var decimalType = reflect.TypeOf(decimal.Decimal{})

// ToDecimal reads v as an exact decimal. Text is parsed, floats use their
// shortest representation, NaN and infinities are rejected.
func ToDecimal(v any) (decimal.Decimal, error) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return decimal.Zero, errors.Wrap(ErrNotNumeric, "nil")
	}

	if rv.Type() == decimalType {
		return rv.Interface().(decimal.Decimal), nil
	}

	switch fromValue(rv) {
	case KindInteger:
		if rv.CanInt() {
			return decimal.NewFromInt(rv.Int()), nil
		}

		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0), nil
	case KindFloat:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, errors.Wrapf(ErrNotNumeric, "%v", f)
		}

		if rv.Kind() == reflect.Float32 {
			return decimal.NewFromFloat32(float32(f)), nil
		}

		return decimal.NewFromFloat(f), nil
	case KindText:
		d, err := decimal.NewFromString(strings.TrimSpace(Text(rv.Interface())))
		if err != nil {
			return decimal.Zero, errors.Wrapf(ErrNotNumeric, "parse %q: %v", Text(rv.Interface()), err)
		}

		return d, nil
	}

	return decimal.Zero, errors.Wrapf(ErrNotNumeric, "%T", v)
}

// ToInt64 reads v as an integer. Floats and decimals must be integral; text
// must be a base 10 integer literal.
func ToInt64(v any) (int64, error) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return 0, errors.Wrap(ErrNotNumeric, "nil")
	}

	if rv.Type() == decimalType {
		d := rv.Interface().(decimal.Decimal)
		if !d.IsInteger() || !d.BigInt().IsInt64() {
			return 0, errors.Wrapf(ErrNotNumeric, "%s is not an int64", d)
		}

		return d.IntPart(), nil
	}

	switch fromValue(rv) {
	case KindInteger:
		if rv.CanInt() {
			return rv.Int(), nil
		}

		if u := rv.Uint(); u <= math.MaxInt64 {
			return int64(u), nil
		}
	case KindFloat:
		f := rv.Float()
		if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f), nil
		}
	case KindText:
		s := Text(rv.Interface())

		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrNotNumeric, "parse %q: %v", s, err)
		}

		return n, nil
	}

	return 0, errors.Wrapf(ErrNotNumeric, "%v is not an int64", v)
}

// ToFloat64 reads v as a float. Text accepts everything strconv.ParseFloat does.
func ToFloat64(v any) (float64, error) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return 0, errors.Wrap(ErrNotNumeric, "nil")
	}

	if rv.Type() == decimalType {
		return rv.Interface().(decimal.Decimal).InexactFloat64(), nil
	}

	switch fromValue(rv) {
	case KindInteger:
		if rv.CanInt() {
			return float64(rv.Int()), nil
		}

		return float64(rv.Uint()), nil
	case KindFloat:
		return rv.Float(), nil
	case KindText:
		s := Text(rv.Interface())

		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, errors.Wrapf(ErrNotNumeric, "parse %q: %v", s, err)
		}

		return f, nil
	}

	return 0, errors.Wrapf(ErrNotNumeric, "%T", v)
}
