package fields

import (
	"time"

	"go.uber.org/zap"

	"schema-serializer/internal/logging"
	"schema-serializer/primitive"
	"schema-serializer/validators"
)

// DateField holds a calendar date as a UTC midnight time.Time.
type DateField struct {
	Base
}

// Date declares a date field. The layout defaults to primitive.DateLayout.
func Date(opts ...Option) *DateField {
	f := &DateField{}
	f.Base = newBase("DateField", "date", f, opts)

	if f.format == "" {
		f.format = primitive.DateLayout
	}

	f.finish(validators.Date(f.format))

	return f
}

// ToNative renders times as dates in the field layout.
func (f *DateField) ToNative(value any) (any, error) {
	v, err := NativeValue(value)
	if err != nil {
		return nil, err
	}

	if t, ok := v.(time.Time); ok {
		return primitive.FormatDate(f.format, t), nil
	}

	return v, nil
}

// FromNative parses text with the field layout. A time of day on a
// time.Time input is dropped.
func (f *DateField) FromNative(value any) (any, error) {
	if primitive.IsEmpty(value) {
		return nil, nil
	}

	if t, ok := primitive.Indirect(value).(time.Time); ok {
		if primitive.HasClock(t) {
			logging.L().Warn("date field received a time of day, truncating",
				zap.String("field", f.typeName), zap.Time("value", t))
		}

		return primitive.TruncateDate(t), nil
	}

	t, err := primitive.ParseDate(f.format, primitive.Text(value))
	if err != nil {
		return nil, conversionErr(f.typeName, value, err)
	}

	return t, nil
}

// DateTimeField holds a timestamp.
type DateTimeField struct {
	Base
}

// DateTime declares a timestamp field. The layout defaults to primitive.ISO8601.
func DateTime(opts ...Option) *DateTimeField {
	f := &DateTimeField{}
	f.Base = newBase("DateTimeField", "datetime", f, opts)

	if f.format == "" {
		f.format = primitive.ISO8601
	}

	f.finish(validators.DateTime(f.format))

	return f
}

// ToNative renders times in the field layout. ISO mode renders a zero
// offset as "Z".
func (f *DateTimeField) ToNative(value any) (any, error) {
	v, err := NativeValue(value)
	if err != nil {
		return nil, err
	}

	if t, ok := v.(time.Time); ok {
		return primitive.FormatTime(f.format, t), nil
	}

	return v, nil
}

// FromNative parses text with the field layout.
func (f *DateTimeField) FromNative(value any) (any, error) {
	if primitive.IsEmpty(value) {
		return nil, nil
	}

	if t, ok := primitive.Indirect(value).(time.Time); ok {
		return t, nil
	}

	t, err := primitive.ParseTime(f.format, primitive.Text(value))
	if err != nil {
		return nil, conversionErr(f.typeName, value, err)
	}

	return t, nil
}
