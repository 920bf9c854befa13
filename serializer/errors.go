package serializer

import (
	"github.com/cockroachdb/errors"

	"schema-serializer/fields"
)

var (
	// ErrConfiguration marks every error returned by Declare and Bind for a
	// wiring mistake. Match it with errors.Is from cockroachdb/errors.
	ErrConfiguration = errors.New("schema configuration error")

	// ErrMethodMissing matches a method field whose method is not registered.
	ErrMethodMissing = fields.ErrMethodMissing

	// ErrNoInput is returned by Object on an instance without input data.
	ErrNoInput = errors.New("no input data to restore")

	// ErrNotBound is returned by Data on an instance without a source object.
	ErrNotBound = errors.New("no source object bound")

	// ErrInvalid is returned by Object when the input failed validation.
	ErrInvalid = errors.New("input data is invalid")
)

// MethodMissingError reports a method field whose method the schema lacks.
type MethodMissingError = fields.MethodMissingError

func usageError(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrConfiguration)
}
