package validators

import "schema-serializer/primitive"

// RequiredValidator rejects empty values.
type RequiredValidator struct {
	Base
}

// Required fails iff the value is empty.
func Required(opts ...Option) *RequiredValidator {
	return &RequiredValidator{
		Base: newBase("RequiredValidator", "required", map[string]string{
			KeyInvalid: "Value is required.",
		}, opts),
	}
}

func (v *RequiredValidator) IsValid(value any) bool {
	return !primitive.IsEmpty(value)
}

func (v *RequiredValidator) Validate(value any) *Failure {
	if v.IsValid(value) {
		return nil
	}

	return v.fail(KeyInvalid, Params{"value": value})
}
