package validators

import "schema-serializer/primitive"

// MethodValidator checks that a value can be invoked.
type MethodValidator struct {
	Base
}

// Method accepts non-nil functions.
func Method(opts ...Option) *MethodValidator {
	return &MethodValidator{
		Base: newBase("MethodValidator", "method", map[string]string{
			KeyInvalid: "Ensure the value is a callable method.",
		}, opts),
	}
}

func (v *MethodValidator) IsValid(value any) bool {
	return primitive.IsCallable(value)
}

func (v *MethodValidator) Validate(value any) *Failure {
	return v.check(value, v.IsValid, nil)
}
