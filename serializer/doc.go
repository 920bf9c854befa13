// Package serializer declares schemas and binds them to data.
//
// A Schema is an ordered set of members built once with Declare. Each member
// is either a leaf field from package fields or a nested schema. A schema is
// immutable and may be shared between goroutines.
//
// Binding a schema to a source object with Bind produces an Instance whose
// Data method returns the native form: ordered maps, slices, strings,
// numbers and bools. Binding raw input with BindData produces an Instance
// that validates the input (Errors, IsValid) and restores a typed *Record
// (Object).
//
//	user := serializer.MustDeclare("User",
//		serializer.Field("name", fields.Char(fields.WithValidators(validators.Required()))),
//		serializer.Field("age", fields.Integer()),
//	)
//
//	in, _ := user.Bind(&u)
//	data, err := in.Data()
//
// Configuration problems are reported by Declare as a single error marked
// with ErrConfiguration. Problems with input data never produce errors; they
// are collected in a *Report.
package serializer
