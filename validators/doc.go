// Package validators provides the predicates attached to fields.
//
// A validator never returns an error for bad data. Validate yields nil when
// the value is accepted and a *Failure describing the violation otherwise.
// Every validator except Required accepts empty values.
//
// Messages are templates with named placeholders ({value}, {max_value}, ...)
// keyed in a per-validator table. The default key is "invalid"; WithMessage
// overrides it at construction and rejects keys the table does not have.
package validators
