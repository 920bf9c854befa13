package serializer

import (
	"schema-serializer/fields"
)

type declaration struct {
	name      string
	bases     []*Schema
	members   []member
	only      []string
	exclude   []string
	methods   map[string]fields.MethodFunc
	observers []Observer
}

// Option configures a schema declaration.
type Option func(*declaration)

// Field declares a leaf member.
func Field(name string, f fields.Field) Option {
	return func(d *declaration) {
		d.members = append(d.members, leafMember{name: name, field: f})
	}
}

// Nested declares a member serialized with another schema.
func Nested(name string, schema *Schema, opts ...BindOption) Option {
	return func(d *declaration) {
		d.members = append(d.members, nestedMember{name: name, schema: schema, opts: newBindOptions(opts)})
	}
}

// Extends inherits the members and methods of bases, in order. Declared
// members with the same name replace inherited ones in place.
func Extends(bases ...*Schema) Option {
	return func(d *declaration) { d.bases = append(d.bases, bases...) }
}

// Only restricts the schema to names, which also sets the output order.
// Without names the schema is not restricted.
func Only(names ...string) Option {
	return func(d *declaration) {
		d.only = append(d.only, names...)
	}
}

// Exclude removes names from the schema.
func Exclude(names ...string) Option {
	return func(d *declaration) { d.exclude = append(d.exclude, names...) }
}

// WithMethod registers a method for method fields.
func WithMethod(name string, fn fields.MethodFunc) Option {
	return func(d *declaration) { d.methods[name] = fn }
}

// WithObserver reports serialization and validation of instances to o.
func WithObserver(o Observer) Option {
	return func(d *declaration) {
		if o != nil {
			d.observers = append(d.observers, o)
		}
	}
}
