package serializer

import (
	"schema-serializer/fields"
)

// member is either a leafMember or a nestedMember.
type member interface {
	memberName() string
}

type leafMember struct {
	name  string
	field fields.Field
}

func (m leafMember) memberName() string { return m.name }

type nestedMember struct {
	name   string
	schema *Schema
	opts   bindOptions
}

func (m nestedMember) memberName() string { return m.name }

// path is the source path of the nested object.
func (m nestedMember) path() string {
	if m.opts.source != "" {
		return m.opts.source
	}

	return m.name
}

type bindOptions struct {
	source           string
	many             bool
	allowBlankSource bool
}

// BindOption configures a binding or a nested member.
type BindOption func(*bindOptions)

// Source reads the object from a dotted path instead of the member name.
// On Bind it is resolved against the bound object.
func Source(path string) BindOption {
	return func(o *bindOptions) { o.source = path }
}

// Many treats the object as a sequence of objects.
func Many() BindOption {
	return func(o *bindOptions) { o.many = true }
}

// AllowBlankSource turns missing attributes into nil instead of errors.
func AllowBlankSource() BindOption {
	return func(o *bindOptions) { o.allowBlankSource = true }
}

func newBindOptions(opts []BindOption) bindOptions {
	var o bindOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
