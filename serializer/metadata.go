package serializer

import (
	"github.com/samber/lo"

	"schema-serializer/fields"
	"schema-serializer/primitive"
	"schema-serializer/validators"
)

// FieldMetadata describes one member of a schema.
type FieldMetadata struct {
	Name              string          `json:"name"                         yaml:"name"`
	TypeName          string          `json:"type_name"                    yaml:"type_name"`
	TypeLabel         string          `json:"type_label"                   yaml:"type_label"`
	Source            string          `json:"source,omitempty"             yaml:"source,omitempty"`
	Label             string          `json:"label,omitempty"              yaml:"label,omitempty"`
	HelpText          string          `json:"help_text,omitempty"          yaml:"help_text,omitempty"`
	Format            string          `json:"format,omitempty"             yaml:"format,omitempty"`
	ReadOnly          bool            `json:"read_only,omitempty"          yaml:"read_only,omitempty"`
	DefaultValidators []string        `json:"default_validators,omitempty" yaml:"default_validators,omitempty"`
	Validators        []string        `json:"validators,omitempty"         yaml:"validators,omitempty"`
	Choices           []string        `json:"choices,omitempty"            yaml:"choices,omitempty"`
	Many              bool            `json:"many,omitempty"               yaml:"many,omitempty"`
	Schema            *SchemaMetadata `json:"schema,omitempty"             yaml:"schema,omitempty"`
}

// SchemaMetadata describes a schema and its members in output order.
type SchemaMetadata struct {
	Name   string          `json:"name"   yaml:"name"`
	Fields []FieldMetadata `json:"fields" yaml:"fields"`
}

// Metadata describes the schema, nested schemas included.
func (s *Schema) Metadata() SchemaMetadata {
	return SchemaMetadata{
		Name:   s.name,
		Fields: lo.Map(s.members, func(m member, _ int) FieldMetadata { return memberMetadata(m) }),
	}
}

func memberMetadata(m member) FieldMetadata {
	switch m := m.(type) {
	case nestedMember:
		nested := m.schema.Metadata()

		return FieldMetadata{
			Name:      m.name,
			TypeName:  "Nested",
			TypeLabel: "nested",
			Source:    m.opts.source,
			Many:      m.opts.many,
			Schema:    &nested,
		}
	case leafMember:
		f := m.field

		md := FieldMetadata{
			Name:              m.name,
			TypeName:          f.TypeName(),
			TypeLabel:         f.TypeLabel(),
			Source:            f.Source(),
			Label:             f.Label(),
			HelpText:          f.HelpText(),
			Format:            f.Format(),
			ReadOnly:          f.ReadOnly(),
			DefaultValidators: validatorNames(f.DefaultValidators()),
			Validators:        validatorNames(f.Validators()),
		}

		switch f := f.(type) {
		case *fields.ChoiceField:
			md.Choices = lo.Map(f.Choices(), func(c validators.Choice, _ int) string { return primitive.Text(c.Value) })
		case *fields.EnumField:
			md.Choices = lo.Map(f.Members(), func(e validators.Enumerant, _ int) string { return e.Name })
		}

		return md
	}

	return FieldMetadata{Name: m.memberName()}
}

func validatorNames(vs []validators.Validator) []string {
	return lo.Map(vs, func(v validators.Validator, _ int) string { return v.TypeName() })
}
