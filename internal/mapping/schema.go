package mapping

import (
	"strings"
)

// SchemaFile represents the root of a YAML schema definition file.
type SchemaFile struct {
	// Version of the file format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Schemas is the list of schema declarations. Order does not matter;
	// references are resolved by name.
	Schemas []SchemaDef `yaml:"schemas"`
}

// Schema returns the definition named name, or nil.
func (sf *SchemaFile) Schema(name string) *SchemaDef {
	for i := range sf.Schemas {
		if sf.Schemas[i].Name == name {
			return &sf.Schemas[i]
		}
	}

	return nil
}

// Names returns the schema names in file order.
func (sf *SchemaFile) Names() []string {
	names := make([]string, 0, len(sf.Schemas))
	for i := range sf.Schemas {
		names = append(names, sf.Schemas[i].Name)
	}

	return names
}

// SchemaDef declares one schema.
type SchemaDef struct {
	// Name is the schema name used by references and in reports.
	Name string `yaml:"name"`

	// Extends lists base schemas whose members are inherited in order.
	Extends StringOrArray `yaml:"extends,omitempty"`

	// Only restricts the schema to these members, in this order.
	Only NameList `yaml:"only,omitempty"`

	// Exclude removes members.
	Exclude NameList `yaml:"exclude,omitempty"`

	// Fields are the declared members in output order.
	Fields []FieldDef `yaml:"fields,omitempty"`
}

// Dependencies returns the schemas this one refers to, base schemas first.
func (s *SchemaDef) Dependencies() []string {
	deps := append([]string{}, s.Extends...)

	for i := range s.Fields {
		if s.Fields[i].IsNested() {
			deps = append(deps, s.Fields[i].Schema)
		}
	}

	return deps
}

// Field type names accepted in schema files besides the leaf types.
const (
	TypeNested = "nested"
	TypeMethod = "method"
)

// FieldDef declares one member. A member with a schema reference is nested.
type FieldDef struct {
	Name string `yaml:"name"`

	// Type is the leaf type, e.g. "string", "integer", "date".
	Type string `yaml:"type,omitempty"`

	// Source is the dotted path read during serialization.
	Source string `yaml:"source,omitempty"`

	Label    string `yaml:"label,omitempty"`
	HelpText string `yaml:"help_text,omitempty"`

	// Format is the Go time layout of date and datetime fields.
	Format string `yaml:"format,omitempty"`

	// Schemes are the URL schemes accepted by url fields.
	Schemes []string `yaml:"schemes,omitempty"`

	// Blacklist are the domains rejected by email fields.
	Blacklist []string `yaml:"blacklist,omitempty"`

	Choices []ChoiceDef `yaml:"choices,omitempty"`
	Enum    []EnumDef   `yaml:"enum,omitempty"`

	// Validators run after the type's default validators.
	Validators []ValidatorDef `yaml:"validators,omitempty"`

	// ErrorMessages override failure messages by validator label or "invalid".
	ErrorMessages map[string]string `yaml:"error_messages,omitempty"`

	// Empty is the value produced when the source object is absent.
	Empty any `yaml:"empty,omitempty"`

	// Schema names the schema of a nested member.
	Schema string `yaml:"schema,omitempty"`

	Many             bool `yaml:"many,omitempty"`
	AllowBlankSource bool `yaml:"allow_blank_source,omitempty"`
}

// IsNested returns true for members serialized with another schema.
func (f *FieldDef) IsNested() bool {
	return f.Schema != "" || strings.EqualFold(f.Type, TypeNested)
}

// ChoiceDef is one allowed value of a choice field.
// YAML formats supported:
//   - Scalar: enabled
//   - Pair: [enabled, Enabled]
//   - Mapping: {value: enabled, label: Enabled}
type ChoiceDef struct {
	Value any    `yaml:"value"`
	Label string `yaml:"label,omitempty"`
}

// EnumDef is one named member of an enum field.
type EnumDef struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
}

// ValidatorDef attaches a validator to a field.
// YAML formats supported:
//   - Name only: required
//   - Name with argument: {max_length: 20}
//   - Full: {type: max_value, value: 10, messages: {invalid: "..."}}
type ValidatorDef struct {
	Type     string            `yaml:"type"`
	Value    any               `yaml:"value,omitempty"`
	Messages map[string]string `yaml:"messages,omitempty"`
}

// String returns the validator type.
func (v ValidatorDef) String() string {
	return v.Type
}

// StringOrArray is a list of strings written either as one string or as a
// sequence.
type StringOrArray []string

// NameList is a list of member names. It must be written as a YAML
// sequence, since its order is significant.
type NameList []string
