package mapping

import (
	"maps"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"

	"schema-serializer/fields"
	"schema-serializer/validators"
)

// FieldFactory builds a leaf field from its definition. opts carry the
// settings shared by every field type (source, label, validators...).
type FieldFactory func(def *FieldDef, opts []fields.Option) (fields.Field, error)

// ValidatorFactory builds a validator from its definition.
type ValidatorFactory func(def ValidatorDef, opts []validators.Option) (validators.Validator, error)

// Registry holds the field and validator types a schema file may name.
type Registry struct {
	fields     map[string]FieldFactory
	validators map[string]ValidatorFactory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fields:     make(map[string]FieldFactory),
		validators: make(map[string]ValidatorFactory),
	}
}

// DefaultRegistry creates a registry with every built-in field and
// validator type.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	plain := func(fn func(...fields.Option) fields.Field) FieldFactory {
		return func(_ *FieldDef, opts []fields.Option) (fields.Field, error) { return fn(opts...), nil }
	}

	r.AddField("string", plain(func(o ...fields.Option) fields.Field { return fields.Char(o...) }))
	r.AddField("char", plain(func(o ...fields.Option) fields.Field { return fields.Char(o...) }))
	r.AddField("raw", plain(func(o ...fields.Option) fields.Field { return fields.Raw(o...) }))
	r.AddField("url", plain(func(o ...fields.Option) fields.Field { return fields.URL(o...) }))
	r.AddField("email", plain(func(o ...fields.Option) fields.Field { return fields.Email(o...) }))
	r.AddField("number", plain(func(o ...fields.Option) fields.Field { return fields.Number(o...) }))
	r.AddField("integer", plain(func(o ...fields.Option) fields.Field { return fields.Integer(o...) }))
	r.AddField("float", plain(func(o ...fields.Option) fields.Field { return fields.Float(o...) }))
	r.AddField("decimal", plain(func(o ...fields.Option) fields.Field { return fields.Decimal(o...) }))
	r.AddField("date", plain(func(o ...fields.Option) fields.Field { return fields.Date(o...) }))
	r.AddField("datetime", plain(func(o ...fields.Option) fields.Field { return fields.DateTime(o...) }))
	r.AddField("uuid", plain(func(o ...fields.Option) fields.Field { return fields.UUID(o...) }))
	r.AddField("dict", plain(func(o ...fields.Option) fields.Field { return fields.Dict(o...) }))
	r.AddField("boolean", plain(func(o ...fields.Option) fields.Field { return fields.Boolean(o...) }))
	r.AddField("choice", func(def *FieldDef, opts []fields.Option) (fields.Field, error) {
		if len(def.Choices) == 0 {
			return nil, errors.Newf("field %q: choice fields need choices", def.Name)
		}

		return fields.Choice(toChoices(def.Choices), opts...), nil
	})
	r.AddField("enum", func(def *FieldDef, opts []fields.Option) (fields.Field, error) {
		if len(def.Enum) == 0 {
			return nil, errors.Newf("field %q: enum fields need members", def.Name)
		}

		return fields.Enum(toEnumerants(def.Enum), opts...), nil
	})

	noArg := func(fn func(...validators.Option) validators.Validator) ValidatorFactory {
		return func(_ ValidatorDef, opts []validators.Option) (validators.Validator, error) { return fn(opts...), nil }
	}

	r.AddValidator("required", noArg(func(o ...validators.Option) validators.Validator { return validators.Required(o...) }))
	r.AddValidator("number", noArg(func(o ...validators.Option) validators.Validator { return validators.Number(o...) }))
	r.AddValidator("integer", noArg(func(o ...validators.Option) validators.Validator { return validators.Integer(o...) }))
	r.AddValidator("float", noArg(func(o ...validators.Option) validators.Validator { return validators.Float(o...) }))
	r.AddValidator("decimal", noArg(func(o ...validators.Option) validators.Validator { return validators.Decimal(o...) }))
	r.AddValidator("uuid", noArg(func(o ...validators.Option) validators.Validator { return validators.UUID(o...) }))
	r.AddValidator("boolean", noArg(func(o ...validators.Option) validators.Validator { return validators.Boolean(o...) }))
	r.AddValidator("dict", noArg(func(o ...validators.Option) validators.Validator { return validators.Dict(o...) }))
	r.AddValidator("max_value", func(def ValidatorDef, opts []validators.Option) (validators.Validator, error) {
		if def.Value == nil {
			return nil, errors.Newf("validator %s requires a value", def.Type)
		}

		return validators.MaxValue(def.Value, opts...), nil
	})
	r.AddValidator("min_value", func(def ValidatorDef, opts []validators.Option) (validators.Validator, error) {
		if def.Value == nil {
			return nil, errors.Newf("validator %s requires a value", def.Type)
		}

		return validators.MinValue(def.Value, opts...), nil
	})
	r.AddValidator("max_length", func(def ValidatorDef, opts []validators.Option) (validators.Validator, error) {
		n, err := requiredArg[int](def)
		if err != nil {
			return nil, err
		}

		return validators.MaxLength(n, opts...), nil
	})
	r.AddValidator("min_length", func(def ValidatorDef, opts []validators.Option) (validators.Validator, error) {
		n, err := requiredArg[int](def)
		if err != nil {
			return nil, err
		}

		return validators.MinLength(n, opts...), nil
	})
	r.AddValidator("email", func(def ValidatorDef, opts []validators.Option) (validators.Validator, error) {
		blacklist, err := optionalArg[[]string](def)
		if err != nil {
			return nil, err
		}

		return validators.Email(blacklist, opts...), nil
	})
	r.AddValidator("url", func(def ValidatorDef, opts []validators.Option) (validators.Validator, error) {
		schemes, err := optionalArg[[]string](def)
		if err != nil {
			return nil, err
		}

		return validators.URL(schemes, opts...), nil
	})
	r.AddValidator("date", func(def ValidatorDef, opts []validators.Option) (validators.Validator, error) {
		layout, err := optionalArg[string](def)
		if err != nil {
			return nil, err
		}

		return validators.Date(layout, opts...), nil
	})
	r.AddValidator("datetime", func(def ValidatorDef, opts []validators.Option) (validators.Validator, error) {
		layout, err := optionalArg[string](def)
		if err != nil {
			return nil, err
		}

		return validators.DateTime(layout, opts...), nil
	})
	r.AddValidator("choice", func(def ValidatorDef, opts []validators.Option) (validators.Validator, error) {
		var choices []ChoiceDef

		for _, v := range primitiveList(def.Value) {
			choices = append(choices, ChoiceDef{Value: v})
		}

		if len(choices) == 0 {
			return nil, errors.Newf("validator %s requires a list of values", def.Type)
		}

		return validators.OneOf(toChoices(choices), opts...), nil
	})

	return r
}

// AddField registers a field type.
func (r *Registry) AddField(name string, f FieldFactory) {
	r.fields[name] = f
}

// AddValidator registers a validator type.
func (r *Registry) AddValidator(name string, f ValidatorFactory) {
	r.validators[name] = f
}

// HasField returns true if a field type with the given name exists.
func (r *Registry) HasField(name string) bool {
	_, exists := r.fields[name]
	return exists
}

// HasValidator returns true if a validator type with the given name exists.
func (r *Registry) HasValidator(name string) bool {
	_, exists := r.validators[name]
	return exists
}

// FieldTypes returns all field type names, sorted.
func (r *Registry) FieldTypes() []string {
	return slices.Sorted(maps.Keys(r.fields))
}

// ValidatorTypes returns all validator type names, sorted.
func (r *Registry) ValidatorTypes() []string {
	return slices.Sorted(maps.Keys(r.validators))
}

// BuildValidator constructs the validator described by def.
func (r *Registry) BuildValidator(def ValidatorDef) (validators.Validator, error) {
	factory, ok := r.validators[def.Type]
	if !ok {
		return nil, errors.Newf("unknown validator type %q", def.Type)
	}

	var opts []validators.Option
	if len(def.Messages) > 0 {
		opts = append(opts, validators.WithMessages(def.Messages))
	}

	v, err := factory(def, opts)
	if err != nil {
		return nil, err
	}

	if err := v.ConfigErr(); err != nil {
		return nil, errors.Wrapf(err, "validator %s", def.Type)
	}

	return v, nil
}

// BuildField constructs the leaf field described by def.
func (r *Registry) BuildField(def *FieldDef) (fields.Field, error) {
	factory, ok := r.fields[def.Type]
	if !ok {
		return nil, errors.Newf("unknown field type %q", def.Type)
	}

	vs := make([]validators.Validator, 0, len(def.Validators))

	for _, vd := range def.Validators {
		v, err := r.BuildValidator(vd)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", def.Name)
		}

		vs = append(vs, v)
	}

	opts := []fields.Option{fields.WithValidators(vs...)}

	if def.Source != "" {
		opts = append(opts, fields.WithSource(def.Source))
	}

	if def.Label != "" {
		opts = append(opts, fields.WithLabel(def.Label))
	}

	if def.HelpText != "" {
		opts = append(opts, fields.WithHelpText(def.HelpText))
	}

	if def.Format != "" {
		opts = append(opts, fields.WithFormat(def.Format))
	}

	if len(def.Schemes) > 0 {
		opts = append(opts, fields.WithSchemes(def.Schemes...))
	}

	if len(def.Blacklist) > 0 {
		opts = append(opts, fields.WithBlacklist(def.Blacklist...))
	}

	if len(def.ErrorMessages) > 0 {
		opts = append(opts, fields.WithMessages(def.ErrorMessages))
	}

	if def.Empty != nil {
		opts = append(opts, fields.WithEmpty(def.Empty))
	}

	f, err := factory(def, opts)
	if err != nil {
		return nil, err
	}

	if err := f.Err(); err != nil {
		return nil, errors.Wrapf(err, "field %q", def.Name)
	}

	return f, nil
}

func toChoices(defs []ChoiceDef) []validators.Choice {
	return lo.Map(defs, func(c ChoiceDef, _ int) validators.Choice {
		return validators.Choice{Value: c.Value, Label: c.Label}
	})
}

func toEnumerants(defs []EnumDef) []validators.Enumerant {
	return lo.Map(defs, func(e EnumDef, _ int) validators.Enumerant {
		return validators.Enumerant{Name: e.Name, Value: e.Value}
	})
}

func primitiveList(v any) []any {
	list, ok := v.([]any)
	if !ok {
		return nil
	}

	return list
}

// requiredArg decodes the validator argument into T.
func requiredArg[T any](def ValidatorDef) (T, error) {
	var out T

	if def.Value == nil {
		return out, errors.Newf("validator %s requires a value", def.Type)
	}

	return optionalArg[T](def)
}

// optionalArg decodes the validator argument into T, or returns the zero
// value when there is none.
func optionalArg[T any](def ValidatorDef) (T, error) {
	var out T

	if def.Value == nil {
		return out, nil
	}

	if err := mapstructure.WeakDecode(def.Value, &out); err != nil {
		return out, errors.Wrapf(err, "validator %s: invalid value", def.Type)
	}

	return out, nil
}
