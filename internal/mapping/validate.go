package mapping

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"schema-serializer/internal/diagnostic"
	"schema-serializer/internal/match"
)

// Validate checks a schema file against the registry. It reports every
// problem it finds; Build refuses files with errors.
func Validate(sf *SchemaFile, reg *Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if sf == nil {
		res.AddError("file_is_nil", "schema file is nil", "", "")
		return res
	}

	if reg == nil {
		res.AddError("registry_is_nil", "type registry is nil", "", "")
		return res
	}

	if sf.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q (expected %q)", sf.Version, CurrentVersion), "", "")
	}

	// Schema names must be unique and non-empty.
	seenSchemas := map[string]struct{}{}

	for i := range sf.Schemas {
		name := sf.Schemas[i].Name
		if strings.TrimSpace(name) == "" {
			res.AddError("empty_schema_name", fmt.Sprintf("schema #%d has no name", i), "", "")
			continue
		}

		if _, ok := seenSchemas[name]; ok {
			res.AddError("duplicate_schema", fmt.Sprintf("duplicate schema %q", name), name, "")
			continue
		}

		seenSchemas[name] = struct{}{}
	}

	names := sf.Names()

	for i := range sf.Schemas {
		validateSchema(res, &sf.Schemas[i], names, reg)
	}

	if _, err := sf.BuildOrder(); err != nil {
		res.AddError("schema_cycle", err.Error(), "", "")
		return res
	}

	// Allow-lists need the inherited members, which only make sense
	// without cycles.
	members := memberNames(sf)

	for i := range sf.Schemas {
		s := &sf.Schemas[i]
		known := members[s.Name]

		for _, n := range s.Only {
			if !lo.Contains(known, n) {
				res.AddError("unknown_only_name", fmt.Sprintf("allowed name %q is not a member", n), s.Name, n,
					match.Suggest(n, known, 1)...)
			}
		}

		for _, n := range s.Exclude {
			if !lo.Contains(known, n) {
				res.AddWarning("unknown_exclude_name", fmt.Sprintf("excluded name %q is not a member", n), s.Name, n)
			}
		}
	}

	return res
}

func validateSchema(res *diagnostic.Diagnostics, s *SchemaDef, names []string, reg *Registry) {
	for _, base := range s.Extends {
		if !lo.Contains(names, base) {
			res.AddError("unknown_extends", fmt.Sprintf("base schema %q not found", base), s.Name, "",
				match.Suggest(base, names, 1)...)
		}
	}

	seenFields := map[string]struct{}{}

	for i := range s.Fields {
		f := &s.Fields[i]
		if strings.TrimSpace(f.Name) == "" {
			res.AddError("empty_field_name", fmt.Sprintf("field #%d has no name", i), s.Name, "")
			continue
		}

		if _, ok := seenFields[f.Name]; ok {
			res.AddError("duplicate_field", fmt.Sprintf("duplicate field %q", f.Name), s.Name, f.Name)
			continue
		}

		seenFields[f.Name] = struct{}{}

		validateField(res, s.Name, f, names, reg)
	}
}

// validateField validates a single field definition within a schema.
func validateField(res *diagnostic.Diagnostics, schema string, f *FieldDef, names []string, reg *Registry) {
	before := len(res.Errors)

	if f.Source != "" {
		if _, err := ParsePath(f.Source); err != nil {
			res.AddError("invalid_source", err.Error(), schema, f.Name)
		}
	}

	switch {
	case f.IsNested():
		validateNested(res, schema, f, names)
		return
	case f.Type == TypeMethod:
		res.AddError("method_not_supported",
			"method fields need a function registered in code and cannot be declared in a schema file", schema, f.Name)

		return
	case f.Type == "":
		res.AddError("missing_field_type", "field has neither a type nor a schema", schema, f.Name)
		return
	case !reg.HasField(f.Type):
		res.AddError("unknown_field_type", fmt.Sprintf("unknown field type %q", f.Type), schema, f.Name,
			match.Suggest(f.Type, reg.FieldTypes(), 1)...)

		return
	}

	if f.Many || f.AllowBlankSource {
		res.AddWarning("nested_option_ignored", "many and allow_blank_source only apply to nested fields", schema, f.Name)
	}

	if f.Type == "choice" && len(f.Choices) == 0 {
		res.AddError("missing_choices", "choice field has no choices", schema, f.Name)
	}

	if f.Type == "enum" {
		if len(f.Enum) == 0 {
			res.AddError("missing_enum", "enum field has no members", schema, f.Name)
		}

		for _, dup := range lo.FindDuplicates(lo.Map(f.Enum, func(e EnumDef, _ int) string { return e.Name })) {
			res.AddError("duplicate_enum_name", fmt.Sprintf("duplicate enum member %q", dup), schema, f.Name)
		}
	}

	for _, v := range f.Validators {
		if !reg.HasValidator(v.Type) {
			res.AddError("unknown_validator", fmt.Sprintf("unknown validator %q", v.Type), schema, f.Name,
				match.Suggest(v.Type, reg.ValidatorTypes(), 1)...)

			continue
		}

		if _, err := reg.BuildValidator(v); err != nil {
			res.AddError("invalid_validator", err.Error(), schema, f.Name)
		}
	}

	if len(res.Errors) > before {
		return
	}

	// Catches the remaining construction problems, such as error_messages
	// keys no validator defines.
	if _, err := reg.BuildField(f); err != nil {
		res.AddError("invalid_field", err.Error(), schema, f.Name)
	}
}

func validateNested(res *diagnostic.Diagnostics, schema string, f *FieldDef, names []string) {
	if f.Schema == "" {
		res.AddError("missing_nested_schema", "nested field names no schema", schema, f.Name)
		return
	}

	if !lo.Contains(names, f.Schema) {
		res.AddError("unknown_nested_schema", fmt.Sprintf("nested schema %q not found", f.Schema), schema, f.Name,
			match.Suggest(f.Schema, names, 1)...)
	}

	if len(f.Validators) > 0 || len(f.ErrorMessages) > 0 {
		res.AddWarning("nested_validators_ignored", "validators of nested fields are ignored", schema, f.Name)
	}
}

// memberNames returns the merged member names of every schema, following
// extends. The file must be free of cycles.
func memberNames(sf *SchemaFile) map[string][]string {
	out := map[string][]string{}

	order, err := sf.BuildOrder()
	if err != nil {
		return out
	}

	for _, i := range order {
		s := &sf.Schemas[i]

		var names []string
		for _, base := range s.Extends {
			names = append(names, out[base]...)
		}

		for j := range s.Fields {
			names = append(names, s.Fields[j].Name)
		}

		out[s.Name] = lo.Uniq(names)
	}

	return out
}
