package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-serializer/internal/diagnostic"
)

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

func mustParse(t *testing.T, src string) *SchemaFile {
	t.Helper()

	sf, err := Parse([]byte(src))
	require.NoError(t, err)

	return sf
}

func TestValidate_Valid(t *testing.T) {
	res := Validate(mustParse(t, userFile), DefaultRegistry())
	assert.True(t, res.IsValid(), "%v", res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil, DefaultRegistry())
	assert.Equal(t, []string{"file_is_nil"}, codes(res.Errors))

	res = Validate(&SchemaFile{Version: CurrentVersion}, nil)
	assert.Equal(t, []string{"registry_is_nil"}, codes(res.Errors))
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		yaml       string
		code       string
		field      string
		suggestion string
	}{
		{
			name: "unsupported version",
			yaml: "version: \"2\"\nschemas: []\n",
			code: "unsupported_version",
		},
		{
			name: "empty schema name",
			yaml: "schemas:\n  - fields: []\n",
			code: "empty_schema_name",
		},
		{
			name: "duplicate schema",
			yaml: "schemas:\n  - name: A\n  - name: A\n",
			code: "duplicate_schema",
		},
		{
			name:       "unknown extends",
			yaml:       "schemas:\n  - name: Address\n  - name: B\n    extends: Adress\n",
			code:       "unknown_extends",
			suggestion: "Address",
		},
		{
			name: "empty field name",
			yaml: "schemas:\n  - name: A\n    fields:\n      - type: string\n",
			code: "empty_field_name",
		},
		{
			name:  "duplicate field",
			yaml:  "schemas:\n  - name: A\n    fields:\n      - {name: a, type: string}\n      - {name: a, type: integer}\n",
			code:  "duplicate_field",
			field: "a",
		},
		{
			name:  "invalid source",
			yaml:  "schemas:\n  - name: A\n    fields:\n      - {name: a, type: string, source: \"x..y\"}\n",
			code:  "invalid_source",
			field: "a",
		},
		{
			name:  "method field",
			yaml:  "schemas:\n  - name: A\n    fields:\n      - {name: a, type: method}\n",
			code:  "method_not_supported",
			field: "a",
		},
		{
			name:  "missing type",
			yaml:  "schemas:\n  - name: A\n    fields:\n      - {name: a}\n",
			code:  "missing_field_type",
			field: "a",
		},
		{
			name:       "unknown type",
			yaml:       "schemas:\n  - name: A\n    fields:\n      - {name: a, type: integr}\n",
			code:       "unknown_field_type",
			field:      "a",
			suggestion: "integer",
		},
		{
			name:  "missing choices",
			yaml:  "schemas:\n  - name: A\n    fields:\n      - {name: a, type: choice}\n",
			code:  "missing_choices",
			field: "a",
		},
		{
			name:  "missing enum",
			yaml:  "schemas:\n  - name: A\n    fields:\n      - {name: a, type: enum}\n",
			code:  "missing_enum",
			field: "a",
		},
		{
			name:  "duplicate enum name",
			yaml:  "schemas:\n  - name: A\n    fields:\n      - {name: a, type: enum, enum: [{name: X, value: 1}, {name: X, value: 2}]}\n",
			code:  "duplicate_enum_name",
			field: "a",
		},
		{
			name:       "unknown validator",
			yaml:       "schemas:\n  - name: A\n    fields:\n      - {name: a, type: string, validators: [requird]}\n",
			code:       "unknown_validator",
			field:      "a",
			suggestion: "required",
		},
		{
			name:  "validator without value",
			yaml:  "schemas:\n  - name: A\n    fields:\n      - {name: a, type: string, validators: [max_length]}\n",
			code:  "invalid_validator",
			field: "a",
		},
		{
			name:  "validator with bad value",
			yaml:  "schemas:\n  - name: A\n    fields:\n      - {name: a, type: string, validators: [{max_length: lots}]}\n",
			code:  "invalid_validator",
			field: "a",
		},
		{
			name:  "unknown message key",
			yaml:  "schemas:\n  - name: A\n    fields:\n      - {name: a, type: string, error_messages: {max_value: nope}}\n",
			code:  "invalid_field",
			field: "a",
		},
		{
			name:  "nested without schema",
			yaml:  "schemas:\n  - name: A\n    fields:\n      - {name: a, type: nested}\n",
			code:  "missing_nested_schema",
			field: "a",
		},
		{
			name:       "unknown nested schema",
			yaml:       "schemas:\n  - name: Address\n  - name: A\n    fields:\n      - {name: a, schema: Adress}\n",
			code:       "unknown_nested_schema",
			field:      "a",
			suggestion: "Address",
		},
		{
			name: "cycle",
			yaml: "schemas:\n  - name: A\n    extends: B\n  - name: B\n    fields:\n      - {name: a, schema: A}\n",
			code: "schema_cycle",
		},
		{
			name:       "unknown only name",
			yaml:       "schemas:\n  - name: A\n    fields:\n      - {name: created_date, type: date}\n  - name: B\n    extends: A\n    only: [created_dat]\n",
			code:       "unknown_only_name",
			field:      "created_dat",
			suggestion: "created_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(mustParse(t, tt.yaml), DefaultRegistry())
			require.False(t, res.IsValid())
			require.Contains(t, codes(res.Errors), tt.code)

			for _, d := range res.Errors {
				if d.Code != tt.code {
					continue
				}

				if tt.field != "" {
					assert.Equal(t, tt.field, d.FieldPath)
				}

				if tt.suggestion != "" {
					assert.Equal(t, []string{tt.suggestion}, d.Suggestions)
				}
			}
		})
	}
}

func TestValidate_Warnings(t *testing.T) {
	src := `
schemas:
  - name: A
    exclude: [ghost]
    fields:
      - {name: a, type: string, many: true}
      - {name: b, schema: A2, validators: [required]}
  - name: A2
`
	res := Validate(mustParse(t, src), DefaultRegistry())
	assert.True(t, res.IsValid(), "%v", res.Errors)
	assert.ElementsMatch(t,
		[]string{"unknown_exclude_name", "nested_option_ignored", "nested_validators_ignored"},
		codes(res.Warnings))
}

func TestValidate_CollectsAll(t *testing.T) {
	src := `
schemas:
  - name: A
    fields:
      - {name: a, type: integr}
      - {name: b, type: method}
      - {name: c, schema: Nope}
`
	res := Validate(mustParse(t, src), DefaultRegistry())
	assert.Equal(t, []string{"unknown_field_type", "method_not_supported", "unknown_nested_schema"}, codes(res.Errors))

	err := res.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[A] a: [unknown_field_type]")
}
