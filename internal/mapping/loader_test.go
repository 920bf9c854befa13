package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userFile = `
version: "1"
schemas:
  - name: User
    extends: Base
    only: [email, name, address]
    fields:
      - name: name
        type: String
        label: Name
        help_text: Full name
        validators:
          - required
          - {max_length: 20}
          - type: min_length
            value: 2
            messages: {invalid: "too short"}
      - name: email
        type: email
        blacklist: [example.com]
      - name: status
        type: choice
        choices:
          - [enabled, Enabled]
          - disabled
          - {value: 3, label: Three}
      - name: color
        type: enum
        enum:
          - {name: RED, value: 1}
      - name: address
        schema: Address
        source: profile.address
        many: true
        allow_blank_source: true
  - name: Base
    fields:
      - name: id
        type: uuid
  - name: Address
    fields:
      - name: city
        type: string
`

func TestParse(t *testing.T) {
	sf, err := Parse([]byte(userFile))
	require.NoError(t, err)
	require.NotNil(t, sf)

	assert.Equal(t, "1", sf.Version)
	assert.Equal(t, []string{"User", "Base", "Address"}, sf.Names())

	user := sf.Schema("User")
	require.NotNil(t, user)
	assert.Equal(t, StringOrArray{"Base"}, user.Extends)
	assert.Equal(t, NameList{"email", "name", "address"}, user.Only)
	require.Len(t, user.Fields, 5)

	name := user.Fields[0]
	assert.Equal(t, "string", name.Type, "types are lower-cased")
	assert.Equal(t, "Name", name.Label)
	assert.Equal(t, "Full name", name.HelpText)
	assert.Equal(t, []ValidatorDef{
		{Type: "required"},
		{Type: "max_length", Value: 20},
		{Type: "min_length", Value: 2, Messages: map[string]string{"invalid": "too short"}},
	}, name.Validators)

	assert.Equal(t, []string{"example.com"}, user.Fields[1].Blacklist)

	assert.Equal(t, []ChoiceDef{
		{Value: "enabled", Label: "Enabled"},
		{Value: "disabled"},
		{Value: 3, Label: "Three"},
	}, user.Fields[2].Choices)

	assert.Equal(t, []EnumDef{{Name: "RED", Value: 1}}, user.Fields[3].Enum)

	address := user.Fields[4]
	assert.True(t, address.IsNested())
	assert.Equal(t, TypeNested, address.Type)
	assert.Equal(t, "Address", address.Schema)
	assert.Equal(t, "profile.address", address.Source)
	assert.True(t, address.Many)
	assert.True(t, address.AllowBlankSource)

	assert.Equal(t, []string{"Base", "Address"}, user.Dependencies())
	assert.Nil(t, sf.Schema("Missing"))
}

func TestParse_DefaultVersion(t *testing.T) {
	sf, err := Parse([]byte("schemas: []"))
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, sf.Version)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		contains string
	}{
		{
			name:     "only as mapping",
			yaml:     "schemas:\n  - name: A\n    only: {a: 1}\n",
			contains: "must be an ordered sequence",
		},
		{
			name:     "exclude as scalar",
			yaml:     "schemas:\n  - name: A\n    exclude: a\n",
			contains: "must be an ordered sequence",
		},
		{
			name:     "validator with two keys",
			yaml:     "schemas:\n  - name: A\n    fields:\n      - name: a\n        validators: [{max_length: 1, min_length: 2}]\n",
			contains: "single key-value map",
		},
		{
			name:     "choice triple",
			yaml:     "schemas:\n  - name: A\n    fields:\n      - name: a\n        choices: [[a, b, c]]\n",
			contains: "exactly two items",
		},
		{
			name:     "extends as mapping",
			yaml:     "schemas:\n  - name: A\n    extends: {a: b}\n",
			contains: "expected string or array",
		},
		{
			name:     "broken yaml",
			yaml:     "schemas: [",
			contains: "failed to parse schema YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestWriteAndLoadFile(t *testing.T) {
	sf, err := Parse([]byte(userFile))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "schemas.yaml")
	require.NoError(t, WriteFile(sf, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "max_length: 20")
	assert.Contains(t, string(raw), "- required")
	assert.Contains(t, string(raw), "extends: Base")

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sf, loaded)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
