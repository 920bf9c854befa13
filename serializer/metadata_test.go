package serializer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"schema-serializer/fields"
	"schema-serializer/serializer"
	"schema-serializer/validators"
)

func TestMetadata(t *testing.T) {
	s := serializer.MustDeclare("Profile",
		serializer.Field("name", fields.Char(
			fields.WithLabel("Name"),
			fields.WithHelpText("Full name"),
			fields.WithValidators(validators.Required()),
		)),
		serializer.Field("joined", fields.Date(fields.WithFormat("02/01/2006"), fields.WithSource("Joined.At"))),
		serializer.Field("status", fields.Choice([]validators.Choice{{Value: "on"}, {Value: "off"}})),
		serializer.Field("summary", fields.Method("")),
		serializer.Nested("addresses", addressSchema, serializer.Many()),
		serializer.WithMethod("get_summary", func(any) (any, error) { return "", nil }),
	)

	md := s.Metadata()
	assert.Equal(t, "Profile", md.Name)
	require.Len(t, md.Fields, 5)

	name := md.Fields[0]
	assert.Equal(t, "CharField", name.TypeName)
	assert.Equal(t, "string", name.TypeLabel)
	assert.Equal(t, "Name", name.Label)
	assert.Equal(t, "Full name", name.HelpText)
	assert.Empty(t, name.DefaultValidators)
	assert.Equal(t, []string{"RequiredValidator"}, name.Validators)

	joined := md.Fields[1]
	assert.Equal(t, "Joined.At", joined.Source)
	assert.Equal(t, "02/01/2006", joined.Format)
	assert.Equal(t, []string{"DateValidator"}, joined.DefaultValidators)

	assert.Equal(t, []string{"on", "off"}, md.Fields[2].Choices)
	assert.True(t, md.Fields[3].ReadOnly)

	addresses := md.Fields[4]
	assert.Equal(t, "Nested", addresses.TypeName)
	assert.True(t, addresses.Many)
	require.NotNil(t, addresses.Schema)
	assert.Equal(t, "Address", addresses.Schema.Name)
	assert.Len(t, addresses.Schema.Fields, 2)

	out, err := yaml.Marshal(md)
	require.NoError(t, err)
	assert.Contains(t, string(out), "type_name: DateField")
	assert.Contains(t, string(out), "help_text: Full name")
}
