package serializer_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-serializer/fields"
	"schema-serializer/serializer"
	"schema-serializer/validators"
)

func TestDeclare_Order(t *testing.T) {
	assert.Equal(t, []string{"id", "name", "age", "dob", "created_at", "address"}, userSchema.Names())
	assert.Equal(t, "User", userSchema.Name())

	f, ok := userSchema.Field("age")
	require.True(t, ok)
	assert.Equal(t, "IntegerField", f.TypeName())

	_, ok = userSchema.Field("address")
	assert.False(t, ok)

	nested, ok := userSchema.Nested("address")
	require.True(t, ok)
	assert.Same(t, addressSchema, nested)
}

func TestDeclare_Extends(t *testing.T) {
	derived := serializer.MustDeclare("Admin",
		serializer.Extends(userSchema),
		serializer.Field("age", fields.Float()),
		serializer.Field("role", fields.Char()),
	)

	assert.Equal(t, []string{"id", "name", "age", "dob", "created_at", "address", "role"}, derived.Names())

	f, ok := derived.Field("age")
	require.True(t, ok)
	assert.Equal(t, "FloatField", f.TypeName())

	base, ok := userSchema.Field("age")
	require.True(t, ok)
	assert.Equal(t, "IntegerField", base.TypeName())
}

func TestDeclare_OnlyAndExclude(t *testing.T) {
	short := serializer.MustDeclare("UserShort",
		serializer.Extends(userSchema),
		serializer.Only("name", "id", "age"),
		serializer.Exclude("age"),
	)
	assert.Equal(t, []string{"name", "id"}, short.Names())

	// Excluded members are still inherited by derived schemas.
	again := serializer.MustDeclare("UserAgain", serializer.Extends(short))
	assert.Contains(t, again.Names(), "age")
	assert.Contains(t, again.Names(), "address")

	// A derived schema narrows for itself.
	trimmed := serializer.MustDeclare("UserTrimmed", serializer.Extends(short), serializer.Exclude("age"))
	assert.NotContains(t, trimmed.Names(), "age")
	assert.Contains(t, trimmed.Names(), "address")

	noAddress := serializer.MustDeclare("NoAddress", serializer.Extends(userSchema), serializer.Exclude("address", "missing"))
	assert.NotContains(t, noAddress.Names(), "address")
}

func TestDeclare_EmptyOnly(t *testing.T) {
	var allow []string

	s := serializer.MustDeclare("Pair",
		serializer.Field("a", fields.Char()),
		serializer.Field("b", fields.Char()),
		serializer.Only(allow...),
	)
	assert.Equal(t, []string{"a", "b"}, s.Names())

	s = serializer.MustDeclare("PairShort", serializer.Extends(s), serializer.Only(), serializer.Only("b"))
	assert.Equal(t, []string{"b"}, s.Names())
}

func TestDeclare_Errors(t *testing.T) {
	tests := []struct {
		name     string
		opts     []serializer.Option
		contains string
		hint     string
	}{
		{
			name: "duplicate member",
			opts: []serializer.Option{
				serializer.Field("a", fields.Char()),
				serializer.Field("a", fields.Integer()),
			},
			contains: "duplicate_member",
		},
		{
			name: "unknown allow-list name",
			opts: []serializer.Option{
				serializer.Field("created_date", fields.Date()),
				serializer.Only("created_dat"),
			},
			contains: "unknown_only_name",
			hint:     "did you mean created_date?",
		},
		{
			name:     "nil nested schema",
			opts:     []serializer.Option{serializer.Nested("a", nil)},
			contains: "nil_nested_schema",
		},
		{
			name:     "nil field",
			opts:     []serializer.Option{serializer.Field("a", nil)},
			contains: "nil_field",
		},
		{
			name:     "empty member name",
			opts:     []serializer.Option{serializer.Field("", fields.Char())},
			contains: "empty_name",
		},
		{
			name:     "field configuration",
			opts:     []serializer.Option{serializer.Field("a", fields.Char(fields.WithValidators(validators.MaxLength(-1))))},
			contains: "field_config",
		},
		{
			name:     "nil base",
			opts:     []serializer.Option{serializer.Extends((*serializer.Schema)(nil))},
			contains: "nil_base",
		},
		{
			name:     "nil method",
			opts:     []serializer.Option{serializer.WithMethod("get_a", nil)},
			contains: "nil_method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := serializer.Declare("Broken", tt.opts...)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, serializer.ErrConfiguration))
			assert.Contains(t, err.Error(), tt.contains)

			if tt.hint != "" {
				assert.Contains(t, errors.FlattenHints(err), tt.hint)
			}
		})
	}
}

func TestDeclare_CollectsAllErrors(t *testing.T) {
	_, err := serializer.Declare("Broken",
		serializer.Field("a", nil),
		serializer.Nested("b", nil),
		serializer.Only("c"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil_field")
	assert.Contains(t, err.Error(), "nil_nested_schema")
	assert.Contains(t, err.Error(), "unknown_only_name")
}

func TestDeclare_UnknownMessageKey(t *testing.T) {
	_, err := serializer.Declare("Broken",
		serializer.Field("a", fields.Char(fields.WithMessage("max_value", "too big"))),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, serializer.ErrConfiguration))
	assert.True(t, errors.Is(err, validators.ErrUnknownMessageKey))
}

func TestDeclare_MethodMissing(t *testing.T) {
	_, err := serializer.Declare("Comment",
		serializer.Field("title", fields.Method("")),
		serializer.WithMethod("get_titel", func(any) (any, error) { return nil, nil }),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, serializer.ErrMethodMissing))
	assert.True(t, errors.Is(err, serializer.ErrConfiguration))
	assert.Contains(t, err.Error(), "the method `get_title` is missing")
	assert.Contains(t, errors.FlattenHints(err), "get_titel")
}

func TestDeclare_MethodInherited(t *testing.T) {
	base := serializer.MustDeclare("Base",
		serializer.WithMethod("get_greeting", func(obj any) (any, error) {
			return "hello " + obj.(*User).Name, nil
		}),
	)

	derived, err := serializer.Declare("Greeting",
		serializer.Extends(base),
		serializer.Field("greeting", fields.Method("")),
	)
	require.NoError(t, err)

	fn, ok := derived.Method("get_greeting")
	require.True(t, ok)

	v, err := fn(&User{Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "hello Ada", v)
}

func TestMustDeclare_Panics(t *testing.T) {
	assert.Panics(t, func() {
		serializer.MustDeclare("Broken", serializer.Field("a", nil))
	})
}

func TestSchema_String(t *testing.T) {
	assert.Equal(t, "Schema(Address: street, city)", addressSchema.String())
}
