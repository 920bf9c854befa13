package validators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-serializer/validators"
)

func TestMessageOverride(t *testing.T) {
	v := validators.MaxValue(5, validators.WithMessage(validators.KeyInvalid, "Too big: {value} >= {max_value}"))
	require.NoError(t, v.ConfigErr())

	f := v.Validate(7)
	require.NotNil(t, f)
	assert.Equal(t, "Too big: 7 >= 5", f.Message)

	tmpl, ok := v.Message(validators.KeyInvalid)
	assert.True(t, ok)
	assert.Equal(t, "Too big: {value} >= {max_value}", tmpl)
}

func TestUnknownMessageKey(t *testing.T) {
	v := validators.Required(validators.WithMessages(map[string]string{"bogus": "x", "invalid": "Needed."}))

	err := v.ConfigErr()
	require.Error(t, err)
	assert.True(t, errors.Is(err, validators.ErrUnknownMessageKey))
	assert.Contains(t, err.Error(), `"bogus"`)

	// known keys are still applied
	assert.Equal(t, "Needed.", v.Validate(nil).Message)
}

func TestTypeOverrides(t *testing.T) {
	v := validators.Integer(validators.WithTypeName("AgeValidator"), validators.WithTypeLabel("age"))

	f := v.Validate("x")
	require.NotNil(t, f)
	assert.Equal(t, "AgeValidator", f.TypeName)
	assert.Equal(t, "age", f.TypeLabel)
}

func TestRender(t *testing.T) {
	assert.Equal(t, "a 1 b {missing}", validators.Render("a {x} b {missing}", validators.Params{"x": 1}))
	assert.Equal(t, "plain", validators.Render("plain", nil))
}

func TestRerender(t *testing.T) {
	f := validators.MinLength(3).Validate("ab")
	require.NotNil(t, f)

	g := f.Rerender("need {min_length}, got {length}")
	assert.Equal(t, "need 3, got 2", g.Message)
	assert.Equal(t, f.TypeName, g.TypeName)
	assert.Equal(t, 3, g.Params()["min_length"])
	assert.Equal(t, "MinLengthValidator: need 3, got 2", g.String())
}

func TestRun(t *testing.T) {
	failures := validators.Run("abcdef", validators.Required(), validators.MaxLength(3), validators.Integer())
	require.Len(t, failures, 2)
	assert.Equal(t, "MaxLengthValidator", failures[0].TypeName)
	assert.Equal(t, "IntegerValidator", failures[1].TypeName)

	assert.Empty(t, validators.Run("12", validators.Required(), validators.Integer()))
}
