package fields_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"schema-serializer/fields"
	"schema-serializer/resolve"
	"schema-serializer/validators"
)

type version struct {
	Name string
}

type comment struct {
	Author  string
	Version *version
	Tags    []string
}

func (c comment) Upper() string { return "UP:" + c.Author }

func TestExtractNative(t *testing.T) {
	c := &comment{Author: "ann", Version: &version{Name: "v1"}, Tags: []string{"a", "b"}}

	v, err := fields.Char().ExtractNative(c, "author", fields.Context{})
	require.NoError(t, err)
	assert.Equal(t, "ann", v)

	v, err = fields.Char(fields.WithSource("version.name")).ExtractNative(c, "version_name", fields.Context{})
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	v, err = fields.Raw().ExtractNative(c, "tags", fields.Context{})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, v)

	v, err = fields.Char().ExtractNative(c, "upper", fields.Context{})
	require.NoError(t, err)
	assert.Equal(t, "UP:ann", v)
}

func TestExtractNativeNilSource(t *testing.T) {
	var c *comment

	v, err := fields.Char().ExtractNative(nil, "author", fields.Context{})
	require.NoError(t, err)
	assert.Equal(t, "", v)

	v, err = fields.Char(fields.WithEmpty(nil)).ExtractNative(c, "author", fields.Context{})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestExtractNativeMissing(t *testing.T) {
	c := comment{}

	_, err := fields.Char().ExtractNative(c, "missing", fields.Context{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, resolve.ErrAttribute))

	v, err := fields.Char().ExtractNative(c, "missing", fields.Context{AllowBlankSource: true})
	require.NoError(t, err)
	assert.Nil(t, v)

	// missing mapping keys are never errors
	v, err = fields.Char().ExtractNative(map[string]any{}, "missing", fields.Context{})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestNativeValue(t *testing.T) {
	name := "x"

	om := orderedmap.New[string, any]()
	om.Set("z", func() int { return 1 })
	om.Set("a", []byte("b"))

	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"pointer", &name, "x"},
		{"callable", func() (string, error) { return "called", nil }, "called"},
		{"bytes", []byte("raw"), "raw"},
		{"nested sequence", [][]int{{1}, {2, 3}}, []any{[]any{1}, []any{2, 3}}},
		{"map", map[string]any{"k": []string{"v"}}, map[string]any{"k": []any{"v"}}},
		{"int keys", map[int]string{1: "one"}, map[string]any{"1": "one"}},
		{"leaf", 3.5, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fields.NativeValue(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := fields.NativeValue(om)
	require.NoError(t, err)

	out, ok := got.(*orderedmap.OrderedMap[string, any])
	require.True(t, ok)
	assert.Equal(t, "z", out.Oldest().Key)
	assert.Equal(t, 1, out.Oldest().Value)
	assert.Equal(t, "b", out.Newest().Value)

	boom := errors.New("boom")
	_, err = fields.NativeValue([]any{func() (int, error) { return 0, boom }})
	require.ErrorIs(t, err, boom)
}

func TestDefaultValidatorsPrepended(t *testing.T) {
	f := fields.Integer(fields.WithValidators(validators.Required(), validators.MaxValue(10)))
	require.NoError(t, f.Err())

	names := make([]string, 0, 3)
	for _, v := range f.Validators() {
		names = append(names, v.TypeName())
	}

	assert.Equal(t, []string{"IntegerValidator", "RequiredValidator", "MaxValueValidator"}, names)
	require.Len(t, f.DefaultValidators(), 1)

	// the default list is not shared between fields
	g := fields.Integer()
	assert.Len(t, g.Validators(), 1)

	failures := f.Validate("abc")
	require.Len(t, failures, 2)
	assert.Equal(t, "IntegerValidator", failures[0].TypeName)
	assert.Equal(t, "MaxValueValidator", failures[1].TypeName)

	failures = f.Validate(nil)
	require.Len(t, failures, 1)
	assert.Equal(t, "RequiredValidator", failures[0].TypeName)
}

func TestMessageOverrides(t *testing.T) {
	f := fields.Integer(
		fields.WithValidators(validators.Required(), validators.MaxValue(10)),
		fields.WithMessages(map[string]string{
			"required":  "Age please.",
			"max_value": "At most {max_value}, got {value}.",
		}),
		fields.WithMessage("invalid", "Bad age."),
	)
	require.NoError(t, f.Err())

	failures := f.Validate(nil)
	require.Len(t, failures, 1)
	assert.Equal(t, "Age please.", failures[0].Message)
	assert.Equal(t, "RequiredValidator", failures[0].TypeName)

	failures = f.Validate(12)
	require.Len(t, failures, 1)
	assert.Equal(t, "At most 10, got 12.", failures[0].Message)

	failures = f.Validate("x")
	require.Len(t, failures, 2)
	assert.Equal(t, "Bad age.", failures[0].Message)

	assert.Equal(t, "Bad age.", f.ErrorMessages()["invalid"])
}

func TestUnknownMessageKey(t *testing.T) {
	f := fields.Char(fields.WithMessage("max_length", "too long"))

	err := f.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, validators.ErrUnknownMessageKey))

	ok := fields.Char(fields.WithValidators(validators.MaxLength(2)), fields.WithMessage("max_length", "too long"))
	require.NoError(t, ok.Err())
	assert.Equal(t, "too long", ok.Validate("abc")[0].Message)
}

func TestValidatorConfigErrorsSurface(t *testing.T) {
	f := fields.Char(fields.WithValidators(validators.MaxValue("x")))
	require.Error(t, f.Err())

	g := fields.Char(fields.WithValidators(nil))
	require.Error(t, g.Err())
	assert.Empty(t, g.Validators())
}

func TestMetadataAccessors(t *testing.T) {
	f := fields.Char(
		fields.WithSource("a.b"),
		fields.WithLabel("Name"),
		fields.WithHelpText("The name."),
		fields.WithTypeName("NameField"),
		fields.WithTypeLabel("name"),
	)

	assert.Equal(t, "a.b", f.Source())
	assert.Equal(t, "Name", f.Label())
	assert.Equal(t, "The name.", f.HelpText())
	assert.Equal(t, "NameField", f.TypeName())
	assert.Equal(t, "name", f.TypeLabel())
	assert.Equal(t, "", f.Empty())
	assert.False(t, f.ReadOnly())
}
