package serializer_test

import (
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-serializer/resolve"
	"schema-serializer/serializer"
)

func invalidUserReport(t *testing.T) *serializer.Report {
	t.Helper()

	in, err := userSchema.BindData(map[string]any{
		"age":     "ten",
		"address": map[string]any{"city": "Oslo"},
	})
	require.NoError(t, err)

	return in.Errors()
}

func TestReport_Structure(t *testing.T) {
	report := invalidUserReport(t)

	assert.False(t, report.IsEmpty())
	assert.Equal(t, 3, report.Len())
	assert.Equal(t, []string{"name", "age", "address"}, report.Names())
	assert.Equal(t, 3, report.Count())
	assert.Nil(t, report.Nested("name"))
	assert.Nil(t, report.Failures("address"))

	flat := report.Flatten()
	assert.Len(t, flat, 3)
	assert.Equal(t, "RequiredValidator", flat["address.street"][0].TypeName)
	assert.Equal(t, "IntegerValidator", flat["age"][0].TypeName)
}

func TestReport_Err(t *testing.T) {
	report := invalidUserReport(t)

	err := report.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, serializer.ErrInvalid))
	assert.Equal(t,
		"name: Value is required.; age: Ensure the value ten is of type integer.; address.street: Value is required.",
		err.Error())
	assert.Equal(t, err.Error(), report.String())

	var empty *serializer.Report
	assert.NoError(t, empty.Err())
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "no errors", empty.String())
}

func TestReport_JSON(t *testing.T) {
	raw, err := json.Marshal(invalidUserReport(t))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": [{"type_name": "RequiredValidator", "type_label": "required", "message": "Value is required."}],
		"age": [{"type_name": "IntegerValidator", "type_label": "integer", "message": "Ensure the value ten is of type integer."}],
		"address": {
			"street": [{"type_name": "RequiredValidator", "type_label": "required", "message": "Value is required."}]
		}
	}`, string(raw))
}

func TestReport_Resolve(t *testing.T) {
	report := invalidUserReport(t)

	v, err := resolve.Path(report, "address.street")
	require.NoError(t, err)
	assert.Len(t, v, 1)

	m := report.Map()
	assert.Contains(t, m, "age")
	assert.IsType(t, map[string]any{}, m["address"])
}
