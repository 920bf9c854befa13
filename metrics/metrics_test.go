package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-serializer/fields"
	"schema-serializer/metrics"
	"schema-serializer/serializer"
	"schema-serializer/validators"
)

type point struct {
	X int
	Y int
}

func TestNewWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	require.NotNil(t, m)
	assert.NotNil(t, m.SerializeTotal)
	assert.NotNil(t, m.SerializeDuration)
	assert.NotNil(t, m.ValidateTotal)
	assert.NotNil(t, m.ValidateDuration)
	assert.NotNil(t, m.ValidationFailures)
}

func TestCollector_Observer(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	s := serializer.MustDeclare("Point",
		serializer.Field("x", fields.Integer(fields.WithValidators(validators.Required()))),
		serializer.Field("y", fields.Integer(fields.WithValidators(validators.Required()))),
		serializer.WithObserver(m),
	)

	in, err := s.Bind(point{X: 1, Y: 2})
	require.NoError(t, err)
	_, err = in.Data()
	require.NoError(t, err)

	in, err = s.Bind(map[string]any{"x": 1})
	require.NoError(t, err)
	_, err = in.Data()
	require.NoError(t, err)

	in, err = s.Bind(struct{ X int }{X: 1})
	require.NoError(t, err)
	_, err = in.Data()
	require.Error(t, err)

	in, err = s.BindData(map[string]any{"x": "a"})
	require.NoError(t, err)
	assert.False(t, in.IsValid())

	in, err = s.BindData(map[string]any{"x": 1, "y": 2})
	require.NoError(t, err)
	assert.True(t, in.IsValid())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SerializeTotal.WithLabelValues("Point", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SerializeTotal.WithLabelValues("Point", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidateTotal.WithLabelValues("Point", "valid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidateTotal.WithLabelValues("Point", "invalid")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("Point")))

	assert.Equal(t, 1, testutil.CollectAndCount(m.SerializeDuration))

	expected := `
# HELP schema_validation_failures_total Total number of validator failures
# TYPE schema_validation_failures_total counter
schema_validation_failures_total{schema="Point"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "schema_validation_failures_total"))
}
