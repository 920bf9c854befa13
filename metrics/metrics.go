// Package metrics exports schema activity to Prometheus. A Collector is a
// serializer.Observer:
//
//	m := metrics.NewWithRegistry(reg)
//	s := serializer.MustDeclare("User", ..., serializer.WithObserver(m))
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"schema-serializer/serializer"
)

const namespace = "schema"

// Collector holds the Prometheus metrics of schema instances.
type Collector struct {
	// Serialization metrics
	SerializeTotal    *prometheus.CounterVec
	SerializeDuration *prometheus.HistogramVec

	// Validation metrics
	ValidateTotal      *prometheus.CounterVec
	ValidateDuration   *prometheus.HistogramVec
	ValidationFailures *prometheus.CounterVec
}

var _ serializer.Observer = (*Collector)(nil)

// New creates a collector registered with the default registry.
func New() *Collector {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a collector registered with reg.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		SerializeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "serialize_total",
				Help:      "Total number of serializations by outcome",
			},
			[]string{"schema", "outcome"},
		),
		SerializeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "serialize_duration_seconds",
				Help:      "Serialization duration in seconds",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
			},
			[]string{"schema"},
		),
		ValidateTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validate_total",
				Help:      "Total number of validations by outcome",
			},
			[]string{"schema", "outcome"},
		),
		ValidateDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "validate_duration_seconds",
				Help:      "Validation duration in seconds",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
			},
			[]string{"schema"},
		),
		ValidationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_failures_total",
				Help:      "Total number of validator failures",
			},
			[]string{"schema"},
		),
	}
}

// ObserveSerialize records one serialization.
func (c *Collector) ObserveSerialize(schema string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	c.SerializeTotal.WithLabelValues(schema, outcome).Inc()
	c.SerializeDuration.WithLabelValues(schema).Observe(elapsed.Seconds())
}

// ObserveValidate records one validation.
func (c *Collector) ObserveValidate(schema string, elapsed time.Duration, failures int) {
	outcome := "valid"
	if failures > 0 {
		outcome = "invalid"
	}

	c.ValidateTotal.WithLabelValues(schema, outcome).Inc()
	c.ValidateDuration.WithLabelValues(schema).Observe(elapsed.Seconds())
	c.ValidationFailures.WithLabelValues(schema).Add(float64(failures))
}
