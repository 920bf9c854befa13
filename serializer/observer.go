package serializer

import (
	"time"
)

// Observer is told about finished operations on instances of a schema.
type Observer interface {
	// ObserveSerialize is called once per Data computation.
	ObserveSerialize(schema string, elapsed time.Duration, err error)
	// ObserveValidate is called once per Errors computation with the number
	// of failures found.
	ObserveValidate(schema string, elapsed time.Duration, failures int)
}

func (s *Schema) observeSerialize(start time.Time, err error) {
	elapsed := time.Since(start)
	for _, o := range s.observers {
		o.ObserveSerialize(s.name, elapsed, err)
	}
}

func (s *Schema) observeValidate(start time.Time, failures int) {
	elapsed := time.Since(start)
	for _, o := range s.observers {
		o.ObserveValidate(s.name, elapsed, failures)
	}
}
