package serializer_test

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"schema-serializer/fields"
	"schema-serializer/serializer"
	"schema-serializer/validators"
)

type Address struct {
	Street string
	City   string `json:"city"`
}

type User struct {
	ID        uuid.UUID
	Name      string
	Age       int
	Birthday  time.Time `serializer:"dob"`
	CreatedAt time.Time
	Address   *Address
	Previous  []Address
}

var (
	userID = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	addressSchema = serializer.MustDeclare("Address",
		serializer.Field("street", fields.Char(fields.WithValidators(validators.Required()))),
		serializer.Field("city", fields.Char(fields.WithValidators(validators.Required()))),
	)

	userSchema = serializer.MustDeclare("User",
		serializer.Field("id", fields.UUID()),
		serializer.Field("name", fields.Char(fields.WithValidators(validators.Required(), validators.MaxLength(20)))),
		serializer.Field("age", fields.Integer()),
		serializer.Field("dob", fields.Date()),
		serializer.Field("created_at", fields.DateTime()),
		serializer.Nested("address", addressSchema),
	)
)

func newUser() *User {
	return &User{
		ID:        userID,
		Name:      "Ada",
		Age:       36,
		Birthday:  time.Date(1985, 10, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(1985, 10, 10, 10, 30, 0, 0, time.UTC),
		Address:   &Address{Street: "1 Main St", City: "London"},
		Previous: []Address{
			{Street: "2 Side St", City: "Paris"},
			{Street: "3 Back St", City: "Rome"},
		},
	}
}

type countingObserver struct {
	mu         sync.Mutex
	serialized int
	validated  int
	failures   int
	lastErr    error
}

func (o *countingObserver) ObserveSerialize(_ string, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.serialized++
	o.lastErr = err
}

func (o *countingObserver) ObserveValidate(_ string, _ time.Duration, failures int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.validated++
	o.failures += failures
}
