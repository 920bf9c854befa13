package serializer

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"schema-serializer/internal/match"
	"schema-serializer/resolve"
	"schema-serializer/validators"
)

// Record is the typed object restored from valid input. Attributes keep
// schema order. Nested members hold *Record or []*Record.
type Record struct {
	schema string
	values *orderedmap.OrderedMap[string, any]
}

func newRecord(schema string) *Record {
	return &Record{schema: schema, values: orderedmap.New[string, any]()}
}

func (r *Record) set(name string, v any) {
	r.values.Set(name, v)
}

// Schema returns the name of the schema that restored the record.
func (r *Record) Schema() string { return r.schema }

// Get returns an attribute. It implements primitive.Getter, so records can
// be serialized again.
func (r *Record) Get(name string) (any, bool) {
	return r.values.Get(name)
}

// Value returns an attribute or nil.
func (r *Record) Value(name string) any {
	v, _ := r.values.Get(name)
	return v
}

// Len returns the number of attributes.
func (r *Record) Len() int { return r.values.Len() }

// Names returns the attribute names in schema order.
func (r *Record) Names() []string {
	names := make([]string, 0, r.values.Len())
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// ToMap returns the attributes as plain maps, nested records included.
func (r *Record) ToMap() map[string]any {
	out := make(map[string]any, r.values.Len())
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = plain(pair.Value)
	}

	return out
}

func plain(v any) any {
	switch v := v.(type) {
	case *Record:
		if v == nil {
			return nil
		}

		return v.ToMap()
	case []*Record:
		out := make([]any, len(v))
		for i, r := range v {
			out[i] = plain(r)
		}

		return out
	default:
		return v
	}
}

// Decode copies the record into out, a pointer to a struct or map. Struct
// fields match attributes by serializer tag, then by normalised name.
func (r *Record) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    resolve.TagName,
		Result:     out,
		DecodeHook: enumerantHook,
		MatchName: func(key, field string) bool {
			return strings.EqualFold(key, field) || match.NormalizeIdent(key) == match.NormalizeIdent(field)
		},
	})
	if err != nil {
		return errors.Wrap(err, "decode record")
	}

	if err := dec.Decode(r.ToMap()); err != nil {
		return errors.Wrapf(err, "decode %s record", r.schema)
	}

	return nil
}

var enumerantType = reflect.TypeOf(validators.Enumerant{})

// enumerantHook decodes an enum member into its value unless the target
// wants the member itself.
func enumerantHook(from, to reflect.Type, data any) (any, error) {
	if from != enumerantType || to == enumerantType {
		return data, nil
	}

	e, _ := data.(validators.Enumerant)
	if to.Kind() == reflect.String {
		if _, ok := e.Value.(string); !ok {
			return e.Name, nil
		}
	}

	return e.Value, nil
}

// MarshalJSON encodes the record as an object in schema order.
func (r *Record) MarshalJSON() ([]byte, error) {
	return r.values.MarshalJSON()
}

func (r *Record) String() string {
	parts := make([]string, 0, r.values.Len())
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		parts = append(parts, fmt.Sprintf("%s=%v", pair.Key, pair.Value))
	}

	return r.schema + "(" + strings.Join(parts, ", ") + ")"
}
