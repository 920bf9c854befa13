package mapping

import (
	"github.com/cockroachdb/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"

	"schema-serializer/internal/logging"
	"schema-serializer/serializer"
)

// Schemas is the set of schemas built from one file, in file order.
type Schemas struct {
	schemas *orderedmap.OrderedMap[string, *serializer.Schema]
}

// Get returns the schema named name.
func (s *Schemas) Get(name string) (*serializer.Schema, bool) {
	return s.schemas.Get(name)
}

// Names returns the schema names in file order.
func (s *Schemas) Names() []string {
	names := make([]string, 0, s.schemas.Len())
	for pair := s.schemas.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// Len returns the number of schemas.
func (s *Schemas) Len() int {
	return s.schemas.Len()
}

// Build validates sf and declares its schemas in dependency order. extra
// options are applied to every schema, e.g. serializer.WithObserver.
func Build(sf *SchemaFile, reg *Registry, extra ...serializer.Option) (*Schemas, error) {
	diags := Validate(sf, reg)
	for _, w := range diags.Warnings {
		logging.L().Warn("schema file", zap.Stringer("diagnostic", w))
	}

	if err := diags.Error(); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "invalid schema file"), serializer.ErrConfiguration)
	}

	order, err := sf.BuildOrder()
	if err != nil {
		return nil, errors.Mark(err, serializer.ErrConfiguration)
	}

	built := make(map[string]*serializer.Schema, len(order))

	for _, i := range order {
		def := &sf.Schemas[i]

		s, err := buildSchema(def, built, reg, extra)
		if err != nil {
			return nil, errors.Wrapf(err, "schema %q", def.Name)
		}

		built[def.Name] = s
	}

	out := &Schemas{schemas: orderedmap.New[string, *serializer.Schema]()}
	for _, name := range sf.Names() {
		out.schemas.Set(name, built[name])
	}

	logging.L().Debug("schema file built", zap.Int("schemas", out.Len()))

	return out, nil
}

// BuildFile loads, validates and builds a schema file.
func BuildFile(path string, reg *Registry, extra ...serializer.Option) (*Schemas, error) {
	sf, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return Build(sf, reg, extra...)
}

func buildSchema(
	def *SchemaDef,
	built map[string]*serializer.Schema,
	reg *Registry,
	extra []serializer.Option,
) (*serializer.Schema, error) {
	opts := make([]serializer.Option, 0, len(def.Fields)+len(def.Extends)+len(extra)+2)

	for _, base := range def.Extends {
		opts = append(opts, serializer.Extends(built[base]))
	}

	for i := range def.Fields {
		f := &def.Fields[i]

		if f.IsNested() {
			opts = append(opts, serializer.Nested(f.Name, built[f.Schema], bindOptions(f)...))
			continue
		}

		field, err := reg.BuildField(f)
		if err != nil {
			return nil, err
		}

		opts = append(opts, serializer.Field(f.Name, field))
	}

	if len(def.Only) > 0 {
		opts = append(opts, serializer.Only(def.Only...))
	}

	if len(def.Exclude) > 0 {
		opts = append(opts, serializer.Exclude(def.Exclude...))
	}

	opts = append(opts, extra...)

	return serializer.Declare(def.Name, opts...)
}

func bindOptions(f *FieldDef) []serializer.BindOption {
	var opts []serializer.BindOption

	if f.Source != "" {
		opts = append(opts, serializer.Source(f.Source))
	}

	if f.Many {
		opts = append(opts, serializer.Many())
	}

	if f.AllowBlankSource {
		opts = append(opts, serializer.AllowBlankSource())
	}

	return opts
}
