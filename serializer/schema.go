package serializer

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"

	"schema-serializer/fields"
	"schema-serializer/internal/diagnostic"
	"schema-serializer/internal/logging"
	"schema-serializer/internal/match"
	"schema-serializer/validators"
)

// Schema is an immutable ordered set of members.
type Schema struct {
	name string
	// all holds the merged members before Only and Exclude; derived schemas
	// inherit from it.
	all       []member
	members   []member
	index     map[string]member
	methods   map[string]fields.MethodFunc
	observers []Observer
}

// Declare builds a schema. Every configuration problem is reported in one
// error marked with ErrConfiguration.
func Declare(name string, opts ...Option) (*Schema, error) {
	d := &declaration{name: name, methods: map[string]fields.MethodFunc{}}
	for _, opt := range opts {
		opt(d)
	}

	s, diags := d.build()
	for _, w := range diags.Warnings {
		logging.L().Warn("schema declaration", zap.String("schema", name), zap.Stringer("diagnostic", w))
	}

	if err := diags.Error(); err != nil {
		err = errors.Mark(err, ErrConfiguration)

		codes := lo.Map(diags.Errors, func(e diagnostic.Diagnostic, _ int) string { return e.Code })
		if lo.Contains(codes, codeMethodMissing) {
			err = errors.Mark(err, ErrMethodMissing)
		}

		if lo.Contains(codes, codeUnknownMessage) {
			err = errors.Mark(err, validators.ErrUnknownMessageKey)
		}

		return nil, errors.Wrapf(err, "declare schema %q", name)
	}

	logging.L().Debug("schema declared", zap.String("schema", name), zap.Int("fields", len(s.members)))

	return s, nil
}

// MustDeclare is like Declare but panics on error.
func MustDeclare(name string, opts ...Option) *Schema {
	s, err := Declare(name, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

const (
	codeEmptyName      = "empty_name"
	codeNilBase        = "nil_base"
	codeDuplicate      = "duplicate_member"
	codeNilField       = "nil_field"
	codeFieldConfig    = "field_config"
	codeUnknownMessage = "unknown_message_key"
	codeNilNested      = "nil_nested_schema"
	codeNilMethod      = "nil_method"
	codeMethodMissing  = "method_missing"
	codeUnknownOnly    = "unknown_only_name"
	codeUnknownExclude = "unknown_exclude_name"
)

func (d *declaration) build() (*Schema, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	if strings.TrimSpace(d.name) == "" {
		diags.AddError(codeEmptyName, "schema name is empty", "", "")
	}

	s := &Schema{
		name:      d.name,
		methods:   map[string]fields.MethodFunc{},
		observers: d.observers,
	}

	merged := orderedmap.New[string, member]()

	for i, base := range d.bases {
		if base == nil {
			diags.AddError(codeNilBase, fmt.Sprintf("base schema #%d is nil", i), d.name, "")
			continue
		}

		for _, m := range base.all {
			merged.Set(m.memberName(), m)
		}

		maps.Copy(s.methods, base.methods)
	}

	for _, name := range slices.Sorted(maps.Keys(d.methods)) {
		if d.methods[name] == nil {
			diags.AddError(codeNilMethod, fmt.Sprintf("method %q is nil", name), d.name, "")
			continue
		}

		s.methods[name] = d.methods[name]
	}

	seen := map[string]struct{}{}

	for _, m := range d.members {
		name := m.memberName()
		if name == "" {
			diags.AddError(codeEmptyName, "member name is empty", d.name, "")
			continue
		}

		if _, dup := seen[name]; dup {
			diags.AddError(codeDuplicate, fmt.Sprintf("member %q is declared more than once", name), d.name, name)
			continue
		}

		seen[name] = struct{}{}

		if d.checkMember(m, &diags) {
			merged.Set(name, m)
		}
	}

	for pair := merged.Oldest(); pair != nil; pair = pair.Next() {
		s.all = append(s.all, pair.Value)
	}

	s.members = d.narrow(merged, &diags)
	s.index = lo.KeyBy(s.members, member.memberName)

	d.checkMethods(s, &diags)

	return s, diags
}

// checkMember reports whether m can be used.
func (d *declaration) checkMember(m member, diags *diagnostic.Diagnostics) bool {
	switch m := m.(type) {
	case leafMember:
		if m.field == nil {
			diags.AddError(codeNilField, "field is nil", d.name, m.name)
			return false
		}

		if err := m.field.Err(); err != nil {
			code := codeFieldConfig
			if errors.Is(err, validators.ErrUnknownMessageKey) {
				code = codeUnknownMessage
			}

			diags.AddError(code, err.Error(), d.name, m.name)

			return false
		}
	case nestedMember:
		if m.schema == nil {
			diags.AddError(codeNilNested, "nested schema is nil", d.name, m.name)
			return false
		}
	}

	return true
}

// narrow applies Only and Exclude to the merged members.
func (d *declaration) narrow(merged *orderedmap.OrderedMap[string, member], diags *diagnostic.Diagnostics) []member {
	names := make([]string, 0, merged.Len())
	for pair := merged.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	for _, n := range d.exclude {
		if _, ok := merged.Get(n); !ok {
			diags.AddWarning(codeUnknownExclude, fmt.Sprintf("excluded name %q is not a member", n), d.name, n)
		}
	}

	order := names
	if len(d.only) > 0 {
		order = nil

		for _, n := range lo.Uniq(d.only) {
			if _, ok := merged.Get(n); !ok {
				diags.AddError(codeUnknownOnly, fmt.Sprintf("allowed name %q is not a member", n), d.name, n,
					match.Suggest(n, names, 1)...)

				continue
			}

			order = append(order, n)
		}
	}

	order = lo.Without(order, d.exclude...)

	return lo.Map(order, func(n string, _ int) member {
		m, _ := merged.Get(n)
		return m
	})
}

// checkMethods requires a registered method for every method field.
func (d *declaration) checkMethods(s *Schema, diags *diagnostic.Diagnostics) {
	known := slices.Sorted(maps.Keys(s.methods))

	for _, m := range s.members {
		leaf, ok := m.(leafMember)
		if !ok {
			continue
		}

		mf, ok := leaf.field.(*fields.MethodField)
		if !ok {
			continue
		}

		method := mf.MethodName(leaf.name)
		if _, ok := s.methods[method]; ok {
			continue
		}

		missing := &MethodMissingError{Method: method, Schema: d.name}
		diags.AddError(codeMethodMissing, missing.Error(), d.name, leaf.name, match.Suggest(method, known, 1)...)
	}
}

// Name returns the declared name.
func (s *Schema) Name() string { return s.name }

// Method returns a registered method, including inherited ones.
func (s *Schema) Method(name string) (fields.MethodFunc, bool) {
	fn, ok := s.methods[name]
	return fn, ok
}

// Names returns the member names in output order.
func (s *Schema) Names() []string {
	return lo.Map(s.members, func(m member, _ int) string { return m.memberName() })
}

// Field returns the leaf field declared as name.
func (s *Schema) Field(name string) (fields.Field, bool) {
	leaf, ok := s.index[name].(leafMember)
	if !ok {
		return nil, false
	}

	return leaf.field, true
}

// Nested returns the schema of the nested member declared as name.
func (s *Schema) Nested(name string) (*Schema, bool) {
	nested, ok := s.index[name].(nestedMember)
	if !ok {
		return nil, false
	}

	return nested.schema, true
}

func (s *Schema) String() string {
	return fmt.Sprintf("Schema(%s: %s)", s.name, strings.Join(s.Names(), ", "))
}
