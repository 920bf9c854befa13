package serializer

import (
	"strconv"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"

	"schema-serializer/fields"
	"schema-serializer/internal/logging"
	"schema-serializer/primitive"
	"schema-serializer/resolve"
	"schema-serializer/validators"
)

// Instance is a schema bound to a source object or to input data. Results
// are computed once and cached.
type Instance struct {
	schema *Schema
	opts   bindOptions

	obj      any
	hasObj   bool
	input    any
	hasInput bool

	dataOnce sync.Once
	data     any
	dataErr  error

	errOnce sync.Once
	report  *Report

	objOnce sync.Once
	record  any
	objErr  error
}

// Bind binds a source object for serialization. Under Many the object must
// be a sequence or nil.
func (s *Schema) Bind(obj any, opts ...BindOption) (*Instance, error) {
	o := newBindOptions(opts)

	if o.source != "" && primitive.Indirect(obj) != nil {
		v, err := resolve.Path(obj, o.source)
		if err != nil {
			return nil, errors.Wrapf(err, "bind %s", s.name)
		}

		obj = v
	}

	if o.many && !primitive.IsEmpty(obj) && !primitive.IsSequence(obj) {
		return nil, usageError("bind %s: many requires a sequence, got %T", s.name, obj)
	}

	return &Instance{schema: s, opts: o, obj: obj, hasObj: true}, nil
}

// BindData binds raw input for validation and restoring. Single input must
// be a mapping; under Many a sequence of mappings. Nil means no input.
func (s *Schema) BindData(input any, opts ...BindOption) (*Instance, error) {
	o := newBindOptions(opts)
	kind := primitive.Of(input)

	switch {
	case kind == primitive.KindNil:
	case o.many && kind != primitive.KindSequence:
		return nil, usageError("bind %s: many requires a sequence, got %T", s.name, input)
	case !o.many && kind != primitive.KindMapping:
		return nil, usageError("bind %s: input must be a mapping, got %T", s.name, input)
	}

	return &Instance{schema: s, opts: o, input: input, hasInput: kind != primitive.KindNil}, nil
}

// Schema returns the bound schema.
func (in *Instance) Schema() *Schema { return in.schema }

// Many reports whether the instance handles a sequence.
func (in *Instance) Many() bool { return in.opts.many }

// Data returns the native form of the bound object: an ordered map, or []any
// under Many.
func (in *Instance) Data() (any, error) {
	in.dataOnce.Do(func() {
		if !in.hasObj {
			in.dataErr = ErrNotBound
			return
		}

		start := time.Now()
		in.data, in.dataErr = in.schema.native(in.obj, in.opts)
		in.schema.observeSerialize(start, in.dataErr)
	})

	return in.data, in.dataErr
}

// Errors validates the bound input. The report is empty when it is valid.
func (in *Instance) Errors() *Report {
	in.errOnce.Do(func() {
		start := time.Now()
		in.report = in.schema.validate(in.input, in.opts.many)

		n := in.report.Count()
		logging.L().Debug("validation finished",
			zap.String("schema", in.schema.name), zap.Int("failures", n))
		in.schema.observeValidate(start, n)
	})

	return in.report
}

// IsValid reports whether the bound input has no failures.
func (in *Instance) IsValid() bool {
	return in.Errors().IsEmpty()
}

// Object restores a record from valid input. Use Objects under Many.
func (in *Instance) Object() (*Record, error) {
	if in.opts.many {
		return nil, usageError("%s: instance is bound with many, use Objects", in.schema.name)
	}

	v, err := in.restored()
	if err != nil {
		return nil, err
	}

	return v.(*Record), nil
}

// Objects restores one record per input element. A single instance yields a
// one element slice.
func (in *Instance) Objects() ([]*Record, error) {
	v, err := in.restored()
	if err != nil {
		return nil, err
	}

	if rec, ok := v.(*Record); ok {
		return []*Record{rec}, nil
	}

	return v.([]*Record), nil
}

func (in *Instance) restored() (any, error) {
	in.objOnce.Do(func() {
		if !in.hasInput {
			in.objErr = ErrNoInput
			return
		}

		if !in.IsValid() {
			in.objErr = errors.WithSecondaryError(ErrInvalid, in.Errors().Err())
			return
		}

		if in.opts.many {
			in.record, in.objErr = in.schema.restoreMany(in.input)
		} else {
			in.record, in.objErr = in.schema.restore(in.input)
		}

		if in.objErr != nil {
			logging.L().Error("restore failed", zap.String("schema", in.schema.name), zap.Error(in.objErr))
		}
	})

	return in.record, in.objErr
}

func (s *Schema) native(obj any, opts bindOptions) (any, error) {
	if !opts.many {
		return s.nativeOne(obj, opts.allowBlankSource)
	}

	if primitive.IsEmpty(obj) {
		return []any{}, nil
	}

	if !primitive.IsSequence(obj) {
		return nil, usageError("%s: many requires a sequence, got %T", s.name, obj)
	}

	items := primitive.Elements(obj)
	out := make([]any, 0, len(items))

	for i, item := range items {
		v, err := s.nativeOne(item, opts.allowBlankSource)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}

		out = append(out, v)
	}

	return out, nil
}

func (s *Schema) nativeOne(obj any, allowBlank bool) (*orderedmap.OrderedMap[string, any], error) {
	out := orderedmap.New[string, any]()
	ctx := fields.Context{Parent: s, AllowBlankSource: allowBlank}

	for _, m := range s.members {
		var (
			v   any
			err error
		)

		switch m := m.(type) {
		case leafMember:
			v, err = m.field.ExtractNative(obj, m.name, ctx)
		case nestedMember:
			v, err = m.native(obj)
		}

		if err != nil {
			return nil, errors.Wrapf(err, "%s.%s", s.name, m.memberName())
		}

		out.Set(m.memberName(), v)
	}

	return out, nil
}

func (m nestedMember) native(obj any) (any, error) {
	var sub any

	if primitive.Indirect(obj) != nil {
		v, err := resolve.Path(obj, m.path())
		if err != nil {
			if !m.opts.allowBlankSource || !errors.Is(err, resolve.ErrAttribute) {
				return nil, err
			}
		}

		sub = v
	}

	if primitive.IsEmpty(sub) {
		if m.opts.many {
			return []any{}, nil
		}

		return nil, nil
	}

	return m.schema.native(sub, m.opts)
}

var dictCheck = validators.Dict()

func (s *Schema) validate(input any, many bool) *Report {
	if !many {
		return s.validateOne(input)
	}

	report := newReport()

	for i, item := range primitive.Elements(input) {
		sub, bad := s.validateMapping(item)
		if bad != nil {
			report.setFailures(strconv.Itoa(i), []validators.Failure{*bad})
			continue
		}

		report.setNested(strconv.Itoa(i), sub)
	}

	return report
}

// validateMapping validates data unless it is present and not a mapping.
func (s *Schema) validateMapping(data any) (*Report, *validators.Failure) {
	if f := dictCheck.Validate(data); f != nil {
		return nil, f
	}

	return s.validateOne(data), nil
}

func (s *Schema) validateOne(data any) *Report {
	report := newReport()

	for _, m := range s.members {
		raw, _ := resolve.Key(data, m.memberName())

		switch m := m.(type) {
		case leafMember:
			if m.field.ReadOnly() {
				continue
			}

			report.setFailures(m.name, m.field.Validate(raw))
		case nestedMember:
			if !m.opts.many {
				sub, bad := m.schema.validateMapping(raw)
				if bad != nil {
					report.setFailures(m.name, []validators.Failure{*bad})
					continue
				}

				report.setNested(m.name, sub)

				continue
			}

			if primitive.IsEmpty(raw) {
				continue
			}

			items := raw
			if !primitive.IsSequence(raw) {
				items = []any{raw}
			}

			report.setNested(m.name, m.schema.validate(items, true))
		}
	}

	return report
}

func (s *Schema) restoreMany(input any) ([]*Record, error) {
	items := primitive.Elements(input)
	out := make([]*Record, 0, len(items))

	for i, item := range items {
		rec, err := s.restore(item)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}

		out = append(out, rec)
	}

	return out, nil
}

func (s *Schema) restore(data any) (*Record, error) {
	rec := newRecord(s.name)

	for _, m := range s.members {
		raw, _ := resolve.Key(data, m.memberName())

		switch m := m.(type) {
		case leafMember:
			if m.field.ReadOnly() {
				continue
			}

			v, err := m.field.FromNative(raw)
			if err != nil {
				return nil, errors.Wrapf(err, "%s.%s", s.name, m.name)
			}

			rec.set(m.name, v)
		case nestedMember:
			var (
				v   any
				err error
			)

			switch {
			case !m.opts.many:
				v, err = m.schema.restore(raw)
			case primitive.IsEmpty(raw):
				v = []*Record{}
			case primitive.IsSequence(raw):
				v, err = m.schema.restoreMany(raw)
			default:
				v, err = m.schema.restoreMany([]any{raw})
			}

			if err != nil {
				return nil, errors.Wrapf(err, "%s.%s", s.name, m.name)
			}

			rec.set(m.name, v)
		}
	}

	return rec, nil
}
