package fields

import (
	"encoding"
	"maps"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"schema-serializer/primitive"
	"schema-serializer/resolve"
	"schema-serializer/validators"
)

// ErrConversion is returned by FromNative when input cannot be coerced.
var ErrConversion = errors.New("cannot convert value")

// MethodFunc computes a value from the source object.
type MethodFunc func(obj any) (any, error)

// MethodSet is the owning schema as seen by method fields.
type MethodSet interface {
	Name() string
	Method(name string) (MethodFunc, bool)
}

// Context carries per-call state from the owning schema.
type Context struct {
	Parent           MethodSet
	AllowBlankSource bool
}

// Field is a typed schema leaf.
type Field interface {
	TypeName() string
	TypeLabel() string
	Source() string
	Label() string
	HelpText() string
	Format() string
	Empty() any
	DefaultValidators() []validators.Validator
	Validators() []validators.Validator
	ErrorMessages() map[string]string
	// ReadOnly fields take part in serialization only.
	ReadOnly() bool

	ExtractNative(source any, name string, ctx Context) (any, error)
	ToNative(value any) (any, error)
	FromNative(value any) (any, error)
	Validate(value any) []validators.Failure

	// Err reports construction problems.
	Err() error
}

type converter interface {
	ToNative(value any) (any, error)
	FromNative(value any) (any, error)
}

// Option configures a field at construction.
type Option func(*Base)

// WithSource reads the field from a dotted path instead of its name.
func WithSource(path string) Option {
	return func(b *Base) { b.source = path }
}

// WithLabel sets the human readable label.
func WithLabel(label string) Option {
	return func(b *Base) { b.label = label }
}

// WithHelpText sets the help text.
func WithHelpText(text string) Option {
	return func(b *Base) { b.helpText = text }
}

// WithValidators appends validators after the field's default ones.
func WithValidators(vs ...validators.Validator) Option {
	return func(b *Base) { b.user = append(b.user, vs...) }
}

// WithMessage overrides the failure message for a validator label, or for
// every failing validator without its own override when key is "invalid".
func WithMessage(key, tmpl string) Option {
	return func(b *Base) { b.messages[key] = tmpl }
}

// WithMessages overrides several failure messages.
func WithMessages(messages map[string]string) Option {
	return func(b *Base) { maps.Copy(b.messages, messages) }
}

// WithEmpty sets the value produced when the source object is nil.
func WithEmpty(v any) Option {
	return func(b *Base) { b.empty = v }
}

// WithTypeName replaces the reported type name.
func WithTypeName(name string) Option {
	return func(b *Base) { b.typeName = name }
}

// WithTypeLabel replaces the reported type label.
func WithTypeLabel(label string) Option {
	return func(b *Base) { b.typeLabel = label }
}

// WithFormat sets the time layout of Date and DateTime fields.
func WithFormat(layout string) Option {
	return func(b *Base) { b.format = layout }
}

// WithSchemes sets the URL schemes accepted by URL fields.
func WithSchemes(schemes ...string) Option {
	return func(b *Base) { b.schemes = schemes }
}

// WithBlacklist sets the domains rejected by Email fields.
func WithBlacklist(domains ...string) Option {
	return func(b *Base) { b.blacklist = domains }
}

// Base implements the behaviour shared by every field.
type Base struct {
	typeName  string
	typeLabel string
	source    string
	label     string
	helpText  string
	format    string
	schemes   []string
	blacklist []string
	empty     any
	messages  map[string]string

	defaults []validators.Validator
	user     []validators.Validator
	all      []validators.Validator

	conv converter
	err  error
}

func newBase(typeName, typeLabel string, conv converter, opts []Option) Base {
	b := Base{
		typeName:  typeName,
		typeLabel: typeLabel,
		empty:     "",
		messages:  map[string]string{},
		conv:      conv,
	}

	for _, opt := range opts {
		opt(&b)
	}

	return b
}

// finish installs the default validators and checks the configuration.
func (b *Base) finish(defaults ...validators.Validator) {
	b.defaults = defaults
	b.all = slices.Concat(defaults, b.user)

	allowed := map[string]struct{}{validators.KeyInvalid: {}}

	for _, v := range b.all {
		if v == nil {
			b.err = errors.CombineErrors(b.err, errors.Newf("%s: nil validator", b.typeName))
			continue
		}

		allowed[v.TypeLabel()] = struct{}{}

		if err := v.ConfigErr(); err != nil {
			b.err = errors.CombineErrors(b.err, errors.Wrapf(err, "%s", b.typeName))
		}
	}

	keys := slices.Sorted(maps.Keys(b.messages))
	for _, k := range keys {
		if _, ok := allowed[k]; !ok {
			b.err = errors.CombineErrors(b.err,
				errors.Wrapf(validators.ErrUnknownMessageKey, "%s: %q", b.typeName, k))
		}
	}

	b.all = slices.DeleteFunc(b.all, func(v validators.Validator) bool { return v == nil })
}

func (b *Base) TypeName() string  { return b.typeName }
func (b *Base) TypeLabel() string { return b.typeLabel }
func (b *Base) Source() string    { return b.source }
func (b *Base) Label() string     { return b.label }
func (b *Base) HelpText() string  { return b.helpText }
func (b *Base) Format() string    { return b.format }
func (b *Base) Empty() any        { return b.empty }
func (b *Base) ReadOnly() bool    { return false }
func (b *Base) Err() error        { return b.err }

// DefaultValidators returns the validators every field of this type runs first.
func (b *Base) DefaultValidators() []validators.Validator {
	return slices.Clone(b.defaults)
}

// Validators returns the default validators followed by the user ones.
func (b *Base) Validators() []validators.Validator {
	return slices.Clone(b.all)
}

// ErrorMessages returns the message overrides.
func (b *Base) ErrorMessages() map[string]string {
	return maps.Clone(b.messages)
}

// ExtractNative resolves the field in source and converts it to native form.
func (b *Base) ExtractNative(source any, name string, ctx Context) (any, error) {
	if primitive.Indirect(source) == nil {
		return b.empty, nil
	}

	path := name
	if b.source != "" {
		path = b.source
	}

	value, err := resolve.Path(source, path)
	if err != nil {
		if !ctx.AllowBlankSource || !errors.Is(err, resolve.ErrAttribute) {
			return nil, errors.Wrapf(err, "field %q", name)
		}

		value = nil
	}

	return b.conv.ToNative(value)
}

// ToNative applies the default native conversion, rendering leaves as plain data.
func (b *Base) ToNative(value any) (any, error) {
	return PlainValue(value)
}

// FromNative maps empty input to nil and passes everything else through.
func (b *Base) FromNative(value any) (any, error) {
	if primitive.IsEmpty(value) {
		return nil, nil
	}

	return value, nil
}

// Validate runs every validator and applies message overrides.
func (b *Base) Validate(value any) []validators.Failure {
	failures := validators.Run(value, b.all...)

	for i, f := range failures {
		if tmpl, ok := b.messages[f.TypeLabel]; ok {
			failures[i] = f.Rerender(tmpl)
		} else if tmpl, ok := b.messages[validators.KeyInvalid]; ok {
			failures[i] = f.Rerender(tmpl)
		}
	}

	return failures
}

// NativeValue converts v to plain data: zero-argument functions are called,
// pointers dereferenced, sequences and mappings converted element-wise.
// Byte slices become strings. Other leaves are returned as they are.
func NativeValue(v any) (any, error) {
	return nativeValue(v, false)
}

// PlainValue is NativeValue that also renders leaves an encoder would not
// know. Text marshalers such as decimals and times become strings. Structs
// and getters listing their names become ordered mappings.
func PlainValue(v any) (any, error) {
	return nativeValue(v, true)
}

// keyedGetter is a Getter that can enumerate its keys, such as a restored record.
type keyedGetter interface {
	primitive.Getter
	Names() []string
}

func nativeValue(v any, plain bool) (any, error) {
	if primitive.IsSimpleCallable(v) {
		out, err := primitive.Call(v)
		if err != nil {
			return nil, err
		}

		v = out
	}

	if primitive.Indirect(v) == nil {
		return nil, nil
	}

	if _, ok := v.(primitive.Getter); !ok {
		v = primitive.Indirect(v)
	}

	// fixed-size identifiers such as UUIDs are text, not sequences
	if tm, ok := v.(encoding.TextMarshaler); ok && primitive.Of(v) == primitive.KindSequence {
		text, err := tm.MarshalText()
		if err != nil {
			return nil, err
		}

		return string(text), nil
	}

	switch primitive.Of(v) {
	case primitive.KindNil:
		return nil, nil
	case primitive.KindText:
		if b, ok := v.([]byte); ok {
			return primitive.Text(b), nil
		}

		return v, nil
	case primitive.KindSequence:
		return nativeSequence(v, plain)
	case primitive.KindMapping:
		return nativeMapping(v, plain)
	default:
		if plain {
			return plainLeaf(v)
		}

		return v, nil
	}
}

func plainLeaf(v any) (any, error) {
	if tm, ok := v.(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return nil, err
		}

		return string(text), nil
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Struct {
		return structMapping(rv)
	}

	return v, nil
}

// structMapping keeps exported fields in declaration order, keyed like the resolver does.
func structMapping(rv reflect.Value) (any, error) {
	out := orderedmap.New[string, any]()
	t := rv.Type()

	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		key := structKey(sf)
		if key == "-" {
			continue
		}

		item, err := nativeValue(rv.Field(i).Interface(), true)
		if err != nil {
			return nil, errors.Wrapf(err, "[%s]", key)
		}

		out.Set(key, item)
	}

	return out, nil
}

func structKey(sf reflect.StructField) string {
	for _, tag := range []string{resolve.TagName, "json"} {
		if name, _, _ := strings.Cut(sf.Tag.Get(tag), ","); name != "" {
			return name
		}
	}

	return sf.Name
}

func nativeSequence(v any, plain bool) (any, error) {
	rv := reflect.ValueOf(v)
	out := make([]any, 0, rv.Len())

	for i := range rv.Len() {
		item, err := nativeValue(rv.Index(i).Interface(), plain)
		if err != nil {
			return nil, errors.Wrapf(err, "[%d]", i)
		}

		out = append(out, item)
	}

	return out, nil
}

func nativeMapping(v any, plain bool) (any, error) {
	if om, ok := v.(*orderedmap.OrderedMap[string, any]); ok {
		out := orderedmap.New[string, any]()

		for pair := om.Oldest(); pair != nil; pair = pair.Next() {
			item, err := nativeValue(pair.Value, plain)
			if err != nil {
				return nil, errors.Wrapf(err, "[%s]", pair.Key)
			}

			out.Set(pair.Key, item)
		}

		return out, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		if kg, ok := v.(keyedGetter); ok && plain {
			return getterMapping(kg)
		}

		// opaque Getter
		return v, nil
	}

	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return primitive.Text(keys[i].Interface()) < primitive.Text(keys[j].Interface())
	})

	out := make(map[string]any, len(keys))

	for _, k := range keys {
		key := primitive.Text(k.Interface())

		item, err := nativeValue(rv.MapIndex(k).Interface(), plain)
		if err != nil {
			return nil, errors.Wrapf(err, "[%s]", key)
		}

		out[key] = item
	}

	return out, nil
}

func getterMapping(kg keyedGetter) (any, error) {
	out := orderedmap.New[string, any]()

	for _, name := range kg.Names() {
		value, _ := kg.Get(name)

		item, err := nativeValue(value, true)
		if err != nil {
			return nil, errors.Wrapf(err, "[%s]", name)
		}

		out.Set(name, item)
	}

	return out, nil
}

func conversionErr(typeName string, value any, cause error) error {
	if cause != nil {
		return errors.Wrapf(ErrConversion, "%s: %v: %v", typeName, value, cause)
	}

	return errors.Wrapf(ErrConversion, "%s: %v", typeName, value)
}

var (
	_ Field = (*CharField)(nil)
	_ Field = (*RawField)(nil)
	_ Field = (*URLField)(nil)
	_ Field = (*EmailField)(nil)
	_ Field = (*DictField)(nil)
	_ Field = (*BooleanField)(nil)
	_ Field = (*DateField)(nil)
	_ Field = (*DateTimeField)(nil)
	_ Field = (*NumberField)(nil)
	_ Field = (*UUIDField)(nil)
	_ Field = (*ChoiceField)(nil)
	_ Field = (*EnumField)(nil)
	_ Field = (*MethodField)(nil)
)
