package validators

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"schema-serializer/primitive"
)

// KeyInvalid is the message key every validator defines.
const KeyInvalid = "invalid"

// ErrUnknownMessageKey is returned for message overrides naming a key the
// validator does not define.
var ErrUnknownMessageKey = errors.New("unknown message key")

// Params are the values substituted into a message template.
type Params map[string]any

// Failure describes one rejected value.
type Failure struct {
	TypeName  string `json:"type_name"  yaml:"type_name"`
	TypeLabel string `json:"type_label" yaml:"type_label"`
	Message   string `json:"message"    yaml:"message"`

	params Params
}

// Params returns the placeholder values the message was rendered with.
func (f Failure) Params() Params {
	return f.params
}

// Rerender returns a copy of f with the message rendered from tmpl using the
// same placeholder values.
func (f Failure) Rerender(tmpl string) Failure {
	f.Message = Render(tmpl, f.params)
	return f
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s", f.TypeName, f.Message)
}

// Validator checks a single value.
type Validator interface {
	TypeName() string
	TypeLabel() string
	// IsValid reports whether value passes the check. It never panics.
	IsValid(value any) bool
	// Validate returns nil when value is accepted.
	Validate(value any) *Failure
	// ConfigErr reports a construction problem such as an unknown message key.
	ConfigErr() error
}

// Option configures a validator at construction.
type Option func(*Base)

// WithMessage overrides the message template for key.
func WithMessage(key, tmpl string) Option {
	return func(b *Base) {
		b.override(key, tmpl)
	}
}

// WithMessages overrides several message templates.
func WithMessages(messages map[string]string) Option {
	return func(b *Base) {
		keys := make([]string, 0, len(messages))
		for k := range messages {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		for _, k := range keys {
			b.override(k, messages[k])
		}
	}
}

// WithTypeName replaces the type name reported in failures.
func WithTypeName(name string) Option {
	return func(b *Base) {
		b.typeName = name
	}
}

// WithTypeLabel replaces the type label reported in failures.
func WithTypeLabel(label string) Option {
	return func(b *Base) {
		b.typeLabel = label
	}
}

// Base carries what every validator shares: identity, message table and
// construction errors.
type Base struct {
	typeName  string
	typeLabel string
	messages  map[string]string
	err       error
}

func newBase(typeName, typeLabel string, messages map[string]string, opts []Option) Base {
	b := Base{
		typeName:  typeName,
		typeLabel: typeLabel,
		messages:  make(map[string]string, len(messages)),
	}

	for k, v := range messages {
		b.messages[k] = v
	}

	for _, opt := range opts {
		opt(&b)
	}

	return b
}

func (b *Base) override(key, tmpl string) {
	if _, ok := b.messages[key]; !ok {
		b.err = errors.CombineErrors(b.err,
			errors.Wrapf(ErrUnknownMessageKey, "%s: %q", b.typeName, key))

		return
	}

	b.messages[key] = tmpl
}

// TypeName returns the validator type name, e.g. "IntegerValidator".
func (b *Base) TypeName() string { return b.typeName }

// TypeLabel returns the short validator label, e.g. "integer".
func (b *Base) TypeLabel() string { return b.typeLabel }

// ConfigErr returns the construction error, if any.
func (b *Base) ConfigErr() error { return b.err }

// Message returns the template registered under key.
func (b *Base) Message(key string) (string, bool) {
	tmpl, ok := b.messages[key]
	return tmpl, ok
}

// fail renders the failure for key. A key missing from the table is a wiring
// bug and panics.
func (b *Base) fail(key string, params Params) *Failure {
	tmpl, ok := b.messages[key]
	if !ok {
		panic(fmt.Sprintf("%s reported a failure, but message key %q does not exist in its message table",
			b.typeName, key))
	}

	return &Failure{
		TypeName:  b.typeName,
		TypeLabel: b.typeLabel,
		Message:   Render(tmpl, params),
		params:    params,
	}
}

// check is the common Validate body: empty values pass, valid values pass,
// everything else fails with the "invalid" message.
func (b *Base) check(value any, valid func(any) bool, params Params) *Failure {
	if primitive.IsEmpty(value) || valid(value) {
		return nil
	}

	if params == nil {
		params = Params{}
	}

	params["value"] = value

	return b.fail(KeyInvalid, params)
}

// Render substitutes {name} placeholders in tmpl. Unknown placeholders are
// left untouched.
func Render(tmpl string, params Params) string {
	if len(params) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}

	pairs := make([]string, 0, 2*len(params))
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", primitive.Text(v))
	}

	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Run applies every validator to value and returns all failures in order.
func Run(value any, vs ...Validator) []Failure {
	var out []Failure

	for _, v := range vs {
		if f := v.Validate(value); f != nil {
			out = append(out, *f)
		}
	}

	return out
}
