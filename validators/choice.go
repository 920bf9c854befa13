package validators

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"schema-serializer/primitive"
)

// Choice is one allowed value with its display label.
type Choice struct {
	Value any    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

func (c Choice) String() string {
	if c.Label == "" {
		return primitive.Text(c.Value)
	}

	return primitive.Text(c.Value) + " (" + c.Label + ")"
}

// Enumerant is a named member of an enumeration.
type Enumerant struct {
	Name  string `json:"name"  yaml:"name"`
	Value any    `json:"value" yaml:"value"`
}

func (e Enumerant) String() string {
	return e.Name
}

// ChoiceValidator checks membership in a fixed set of values.
type ChoiceValidator struct {
	Base

	choices []Choice
}

// OneOf accepts values equal to one of the choice values.
func OneOf(choices []Choice, opts ...Option) *ChoiceValidator {
	v := &ChoiceValidator{
		Base: newBase("ChoiceValidator", "choice", map[string]string{
			KeyInvalid: "Ensure the value {value} is one of {choices}.",
		}, opts),
		choices: choices,
	}

	if len(choices) == 0 {
		v.err = errors.CombineErrors(v.err, errors.New("choice set is empty"))
	}

	return v
}

// Choices returns the allowed choices in declaration order.
func (v *ChoiceValidator) Choices() []Choice { return v.choices }

// Lookup returns the declared choice equal to value.
func (v *ChoiceValidator) Lookup(value any) (Choice, bool) {
	return lo.Find(v.choices, func(c Choice) bool { return primitive.Equal(c.Value, value) })
}

func (v *ChoiceValidator) IsValid(value any) bool {
	_, ok := v.Lookup(value)
	return ok
}

func (v *ChoiceValidator) Validate(value any) *Failure {
	return v.check(value, v.IsValid, Params{"choices": joinStringers(v.choices)})
}

// EnumValidator checks membership in an enumeration by value.
type EnumValidator struct {
	Base

	members []Enumerant
}

// Enum accepts the values of members and the members themselves.
func Enum(members []Enumerant, opts ...Option) *EnumValidator {
	v := &EnumValidator{
		Base: newBase("EnumValidator", "enum", map[string]string{
			KeyInvalid: "Ensure the value {value} is one of {choices}.",
		}, opts),
		members: members,
	}

	if len(members) == 0 {
		v.err = errors.CombineErrors(v.err, errors.New("enumeration has no members"))
	}

	dups := lo.FindDuplicatesBy(members, func(e Enumerant) string { return e.Name })
	if len(dups) > 0 {
		v.err = errors.CombineErrors(v.err, errors.Newf("duplicate enumerant %q", dups[0].Name))
	}

	return v
}

// Members returns the enumerants in declaration order.
func (v *EnumValidator) Members() []Enumerant { return v.members }

// Lookup returns the member whose value equals value. An Enumerant is
// looked up by name.
func (v *EnumValidator) Lookup(value any) (Enumerant, bool) {
	if e, ok := primitive.Indirect(value).(Enumerant); ok {
		return lo.Find(v.members, func(m Enumerant) bool { return m.Name == e.Name })
	}

	return lo.Find(v.members, func(m Enumerant) bool { return primitive.Equal(m.Value, value) })
}

func (v *EnumValidator) IsValid(value any) bool {
	_, ok := v.Lookup(value)
	return ok
}

func (v *EnumValidator) Validate(value any) *Failure {
	values := lo.Map(v.members, func(m Enumerant, _ int) string { return primitive.Text(m.Value) })
	return v.check(value, v.IsValid, Params{"choices": strings.Join(values, ", ")})
}

func joinStringers[T interface{ String() string }](items []T) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.String())
	}

	return strings.Join(parts, ", ")
}
