package mapping

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return errors.Newf("line %d: expected string or array, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// --- NameList YAML methods ---

// UnmarshalYAML accepts only a sequence of names.
func (n *NameList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return errors.Newf("line %d: must be an ordered sequence of names, got %v", node.Line, kindName(node.Kind))
	}

	var arr []string

	err := node.Decode(&arr)
	if err != nil {
		return err
	}

	*n = arr

	return nil
}

// --- ChoiceDef YAML methods ---

// UnmarshalYAML accepts a scalar, a [value, label] pair or a mapping.
func (c *ChoiceDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v any

		err := node.Decode(&v)
		if err != nil {
			return err
		}

		*c = ChoiceDef{Value: v}

		return nil

	case yaml.SequenceNode:
		if len(node.Content) != 2 {
			return errors.Newf("line %d: choice pair must have exactly two items", node.Line)
		}

		var (
			v     any
			label string
		)

		if err := node.Content[0].Decode(&v); err != nil {
			return err
		}

		if err := node.Content[1].Decode(&label); err != nil {
			return err
		}

		*c = ChoiceDef{Value: v, Label: label}

		return nil

	case yaml.MappingNode:
		type plain ChoiceDef

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*c = ChoiceDef(p)

		return nil

	default:
		return errors.Newf("line %d: expected scalar, pair or mapping, got %v", node.Line, kindName(node.Kind))
	}
}

// --- ValidatorDef YAML methods ---

// UnmarshalYAML accepts a name, a single {name: argument} mapping or the
// full form with a type key.
func (v *ValidatorDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string

		err := node.Decode(&name)
		if err != nil {
			return err
		}

		*v = ValidatorDef{Type: name}

		return nil

	case yaml.MappingNode:
		if hasKey(node, "type") {
			type plain ValidatorDef

			var p plain

			err := node.Decode(&p)
			if err != nil {
				return err
			}

			*v = ValidatorDef(p)

			return nil
		}

		if len(node.Content) != 2 {
			return errors.Newf("line %d: expected single key-value map like {max_length: 20}", node.Line)
		}

		var (
			name string
			arg  any
		)

		if err := node.Content[0].Decode(&name); err != nil {
			return errors.Wrap(err, "invalid validator name")
		}

		if err := node.Content[1].Decode(&arg); err != nil {
			return errors.Wrapf(err, "invalid argument of %s", name)
		}

		*v = ValidatorDef{Type: name, Value: arg}

		return nil

	default:
		return errors.Newf("line %d: expected name or mapping, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML writes the shortest form that round-trips.
func (v ValidatorDef) MarshalYAML() (any, error) {
	switch {
	case len(v.Messages) > 0:
		type plain ValidatorDef
		return plain(v), nil
	case v.Value != nil:
		return map[string]any{v.Type: v.Value}, nil
	default:
		return v.Type, nil
	}
}

func hasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}

	return false
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
