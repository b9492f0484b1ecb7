package schema

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

const defaultKey = "default"

var optionKeys = []string{"name", defaultKey, "required", "type", "description", "transform"}

// --- Option YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Option.
// It records whether a default was present, even if it is null, and
// rejects unknown fields.
func (o *Option) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected option mapping, got %v", node.Line, node.Kind)
	}

	type plain Option

	var p plain

	err := node.Decode(&p)
	if err != nil {
		return err
	}

	*o = Option(p)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if !slices.Contains(optionKeys, key) {
			return fmt.Errorf("line %d: unknown option field %q", node.Content[i].Line, key)
		}

		if key != defaultKey {
			continue
		}

		o.HasDefault = true

		err = node.Content[i+1].Decode(&o.Default)
		if err != nil {
			return fmt.Errorf("line %d: option %q default: %w", node.Content[i+1].Line, o.Name, err)
		}
	}

	return nil
}

// MarshalYAML implements custom YAML marshaling for Option.
// The default is emitted right after the name, as null if it is nil.
func (o Option) MarshalYAML() (any, error) {
	type plain Option

	var node yaml.Node

	err := node.Encode(plain(o))
	if err != nil {
		return nil, err
	}

	if !o.HasDefault {
		return &node, nil
	}

	var def yaml.Node

	err = def.Encode(o.Default)
	if err != nil {
		return nil, fmt.Errorf("option %q default: %w", o.Name, err)
	}

	key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: defaultKey}

	// Content[0:2] is the name pair.
	node.Content = slices.Insert(node.Content, 2, key, &def)

	return &node, nil
}
