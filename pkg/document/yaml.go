package document

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hdlkit/regmap/pkg/utils"
)

// LoadYAML loads a YAML document into an ordered document tree
func LoadYAML(data string) (*Map, error) {
	var root yaml.Node

	if err := yaml.Unmarshal([]byte(data), &root); err != nil {
		return nil, err
	}

	if root.Kind == 0 || len(root.Content) == 0 {
		return NewMap(), nil
	}

	return fromYAMLMapping(root.Content[0])
}

// LoadYAMLFile loads a YAML file into an ordered document tree
func LoadYAMLFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("requested YAML file does not exist: %s", path)
	}

	document, err := LoadYAML(string(data))

	if err != nil {
		return nil, fmt.Errorf("error while parsing YAML file %s: %w", path, err)
	}

	return document, nil
}

// Walks a yaml mapping node, which keeps its keys in document order
func fromYAMLMapping(node *yaml.Node) (*Map, error) {
	if node.Kind != yaml.MappingNode {
		return nil, utils.MakeError(ErrInvalidDocument, "expected a mapping at line %v", node.Line)
	}

	result := NewMap()

	for i := 0; i < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		switch valueNode.Kind {
		case yaml.MappingNode:
			child, err := fromYAMLMapping(valueNode)

			if err != nil {
				return nil, err
			}

			result.Set(keyNode.Value, child)

		case yaml.ScalarNode:
			scalar, err := fromYAMLScalar(valueNode)

			if err != nil {
				return nil, err
			}

			result.Set(keyNode.Value, scalar)

		default:
			return nil, utils.MakeError(ErrInvalidDocument,
				"key %q holds an unsupported value kind at line %v", keyNode.Value, valueNode.Line)
		}
	}

	return result, nil
}

func fromYAMLScalar(node *yaml.Node) (any, error) {
	switch node.Tag {
	case "!!str":
		return node.Value, nil

	case "!!bool":
		value, err := strconv.ParseBool(node.Value)

		if err != nil {
			return nil, utils.MakeError(ErrInvalidDocument, "invalid boolean %q at line %v", node.Value, node.Line)
		}

		return value, nil

	case "!!int":
		value, err := strconv.ParseInt(node.Value, 0, 64)

		if err != nil {
			return nil, utils.MakeError(ErrInvalidDocument, "invalid integer %q at line %v", node.Value, node.Line)
		}

		return value, nil

	case "!!float":
		value, err := strconv.ParseFloat(node.Value, 64)

		if err != nil {
			return nil, utils.MakeError(ErrInvalidDocument, "invalid float %q at line %v", node.Value, node.Line)
		}

		return value, nil
	}

	return nil, utils.MakeError(ErrInvalidDocument,
		"unsupported scalar type %v at line %v", node.Tag, node.Line)
}
