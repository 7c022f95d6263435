package jsonpointer

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func getYamlNodeTarget(node *yaml.Node, currentPart navigationPart, stack []navigationPart, currentPath string) (any, error) {
	if node == nil {
		return nil, ErrNotFound.Wrap(fmt.Errorf("yaml node is nil at %s", currentPath))
	}

	node = resolveAlias(node)
	if node == nil {
		return nil, ErrNotFound.Wrap(fmt.Errorf("yaml alias node has nil alias at %s", currentPath))
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, ErrNotFound.Wrap(fmt.Errorf("document node has no content at %s", currentPath))
		}
		return getYamlNodeTarget(node.Content[0], currentPart, stack, currentPath)
	case yaml.MappingNode:
		return getYamlMappingTarget(node, currentPart, stack, currentPath)
	case yaml.SequenceNode:
		return getYamlSequenceTarget(node, currentPart, stack, currentPath)
	case yaml.ScalarNode:
		return nil, ErrInvalidPath.Wrap(fmt.Errorf("cannot navigate through scalar yaml node at %s", currentPath))
	default:
		return nil, ErrInvalidPath.Wrap(fmt.Errorf("unsupported yaml node kind %v at %s", node.Kind, currentPath))
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func getYamlMappingTarget(node *yaml.Node, currentPart navigationPart, stack []navigationPart, currentPath string) (any, error) {
	key := currentPart.unescapeValue()

	// content is laid out in pairs: [key1, value1, key2, value2, ...]
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := resolveAlias(node.Content[i])
		if keyNode != nil && keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return getCurrentStackTarget(node.Content[i+1], stack, currentPath)
		}
	}

	// merge keys (<<: *alias)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		if keyNode.Kind != yaml.ScalarNode || keyNode.Value != "<<" {
			continue
		}

		merged := resolveAlias(node.Content[i+1])
		if merged != nil && merged.Kind == yaml.MappingNode {
			if result, err := getYamlMappingTarget(merged, currentPart, stack, currentPath); err == nil {
				return result, nil
			}
		}
	}

	return nil, ErrNotFound.Wrap(fmt.Errorf("key %s not found in yaml mapping at %s", key, currentPath))
}

func getYamlSequenceTarget(node *yaml.Node, currentPart navigationPart, stack []navigationPart, currentPath string) (any, error) {
	if currentPart.Type != partTypeIndex {
		return nil, ErrInvalidPath.Wrap(fmt.Errorf("expected index, got %s at %s", currentPart.Type, currentPath))
	}

	index := currentPart.getIndex()
	if index < 0 || index >= len(node.Content) {
		return nil, ErrNotFound.Wrap(fmt.Errorf("index %d out of range for yaml sequence of length %d at %s", index, len(node.Content), currentPath))
	}

	return getCurrentStackTarget(node.Content[index], stack, currentPath)
}
