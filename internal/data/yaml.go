package data

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// decodeYAML parses the first YAML document into an ordered value tree
func decodeYAML(content []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		// empty input
		return nil, nil
	}
	return fromYAMLNode(&doc)
}

func fromYAMLNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.MappingNode:
		return fromYAMLMapping(n)
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			value, err := fromYAMLNode(item)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		return list, nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
	}
}

func fromYAMLMapping(n *yaml.Node) (*Map, error) {
	m := NewMap()
	var merged []*Map

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]

		if keyNode.ShortTag() == "!!merge" {
			sources, err := mergeSources(valueNode)
			if err != nil {
				return nil, err
			}
			merged = append(merged, sources...)
			continue
		}

		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}
		value, err := fromYAMLNode(valueNode)
		if err != nil {
			return nil, err
		}
		m.Set(keyNode.Value, value)
	}

	// explicit keys take precedence over merged ones
	for _, source := range merged {
		for _, key := range source.Keys() {
			if !m.Has(key) {
				value, _ := source.Get(key)
				m.Set(key, value)
			}
		}
	}
	return m, nil
}

func mergeSources(n *yaml.Node) ([]*Map, error) {
	value, err := fromYAMLNode(n)
	if err != nil {
		return nil, err
	}
	switch t := value.(type) {
	case *Map:
		return []*Map{t}, nil
	case []any:
		out := make([]*Map, 0, len(t))
		for _, item := range t {
			m, ok := item.(*Map)
			if !ok {
				return nil, fmt.Errorf("line %d: merge sequence must contain mappings", n.Line)
			}
			out = append(out, m)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("line %d: merge value must be a mapping", n.Line)
	}
}

// fromYAMLScalar keeps timestamps as strings so dates survive a JSON round trip
func fromYAMLScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return f, nil
	default:
		return n.Value, nil
	}
}

// encodeYAML renders a value tree as block-style YAML with literal Unicode
func encodeYAML(v any) ([]byte, error) {
	node, err := toYAMLNode(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toYAMLNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case *Map:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range t.Keys() {
			value, _ := t.Get(key)
			if err := appendYAMLPair(node, key, value); err != nil {
				return nil, err
			}
		}
		return node, nil
	case map[string]any:
		return toYAMLNode(FromPlain(t))
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range t {
			child, err := toYAMLNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(t); err != nil {
			return nil, err
		}
		return node, nil
	}
}

func appendYAMLPair(node *yaml.Node, key string, value any) error {
	keyNode := &yaml.Node{}
	if err := keyNode.Encode(key); err != nil {
		return err
	}
	valueNode, err := toYAMLNode(value)
	if err != nil {
		return err
	}
	node.Content = append(node.Content, keyNode, valueNode)
	return nil
}
