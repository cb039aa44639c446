package data

import (
	"bytes"
	"encoding/json"

	"github.com/iancoleman/orderedmap"
)

// decodeJSON parses a single JSON document into an ordered value tree
func decodeJSON(content []byte) (any, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, err
	}
	return decodeJSONValue(raw)
}

// decodeJSONValue decodes objects through orderedmap so nested keys keep
// their document order. Top-level arrays are split so each element does too.
func decodeJSONValue(raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	switch trimmed[0] {
	case '{':
		om := orderedmap.New()
		if err := json.Unmarshal(trimmed, om); err != nil {
			return nil, err
		}
		return fromOrderedMap(om), nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		list := make([]any, 0, len(items))
		for _, item := range items {
			value, err := decodeJSONValue(item)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		return list, nil
	default:
		// string, float64, bool or nil
		var value any
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return nil, err
		}
		return value, nil
	}
}

func fromOrderedMap(om *orderedmap.OrderedMap) *Map {
	m := NewMap()
	for _, key := range om.Keys() {
		value, _ := om.Get(key)
		m.Set(key, fromOrdered(value))
	}
	return m
}

func fromOrdered(v any) any {
	switch t := v.(type) {
	case orderedmap.OrderedMap:
		return fromOrderedMap(&t)
	case *orderedmap.OrderedMap:
		return fromOrderedMap(t)
	case map[string]any:
		return FromPlain(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = fromOrdered(item)
		}
		return out
	default:
		return v
	}
}

// toOrdered converts a value tree for encoding; HTML escaping is off at every level
func toOrdered(v any) any {
	switch t := v.(type) {
	case *Map:
		if t == nil {
			return nil
		}
		om := orderedmap.New()
		om.SetEscapeHTML(false)
		for _, key := range t.keys {
			om.Set(key, toOrdered(t.values[key]))
		}
		return om
	case map[string]any:
		return toOrdered(FromPlain(t))
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = toOrdered(item)
		}
		return out
	default:
		return v
	}
}

// encodeJSON renders a value tree. Pretty output uses two-space indentation
// and ends with a newline; compact output has no extra whitespace.
func encodeJSON(v any, pretty bool) ([]byte, error) {
	compact, err := marshalJSONValue(toOrdered(v))
	if err != nil {
		return nil, err
	}
	if !pretty {
		return compact, nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// marshalJSONValue marshals without HTML escaping so text round-trips literally
func marshalJSONValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
