package data

import "sort"

// Map is a string-keyed mapping that remembers insertion order.
// Values are nil, bool, float64, string, []any or *Map.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap creates an empty ordered map
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// Set stores a value; an existing key keeps its original position
func (m *Map) Set(key string, value any) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present, even with a null value
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in insertion order
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// MarshalJSON encodes the map with keys in insertion order
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return marshalJSONValue(toOrdered(m))
}

// Equal reports structural equality with another map, ignoring key order
func (m *Map) Equal(other *Map) bool {
	return Equal(m, other)
}

// Plain converts a value tree into map[string]any / []any form,
// as expected by encoding/json consumers and schema validators.
func Plain(v any) any {
	switch t := v.(type) {
	case *Map:
		if t == nil {
			return nil
		}
		out := make(map[string]any, t.Len())
		for _, key := range t.keys {
			out[key] = Plain(t.values[key])
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Plain(item)
		}
		return out
	default:
		return v
	}
}

// FromPlain converts map[string]any trees into ordered maps.
// Keys of plain maps have no inherent order, so they are sorted.
func FromPlain(v any) any {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		m := NewMap()
		for _, key := range keys {
			m.Set(key, FromPlain(t[key]))
		}
		return m
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = FromPlain(item)
		}
		return out
	default:
		return v
	}
}

// Equal compares two value trees structurally. Mapping key order is ignored;
// sequence order is not.
func Equal(a, b any) bool {
	switch ta := a.(type) {
	case *Map:
		tb, ok := b.(*Map)
		if !ok {
			return false
		}
		if ta.Len() != tb.Len() {
			return false
		}
		for _, key := range ta.Keys() {
			va, _ := ta.Get(key)
			vb, exists := tb.Get(key)
			if !exists || !Equal(va, vb) {
				return false
			}
		}
		return true
	case []any:
		tb, ok := b.([]any)
		if !ok || len(ta) != len(tb) {
			return false
		}
		for i := range ta {
			if !Equal(ta[i], tb[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		return Equal(FromPlain(ta), FromPlain(b))
	default:
		return a == b
	}
}
