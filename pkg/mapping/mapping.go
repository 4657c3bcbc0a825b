// Package mapping holds the old-to-new identifier tables produced while copying.
package mapping

import (
	"bytes"
	"encoding/json"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Mapping is an insertion-ordered old-to-new identifier map. The zero value is
// ready to use. A Mapping is not safe for concurrent use.
type Mapping struct {
	keys   []string
	values map[string]string
}

// New returns a mapping seeded with pairs, in argument order: New("a", "b", "c", "d").
func New(pairs ...string) *Mapping {
	m := &Mapping{}
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Put(pairs[i], pairs[i+1])
	}
	return m
}

// Put records old→new. A key keeps its original position when overwritten;
// the previous value is returned with replaced set.
func (m *Mapping) Put(old, to string) (prev string, replaced bool) {
	if m.values == nil {
		m.values = map[string]string{}
	}
	prev, replaced = m.values[old]
	if !replaced {
		m.keys = append(m.keys, old)
	}
	m.values[old] = to
	return prev, replaced
}

// Get returns the new identifier for old.
func (m *Mapping) Get(old string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[old]
	return v, ok
}

// Has reports whether old has been mapped.
func (m *Mapping) Has(old string) bool {
	_, ok := m.Get(old)
	return ok
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the mapped identifiers in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Map returns a copy as a plain map.
func (m *Mapping) Map() map[string]string {
	out := make(map[string]string, m.Len())
	if m == nil {
		return out
	}
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Range calls fn for every entry in insertion order until fn returns false.
func (m *Mapping) Range(fn func(old, to string) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Clone returns an independent copy.
func (m *Mapping) Clone() *Mapping {
	out := &Mapping{}
	out.Merge(m)
	return out
}

// Merge puts every entry of other into m, in other's order.
func (m *Mapping) Merge(other *Mapping) {
	other.Range(func(old, to string) bool {
		m.Put(old, to)
		return true
	})
}

// MarshalJSON encodes the mapping as an object with keys in insertion order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, errors.Errorf("marshalling key %q: %w", k, err)
		}
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, errors.Errorf("marshalling value of %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of strings, keeping document order.
func (m *Mapping) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return errors.Errorf("reading mapping: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.Errorf("mapping must be an object, got %v", tok)
	}

	*m = Mapping{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errors.Errorf("reading mapping key: %w", err)
		}
		key, _ := tok.(string)
		var value string
		if err := dec.Decode(&value); err != nil {
			return errors.Errorf("reading mapping value of %q: %w", key, err)
		}
		m.Put(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return errors.Errorf("reading mapping end: %w", err)
	}
	return nil
}

// MarshalYAML encodes the mapping as a YAML mapping node with keys in insertion order.
func (m *Mapping) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	m.Range(func(old, to string) bool {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: old},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: to},
		)
		return true
	})
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping of strings, keeping document order.
func (m *Mapping) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.Errorf("line %d: mapping must be a YAML mapping", node.Line)
	}
	*m = Mapping{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return errors.Errorf("line %d: mapping entries must be scalars", k.Line)
		}
		m.Put(k.Value, v.Value)
	}
	return nil
}
