// Package document implements the generic hierarchical key/value tree that
// register definition files are loaded into before parsing. The tree keeps
// the key order of the source document, since the order of register
// definitions decides the generated memory layout.
package document

import (
	"errors"

	"github.com/hdlkit/regmap/pkg/utils"
)

var ErrInvalidDocument = errors.New("invalid document structure")

// Map is an ordered mapping from keys to values. Values are scalars
// (string, bool, int64, float64) or nested *Map nodes.
type Map struct {
	keys   []string
	values map[string]any
}

func NewMap() *Map {
	return &Map{
		values: make(map[string]any),
	}
}

// Returns all keys in document order
func (m *Map) Keys() []string {
	return m.keys
}

// Returns the number of keys
func (m *Map) Len() int {
	return len(m.keys)
}

// Returns whether the key is present
func (m *Map) Has(key string) bool {
	_, has := m.values[key]
	return has
}

// Returns the value stored under the key
func (m *Map) Get(key string) (any, bool) {
	value, has := m.values[key]
	return value, has
}

// Returns the nested map stored under the key, nil if the key is absent or
// holds a scalar
func (m *Map) Child(key string) *Map {
	if child, isMap := m.values[key].(*Map); isMap {
		return child
	}

	return nil
}

// Stores a value under the key, keeping the key's original position if it
// already exists
func (m *Map) Set(key string, value any) {
	if !m.Has(key) {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Returns the nested map stored under the key, creating an empty one if the
// key is absent. Fails if the key already holds a scalar.
func (m *Map) ensureChild(key string) (*Map, error) {
	if existing, has := m.values[key]; has {
		if child, isMap := existing.(*Map); isMap {
			return child, nil
		}

		return nil, utils.MakeError(ErrInvalidDocument, "key %q holds both a value and a table", key)
	}

	child := NewMap()
	m.Set(key, child)

	return child, nil
}
