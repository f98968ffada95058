package keyset

import "sort"

// KeyMap is a case-insensitive map from string to V. The zero value is not
// usable; use NewKeyMap.
type KeyMap[V any] struct {
	keys map[string]string // normalized -> first-seen original spelling
	data map[string]V       // normalized -> value
}

// NewKeyMap creates an empty KeyMap.
func NewKeyMap[V any]() *KeyMap[V] {
	return &KeyMap[V]{keys: make(map[string]string), data: make(map[string]V)}
}

// Get returns the value for key and whether it was present.
func (m *KeyMap[V]) Get(key string) (V, bool) {
	v, ok := m.data[Normalize(key)]
	return v, ok
}

// Set associates key with v, overwriting any existing value.
func (m *KeyMap[V]) Set(key string, v V) {
	n := Normalize(key)
	m.keys[n] = key
	m.data[n] = v
}

// Delete removes key, if present.
func (m *KeyMap[V]) Delete(key string) {
	n := Normalize(key)
	delete(m.keys, n)
	delete(m.data, n)
}

// Has reports whether key is present.
func (m *KeyMap[V]) Has(key string) bool {
	_, ok := m.data[Normalize(key)]
	return ok
}

// Len returns the number of entries.
func (m *KeyMap[V]) Len() int { return len(m.data) }

// Keys returns the original-spelling keys sorted by their normalized form.
func (m *KeyMap[V]) Keys() []string {
	norms := make([]string, 0, len(m.keys))
	for n := range m.keys {
		norms = append(norms, n)
	}
	sort.Strings(norms)
	out := make([]string, len(norms))
	for i, n := range norms {
		out[i] = m.keys[n]
	}
	return out
}

// GetOrInit returns the existing value for key, or initializes it with init
// and stores it first.
func (m *KeyMap[V]) GetOrInit(key string, init func() V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	v := init()
	m.Set(key, v)
	return v
}
