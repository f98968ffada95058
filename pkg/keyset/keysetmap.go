package keyset

// KeySetMap is a KeyMap of Sets (KeyMap[*Set]) with convenience operations
// for treating it as a multimap of keyed membership pairs.
type KeySetMap struct {
	*KeyMap[*Set]
}

// NewKeySetMap creates an empty KeySetMap.
func NewKeySetMap() *KeySetMap {
	return &KeySetMap{KeyMap: NewKeyMap[*Set]()}
}

// AddPair inserts v into the set at k, creating the set if this is its
// first member.
func (m *KeySetMap) AddPair(k, v string) {
	s, ok := m.Get(k)
	if !ok {
		s = NewSet()
		m.Set(k, s)
	}
	s.Add(v)
}

// RemovePair removes v from the set at k. If the set becomes empty and
// prune is true, the entry for k is dropped entirely; prune applies even
// when v was never a member (an empty set at k is always dropped in that
// case if prune is requested).
func (m *KeySetMap) RemovePair(k, v string, prune bool) {
	s, ok := m.Get(k)
	if !ok {
		return
	}
	s.Remove(v)
	if prune && s.IsEmpty() {
		m.Delete(k)
	}
}

// UnionWith merges every (k, set) pair of other into m, unioning sets that
// already exist at the same key.
func (m *KeySetMap) UnionWith(other *KeySetMap) {
	if other == nil {
		return
	}
	for _, k := range other.Keys() {
		os, _ := other.Get(k)
		if s, ok := m.Get(k); ok {
			s.Merge(os)
		} else {
			m.Set(k, os.Clone())
		}
	}
}

// PairCount returns the sum of all set sizes across every key.
func (m *KeySetMap) PairCount() int {
	total := 0
	for _, k := range m.Keys() {
		s, _ := m.Get(k)
		total += s.Len()
	}
	return total
}

// Clone returns an independent deep copy.
func (m *KeySetMap) Clone() *KeySetMap {
	out := NewKeySetMap()
	for _, k := range m.Keys() {
		s, _ := m.Get(k)
		out.Set(k, s.Clone())
	}
	return out
}
