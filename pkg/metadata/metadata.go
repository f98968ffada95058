// Package metadata implements the attribute bag (spec.md §3, §4.1) attached
// to every node, edge, and graph: a case-insensitive property map plus a
// case-insensitive map of keyed tag sets. None of its operations fail —
// malformed or partial input is dropped silently rather than aborting the
// load of an otherwise-good graph (spec.md §4.1's rationale).
package metadata

import (
	"github.com/matzehuels/graphops/pkg/keyset"
)

// UnkeyedTagKey is the reserved keyed-tag key under which unkeyed tags
// live.
const UnkeyedTagKey = ""

// Metadata is a mutable attribute bag. The zero value is ready to use.
type Metadata struct {
	properties *keyset.KeyMap[string]
	keyedTags  *keyset.KeySetMap
}

// New creates an empty Metadata. keyedTags[""] always exists (possibly
// empty), per spec.md §3's invariant.
func New() *Metadata {
	m := &Metadata{
		properties: keyset.NewKeyMap[string](),
		keyedTags:  keyset.NewKeySetMap(),
	}
	m.keyedTags.Set(UnkeyedTagKey, keyset.NewSet())
	return m
}

func (m *Metadata) ensure() {
	if m.properties == nil {
		m.properties = keyset.NewKeyMap[string]()
	}
	if m.keyedTags == nil {
		m.keyedTags = keyset.NewKeySetMap()
	}
	if !m.keyedTags.Has(UnkeyedTagKey) {
		m.keyedTags.Set(UnkeyedTagKey, keyset.NewSet())
	}
}

// GetProperty returns the value for key and whether it is set.
func (m *Metadata) GetProperty(key string) (string, bool) {
	if m == nil || m.properties == nil {
		return "", false
	}
	return m.properties.Get(key)
}

// SetProperty sets key to *value, or removes it if value is nil.
func (m *Metadata) SetProperty(key string, value *string) {
	m.ensure()
	if value == nil {
		m.properties.Delete(key)
		return
	}
	m.properties.Set(key, *value)
}

// PropertyKeys returns all set property keys in deterministic order.
func (m *Metadata) PropertyKeys() []string {
	if m == nil || m.properties == nil {
		return nil
	}
	return m.properties.Keys()
}

// Tags returns the mutable set for key, creating an empty one on first
// read — matching spec.md §4.1's "tag access" semantics.
func (m *Metadata) Tags(key string) *keyset.Set {
	m.ensure()
	return m.keyedTags.GetOrInit(key, keyset.NewSet)
}

// TryGetTags returns the set for key only if it exists and is non-empty;
// an empty set (including the always-present "" entry with no members) is
// treated as absent for read purposes.
func (m *Metadata) TryGetTags(key string) (*keyset.Set, bool) {
	if m == nil || m.keyedTags == nil {
		return nil, false
	}
	s, ok := m.keyedTags.Get(key)
	if !ok || s.IsEmpty() {
		return nil, false
	}
	return s, true
}

// HasAnyTag reports whether the set for key shares at least one member
// with candidates.
func (m *Metadata) HasAnyTag(key string, candidates []string) bool {
	s, ok := m.TryGetTags(key)
	if !ok {
		return false
	}
	for _, c := range candidates {
		if s.Contains(c) {
			return true
		}
	}
	return false
}

// TagKeys returns every keyed-tag key that currently has a (possibly
// empty) set, in deterministic order.
func (m *Metadata) TagKeys() []string {
	if m == nil || m.keyedTags == nil {
		return nil
	}
	return m.keyedTags.Keys()
}

// Import copies data from source into m. Properties are overwritten by
// source's; tag sets are unioned per key. tags/properties nil means "copy
// everything" for that dimension.
func (m *Metadata) Import(source *Metadata, tags, properties []string) {
	if source == nil {
		return
	}
	m.ensure()
	source.ensure()

	propKeys := properties
	if propKeys == nil {
		propKeys = source.properties.Keys()
	}
	for _, k := range propKeys {
		if v, ok := source.properties.Get(k); ok {
			m.properties.Set(k, v)
		}
	}

	tagKeys := tags
	if tagKeys == nil {
		tagKeys = source.keyedTags.Keys()
	}
	for _, k := range tagKeys {
		if s, ok := source.keyedTags.Get(k); ok {
			m.Tags(k).Merge(s)
		}
	}
}

// Clone returns an independent deep copy of m.
func (m *Metadata) Clone() *Metadata {
	out := New()
	if m == nil {
		return out
	}
	m.ensure()
	for _, k := range m.properties.Keys() {
		v, _ := m.properties.Get(k)
		out.properties.Set(k, v)
	}
	for _, k := range m.keyedTags.Keys() {
		s, _ := m.keyedTags.Get(k)
		out.keyedTags.Set(k, s.Clone())
	}
	return out
}
