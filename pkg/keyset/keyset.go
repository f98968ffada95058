package keyset

import (
	"sort"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Normalize returns the case-insensitive comparison key for s.
func Normalize(s string) string {
	return folder.String(s)
}

// Set is a case-insensitively deduplicated set of strings. The zero value
// is not usable; use NewSet.
type Set struct {
	items map[string]string // normalized -> first-seen original spelling
}

// NewSet creates a Set containing the given strings, deduplicated
// case-insensitively.
func NewSet(items ...string) *Set {
	s := &Set{items: make(map[string]string, len(items))}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts s into the set. Reports whether the set changed.
func (s *Set) Add(v string) bool {
	n := Normalize(v)
	if _, ok := s.items[n]; ok {
		return false
	}
	s.items[n] = v
	return true
}

// Remove deletes v from the set. Reports whether the set changed.
func (s *Set) Remove(v string) bool {
	n := Normalize(v)
	if _, ok := s.items[n]; !ok {
		return false
	}
	delete(s.items, n)
	return true
}

// Contains reports whether v is a member, compared case-insensitively.
func (s *Set) Contains(v string) bool {
	_, ok := s.items[Normalize(v)]
	return ok
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.items) }

// Slice returns the members in ascending order of their normalized form,
// in their original spelling.
func (s *Set) Slice() []string {
	out := make([]string, 0, len(s.items))
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, s.items[k])
	}
	return out
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	out := &Set{items: make(map[string]string, len(s.items))}
	for k, v := range s.items {
		out.items[k] = v
	}
	return out
}

// Merge adds every member of other into s in place.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	for k, v := range other.items {
		if _, ok := s.items[k]; !ok {
			s.items[k] = v
		}
	}
}

// Union returns a new set containing the members of both s and other.
func (s *Set) Union(other *Set) *Set {
	out := s.Clone()
	out.Merge(other)
	return out
}

// Intersect returns a new set containing only members present in both sets.
func (s *Set) Intersect(other *Set) *Set {
	out := &Set{items: make(map[string]string)}
	if other == nil {
		return out
	}
	small, big := s, other
	if len(other.items) < len(s.items) {
		small, big = other, s
	}
	for k, v := range small.items {
		if _, ok := big.items[k]; ok {
			out.items[k] = v
		}
	}
	return out
}

// Difference returns a new set of members in s but not in other.
func (s *Set) Difference(other *Set) *Set {
	out := &Set{items: make(map[string]string)}
	for k, v := range s.items {
		if other == nil {
			out.items[k] = v
			continue
		}
		if _, ok := other.items[k]; !ok {
			out.items[k] = v
		}
	}
	return out
}

// SymmetricDifference returns a new set of members present in exactly one
// of s and other.
func (s *Set) SymmetricDifference(other *Set) *Set {
	return s.Difference(other).Union(other.Difference(s))
}

// IsSubsetOf reports whether every member of s is also a member of other.
func (s *Set) IsSubsetOf(other *Set) bool {
	if other == nil {
		return len(s.items) == 0
	}
	for k := range s.items {
		if _, ok := other.items[k]; !ok {
			return false
		}
	}
	return true
}

// IsSupersetOf reports whether every member of other is also a member of s.
func (s *Set) IsSupersetOf(other *Set) bool {
	return other.IsSubsetOf(s)
}

// Overlaps reports whether s and other share at least one member.
func (s *Set) Overlaps(other *Set) bool {
	if other == nil {
		return false
	}
	small, big := s, other
	if len(other.items) < len(s.items) {
		small, big = other, s
	}
	for k := range small.items {
		if _, ok := big.items[k]; ok {
			return true
		}
	}
	return false
}

// Equal reports whether s and other contain the same members.
func (s *Set) Equal(other *Set) bool {
	if other == nil {
		return len(s.items) == 0
	}
	if len(s.items) != len(other.items) {
		return false
	}
	for k := range s.items {
		if _, ok := other.items[k]; !ok {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool { return len(s.items) == 0 }

// View is a read-only projection of a Set. It exposes only the
// non-mutating operations, so a holder of a View cannot silently mutate
// the owned set backing it (spec.md §9's read-only-views note).
type View struct{ s *Set }

// NewView wraps s as a read-only View. A nil s behaves as an empty set.
func NewView(s *Set) View { return View{s: s} }

// Contains reports whether v is a member.
func (v View) Contains(s string) bool {
	if v.s == nil {
		return false
	}
	return v.s.Contains(s)
}

// Len returns the number of members.
func (v View) Len() int {
	if v.s == nil {
		return 0
	}
	return v.s.Len()
}

// Slice returns the members in deterministic order.
func (v View) Slice() []string {
	if v.s == nil {
		return nil
	}
	return v.s.Slice()
}
