// Package keyset provides case-insensitive string containers used throughout
// graphops: Set (a deduplicated string set), KeyMap (a generic case-insensitive
// map), KeySetMap (a KeyMap of Sets with pairwise helpers), View (a
// read-only view of a Set), and MapView (a read-only projection over a
// KeySetMap).
//
// Case-insensitivity is implemented with golang.org/x/text/cases' locale-
// invariant fold, not strings.ToLower, so that keys and tags compare equal
// regardless of the process locale — the normalization spec.md §9 asks for.
//
// All containers normalize at insertion time and keep the first-seen
// original-case spelling for display; iteration order is always the sorted
// order of the normalized form, so output is deterministic.
package keyset
