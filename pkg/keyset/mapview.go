package keyset

// MapView exposes a mutable KeySetMap as an immutable mapping from key to a
// read-only Set view, plus the projection operators used by the analyzer
// and rewrite packages to compute reach/domain closures and purification
// without materializing intermediate unions where avoidable.
type MapView struct {
	m *KeySetMap
}

// NewMapView wraps m. The returned view always reflects the live state of
// m; it does not copy.
func NewMapView(m *KeySetMap) *MapView { return &MapView{m: m} }

// Get returns a read-only view of the set at key, or an empty view if key
// is absent.
func (v *MapView) Get(key string) View {
	s, ok := v.m.Get(key)
	if !ok {
		return View{}
	}
	return View{s: s}
}

// Keys returns the view's keys in deterministic order.
func (v *MapView) Keys() []string { return v.m.Keys() }

// Project unions the sets mapped by each seed key, ignoring seeds that are
// absent from the view.
func (v *MapView) Project(seeds []string) *Set {
	out := NewSet()
	v.ProjectInto(seeds, out)
	return out
}

// ProjectInto accumulates the union of each seed's image into target.
func (v *MapView) ProjectInto(seeds []string, target *Set) {
	for _, seed := range seeds {
		if s, ok := v.m.Get(seed); ok {
			target.Merge(s)
		}
	}
}

// ProjectMap maps each (k, seeds) pair of seedMap to (k, Project(seeds)),
// producing a new KeySetMap.
func (v *MapView) ProjectMap(seedMap *KeySetMap) *KeySetMap {
	out := NewKeySetMap()
	for _, k := range seedMap.Keys() {
		seeds, _ := seedMap.Get(k)
		out.Set(k, v.Project(seeds.Slice()))
	}
	return out
}

// NotInProjection returns the subset of keys that do not appear in the
// union of the named seeds' images, without ever materializing that union:
// each key is checked against each seed's set directly.
func (v *MapView) NotInProjection(keys, seeds []string) []string {
	var out []string
	for _, k := range keys {
		found := false
		for _, seed := range seeds {
			if s, ok := v.m.Get(seed); ok && s.Contains(k) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, k)
		}
	}
	return out
}

// NotInSelfProjection returns the subset of keys not appearing in the
// union of the OTHER keys' images (a key never disqualifies itself).
func (v *MapView) NotInSelfProjection(keys []string) []string {
	var out []string
	for _, k := range keys {
		found := false
		for _, other := range keys {
			if other == k {
				continue
			}
			if s, ok := v.m.Get(other); ok && s.Contains(k) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, k)
		}
	}
	return out
}

// NotInSelfProjectionMap applies NotInSelfProjection to every (k, targets)
// pair of seedMap, keeping only the targets of k not reachable from any of
// k's other targets via this view. This is the transitive-reduction
// operator used by the purify rewrite (spec §4.7): when v is a reach map
// and seedMap is the direct-adjacency map, the result keeps edge (k,t) iff
// no other direct target t' of k has t in its reach set.
func (v *MapView) NotInSelfProjectionMap(seedMap *KeySetMap) *KeySetMap {
	out := NewKeySetMap()
	for _, k := range seedMap.Keys() {
		targets, _ := seedMap.Get(k)
		keep := v.NotInSelfProjection(targets.Slice())
		out.Set(k, NewSet(keep...))
	}
	return out
}
