package cache

// ScopedKeyer wraps a Keyer with a prefix, letting a caller isolate cache
// entries per loaded graph (or per requester) when sharing one backend
// (e.g. Redis) across sessions.
//
// Example usage:
//
//	scoped := NewScopedKeyer(NewDefaultKeyer(), "session:abc123:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. The prefix is prepended
// to every generated key. A nil inner falls back to NewDefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ReachMapKey implements Keyer.
func (k *ScopedKeyer) ReachMapKey(graphHash string) string {
	return k.prefix + k.inner.ReachMapKey(graphHash)
}

// DomainMapKey implements Keyer.
func (k *ScopedKeyer) DomainMapKey(graphHash string) string {
	return k.prefix + k.inner.DomainMapKey(graphHash)
}

// SCCKey implements Keyer.
func (k *ScopedKeyer) SCCKey(graphHash string, opts SCCKeyOpts) string {
	return k.prefix + k.inner.SCCKey(graphHash, opts)
}

// RenderKey implements Keyer.
func (k *ScopedKeyer) RenderKey(graphHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(graphHash, opts)
}
