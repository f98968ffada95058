// Package cache provides a pluggable byte-oriented cache for expensive
// graph analyses (reach/domain closures, SCC runs, rendered DOT
// artifacts), plus a [Keyer] that derives stable cache keys from a
// graph's content hash and the parameters of the operation being cached.
//
// [FileCache] and [NullCache] are adapted from the teacher's CLI-facing
// cache backends; [RedisCache] (see redis.go) adds a backend that several
// processes can share.
package cache

import (
	"context"
	"time"
)

// Cache is a pluggable byte-oriented cache keyed by string.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// SCCKeyOpts parameterizes an SCC cache key.
type SCCKeyOpts struct {
	Prefix string
}

// RenderKeyOpts parameterizes a rendered-artifact cache key.
type RenderKeyOpts struct {
	Format string // "dot", "svg", "png", "pdf"
	Scale  float64
}

// Keyer derives cache keys for the engine's cacheable computations, all
// rooted at a graph's content hash (see [Hash] and graph/serialize.go's
// deterministic JSON encoding, which makes that hash stable across
// semantically-identical graphs).
type Keyer interface {
	// ReachMapKey derives the cache key for a reach-map computation over
	// the graph identified by graphHash.
	ReachMapKey(graphHash string) string
	// DomainMapKey derives the cache key for a domain-map computation.
	DomainMapKey(graphHash string) string
	// SCCKey derives the cache key for an SCC run.
	SCCKey(graphHash string, opts SCCKeyOpts) string
	// RenderKey derives the cache key for a rendered DOT/SVG/PNG/PDF
	// artifact.
	RenderKey(graphHash string, opts RenderKeyOpts) string
}

// DefaultKeyer is the engine's standard Keyer, hashing each operation's
// distinguishing parameters alongside graphHash.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// ReachMapKey implements Keyer.
func (k *DefaultKeyer) ReachMapKey(graphHash string) string {
	return hashKey("reach", graphHash)
}

// DomainMapKey implements Keyer.
func (k *DefaultKeyer) DomainMapKey(graphHash string) string {
	return hashKey("domain", graphHash)
}

// SCCKey implements Keyer.
func (k *DefaultKeyer) SCCKey(graphHash string, opts SCCKeyOpts) string {
	return hashKey("scc", graphHash, opts)
}

// RenderKey implements Keyer.
func (k *DefaultKeyer) RenderKey(graphHash string, opts RenderKeyOpts) string {
	return hashKey("render", graphHash, opts)
}
