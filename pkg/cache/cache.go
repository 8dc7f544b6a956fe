// Package cache provides byte-level caching for loaded graphs and
// generated diagram text.
//
// A [Cache] stores opaque byte values under string keys with optional
// TTLs. Backends cover the deployment spectrum: [FileCache] for local CLI
// use, [RedisCache] and [MongoCache] for shared deployments, and
// [NullCache] to disable caching. Keys are produced by a [Keyer] so that
// every consumer derives them the same way.
package cache

import (
	"context"
	"time"
)

// Cache is the interface all cache backends implement.
// Get returns the data, a hit flag, and an error; a miss is not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default TTLs per entry kind. Loaded graphs change when their manifest
// changes (the key includes the source hash), so both TTLs are generous.
const (
	TTLGraph   = 7 * 24 * time.Hour
	TTLDiagram = 30 * 24 * time.Hour
)

// DiagramKeyOpts are the options that influence diagram output and
// therefore must be part of the cache key.
type DiagramKeyOpts struct {
	Format   string // plantuml or dot
	Detailed bool   // metadata included in labels
}

// Keyer derives cache keys. Implementations must be deterministic: the
// same inputs always produce the same key.
type Keyer interface {
	// GraphKey identifies a loaded graph document by name and the hash
	// of its manifest source bytes.
	GraphKey(name, sourceHash string) string

	// DiagramKey identifies generated diagram text by the graph's
	// canonical hash and the rendering options.
	DiagramKey(graphHash string, opts DiagramKeyOpts) string
}

// DefaultKeyer derives sha256-based keys with a kind prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// GraphKey generates a key for a loaded graph document.
func (k *DefaultKeyer) GraphKey(name, sourceHash string) string {
	return hashKey("graph", name, sourceHash)
}

// DiagramKey generates a key for generated diagram text.
func (k *DefaultKeyer) DiagramKey(graphHash string, opts DiagramKeyOpts) string {
	return hashKey("diagram", graphHash, opts.Format, opts.Detailed)
}
