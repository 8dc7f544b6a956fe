package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// The HTTP API uses this so server-side entries never collide with
// entries written by a CLI sharing the same backend.
//
// Example usage:
//
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GraphKey generates a prefixed key for a loaded graph document.
func (k *ScopedKeyer) GraphKey(name, sourceHash string) string {
	return k.prefix + k.inner.GraphKey(name, sourceHash)
}

// DiagramKey generates a prefixed key for generated diagram text.
func (k *ScopedKeyer) DiagramKey(graphHash string, opts DiagramKeyOpts) string {
	return k.prefix + k.inner.DiagramKey(graphHash, opts)
}
