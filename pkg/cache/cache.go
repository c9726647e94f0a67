// Package cache provides pluggable byte caches for rendered artifacts.
//
// Rendering a diagram through Graphviz is the only expensive operation in the
// toolkit, so rendered SVG and PNG bytes are cached keyed by the canonical
// form of the graph plus the render options. Three backends are provided:
//
//   - FileCache: directory-backed, for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: disables caching
//
// Keys are derived with DiagramKey so every entry point computes identical
// keys for identical work.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}

// DiagramKey builds the cache key for a rendered diagram from the graph's
// canonical form and the render parameters. Canonical forms are unique per
// logical graph, so equal graphs share cache entries regardless of how their
// input text was spelled.
func DiagramKey(canonical, format string, shaded bool) string {
	return hashKey("diagram", canonical, format, shaded)
}
