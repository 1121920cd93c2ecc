// Package cache provides pluggable byte caches and deterministic cache keys
// for the layout and render stages.
//
// Three backends are included: FileCache for CLI usage, RedisCache for the
// HTTP server, and NullCache to disable caching entirely. All backends store
// opaque byte slices; serialization is the caller's concern.
package cache

import (
	"context"
	"time"
)

// Cache TTLs per pipeline stage. Layouts are cheap to recompute, artifacts
// less so.
const (
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented cache with per-entry TTLs.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss;
// errors are reserved for backend failures. A ttl of 0 in Set means the
// entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// LayoutKeyOpts captures every input that affects a computed layout besides
// the chart itself.
type LayoutKeyOpts struct {
	Room     string  `json:"room"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Padding  float64 `json:"padding"`
	SnapGrid bool    `json:"snap_grid"`
}

// ArtifactKeyOpts captures every input that affects a rendered artifact
// besides the layout itself.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Style    string `json:"style"`
	ShowGrid bool   `json:"show_grid"`
}

// Keyer generates cache keys for pipeline stages. Implementations must be
// deterministic: equal inputs always yield equal keys.
type Keyer interface {
	LayoutKey(chartHash string, opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the stage inputs into namespaced SHA-256 keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(chartHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", chartHash, opts)
}

// ArtifactKey generates a key for rendered artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
