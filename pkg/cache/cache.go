// Package cache provides pluggable caching for the layout pipeline.
//
// Four backends implement the Cache interface: FileCache for CLI use,
// RedisCache for shared server deployments, MemoryCache for single-process
// servers, and NullCache to disable caching.
// Keys are produced by a Keyer so every pipeline stage (tree, scene,
// artifact) gets a stable, collision-free namespace.
package cache

import (
	"context"
	"time"
)

// TTLs per pipeline stage. Content trees change rarely relative to how
// often scenes are requested; artifacts are cheap to keep around.
const (
	TTLTree     = 10 * time.Minute
	TTLScene    = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache stores opaque byte values under string keys with a TTL.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A TTL of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TreeKeyOpts are the options that distinguish cached content trees.
type TreeKeyOpts struct {
	Source string // file path or store key the tree was loaded from
}

// SceneKeyOpts are the layout options that distinguish cached scenes.
type SceneKeyOpts struct {
	GalaxySpacing  float64
	ViewportRadius float64
}

// ArtifactKeyOpts are the render options that distinguish cached artifacts.
type ArtifactKeyOpts struct {
	Format string
	Width  float64
	Height float64
}

// Keyer derives cache keys for each pipeline stage.
type Keyer interface {
	// TreeKey keys a loaded content tree.
	TreeKey(opts TreeKeyOpts) string

	// SceneKey keys an assembled scene by the content hash of its tree.
	SceneKey(treeHash string, opts SceneKeyOpts) string

	// ArtifactKey keys a rendered artifact by the hash of its scene.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the option structs into namespaced keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TreeKey generates a key for content-tree caching.
func (k *DefaultKeyer) TreeKey(opts TreeKeyOpts) string {
	return hashKey("tree", opts)
}

// SceneKey generates a key for scene caching.
func (k *DefaultKeyer) SceneKey(treeHash string, opts SceneKeyOpts) string {
	return hashKey("scene", treeHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}
