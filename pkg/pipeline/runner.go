package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/horizonlabs/horizon/pkg/cache"
	"github.com/horizonlabs/horizon/pkg/observability"
	"github.com/horizonlabs/horizon/pkg/scene"
	"github.com/horizonlabs/horizon/pkg/universe"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → scene → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	u, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Universe = u
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.GalaxyCount = u.GalaxyCount()
	result.Stats.SystemCount = u.SystemCount()
	result.Stats.PlanetCount = u.PlanetCount()

	// Content hash keys the scene cache and identifies the tree in API
	// responses.
	if treeData, err := universe.Marshal(u); err == nil {
		result.TreeHash = cache.Hash(treeData)
	}

	r.Logger.Info("loaded universe",
		"galaxies", result.Stats.GalaxyCount,
		"systems", result.Stats.SystemCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Scene
	sceneStart := time.Now()
	s, sceneHit, err := r.BuildSceneWithCacheInfo(ctx, u, opts)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	result.Scene = s
	result.Stats.SceneTime = time.Since(sceneStart)
	result.CacheInfo.SceneHit = sceneHit

	r.Logger.Info("assembled scene",
		"galaxies", len(s.Galaxies),
		"camera", s.CameraDistance,
		"duration", result.Stats.SceneTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, s, u, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the content tree from the configured store and normalizes it.
// Trees with a stable Source are cached so remote stores are not hit on
// every request.
func (r *Runner) Load(ctx context.Context, opts Options) (*universe.Universe, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()
	hooks.OnLoadStart(ctx, opts.Source)
	start := time.Now()

	cacheKey := r.Keyer.TreeKey(opts.TreeKeyOpts())
	if opts.Refresh {
		opts.Store.Invalidate()
		_ = r.Cache.Delete(ctx, cacheKey)
	} else if opts.Source != "" {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if u, err := universe.Read(bytes.NewReader(data)); err == nil {
				cacheHooks.OnCacheHit(ctx, "tree")
				hooks.OnLoadComplete(ctx, opts.Source, u.GalaxyCount(), time.Since(start), nil)
				return u, nil
			}
			// Corrupt entry, fall through to the store.
		}
		cacheHooks.OnCacheMiss(ctx, "tree")
	}

	u, err := opts.Store.Load(ctx)
	if err != nil {
		hooks.OnLoadComplete(ctx, opts.Source, 0, time.Since(start), err)
		return nil, err
	}
	u = universe.Normalize(u)

	if opts.Source != "" {
		if data, err := universe.Marshal(u); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLTree); err == nil {
				cacheHooks.OnCacheSet(ctx, "tree", len(data))
			}
		}
	}

	hooks.OnLoadComplete(ctx, opts.Source, u.GalaxyCount(), time.Since(start), nil)
	return u, nil
}

// BuildSceneWithCacheInfo assembles the scene with caching and reports
// whether the result came from cache.
func (r *Runner) BuildSceneWithCacheInfo(ctx context.Context, u *universe.Universe, opts Options) (scene.Scene, bool, error) {
	opts.SetSceneDefaults()
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()
	hooks.OnSceneStart(ctx, u.GalaxyCount())
	start := time.Now()

	// The scene depends only on the tree's structure, so its content hash
	// plus the layout options fully determine the result.
	treeData, err := universe.Marshal(u)
	if err != nil {
		hooks.OnSceneComplete(ctx, time.Since(start), err)
		return scene.Scene{}, false, fmt.Errorf("serialize tree for cache key: %w", err)
	}
	cacheKey := r.Keyer.SceneKey(cache.Hash(treeData), opts.SceneKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := scene.Unmarshal(data)
			if err == nil {
				cacheHooks.OnCacheHit(ctx, "scene")
				hooks.OnSceneComplete(ctx, time.Since(start), nil)
				return cached, true, nil
			}
			// Corrupt entry, fall through to recompute.
		}
	}
	cacheHooks.OnCacheMiss(ctx, "scene")

	s := scene.Build(u, opts.SceneOptions())

	if data, err := scene.Marshal(s); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLScene); err == nil {
			cacheHooks.OnCacheSet(ctx, "scene", len(data))
		}
	}

	hooks.OnSceneComplete(ctx, time.Since(start), nil)
	return s, false, nil
}

// BuildScene is a convenience wrapper that discards the cache hit info.
func (r *Runner) BuildScene(ctx context.Context, u *universe.Universe, opts Options) (scene.Scene, error) {
	s, _, err := r.BuildSceneWithCacheInfo(ctx, u, opts)
	return s, err
}

// RenderWithCacheInfo generates artifacts with caching and reports whether
// every requested format came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s scene.Scene, u *universe.Universe, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	sceneData, err := scene.Marshal(s)
	if err != nil {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
		return nil, false, fmt.Errorf("serialize scene for cache key: %w", err)
	}
	sceneHash := cache.Hash(sceneData)

	// Try to get all formats from cache.
	allCached := true
	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}
	if allCached && len(artifacts) == len(opts.Formats) {
		cacheHooks.OnCacheHit(ctx, "artifact")
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
		return artifacts, true, nil
	}
	cacheHooks.OnCacheMiss(ctx, "artifact")

	rendered, err := RenderScene(ctx, s, u, opts)
	if err != nil {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			cacheHooks.OnCacheSet(ctx, "artifact", len(data))
		}
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, s scene.Scene, u *universe.Universe, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, s, u, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
