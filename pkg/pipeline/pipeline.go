// Package pipeline provides the core layout pipeline for Horizon.
//
// This package implements the complete load → scene → render pipeline that
// can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and normalize the content tree from its store
//  2. Scene: Assemble the spatial layout (galaxy field, rings, orbits)
//  3. Render: Generate output in various formats (JSON, SVG, PNG, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Store:   universe.NewFileStore("universe.json"),
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	u, err := runner.Load(ctx, opts)
//
//	// Assemble a scene from an existing tree
//	s, err := runner.BuildScene(ctx, u, opts)
//
//	// Render an existing scene
//	artifacts, err := runner.Render(ctx, s, u, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/horizonlabs/horizon/pkg/cache"
	"github.com/horizonlabs/horizon/pkg/layout"
	"github.com/horizonlabs/horizon/pkg/scene"
	"github.com/horizonlabs/horizon/pkg/universe"
)

// Default values shared by the CLI and API so every entry point agrees on
// what an unset option means.
const (
	// DefaultGalaxySpacing is the center-to-center galaxy distance.
	DefaultGalaxySpacing = layout.DefaultGalaxySpacing

	// DefaultViewportRadius disables viewport fitting. Callers opt in by
	// setting a positive radius.
	DefaultViewportRadius = 0.0

	// DefaultWidth is the default artifact width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default artifact height in pixels.
	DefaultHeight = 800.0
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatDOT:  true,
}

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Source  string `json:"source,omitempty"` // display name for the tree source
	Refresh bool   `json:"refresh,omitempty"`

	// Scene options
	GalaxySpacing  float64 `json:"galaxy_spacing,omitempty"`
	ViewportRadius float64 `json:"viewport_radius,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Width   float64  `json:"width,omitempty"`
	Height  float64  `json:"height,omitempty"`

	// Runtime options (not serialized)
	Store  universe.Store `json:"-"`
	Logger *log.Logger    `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Universe is the loaded, normalized content tree.
	Universe *universe.Universe

	// TreeHash is the content hash of the tree.
	TreeHash string

	// Scene contains the assembled spatial layout.
	Scene scene.Scene

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	GalaxyCount int
	SystemCount int
	PlanetCount int
	LoadTime    time.Duration
	SceneTime   time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SceneHit  bool // Whether the scene came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, svg, png, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetSceneDefaults()
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for the load stage.
func (o *Options) ValidateForLoad() error {
	if o.Store == nil {
		return fmt.Errorf("store is required")
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return nil
}

// SetSceneDefaults sets default values for scene assembly.
func (o *Options) SetSceneDefaults() {
	if o.GalaxySpacing <= 0 {
		o.GalaxySpacing = DefaultGalaxySpacing
	}
	if o.ViewportRadius < 0 {
		o.ViewportRadius = DefaultViewportRadius
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetSceneDefaults()
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// SceneOptions converts pipeline options to scene assembly options.
func (o *Options) SceneOptions() scene.Options {
	return scene.Options{
		GalaxySpacing:  o.GalaxySpacing,
		ViewportRadius: o.ViewportRadius,
		Logger:         o.Logger,
	}
}

// TreeKeyOpts returns cache key options for the loaded tree.
func (o *Options) TreeKeyOpts() cache.TreeKeyOpts {
	return cache.TreeKeyOpts{Source: o.Source}
}

// SceneKeyOpts returns cache key options for scene assembly.
func (o *Options) SceneKeyOpts() cache.SceneKeyOpts {
	return cache.SceneKeyOpts{
		GalaxySpacing:  o.GalaxySpacing,
		ViewportRadius: o.ViewportRadius,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Width:  o.Width,
		Height: o.Height,
	}
}
