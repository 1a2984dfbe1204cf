package pipeline

import (
	"context"
	"fmt"

	"github.com/horizonlabs/horizon/pkg/render/starmap"
	"github.com/horizonlabs/horizon/pkg/render/treemap"
	"github.com/horizonlabs/horizon/pkg/scene"
	"github.com/horizonlabs/horizon/pkg/universe"
)

// RenderScene generates output artifacts in the requested formats.
//
// json and svg derive from the scene alone. dot and png draw the content
// tree and therefore need the universe; passing nil for those formats is
// an error.
func RenderScene(ctx context.Context, s scene.Scene, u *universe.Universe, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = scene.Marshal(s)
		case FormatSVG:
			data = starmap.RenderSVG(s, starmap.Options{
				Width:  opts.Width,
				Height: opts.Height,
			})
		case FormatDOT:
			if u == nil {
				return nil, fmt.Errorf("dot output requires the content tree")
			}
			data = []byte(treemap.ToDOT(u))
		case FormatPNG:
			if u == nil {
				return nil, fmt.Errorf("png output requires the content tree")
			}
			data, err = treemap.RenderPNG(ctx, treemap.ToDOT(u))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// RenderSceneData renders output from serialized scene data. Useful when
// the scene was computed elsewhere (e.g. cached or loaded from disk).
func RenderSceneData(ctx context.Context, sceneData []byte, u *universe.Universe, opts Options) (map[string][]byte, error) {
	s, err := scene.Unmarshal(sceneData)
	if err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return RenderScene(ctx, s, u, opts)
}
