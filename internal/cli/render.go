package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/horizonlabs/horizon/pkg/pipeline"
	"github.com/horizonlabs/horizon/pkg/scene"
	"github.com/horizonlabs/horizon/pkg/universe"
)

// renderCommand creates the render command for generating artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [universe.json]",
		Short: "Render a universe to scene JSON, SVG, PNG, or DOT",
		Long: `Render a universe content tree to output artifacts.

Formats:
  json  assembled scene (positions, orbits, sizes)
  svg   top-down starmap projection of the scene
  dot   Graphviz digraph of the content tree
  png   the dot graph rasterized via Graphviz

Multiple formats can be requested at once (comma-separated). Artifacts
are cached by content hash, so re-rendering an unchanged universe is
instant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), svg, png, dot (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().Float64Var(&opts.GalaxySpacing, "spacing", 0, "galaxy center-to-center spacing")
	cmd.Flags().Float64Var(&opts.ViewportRadius, "viewport", 0, "viewport radius cap for planet orbits (0 disables)")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "artifact width in pixels")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "artifact height in pixels")

	return cmd
}

// runRender executes the full pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	c.applyConfigDefaults(&opts)
	opts.Store = universe.NewFileStore(input)

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()
	prog := newProgress(loggerFromContext(ctx))

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(result.Artifacts)))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}

	printSuccess("Render complete")
	for _, format := range opts.Formats {
		path := outputPath(base, format, len(opts.Formats) == 1 && output != "")
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(result.Stats.GalaxyCount, result.Stats.SystemCount, result.CacheInfo.RenderHit)

	return nil
}

// outputPath decides the file name for a format. An explicit --output with a
// single format is used verbatim; otherwise the format becomes the extension.
func outputPath(base, format string, exact bool) string {
	if exact {
		return base
	}
	ext := "." + format
	if format == pipeline.FormatJSON {
		ext = ".scene.json"
	}
	return base + ext
}

// readSceneOrBuild loads a scene.json directly, or assembles one when the
// input is a universe document. Used by explore to accept either file kind.
func readSceneOrBuild(path string) (scene.Scene, *universe.Universe, error) {
	// A scene document always carries its spacing; a universe never does.
	if s, err := scene.ReadFile(path); err == nil && s.GalaxySpacing > 0 {
		return s, nil, nil
	}
	u, err := universe.ReadFile(path)
	if err != nil {
		return scene.Scene{}, nil, err
	}
	universe.Normalize(u)
	return scene.Build(u, scene.Options{}), u, nil
}
