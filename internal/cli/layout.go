package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/horizonlabs/horizon/pkg/pipeline"
	"github.com/horizonlabs/horizon/pkg/scene"
	"github.com/horizonlabs/horizon/pkg/universe"
)

// layoutCommand creates the layout command for assembling scenes.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [universe.json]",
		Short: "Compute the spatial layout for a universe",
		Long: `Compute the spatial layout for a universe content tree.

The layout command reads a universe.json file, places each galaxy in the
field, distributes solar systems and free stars on interior rings, and
spaces every system's planet orbits. The output is a scene.json file the
render command and any 3D explorer can consume.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.scene.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().Float64Var(&opts.GalaxySpacing, "spacing", 0, "galaxy center-to-center spacing")
	cmd.Flags().Float64Var(&opts.ViewportRadius, "viewport", 0, "viewport radius cap for planet orbits (0 disables)")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "reload the tree, bypassing memoized state")

	return cmd
}

// runLayout loads the universe, assembles the scene, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	c.applyConfigDefaults(&opts)
	opts.Store = universe.NewFileStore(input)

	u, err := runner.Load(ctx, opts)
	if err != nil {
		return fmt.Errorf("load universe %s: %w", input, err)
	}

	spinner := newSpinnerWithContext(ctx, "Assembling scene...")
	spinner.Start()
	prog := newProgress(loggerFromContext(ctx))

	s, cacheHit, err := runner.BuildSceneWithCacheInfo(ctx, u, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("assemble scene: %w", err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Assembled %d galaxies", u.GalaxyCount()))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".scene.json"
	}

	if err := scene.WriteFile(s, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(u.GalaxyCount(), u.SystemCount(), cacheHit)
	printNewline()
	printNextStep("Render", "horizon render "+outputPath)

	return nil
}
