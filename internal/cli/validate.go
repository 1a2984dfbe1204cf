package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/horizonlabs/horizon/pkg/universe"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [universe.json]",
		Short: "Validate a universe content tree",
		Long: `Validate a universe content tree.

Checks run bottom-up over the whole tree and every problem is reported,
not just the first one: missing names, malformed or duplicate planet
links, and duplicate IDs. The command exits non-zero when any problem
is found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}
}

func (c *CLI) runValidate(input string) error {
	u, err := universe.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load universe %s: %w", input, err)
	}

	errs := universe.Validate(u)
	if len(errs) == 0 {
		printSuccess("Universe is valid")
		printStats(u.GalaxyCount(), u.SystemCount(), false)
		return nil
	}

	printError("Found %d problem(s)", len(errs))
	for _, e := range errs {
		printDetail("%s", e)
	}
	return fmt.Errorf("%d validation error(s)", len(errs))
}
