package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-tags/internal/cli"
	"github.com/pluqqy/pluqqy-tags/pkg/tags"
)

var pruneDryRun bool

// NewPruneCommand creates the prune command
func NewPruneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove references to tags that no longer exist",
		Long: `Remove labels, region references and locks that name a tag missing
from the workspace's tag list, then save the workspace.

Examples:
  # Show what would be removed
  pluqqy-tags prune --dry-run

  # Prune without confirmation
  pluqqy-tags prune --yes`,
		Args: cobra.NoArgs,
		RunE: runPrune,
	}

	cmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "Report dangling references without saving")

	return cmd
}

func runPrune(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	if err := ctx.RequireWorkspace(); err != nil {
		return err
	}
	registry, err := ctx.LoadRegistry()
	if err != nil {
		return err
	}

	result := registry.Prune()

	// Structured output carries only the result document
	format := outputFormat(cmd)
	text := format == string(cli.FormatText)
	if !text {
		if err := cli.OutputResults(cmd.OutOrStdout(), format, result); err != nil {
			return err
		}
	}

	if result.Total() == 0 {
		if text {
			cli.PrintInfo("Nothing to prune in %s", ctx.WorkspacePath)
		}
		return nil
	}

	if text {
		printPruneSummary(result)
	}
	if pruneDryRun {
		return nil
	}

	ok, err := cli.Confirm("Save the pruned workspace?", false)
	if err != nil {
		return err
	}
	if !ok {
		if text {
			cli.PrintInfo("Prune cancelled")
		}
		return nil
	}

	if err := ctx.Save(); err != nil {
		return err
	}
	if !text {
		return nil
	}
	cli.PrintSuccess("Pruned %d reference(s) from %s", result.Total(), ctx.WorkspacePath)
	return nil
}

func printPruneSummary(result tags.PruneResult) {
	if result.Labels > 0 {
		cli.PrintInfo("%d dangling label(s)", result.Labels)
	}
	if result.RegionRefs > 0 {
		cli.PrintInfo("%d dangling region reference(s)", result.RegionRefs)
	}
	if result.Locked > 0 {
		cli.PrintInfo("%d lock(s) on missing tags", result.Locked)
	}
}
