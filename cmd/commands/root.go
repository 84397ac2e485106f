package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-tags/internal/cli"
	"github.com/pluqqy/pluqqy-tags/pkg/files"
)

// Register adds the global flags and every subcommand to root
func Register(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.StringP("workspace", "w", files.DefaultWorkspaceFile, "Workspace file")
	flags.String("config", "", "Settings file (default ~/.pluqqy-tags/settings.yaml)")
	flags.StringP("output", "o", "text", "Output format: text, json or yaml")
	flags.BoolP("quiet", "q", false, "Suppress informational output")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("yes", "y", false, "Answer yes to every confirmation")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		noColor, _ := cmd.Flags().GetBool("no-color")
		yes, _ := cmd.Flags().GetBool("yes")
		cli.SetGlobalFlags(quiet, noColor, yes)
		cli.SetIO(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())

		output, _ := cmd.Flags().GetString("output")
		return cli.ValidateOutputFormat(output)
	}

	root.AddCommand(
		NewListCommand(),
		NewUsageCommand(),
		NewPaletteCommand(),
		NewValidateCommand(),
		NewPruneCommand(),
		NewExportCommand(),
	)
}

func commandContext(cmd *cobra.Command) *cli.CommandContext {
	workspace, _ := cmd.Flags().GetString("workspace")
	config, _ := cmd.Flags().GetString("config")
	return cli.NewCommandContext(workspace, config)
}

func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("output")
	return format
}
