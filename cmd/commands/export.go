package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-tags/internal/cli"
	"github.com/pluqqy/pluqqy-tags/pkg/files"
)

var exportFile string

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the normalized workspace",
		Long: `Write the workspace with defaults filled in (tag types, formats and
palette). YAML goes to stdout unless --file is given; -o json prints JSON.

Examples:
  pluqqy-tags export
  pluqqy-tags export -o json
  pluqqy-tags export --file normalized.yaml`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportFile, "file", "f", "", "Write to a file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	if err := ctx.RequireWorkspace(); err != nil {
		return err
	}
	ws, err := files.LoadWorkspace(ctx.WorkspacePath)
	if err != nil {
		return err
	}

	if exportFile != "" {
		if err := files.SaveWorkspace(exportFile, ws); err != nil {
			return err
		}
		cli.PrintSuccess("Exported %s to %s", ctx.WorkspacePath, exportFile)
		return nil
	}

	if format := outputFormat(cmd); format == string(cli.FormatJSON) {
		return cli.OutputResults(cmd.OutOrStdout(), format, ws)
	}
	return files.WriteWorkspace(cmd.OutOrStdout(), ws)
}

