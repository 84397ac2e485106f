package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-tags/cmd/commands"
	"github.com/pluqqy/pluqqy-tags/internal/cli"
	"github.com/pluqqy/pluqqy-tags/pkg/files"
	"github.com/pluqqy/pluqqy-tags/pkg/logging"
	"github.com/pluqqy/pluqqy-tags/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	printOnExit bool
	saveOnExit  bool
)

var rootCmd = &cobra.Command{
	Use:   "pluqqy-tags [workspace.yaml]",
	Short: "Terminal tag editor for labeling regions",
	Long: `pluqqy-tags edits the tag list of a labeling workspace. The tag panel
creates, renames, recolors, locks, reorders and deletes tags; the canvas
pane selects regions to apply tags to.

Workspaces are plain YAML files. Settings are read from
~/.pluqqy-tags/settings.yaml (or --config) and PLUQQY_TAGS_* variables.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pluqqy-tags",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pluqqy-tags version %s\n", version)
	},
}

func init() {
	commands.Register(rootCmd)
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.Flags()
	flags.Bool("add-box", false, "Show the add-tag input on start")
	flags.Bool("search-box", false, "Show the search input on start")
	flags.String("placeholder", "", "Placeholder text of the add-tag input")
	flags.Bool("trace", false, "Write JSON trace entries to the log file")
	flags.String("log-file", "", "Log file path")
	flags.BoolVar(&printOnExit, "print", false, "Print the workspace as YAML on exit")
	flags.BoolVar(&saveOnExit, "save", false, "Save the workspace file on exit")
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := newContext(cmd, args)

	settings, err := ctx.LoadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	logging.Configure(settings.Logging.File)
	logging.SetTraceEnabled(settings.Logging.Trace)

	registry, err := ctx.LoadRegistry()
	if err != nil {
		return err
	}

	app := tui.NewApp(registry, settings, ctx.WorkspaceName())
	p := tea.NewProgram(app, programOptions()...)
	if _, err := p.Run(); err != nil {
		logging.Error(err)
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}

	if saveOnExit {
		if err := ctx.Save(); err != nil {
			return err
		}
		cli.PrintSuccess("Saved %s", ctx.WorkspacePath)
	}
	if printOnExit {
		return files.WriteWorkspace(cmd.OutOrStdout(), app.Workspace())
	}
	return nil
}

// programOptions enables reporting of plain pointer movement, which drives
// tag and label hover highlighting
func programOptions() []tea.ProgramOption {
	return []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}
}

func newContext(cmd *cobra.Command, args []string) *cli.CommandContext {
	workspace, _ := cmd.Flags().GetString("workspace")
	if len(args) > 0 {
		workspace = args[0]
	}
	config, _ := cmd.Flags().GetString("config")
	return cli.NewCommandContext(workspace, config)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
