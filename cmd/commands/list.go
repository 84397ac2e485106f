package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-tags/internal/cli"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Workspace string     `json:"workspace" yaml:"workspace"`
	Tags      []ListItem `json:"tags" yaml:"tags"`
	Count     int        `json:"count" yaml:"count"`
}

// ListItem represents a single tag in the list
type ListItem struct {
	Name    string `json:"name" yaml:"name"`
	Color   string `json:"color" yaml:"color"`
	Type    string `json:"type" yaml:"type"`
	Format  string `json:"format" yaml:"format"`
	Labels  int    `json:"labels" yaml:"labels"`
	Regions int    `json:"regions" yaml:"regions"`
	Locked  bool   `json:"locked,omitempty" yaml:"locked,omitempty"`
}

var listLockedOnly bool

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tags of a workspace",
		Long: `List every tag in the workspace in display order, with its color,
type, format and how often it is used.

Examples:
  # List all tags
  pluqqy-tags list

  # Only locked tags, as JSON
  pluqqy-tags list --locked -o json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().BoolVar(&listLockedOnly, "locked", false, "Show only locked tags")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	if err := ctx.RequireWorkspace(); err != nil {
		return err
	}
	registry, err := ctx.LoadRegistry()
	if err != nil {
		return err
	}

	result := ListResult{Workspace: ctx.WorkspacePath, Tags: []ListItem{}}
	for _, tag := range registry.Tags() {
		stats := registry.CountTagUsage(tag.Name)
		if listLockedOnly && !stats.Locked {
			continue
		}
		result.Tags = append(result.Tags, ListItem{
			Name:    tag.Name,
			Color:   tag.Color,
			Type:    string(tag.Type),
			Format:  string(tag.Format),
			Labels:  stats.LabelCount,
			Regions: stats.RegionCount,
			Locked:  stats.Locked,
		})
	}
	result.Count = len(result.Tags)

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	if result.Count == 0 {
		cli.PrintInfo("No tags in %s", ctx.WorkspacePath)
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("NAME", "COLOR", "TYPE", "FORMAT", "LABELS", "REGIONS", "LOCKED")
	for _, item := range result.Tags {
		locked := ""
		if item.Locked {
			locked = "yes"
		}
		table.Row(
			cli.TruncateString(item.Name, 40),
			item.Color,
			item.Type,
			item.Format,
			strconv.Itoa(item.Labels),
			strconv.Itoa(item.Regions),
			locked,
		)
	}
	table.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d tag(s)\n", result.Count)
	return nil
}
