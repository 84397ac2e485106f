package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-tags/internal/cli"
	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

// UsageResult represents the output structure for usage command
type UsageResult struct {
	Tag         string         `json:"tag" yaml:"tag"`
	Color       string         `json:"color" yaml:"color"`
	Locked      bool           `json:"locked" yaml:"locked"`
	Labels      []models.Label `json:"labels" yaml:"labels"`
	Regions     []string       `json:"regions" yaml:"regions"`
	LabelCount  int            `json:"label_count" yaml:"label_count"`
	RegionCount int            `json:"region_count" yaml:"region_count"`
}

// NewUsageCommand creates the usage command
func NewUsageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usage <tag>",
		Short: "Show where a tag is used",
		Long: `Show the labels and regions that reference a tag. Tag names are
matched case-insensitively.

Examples:
  # Show usage of a tag
  pluqqy-tags usage sparrow

  # Output as JSON
  pluqqy-tags usage sparrow -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runUsage,
	}

	return cmd
}

func runUsage(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	if err := ctx.RequireWorkspace(); err != nil {
		return err
	}
	registry, err := ctx.LoadRegistry()
	if err != nil {
		return err
	}

	tagList := registry.Tags()
	idx := models.FindTag(tagList, args[0])
	if idx < 0 {
		return fmt.Errorf("tag not found: %s", args[0])
	}
	tag := tagList[idx]

	stats := registry.CountTagUsage(tag.Name)
	result := UsageResult{
		Tag:         tag.Name,
		Color:       tag.Color,
		Locked:      stats.Locked,
		Labels:      models.LabelsForTag(registry.Labels(), tag.Name),
		Regions:     []string{},
		LabelCount:  stats.LabelCount,
		RegionCount: stats.RegionCount,
	}
	if result.Labels == nil {
		result.Labels = []models.Label{}
	}
	for _, region := range registry.Regions() {
		if region.HasTag(tag.Name) {
			result.Regions = append(result.Regions, region.ID)
		}
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}
	return printUsageTable(cmd, result)
}

func printUsageTable(cmd *cobra.Command, result UsageResult) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Tag: %s\n", cli.ColorizeTag(result.Tag, result.Color))
	if result.Locked {
		fmt.Fprintln(out, "Locked: yes")
	}
	fmt.Fprintln(out)

	if result.RegionCount == 0 && result.LabelCount == 0 {
		cli.PrintInfo("Tag %q is not used", result.Tag)
		return nil
	}

	table := cli.NewTableFormatter(out)
	table.Header("REGION", "LABELED")
	labeled := make(map[string]bool, len(result.Labels))
	for _, l := range result.Labels {
		labeled[l.Region] = true
	}
	for _, id := range result.Regions {
		mark := ""
		if labeled[id] {
			mark = "yes"
		}
		table.Row(id, mark)
	}
	table.Flush()

	fmt.Fprintf(out, "\nApplied to %d region(s), %d label(s)\n", result.RegionCount, result.LabelCount)
	return nil
}
