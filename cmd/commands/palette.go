package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-tags/internal/cli"
)

// PaletteEntry is one palette color and the tags using it
type PaletteEntry struct {
	Color  string   `json:"color" yaml:"color"`
	UsedBy []string `json:"used_by" yaml:"used_by"`
}

// NewPaletteCommand creates the palette command
func NewPaletteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print the color palette new tags draw from",
		Long: `Print the palette used to color new tags, in the order colors are
handed out. The settings palette wins over the workspace palette.

Examples:
  pluqqy-tags palette
  pluqqy-tags palette -o yaml`,
		Args: cobra.NoArgs,
		RunE: runPalette,
	}

	return cmd
}

func runPalette(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	registry, err := ctx.LoadRegistry()
	if err != nil {
		return err
	}

	tagList := registry.Tags()
	palette := ctx.Palette()
	entries := make([]PaletteEntry, 0, len(palette))
	for _, color := range palette {
		entry := PaletteEntry{Color: color, UsedBy: []string{}}
		for _, tag := range tagList {
			if strings.EqualFold(tag.Color, color) {
				entry.UsedBy = append(entry.UsedBy, tag.Name)
			}
		}
		entries = append(entries, entry)
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, entries)
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("COLOR", "USED BY")
	for _, entry := range entries {
		table.Row(cli.Swatch(entry.Color), strings.Join(entry.UsedBy, ", "))
	}
	table.Flush()
	return nil
}
