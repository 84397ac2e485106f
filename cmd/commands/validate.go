package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-tags/internal/cli"
	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

// Problem is one issue found in a workspace
type Problem struct {
	Kind    string `json:"kind" yaml:"kind"`
	Subject string `json:"subject" yaml:"subject"`
	Message string `json:"message" yaml:"message"`
}

// ValidateResult represents the output structure for validate command
type ValidateResult struct {
	Workspace string    `json:"workspace" yaml:"workspace"`
	Valid     bool      `json:"valid" yaml:"valid"`
	Problems  []Problem `json:"problems" yaml:"problems"`
}

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a workspace for invalid tags and dangling references",
		Long: `Check every tag name the way the tag panel does (not empty, shorter
than 128 characters, unique ignoring case), check tag colors, and report
labels, region references and locks that name missing tags.

Exits with an error when any problem is found.

Examples:
  pluqqy-tags validate
  pluqqy-tags validate -w birds.yaml -o json`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	if err := ctx.RequireWorkspace(); err != nil {
		return err
	}
	registry, err := ctx.LoadRegistry()
	if err != nil {
		return err
	}

	result := ValidateResult{
		Workspace: ctx.WorkspacePath,
		Problems:  validateTags(registry.Tags()),
	}
	for _, l := range registry.OrphanedLabels() {
		result.Problems = append(result.Problems, Problem{
			Kind:    "label",
			Subject: l.Region,
			Message: fmt.Sprintf("label references missing tag %q", l.Label),
		})
	}
	result.Problems = append(result.Problems, validateReferences(registry.Tags(), registry.Regions(), registry.Locked())...)
	result.Valid = len(result.Problems) == 0

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		if err := cli.OutputResults(cmd.OutOrStdout(), format, result); err != nil {
			return err
		}
	} else if result.Valid {
		cli.PrintSuccess("%s is valid", ctx.WorkspacePath)
	} else {
		table := cli.NewTableFormatter(cmd.OutOrStdout())
		table.Header("KIND", "SUBJECT", "PROBLEM")
		for _, p := range result.Problems {
			table.Row(p.Kind, cli.TruncateString(p.Subject, 40), p.Message)
		}
		table.Flush()
	}

	if !result.Valid {
		return fmt.Errorf("%s has %d problem(s)", ctx.WorkspacePath, len(result.Problems))
	}
	return nil
}

// validateTags checks each tag against the ones before it, so the first of
// two colliding names is the valid one
func validateTags(tagList []models.Tag) []Problem {
	problems := []Problem{}
	for i, tag := range tagList {
		if err := models.ValidateTagName(tag.Name, tagList[:i]); err != nil {
			problems = append(problems, Problem{Kind: "tag", Subject: tag.Name, Message: err.Error()})
		}
		if tag.Color != "" {
			if err := cli.ValidateHexColor(tag.Color); err != nil {
				problems = append(problems, Problem{Kind: "color", Subject: tag.Name, Message: err.Error()})
			}
		}
		if _, ok := models.ParseTagType(string(tag.Type)); !ok {
			problems = append(problems, Problem{Kind: "type", Subject: tag.Name, Message: fmt.Sprintf("unknown type %q", tag.Type)})
		}
		if _, ok := models.ParseTagFormat(string(tag.Format)); !ok {
			problems = append(problems, Problem{Kind: "format", Subject: tag.Name, Message: fmt.Sprintf("unknown format %q", tag.Format)})
		}
	}
	return problems
}

func validateReferences(tagList []models.Tag, regions []models.Region, locked []string) []Problem {
	var problems []Problem
	for _, region := range regions {
		for _, name := range region.Tags {
			if models.FindTag(tagList, name) < 0 {
				problems = append(problems, Problem{
					Kind:    "region",
					Subject: region.ID,
					Message: fmt.Sprintf("region references missing tag %q", name),
				})
			}
		}
	}
	for _, name := range locked {
		if models.FindTag(tagList, name) < 0 {
			problems = append(problems, Problem{
				Kind:    "lock",
				Subject: name,
				Message: fmt.Sprintf("locked tag %q does not exist", name),
			})
		}
	}
	return problems
}
