package commands

import (
	"github.com/spf13/cobra"

	"tagcat/internal/config"
	"tagcat/internal/registry"
	"tagcat/internal/ui"
)

// TagsCommand handles the tags command
type TagsCommand struct {
	config  *config.Config
	builder *CatalogBuilder
}

// NewTagsCommand creates a new TagsCommand
func NewTagsCommand(cfg *config.Config, builder *CatalogBuilder) *TagsCommand {
	return &TagsCommand{config: cfg, builder: builder}
}

// Execute runs the command
func (tc *TagsCommand) Execute(cmd *cobra.Command, args []string) error {
	catalog, err := tc.builder.Build(cmd.Context())
	if err != nil {
		return err
	}

	formatter := ui.NewFormatter(cmd.OutOrStdout(), catalog.Root)
	formatter.PrintTags(catalog.Registry.Tags(registry.Query{IncludeHidden: tc.config.Flags.IncludeHidden}))
	formatter.PrintIssues(catalog.Registry.Issues())
	return nil
}
