package commands

import (
	"github.com/spf13/cobra"

	"tagcat/internal/config"
	"tagcat/internal/registry"
	"tagcat/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config  *config.Config
	builder *CatalogBuilder
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, builder *CatalogBuilder) *ListCommand {
	return &ListCommand{config: cfg, builder: builder}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := lc.config.Flags
	order, err := registry.ParseOrder(flags.Order)
	if err != nil {
		return err
	}

	catalog, err := lc.builder.Build(cmd.Context())
	if err != nil {
		return err
	}

	formatter := ui.NewFormatter(cmd.OutOrStdout(), catalog.Root)
	formatter.PrintTestList(catalog.Registry.TestCases(registry.Query{
		IncludeHidden: flags.IncludeHidden,
		Tag:           flags.Tag,
		Order:         order,
	}), flags.Verbose)
	formatter.PrintIssues(catalog.Registry.Issues())
	return nil
}
