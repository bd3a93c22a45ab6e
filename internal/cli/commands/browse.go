package commands

import (
	"github.com/spf13/cobra"

	"tagcat/internal/config"
	"tagcat/internal/export"
	"tagcat/internal/ui"
)

// ViewerFactory creates the viewer used by browse
type ViewerFactory func(showHidden bool) ui.Viewer

// BrowseCommand handles the browse command
type BrowseCommand struct {
	config    *config.Config
	builder   *CatalogBuilder
	exporter  *export.Exporter
	newViewer ViewerFactory
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(cfg *config.Config, builder *CatalogBuilder, exporter *export.Exporter, newViewer ViewerFactory) *BrowseCommand {
	return &BrowseCommand{config: cfg, builder: builder, exporter: exporter, newViewer: newViewer}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	catalog, err := bc.builder.Build(cmd.Context())
	if err != nil {
		return err
	}
	report := bc.exporter.BuildReport(catalog.Root, catalog.Files, catalog.Registry)
	return bc.newViewer(bc.config.Flags.IncludeHidden).View(report)
}
