package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tagcat/internal/config"
	"tagcat/internal/export"
	"tagcat/internal/ui"
)

// stdoutPath as --output writes the report to standard output
const stdoutPath = "-"

// ExportCommand handles the export command
type ExportCommand struct {
	config   *config.Config
	builder  *CatalogBuilder
	exporter *export.Exporter
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(cfg *config.Config, builder *CatalogBuilder, exporter *export.Exporter) *ExportCommand {
	return &ExportCommand{config: cfg, builder: builder, exporter: exporter}
}

// Execute runs the command
func (ec *ExportCommand) Execute(cmd *cobra.Command, args []string) error {
	writer, err := export.NewWriter(ec.config.OutputFormat)
	if err != nil {
		return err
	}

	catalog, err := ec.builder.Build(cmd.Context())
	if err != nil {
		return err
	}
	report := ec.exporter.BuildReport(catalog.Root, catalog.Files, catalog.Registry)

	path := ec.config.GetOutputPath()
	if path == stdoutPath {
		return writer.Write(cmd.OutOrStdout(), report)
	}
	if err := ec.exporter.Save(path, writer, report); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ui.NewFormatter(out, catalog.Root).PrintSummary(report.Meta)
	color.New(color.FgGreen).Fprintf(out, "✓ Report written to %s\n", path)
	return nil
}
