package commands

import (
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"tagcat/internal/cli"
	"tagcat/internal/config"
	"tagcat/internal/export"
	"tagcat/internal/logging"
	"tagcat/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	config *config.Config
	fs     afero.Fs

	List   *ListCommand
	Tags   *TagsCommand
	Export *ExportCommand
	Browse *BrowseCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, fs afero.Fs, clock clockwork.Clock) *Commands {
	builder := NewCatalogBuilder(cfg, fs)
	exporter := export.NewExporter(fs, clock)
	newViewer := func(showHidden bool) ui.Viewer { return ui.NewBrowser(showHidden) }

	return &Commands{
		config: cfg,
		fs:     fs,
		List:   NewListCommand(cfg, builder),
		Tags:   NewTagsCommand(cfg, builder),
		Export: NewExportCommand(cfg, builder, exporter),
		Browse: NewBrowseCommand(cfg, builder, exporter, newViewer),
	}
}

// Register registers all commands with cobra. Configuration is resolved
// once the flags are parsed, before any command runs.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := c.config.Resolve(c.fs, flags.ToConfigFlags()); err != nil {
			return err
		}
		return logging.Setup(c.config.LogLevel, os.Stderr)
	}
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.ConfigPath, "config", "", "Path to a tagcat.toml config file")
	pf.StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test detection should start")
	pf.StringVarP(&flags.NameFilter, "filter", "f", "", "Filter source files by name pattern (supports wildcards, e.g. '*_test.cpp' or '*widget*')")
	pf.IntVarP(&flags.Processors, "processors", "p", 0, "Number of files parsed in parallel (default from config)")
	pf.BoolVar(&flags.FailFast, "fail-fast", false, "Stop at the first declaration that cannot be registered")
	pf.BoolVar(&flags.FilenameTags, "filename-tags", false, "Tag every test case with #<file name>")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.BoolVar(&flags.NoProgress, "no-progress", false, "Do not show the progress bar")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List test cases",
		Long:  "Scan test sources and list the declared test cases with their tags",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().BoolVar(&flags.IncludeHidden, "hidden", false, "Include hidden test cases")
	listCmd.Flags().StringVar(&flags.Tag, "tag", "", "Only list test cases carrying this tag (case-insensitive)")
	listCmd.Flags().StringVar(&flags.Order, "order", "decl", "Listing order: decl or lex")
	listCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Show class, location and properties")
	rootCmd.AddCommand(listCmd)

	tagsCmd := &cobra.Command{
		Use:   "tags",
		Short: "List tags",
		Long:  "List every tag with the number of test cases carrying it, grouped case-insensitively",
		Args:  cobra.NoArgs,
		RunE:  c.Tags.Execute,
	}
	tagsCmd.Flags().BoolVar(&flags.IncludeHidden, "hidden", false, "Count hidden test cases too")
	rootCmd.AddCommand(tagsCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the test catalog",
		Long:  "Write every registered test case, hidden ones included, to a JSON, YAML or CSV report",
		Args:  cobra.NoArgs,
		RunE:  c.Export.Execute,
	}
	exportCmd.Flags().StringVar(&flags.Format, "format", "", "Report format: json, yaml or csv (default from config)")
	exportCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Report path, '-' for stdout (default build/test-catalog.<format>)")
	rootCmd.AddCommand(exportCmd)

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the test catalog interactively",
		Args:  cobra.NoArgs,
		RunE:  c.Browse.Execute,
	}
	browseCmd.Flags().BoolVar(&flags.IncludeHidden, "hidden", false, "Start with hidden test cases shown")
	rootCmd.AddCommand(browseCmd)
}
