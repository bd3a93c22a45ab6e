package commands

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"tagcat/internal/collect"
	"tagcat/internal/config"
	"tagcat/internal/discovery"
	"tagcat/internal/registry"
	"tagcat/internal/testcase"
	"tagcat/internal/ui"
)

// Catalog is the result of scanning and registering a source tree
type Catalog struct {
	Root     string
	Files    int
	Registry *registry.Registry
}

// CatalogBuilder scans, parses and registers test declarations
type CatalogBuilder struct {
	config *config.Config
	fs     afero.Fs
	filter *discovery.Filter
}

// NewCatalogBuilder creates a new CatalogBuilder
func NewCatalogBuilder(cfg *config.Config, fs afero.Fs) *CatalogBuilder {
	return &CatalogBuilder{
		config: cfg,
		fs:     fs,
		filter: discovery.NewFilter(),
	}
}

// Build scans the test path and registers every declaration found.
// Files are parsed in parallel and registered in scan order.
func (b *CatalogBuilder) Build(ctx context.Context) (*Catalog, error) {
	cfg := b.config
	root := cfg.GetTestPath()

	scanner := discovery.NewScanner(b.fs, cfg.PathsToIgnore, cfg.SourceSuffixes)
	files, err := scanner.Scan(root)
	if err != nil {
		return nil, err
	}
	files = b.filter.FilterByName(files, cfg.Flags.NameFilter)
	log.Debug().Str("root", root).Int("files", len(files)).Msg("scanned sources")

	pool := collect.NewWorkerPool(cfg.Processors, discovery.NewParser(b.fs), collect.NewRoundRobinScheduler())
	if !cfg.Flags.NoProgress && len(files) > 0 {
		pool.SetProgress(ui.NewProgressBar(len(files)))
	}
	result, err := pool.Collect(ctx, files, cfg.FailFast)
	if err != nil {
		return nil, err
	}
	log.Debug().Dur("duration", result.Duration).Msg("parsed sources")

	var opts []testcase.Option
	if cfg.FilenameTags {
		opts = append(opts, testcase.WithFilenameTags())
	}
	reg := registry.New(testcase.NewContext(opts...), cfg.FailFast)
	for _, issue := range result.Issues {
		reg.AddIssue(issue)
	}
	if err := reg.RegisterFiles(result.Files); err != nil {
		return nil, err
	}

	return &Catalog{Root: root, Files: len(files), Registry: reg}, nil
}
