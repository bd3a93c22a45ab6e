package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"

	"tagcat/internal/domain"
	"tagcat/internal/registry"
	"tagcat/internal/testcase"
)

// Exporter builds reports from a registry and saves them
type Exporter struct {
	fs    afero.Fs
	clock clockwork.Clock
	newID func() string
}

// NewExporter creates an Exporter writing to fs and stamping reports with clock.
func NewExporter(fs afero.Fs, clock clockwork.Clock) *Exporter {
	return &Exporter{
		fs:    fs,
		clock: clock,
		newID: func() string { return uuid.NewString() },
	}
}

// BuildReport snapshots every registered test case, hidden ones included,
// in declaration order.
func (e *Exporter) BuildReport(root string, totalFiles int, reg *registry.Registry) *domain.Report {
	cases := reg.TestCases(registry.Query{IncludeHidden: true})
	issues := reg.Issues()

	report := &domain.Report{
		Meta: domain.ReportMeta{
			RunID:           e.newID(),
			Root:            root,
			TotalFiles:      totalFiles,
			TotalTestCases:  len(cases),
			HiddenTestCases: reg.HiddenCount(),
			TotalTags:       len(reg.Tags(registry.Query{IncludeHidden: true})),
			Issues:          len(issues),
			Timestamp:       e.clock.Now().UTC().Format(time.RFC3339),
		},
		TestCases: make([]domain.ReportEntry, 0, len(cases)),
		Issues:    issues,
	}
	for _, info := range cases {
		report.TestCases = append(report.TestCases, Entry(info))
	}
	return report
}

// Entry converts a test case into its exported form.
func Entry(info *testcase.Info) domain.ReportEntry {
	loc := info.Location()
	return domain.ReportEntry{
		Name:       info.Name(),
		ClassName:  info.ClassName(),
		File:       loc.File,
		Line:       loc.Line,
		Tags:       info.Tags(),
		LcaseTags:  info.LcaseTags(),
		TagSpec:    info.TagsAsString(),
		Properties: info.Properties().String(),
	}
}

// Save writes report to path, creating parent directories as needed.
func (e *Exporter) Save(path string, w Writer, report *domain.Report) error {
	if err := e.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := e.fs.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := w.Write(f, report); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report file: %w", err)
	}
	return nil
}
