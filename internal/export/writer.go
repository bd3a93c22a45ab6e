// Package export writes the test catalog to JSON, YAML or CSV reports.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"tagcat/internal/domain"
)

// Writer encodes a report
type Writer interface {
	Write(w io.Writer, report *domain.Report) error
}

// NewWriter returns the writer for format: json, yaml or csv.
func NewWriter(format string) (Writer, error) {
	switch strings.ToLower(format) {
	case "json":
		return JSONWriter{}, nil
	case "yaml", "yml":
		return YAMLWriter{}, nil
	case "csv":
		return CSVWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// JSONWriter writes the whole report as indented JSON
type JSONWriter struct{}

func (JSONWriter) Write(w io.Writer, report *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}

// YAMLWriter writes the whole report as YAML
type YAMLWriter struct{}

func (YAMLWriter) Write(w io.Writer, report *domain.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}
	return enc.Close()
}

// CSVWriter writes one row per test case. Report metadata and issues
// have no place in the table and are left out.
type CSVWriter struct{}

func (CSVWriter) Write(w io.Writer, report *domain.Report) error {
	entries := report.TestCases
	if entries == nil {
		entries = []domain.ReportEntry{}
	}
	if err := gocsv.Marshal(&entries, w); err != nil {
		return fmt.Errorf("encode csv report: %w", err)
	}
	return nil
}
