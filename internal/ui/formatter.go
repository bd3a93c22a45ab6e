// Package ui renders the test catalog on the terminal.
package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"tagcat/internal/domain"
	"tagcat/internal/registry"
	"tagcat/internal/testcase"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	gray   = color.New(color.FgHiBlack)
)

// Formatter formats and displays output
type Formatter struct {
	out  io.Writer
	root string
}

// NewFormatter creates a Formatter writing to out. Locations are shown
// relative to root when possible.
func NewFormatter(out io.Writer, root string) *Formatter {
	return &Formatter{out: out, root: root}
}

// PrintTestList prints the test cases with their tags. Verbose output adds
// the declaring class, source location and properties.
func (f *Formatter) PrintTestList(cases []*testcase.Info, verbose bool) {
	if len(cases) == 0 {
		yellow.Fprintln(f.out, "No matching test cases")
		return
	}

	green.Fprintf(f.out, "Found %d test case(s):\n\n", len(cases))
	for i, info := range cases {
		isLast := i == len(cases)-1
		branch, stem := "├── ", "│   "
		if isLast {
			branch, stem = "└── ", "    "
		}

		fmt.Fprintf(f.out, "%s%s", branch, yellow.Sprint(info.Name()))
		if info.IsHidden() {
			fmt.Fprint(f.out, gray.Sprint(" (hidden)"))
		}
		fmt.Fprintln(f.out)

		if tags := info.TagsAsString(); tags != "" {
			fmt.Fprintf(f.out, "%s    %s\n", stem, cyan.Sprint(tags))
		}
		if !verbose {
			continue
		}
		if info.ClassName() != "" {
			fmt.Fprintf(f.out, "%s    class: %s\n", stem, info.ClassName())
		}
		fmt.Fprintf(f.out, "%s    at: %s\n", stem, f.relLocation(info.Location()))
		if props := info.Properties(); props != testcase.None {
			fmt.Fprintf(f.out, "%s    properties: %s\n", stem, props)
		}
	}
}

// PrintTags prints every tag with the number of test cases carrying it.
func (f *Formatter) PrintTags(tags []registry.TagSummary) {
	if len(tags) == 0 {
		yellow.Fprintln(f.out, "No tags found")
		return
	}

	green.Fprintf(f.out, "Found %d tag(s):\n\n", len(tags))
	for _, tag := range tags {
		spellings := make([]string, len(tag.Spellings))
		for i, s := range tag.Spellings {
			spellings[i] = "[" + s + "]"
		}
		fmt.Fprintf(f.out, "  %4d  %s\n", tag.Count, cyan.Sprint(strings.Join(spellings, " ")))
	}
}

// PrintIssues prints the declarations that could not be registered.
func (f *Formatter) PrintIssues(issues []domain.Issue) {
	if len(issues) == 0 {
		return
	}

	fmt.Fprintln(f.out)
	red.Fprintf(f.out, "✗ %d declaration(s) skipped:\n", len(issues))
	for _, issue := range issues {
		fmt.Fprintf(f.out, "  %s %s\n", red.Sprintf("[%s]", issue.Kind), f.relLocation(issue.Location))
		fmt.Fprintf(f.out, "      %s\n", issue.Message)
	}
}

// PrintSummary prints the totals of a catalog report as a table.
func (f *Formatter) PrintSummary(meta domain.ReportMeta) {
	rows := []struct {
		label string
		value any
		c     *color.Color
	}{
		{"Source Files", meta.TotalFiles, green},
		{"Test Cases", meta.TotalTestCases, green},
		{"Hidden Test Cases", meta.HiddenTestCases, yellow},
		{"Distinct Tags", meta.TotalTags, cyan},
		{"Skipped Declarations", meta.Issues, red},
		{"Timestamp", meta.Timestamp, gray},
	}

	fmt.Fprintln(f.out, "┌──────────────────────────┬─────────────────────────────┐")
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-24s │ %s │\n", row.label, row.c.Sprintf("%-27v", row.value))
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, "├──────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Fprintln(f.out, "└──────────────────────────┴─────────────────────────────┘")
}

func (f *Formatter) relLocation(loc domain.SourceLocation) string {
	if f.root != "" && loc.File != "" {
		if rel, err := filepath.Rel(f.root, loc.File); err == nil && !strings.HasPrefix(rel, "..") {
			loc.File = rel
		}
	}
	return loc.String()
}
