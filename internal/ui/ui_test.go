package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagcat/internal/domain"
	"tagcat/internal/registry"
	"tagcat/internal/testcase"
)

func init() {
	color.NoColor = true
}

func newInfo(t *testing.T, name, spec string, line int) *testcase.Info {
	t.Helper()
	info, err := testcase.New(testcase.NewContext(), domain.Declaration{
		Name:     name,
		Tags:     spec,
		Location: domain.SourceLocation{File: "/project/tests/io_test.cpp", Line: line},
	})
	require.NoError(t, err)
	return info
}

func TestFormatter_PrintTestList(t *testing.T) {
	cases := []*testcase.Info{
		newInfo(t, "reads file", "[io][Disk]", 3),
		newInfo(t, "huge file", "[io][.][!mayfail]", 9),
	}

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf, "/project").PrintTestList(cases, false)

		out := buf.String()
		assert.Contains(t, out, "Found 2 test case(s)")
		assert.Contains(t, out, "├── reads file\n│       [Disk][io]\n")
		assert.Contains(t, out, "└── huge file (hidden)\n        [io]\n")
		assert.NotContains(t, out, "at:")
	})

	t.Run("verbose", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf, "/project").PrintTestList(cases, true)

		out := buf.String()
		assert.Contains(t, out, "at: tests/io_test.cpp:3")
		assert.Contains(t, out, "properties: hidden|mayfail")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf, "").PrintTestList(nil, false)
		assert.Contains(t, buf.String(), "No matching test cases")
	})
}

func TestFormatter_PrintTags(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(&buf, "").PrintTags([]registry.TagSummary{
		{Name: "disk", Count: 3, Spellings: []string{"Disk", "disk"}},
		{Name: "io", Count: 12, Spellings: []string{"io"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Found 2 tag(s)")
	assert.Contains(t, out, "     3  [Disk] [disk]\n")
	assert.Contains(t, out, "    12  [io]\n")
}

func TestFormatter_PrintIssues(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(&buf, "/project").PrintIssues([]domain.Issue{{
		Kind:     domain.IssueInvalidTag,
		Location: domain.SourceLocation{File: "/project/tests/io_test.cpp", Line: 7},
		Message:  "tag name [#x] is not allowed",
	}})

	out := buf.String()
	assert.Contains(t, out, "1 declaration(s) skipped")
	assert.Contains(t, out, "[invalid_tag] tests/io_test.cpp:7")
	assert.Contains(t, out, "tag name [#x] is not allowed")

	buf.Reset()
	NewFormatter(&buf, "").PrintIssues(nil)
	assert.Empty(t, buf.String())
}

func TestFormatter_PrintSummary(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(&buf, "").PrintSummary(domain.ReportMeta{TotalFiles: 4, TotalTestCases: 17, HiddenTestCases: 2})

	out := buf.String()
	assert.Contains(t, out, "│ Test Cases               │ 17")
	assert.Contains(t, out, "│ Hidden Test Cases        │ 2")
}

func TestBrowserFormatting(t *testing.T) {
	visibleEntry := domain.ReportEntry{
		Name: "parses [brackets]", File: "tests/a.cpp", Line: 4,
		Tags: []string{"Parser"}, LcaseTags: []string{"parser"}, TagSpec: "[Parser]", Properties: "none",
	}
	hiddenEntry := domain.ReportEntry{Name: "slow", Properties: "hidden|benchmark"}
	entries := []domain.ReportEntry{visibleEntry, hiddenEntry}

	assert.Equal(t, []int{0}, visibleEntries(entries, false))
	assert.Equal(t, []int{0, 1}, visibleEntries(entries, true))

	details := formatEntryDetails(visibleEntry)
	assert.Contains(t, details, "parses [brackets[]")
	assert.Contains(t, details, "[Parser[]")
	assert.Contains(t, details, "Lookup:[white] parser")
	assert.Contains(t, formatEntryDetails(hiddenEntry), "(none)")

	assert.Contains(t, formatEntryStats(visibleEntry), "tests/a.cpp:4")
	assert.Contains(t, listItemText(1, hiddenEntry), "[gray]")
}
