package commands

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagcat/internal/cli"
	"tagcat/internal/config"
	"tagcat/internal/domain"
	"tagcat/internal/testcase"
	"tagcat/internal/ui"
)

func init() {
	color.NoColor = true
}

const netSource = `#include <catch2/catch_test_macros.hpp>

TEST_CASE( "connects to server", "[net][Socket]" ) {
}

TEST_CASE( "reconnects", "[net][.slow][!mayfail]" ) {
}

TEST_CASE( "broken", "[net" ) {
}
`

const diskSource = `TEST_CASE( "reads block", "[disk][socket]" ) {
}

TEST_CASE_METHOD( DiskFixture, "writes block", "[disk][!throws]" ) {
}
`

func sourceFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/net_test.cpp", []byte(netSource), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/src/io/disk_test.cpp", []byte(diskSource), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/src/README.md", []byte("TEST_CASE( \"ignored\" )"), 0o644))
	return fs
}

type fakeViewer struct {
	report     *domain.Report
	showHidden bool
}

func (v *fakeViewer) View(report *domain.Report) error {
	v.report = report
	return nil
}

func newRoot(fs afero.Fs) (*cobra.Command, *Commands, *bytes.Buffer) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	cmds := NewCommands(config.New(), fs, clock)

	rootCmd := &cobra.Command{Use: "tagcat"}
	var flags cli.Flags
	cmds.Register(rootCmd, &flags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	return rootCmd, cmds, &out
}

func execute(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	rootCmd, _, out := newRoot(fs)
	rootCmd.SetArgs(append(args, "--test-path", "/src", "--no-progress"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		out, err := execute(t, sourceFs(t), "list")
		require.NoError(t, err)

		assert.Contains(t, out, "Found 3 test case(s)")
		assert.Contains(t, out, "reads block")
		assert.Contains(t, out, "connects to server")
		assert.NotContains(t, out, "reconnects")
		assert.Contains(t, out, "1 declaration(s) skipped")
		assert.Contains(t, out, "[parse] net_test.cpp:9")
	})

	t.Run("hidden and tag", func(t *testing.T) {
		out, err := execute(t, sourceFs(t), "list", "--tag", "SOCKET")
		require.NoError(t, err)
		assert.Contains(t, out, "Found 2 test case(s)")

		out, err = execute(t, sourceFs(t), "list", "--hidden", "--verbose")
		require.NoError(t, err)
		assert.Contains(t, out, "reconnects (hidden)")
		assert.Contains(t, out, "properties: hidden|mayfail")
		assert.Contains(t, out, "class: DiskFixture")
	})

	t.Run("bad order", func(t *testing.T) {
		_, err := execute(t, sourceFs(t), "list", "--order", "random")
		assert.Error(t, err)
	})

	t.Run("fail fast", func(t *testing.T) {
		_, err := execute(t, sourceFs(t), "list", "--fail-fast")
		require.Error(t, err)
		assert.ErrorIs(t, err, testcase.ErrParse)
	})

	t.Run("name filter and filename tags", func(t *testing.T) {
		out, err := execute(t, sourceFs(t), "list", "--filter", "disk*", "--filename-tags")
		require.NoError(t, err)
		assert.Contains(t, out, "Found 2 test case(s)")
		assert.Contains(t, out, "[#disk_test]")
		assert.NotContains(t, out, "connects to server")
	})

	t.Run("missing test path", func(t *testing.T) {
		_, err := execute(t, afero.NewMemMapFs(), "list")
		assert.Error(t, err)
	})
}

func TestTagsCommand(t *testing.T) {
	out, err := execute(t, sourceFs(t), "tags")
	require.NoError(t, err)

	assert.Contains(t, out, "Found 3 tag(s)")
	assert.Contains(t, out, "     2  [Socket] [socket]")
	assert.Contains(t, out, "     2  [disk]")
	assert.NotContains(t, out, "[slow]")

	out, err = execute(t, sourceFs(t), "tags", "--hidden")
	require.NoError(t, err)
	assert.Contains(t, out, "     1  [slow]")
}

func TestExportCommand(t *testing.T) {
	t.Run("to file", func(t *testing.T) {
		fs := sourceFs(t)
		out, err := execute(t, fs, "export", "--output", "/out/catalog.json")
		require.NoError(t, err)
		assert.Contains(t, out, "Report written to /out/catalog.json")

		data, err := afero.ReadFile(fs, "/out/catalog.json")
		require.NoError(t, err)

		var report domain.Report
		require.NoError(t, json.Unmarshal(data, &report))
		assert.Equal(t, 4, report.Meta.TotalTestCases)
		assert.Equal(t, 2, report.Meta.TotalFiles)
		assert.Equal(t, 1, report.Meta.HiddenTestCases)
		assert.Equal(t, "2026-01-02T03:04:05Z", report.Meta.Timestamp)
		assert.NotEmpty(t, report.Meta.RunID)
		require.Len(t, report.Issues, 1)
		assert.Equal(t, domain.IssueParse, report.Issues[0].Kind)
	})

	t.Run("csv to stdout", func(t *testing.T) {
		out, err := execute(t, sourceFs(t), "export", "--format", "csv", "--output", "-")
		require.NoError(t, err)
		assert.Contains(t, out, "name,class_name,file,line,tags,properties\n")
		assert.Contains(t, out, "writes block,DiskFixture,/src/io/disk_test.cpp,4,[disk],throws\n")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, sourceFs(t), "export", "--format", "xml")
		assert.Error(t, err)
	})
}

func TestBrowseCommand(t *testing.T) {
	rootCmd, cmds, _ := newRoot(sourceFs(t))
	viewer := &fakeViewer{}
	cmds.Browse.newViewer = func(showHidden bool) ui.Viewer {
		viewer.showHidden = showHidden
		return viewer
	}

	rootCmd.SetArgs([]string{"browse", "--hidden", "--test-path", "/src", "--no-progress"})
	require.NoError(t, rootCmd.Execute())

	require.NotNil(t, viewer.report)
	assert.True(t, viewer.showHidden)
	assert.Len(t, viewer.report.TestCases, 4)
}
