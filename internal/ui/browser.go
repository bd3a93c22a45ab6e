package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tagcat/internal/domain"
)

// Browser displays the catalog in an interactive TUI
type Browser struct {
	showHidden bool
}

// NewBrowser creates a Browser. Hidden test cases are listed when showHidden is set
// and can be toggled with H.
func NewBrowser(showHidden bool) *Browser {
	return &Browser{showHidden: showHidden}
}

// View displays the test cases of report in an interactive TUI
func (b *Browser) View(report *domain.Report) error {
	if len(report.TestCases) == 0 {
		color.Yellow("No test cases found")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	// visible maps list rows to report entries
	var visible []int

	updateDetails := func() {
		row := list.GetCurrentItem()
		if row < 0 || row >= len(visible) {
			statsView.SetText("")
			detailsView.SetText("")
			return
		}
		entry := report.TestCases[visible[row]]
		statsView.SetText(formatEntryStats(entry))
		detailsView.SetText(formatEntryDetails(entry))
	}

	rebuild := func() {
		visible = visibleEntries(report.TestCases, b.showHidden)
		list.Clear()
		for row, idx := range visible {
			list.AddItem(listItemText(row, report.TestCases[idx]), "", 0, nil)
		}
		headerView.SetText(fmt.Sprintf(
			" Test Catalog (%d shown, %d total, %d skipped) | ↑↓ navigate, → details, ← back, [yellow]H[white] toggle hidden, Ctrl+C exit ",
			len(visible), len(report.TestCases), len(report.Issues),
		))
		updateDetails()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'h' || event.Rune() == 'H' {
				b.showHidden = !b.showHidden
				rebuild()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	rebuild()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func visibleEntries(entries []domain.ReportEntry, showHidden bool) []int {
	rows := make([]int, 0, len(entries))
	for i, entry := range entries {
		if !showHidden && isHiddenEntry(entry) {
			continue
		}
		rows = append(rows, i)
	}
	return rows
}

func isHiddenEntry(entry domain.ReportEntry) bool {
	for _, p := range strings.Split(entry.Properties, "|") {
		if p == "hidden" {
			return true
		}
	}
	return false
}

func listItemText(row int, entry domain.ReportEntry) string {
	if isHiddenEntry(entry) {
		return fmt.Sprintf("[yellow]%d.[gray] %s[white]", row+1, tview.Escape(entry.Name))
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", row+1, tview.Escape(entry.Name))
}

// formatEntryStats formats the one line header above the details
func formatEntryStats(entry domain.ReportEntry) string {
	location := domain.SourceLocation{File: entry.File, Line: entry.Line}
	return fmt.Sprintf("[cyan]at:[white] [yellow]%s[white]\n", tview.Escape(location.String()))
}

// formatEntryDetails formats a test case for display using tview color tags
func formatEntryDetails(entry domain.ReportEntry) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[green]Test: %s[white]\n\n", tview.Escape(entry.Name))
	if entry.ClassName != "" {
		fmt.Fprintf(&sb, "[cyan]Class:[white] %s\n", tview.Escape(entry.ClassName))
	}

	if len(entry.Tags) == 0 {
		sb.WriteString("[cyan]Tags:[white] [gray](none)[white]\n")
	} else {
		fmt.Fprintf(&sb, "[cyan]Tags:[white] %s\n", tview.Escape(entry.TagSpec))
		fmt.Fprintf(&sb, "[cyan]Lookup:[white] %s\n", tview.Escape(strings.Join(entry.LcaseTags, ", ")))
	}
	fmt.Fprintf(&sb, "[cyan]Properties:[white] %s\n", entry.Properties)

	return sb.String()
}
