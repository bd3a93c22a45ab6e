package registry

import (
	"slices"
	"strings"
)

// TagSummary describes one tag across the catalog. Tags are grouped
// case-insensitively.
type TagSummary struct {
	Name      string   // Lowercase form
	Count     int      // Test cases carrying the tag
	Spellings []string // Every spelling seen, sorted
}

// Tags aggregates the tags of the test cases matching q.
func (r *Registry) Tags(q Query) []TagSummary {
	q.Tag = ""
	byName := make(map[string]*TagSummary)

	for _, info := range r.TestCases(q) {
		for _, tag := range info.Tags() {
			lower := strings.ToLower(tag)
			summary, ok := byName[lower]
			if !ok {
				summary = &TagSummary{Name: lower}
				byName[lower] = summary
			}
			if !slices.Contains(summary.Spellings, tag) {
				summary.Spellings = append(summary.Spellings, tag)
			}
		}
		for _, lower := range info.LcaseTags() {
			byName[lower].Count++
		}
	}

	summaries := make([]TagSummary, 0, len(byName))
	for _, summary := range byName {
		slices.Sort(summary.Spellings)
		summaries = append(summaries, *summary)
	}
	slices.SortFunc(summaries, func(a, b TagSummary) int {
		return strings.Compare(a.Name, b.Name)
	})
	return summaries
}

// HiddenCount returns how many registered test cases are hidden.
func (r *Registry) HiddenCount() int {
	hidden := 0
	for _, info := range r.TestCases(Query{IncludeHidden: true}) {
		if info.IsHidden() {
			hidden++
		}
	}
	return hidden
}
