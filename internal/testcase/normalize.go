package testcase

import (
	"slices"
	"strings"
)

// normalizeTags sorts and deduplicates tags in place and derives the
// lowercase index. Tags differing only in case are both kept in tags but
// collapse to a single lowercase entry.
func normalizeTags(tags []string) (sorted, lcase []string) {
	slices.Sort(tags)
	sorted = slices.Compact(tags)

	lcase = make([]string, len(sorted))
	for i, tag := range sorted {
		lcase[i] = strings.ToLower(tag)
	}
	slices.Sort(lcase)
	lcase = slices.Compact(lcase)

	return sorted, lcase
}
