package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters source files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the files whose base name matches pattern. Several
// patterns may be given separated by commas; a file matching any of them is
// kept. Supports patterns like "*parser_test.cpp" or "*widget*".
func (f *Filter) FilterByName(files []string, pattern string) []string {
	if strings.TrimSpace(pattern) == "" {
		return files
	}

	var patterns []string
	for _, p := range strings.Split(pattern, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}

	var filtered []string
	for _, file := range files {
		name := filepath.Base(file)
		for _, p := range patterns {
			if matchName(p, name) {
				filtered = append(filtered, file)
				break
			}
		}
	}

	return filtered
}

func matchName(pattern, name string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	// Without wildcards the pattern is a plain substring
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// "*widget*test*" style: every literal part must appear, in order
	if strings.Contains(pattern, "?") {
		return false
	}
	rest := name
	found := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
		found = true
	}
	return found
}
