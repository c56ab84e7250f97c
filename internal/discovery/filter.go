package discovery

import (
	"path/filepath"
	"sort"
	"strings"
)

// Filter removes shared helper files and filters test files by name pattern
type Filter struct {
	sharedFiles map[string]bool
}

// NewFilter creates a new Filter with the given shared file names to exclude
func NewFilter(sharedFiles []string) *Filter {
	shared := make(map[string]bool)
	for _, name := range sharedFiles {
		shared[name] = true
	}
	return &Filter{sharedFiles: shared}
}

// Exclude drops shared helper files, deduplicates, and sorts the result so
// shard assignment stays stable across invocations.
func (f *Filter) Exclude(files []string) []string {
	seen := make(map[string]bool, len(files))
	result := make([]string, 0, len(files))

	for _, file := range files {
		if f.sharedFiles[filepath.Base(file)] {
			continue
		}
		if seen[file] {
			continue
		}
		seen[file] = true
		result = append(result, file)
	}

	sort.Strings(result)
	return result
}

// ByName filters test files by name pattern using wildcard matching
// Supports patterns like "*_build_test.go" or "*jupyter*"
func (f *Filter) ByName(files []string, pattern string) []string {
	if pattern == "" {
		return files
	}

	var filtered []string

	for _, file := range files {
		// Get just the filename from the full path
		fileName := filepath.Base(file)

		// Try to match using filepath.Match (supports * and ? wildcards)
		matched, err := filepath.Match(pattern, fileName)
		if err == nil && matched {
			filtered = append(filtered, file)
			continue
		}

		// If pattern contains wildcards but filepath.Match didn't match,
		// try a more flexible substring match for patterns like "*jupyter*"
		if strings.Contains(pattern, "*") {
			if wildcardContains(fileName, pattern) {
				filtered = append(filtered, file)
			}
			continue
		}

		// If no wildcards, do a simple contains check
		if !strings.Contains(pattern, "?") && strings.Contains(fileName, pattern) {
			filtered = append(filtered, file)
		}
	}

	return filtered
}

// wildcardContains reports whether every non-empty part of a *-separated
// pattern appears in the name.
func wildcardContains(name, pattern string) bool {
	parts := strings.Split(pattern, "*")
	hasNonEmptyPart := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		hasNonEmptyPart = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return hasNonEmptyPart
}
