package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	// Create a temporary directory structure for testing
	tmpDir, err := os.MkdirTemp("", "e2esplit-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Create test directory structure
	testDirs := []string{
		"e2e/cli",
		"e2e/language",
		"e2e/cli/docs",
		"e2e/.cache",
	}
	for _, dir := range testDirs {
		if err := os.MkdirAll(filepath.Join(tmpDir, dir), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}

	// Create test files
	testFiles := []string{
		"e2e/cli/build_test.go",
		"e2e/cli/up_test.go",
		"e2e/language/python_test.go",
		"e2e/cli/docs/docs_test.go",
		"e2e/.cache/cached_test.go",
		"e2e/cli/README.md",
	}
	for _, file := range testFiles {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.WriteFile(fullPath, []byte("package e2e"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{"docs"})

	t.Run("scans go files, skipping excluded and hidden dirs", func(t *testing.T) {
		results, err := scanner.Scan(filepath.Join(tmpDir, "e2e"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Should find 3 go files, not the ones in docs/.cache and not README.md
		if len(results) != 3 {
			t.Errorf("expected 3 test files, got %d: %v", len(results), results)
		}
		for _, r := range results {
			if filepath.Base(filepath.Dir(r)) == "docs" {
				t.Errorf("docs file leaked into results: %s", r)
			}
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "testfile.txt")
		os.WriteFile(testFile, []byte("test"), 0644)
		_, err := scanner.Scan(testFile)
		if err == nil {
			t.Error("expected error for file path")
		}
	})
}
