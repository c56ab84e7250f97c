package discovery

import (
	"reflect"
	"testing"
)

func TestFilter_Exclude(t *testing.T) {
	filter := NewFilter([]string{"suite_test.go", "e2e_helper.go"})

	t.Run("removes shared files wherever they appear", func(t *testing.T) {
		files := []string{
			"e2e/cli/build_test.go",
			"e2e/cli/suite_test.go",
			"e2e/language/suite_test.go",
			"e2e/language/e2e_helper.go",
			"e2e/language/python_test.go",
		}
		result := filter.Exclude(files)
		expected := []string{
			"e2e/cli/build_test.go",
			"e2e/language/python_test.go",
		}
		if !reflect.DeepEqual(result, expected) {
			t.Errorf("expected %v, got %v", expected, result)
		}
	})

	t.Run("deduplicates and sorts", func(t *testing.T) {
		files := []string{
			"e2e/z_test.go",
			"e2e/a_test.go",
			"e2e/z_test.go",
			"e2e/m_test.go",
		}
		result := filter.Exclude(files)
		expected := []string{
			"e2e/a_test.go",
			"e2e/m_test.go",
			"e2e/z_test.go",
		}
		if !reflect.DeepEqual(result, expected) {
			t.Errorf("expected %v, got %v", expected, result)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		result := filter.Exclude(nil)
		if len(result) != 0 {
			t.Errorf("expected empty result, got %v", result)
		}
	})
}

func TestFilter_ByName(t *testing.T) {
	filter := NewFilter(nil)

	tests := []struct {
		name     string
		files    []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			files:    []string{"build_test.go", "up_test.go", "python_test.go"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches suffix",
			files:    []string{"build_test.go", "up_test.go", "python_test.go"},
			pattern:  "*build_test.go",
			expected: 1,
		},
		{
			name:     "wildcard pattern matches substring",
			files:    []string{"build_test.go", "build_gpu_test.go", "up_test.go"},
			pattern:  "*build*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			files:    []string{"build_test.go", "up_test.go", "python_test.go"},
			pattern:  "python",
			expected: 1,
		},
		{
			name:     "no matches",
			files:    []string{"build_test.go", "up_test.go"},
			pattern:  "*julia*",
			expected: 0,
		},
		{
			name:     "full path with wildcard",
			files:    []string{"e2e/cli/build_test.go", "e2e/cli/up_test.go"},
			pattern:  "*build_test.go",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.ByName(tt.files, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}
