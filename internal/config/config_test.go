package config

import (
	"path/filepath"
	"testing"
)

func TestConfig_GetTestRoot(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default root under project path",
			config: &Config{
				ProjectPath: ".",
				TestRoot:    "e2e",
			},
			expected: filepath.Join(".", "e2e"),
		},
		{
			name: "absolute root wins",
			config: &Config{
				ProjectPath: "/project",
				TestRoot:    "/somewhere/e2e",
			},
			expected: "/somewhere/e2e",
		},
		{
			name: "relative root joined to project",
			config: &Config{
				ProjectPath: "/project",
				TestRoot:    "tests/e2e",
			},
			expected: filepath.Join("/project", "tests/e2e"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.GetTestRoot()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestConfig_RunnerPaths(t *testing.T) {
	cfg := New()

	if got := cfg.CoverProfile(3); got != "e2e-3-coverage.out" {
		t.Errorf("unexpected cover profile name: %q", got)
	}
	if got := cfg.CoverPkg(); got != DefaultModulePath+"/pkg/..." {
		t.Errorf("unexpected coverpkg: %q", got)
	}
	if got := cfg.VersionPkg(); got != DefaultModulePath+"/pkg/version" {
		t.Errorf("unexpected version package: %q", got)
	}
	if got := cfg.SuitePath(); got != "./e2e/..." {
		t.Errorf("unexpected suite path: %q", got)
	}
}

func TestLoad_FlagOverrides(t *testing.T) {
	cfg := Load(Flags{
		TestRoot:   "tests/e2e",
		ModulePath: "github.com/example/project",
		RunnerPath: "/usr/local/bin/ginkgo",
	})

	if cfg.TestRoot != "tests/e2e" {
		t.Errorf("test root flag not applied: %q", cfg.TestRoot)
	}
	if cfg.ModulePath != "github.com/example/project" {
		t.Errorf("module flag not applied: %q", cfg.ModulePath)
	}
	if cfg.RunnerPath != "/usr/local/bin/ginkgo" {
		t.Errorf("runner flag not applied: %q", cfg.RunnerPath)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("E2ESPLIT_TEST_ROOT", "integration")
	t.Setenv("E2ESPLIT_TIMEOUT", "30m")

	cfg := Load(Flags{})

	if cfg.TestRoot != "integration" {
		t.Errorf("env test root not applied: %q", cfg.TestRoot)
	}
	if cfg.Timeout != "30m" {
		t.Errorf("env timeout not applied: %q", cfg.Timeout)
	}
}

func TestLoad_FlagBeatsEnv(t *testing.T) {
	t.Setenv("E2ESPLIT_TEST_ROOT", "integration")

	cfg := Load(Flags{TestRoot: "tests/e2e"})
	if cfg.TestRoot != "tests/e2e" {
		t.Errorf("flag should override env, got %q", cfg.TestRoot)
	}
}

func TestConfig_GetSummaryPath(t *testing.T) {
	cfg := New()
	first := cfg.GetSummaryPath(0)
	second := cfg.GetSummaryPath(1)
	if first == second {
		t.Error("summary paths for different job indices must differ")
	}
	if !filepath.IsAbs(first) {
		t.Errorf("summary path should be absolute: %q", first)
	}
}
