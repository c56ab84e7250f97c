package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestRoot    string

	// Runner settings
	ModulePath string
	RunnerPath string
	Timeout    string

	// Artifact settings
	CoverProfilePattern string
	PlanFile            string
	SummaryFilePattern  string
	OutputDir           string

	// Child environment settings
	AnalyticsEnvVar string
	TagEnvVar       string

	// Discovery exclusions
	ExcludedDirs []string
	SharedFiles  []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ExportCache bool
	DryRun      bool
	TestRoot    string
	ModulePath  string
	RunnerPath  string
	NameFilter  string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:         DefaultProjectPath,
		TestRoot:            DefaultTestRoot,
		ModulePath:          DefaultModulePath,
		RunnerPath:          DefaultRunner,
		Timeout:             DefaultTimeout,
		CoverProfilePattern: DefaultCoverProfilePattern,
		PlanFile:            DefaultPlanFile,
		SummaryFilePattern:  DefaultSummaryFilePattern,
		OutputDir:           DefaultOutputDir,
		AnalyticsEnvVar:     DefaultAnalyticsEnvVar,
		TagEnvVar:           DefaultTagEnvVar,
	}
	// Copy default exclusions so callers can append without touching the defaults
	cfg.ExcludedDirs = make([]string, len(DefaultExcludedDirs))
	copy(cfg.ExcludedDirs, DefaultExcludedDirs)
	cfg.SharedFiles = make([]string, len(DefaultSharedFiles))
	copy(cfg.SharedFiles, DefaultSharedFiles)
	return cfg
}

// Load creates a config, applies .env overrides, then applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.applyEnv()
	cfg.Flags = flags

	// Apply flag overrides
	if flags.TestRoot != "" {
		cfg.TestRoot = flags.TestRoot
	}
	if flags.ModulePath != "" {
		cfg.ModulePath = flags.ModulePath
	}
	if flags.RunnerPath != "" {
		cfg.RunnerPath = flags.RunnerPath
	}

	return cfg
}

// applyEnv loads a .env file if present and picks up environment overrides.
func (c *Config) applyEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}
	if v := os.Getenv("E2ESPLIT_TEST_ROOT"); v != "" {
		c.TestRoot = v
	}
	if v := os.Getenv("E2ESPLIT_MODULE"); v != "" {
		c.ModulePath = v
	}
	if v := os.Getenv("E2ESPLIT_RUNNER"); v != "" {
		c.RunnerPath = v
	}
	if v := os.Getenv("E2ESPLIT_TIMEOUT"); v != "" {
		c.Timeout = v
	}
}

// GetTestRoot returns the scan root, relative to the project path unless absolute
func (c *Config) GetTestRoot() string {
	if filepath.IsAbs(c.TestRoot) {
		return c.TestRoot
	}
	return filepath.Join(c.ProjectPath, c.TestRoot)
}

// SuitePath returns the recursive suite path argument handed to the runner
func (c *Config) SuitePath() string {
	return "./" + filepath.ToSlash(c.TestRoot) + "/..."
}

// CoverProfile returns the coverage artifact name for a job index
func (c *Config) CoverProfile(index int) string {
	return fmt.Sprintf(c.CoverProfilePattern, index)
}

// CoverPkg returns the coverage package pattern for the configured module
func (c *Config) CoverPkg() string {
	return c.ModulePath + "/pkg/..."
}

// VersionPkg returns the package whose link-time variables receive build metadata
func (c *Config) VersionPkg() string {
	return c.ModulePath + "/pkg/version"
}

// GetPlanPath returns the full path to the shard plan artifact.
// Resolves to an absolute path so plan and list always read/write the same file regardless of cwd.
func (c *Config) GetPlanPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputDir, c.PlanFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetSummaryPath returns the full path to the run summary artifact for a job index
func (c *Config) GetSummaryPath(index int) string {
	p := filepath.Join(c.ProjectPath, c.OutputDir, fmt.Sprintf(c.SummaryFilePattern, index))
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
