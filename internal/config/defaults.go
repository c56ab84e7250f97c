package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestRoot is the default directory scanned for e2e test files
	DefaultTestRoot = "e2e"
	// DefaultModulePath is the Go module whose version package receives the ldflags
	DefaultModulePath = "github.com/tensorchord/envd"
	// DefaultRunner is the default test runner binary
	DefaultRunner = "ginkgo"
	// DefaultTimeout is the per-suite timeout passed to the runner
	DefaultTimeout = "15m"
	// DefaultCoverProfilePattern names the per-job coverage artifact
	DefaultCoverProfilePattern = "e2e-%d-coverage.out"
	// DefaultPlanFile is the default shard plan artifact file name
	DefaultPlanFile = "shard-plan.json"
	// DefaultSummaryFilePattern names the per-job run summary artifact
	DefaultSummaryFilePattern = "run-summary-%d.json"
	// DefaultOutputDir is the default directory for JSON artifacts
	DefaultOutputDir = "storage"
	// DefaultAnalyticsEnvVar is forced to "false" in the child environment
	DefaultAnalyticsEnvVar = "ENVD_ANALYTICS"
	// DefaultTagEnvVar carries the latest git tag into the child environment
	DefaultTagEnvVar = "GIT_LATEST_TAG"
)

// DefaultExcludedDirs are the directory names skipped when scanning for tests
var DefaultExcludedDirs = []string{"docs"}

// DefaultSharedFiles are suite-level helper files excluded from discovery so
// their specs are never focused twice across jobs.
var DefaultSharedFiles = []string{"suite_test.go", "e2e_helper.go"}
