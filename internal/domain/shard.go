package domain

// Shard is the subset of test files assigned to one CI job
type Shard struct {
	Index int      `json:"index"` // Job index within the sweep
	Total int      `json:"total"` // Total number of jobs
	Files []string `json:"files"` // Test files assigned to this job
}

// Plan is the complete sweep of shards for a fixed job count
type Plan struct {
	Total      int     `json:"total"`
	TotalFiles int     `json:"total_files"`
	Shards     []Shard `json:"shards"`
	Timestamp  string  `json:"timestamp"`
}

// RunMeta contains metadata about a dispatched run
type RunMeta struct {
	Index           int     `json:"index"`
	Total           int     `json:"total"`
	Mode            string  `json:"mode"`
	TotalTestFiles  int     `json:"total_test_files"`
	SelectedFiles   int     `json:"selected_files"`
	Success         bool    `json:"success"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Version         string  `json:"version"`
	GitCommit       string  `json:"git_commit"`
	Timestamp       string  `json:"timestamp"`
}

// RunSummary is the complete artifact written after a dispatched run
type RunSummary struct {
	Meta  RunMeta  `json:"meta"`
	Files []string `json:"files"`
}
