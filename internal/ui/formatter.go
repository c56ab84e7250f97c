package ui

import (
	"fmt"

	"github.com/fatih/color"

	"e2esplit/internal/domain"
)

// Formatter formats and displays output
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintDiscovery displays the discovered test file count
func (f *Formatter) PrintDiscovery(files []string) {
	color.Cyan("Discovered %d test files", len(files))
}

// PrintShard displays the files assigned to one job
func (f *Formatter) PrintShard(shard domain.Shard) {
	color.Cyan("Job %d/%d runs %d test files:", shard.Index, shard.Total, len(shard.Files))
	for _, file := range shard.Files {
		fmt.Printf("  %s\n", file)
	}
}

// PrintMetadata displays the resolved build metadata
func (f *Formatter) PrintMetadata(meta domain.BuildMetadata) {
	color.White("ldflag arguments:")
	fmt.Printf("  VERSION:        %s\n", meta.Version)
	fmt.Printf("  BUILD_DATE:     %s\n", meta.BuildDate)
	fmt.Printf("  GIT_COMMIT:     %s\n", meta.GitCommit)
	fmt.Printf("  GIT_TREE_STATE: %s\n", meta.GitTreeState)
	fmt.Printf("  GIT_TAG:        %s\n", meta.GitTag)
}

// PrintWorkloadAdvisory warns when jobs carry too many test files. Estimated
// worst case per test file is around 300s, so more than two files per job
// risks exceeding a 10 minute CI slot.
func (f *Formatter) PrintWorkloadAdvisory(fileCount, total int) {
	average := float64(fileCount) / float64(total)
	color.White("average test files carried per job: %.2f", average)
	if average > 2 {
		color.Yellow("average test files per job (%.2f) > 2; consider increasing the job count to keep total time under 10 minutes", average)
	}
}

// PrintPlan displays a full sweep plan
func (f *Formatter) PrintPlan(plan *domain.Plan) {
	color.Cyan("Sweep of %d test files across %d jobs", plan.TotalFiles, plan.Total)
	for _, shard := range plan.Shards {
		fmt.Printf("job %d (%d files):\n", shard.Index, len(shard.Files))
		for _, file := range shard.Files {
			fmt.Printf("  %s\n", file)
		}
	}
}
