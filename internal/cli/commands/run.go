package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"e2esplit/internal/buildinfo"
	"e2esplit/internal/config"
	"e2esplit/internal/discovery"
	"e2esplit/internal/domain"
	"e2esplit/internal/execution"
	"e2esplit/internal/shard"
	"e2esplit/internal/storage"
	"e2esplit/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	builder   *execution.Builder
	runner    *execution.Runner
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	builder *execution.Builder,
	runner *execution.Runner,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		builder:   builder,
		runner:    runner,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	index, total, err := parseJobArgs(args)
	if err != nil {
		return err
	}

	// Discover test files
	files, err := rc.scanner.Scan(rc.config.GetTestRoot())
	if err != nil {
		return err
	}
	files = rc.filter.Exclude(files)
	rc.formatter.PrintDiscovery(files)
	rc.formatter.PrintWorkloadAdvisory(len(files), total)

	// Select this job's shard
	selected, err := shard.Select(files, index, total)
	if err != nil {
		return err
	}
	rc.formatter.PrintShard(domain.Shard{Index: index, Total: total, Files: selected})

	if len(selected) == 0 {
		color.Yellow("No test files assigned to this job")
		return nil
	}

	mode := domain.ModeImport
	if rc.config.Flags.ExportCache {
		mode = domain.ModeExport
	}

	// Resolve build metadata
	meta, err := buildinfo.Resolve(rc.config.ProjectPath)
	if err != nil {
		return fmt.Errorf("resolve build metadata: %w", err)
	}
	rc.formatter.PrintMetadata(meta)

	// Construct the runner invocation
	command := rc.builder.Build(selected, index, mode, meta)

	if rc.config.Flags.DryRun {
		fmt.Println(command.String())
		return nil
	}

	// Dispatch and record the outcome
	start := time.Now()
	runErr := rc.runner.Run(context.Background(), command)
	duration := time.Since(start)

	summary := &domain.RunSummary{
		Meta: domain.RunMeta{
			Index:           index,
			Total:           total,
			Mode:            string(mode),
			TotalTestFiles:  len(files),
			SelectedFiles:   len(selected),
			Success:         runErr == nil,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Version:         meta.Version,
			GitCommit:       meta.GitCommit,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Files: selected,
	}
	if err := rc.storage.SaveSummary(summary); err != nil {
		return fmt.Errorf("save run summary: %w", err)
	}

	return runErr
}

// parseJobArgs parses and validates the positional ci_index and ci_total
// arguments before any filesystem or subprocess work happens.
func parseJobArgs(args []string) (index, total int, err error) {
	index, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("ci_index must be an integer, got %q", args[0])
	}
	total, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("ci_total must be an integer, got %q", args[1])
	}
	if err := shard.Validate(index, total); err != nil {
		return 0, 0, err
	}
	return index, total, nil
}
