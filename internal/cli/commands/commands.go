package commands

import (
	"e2esplit/internal/cli"
	"e2esplit/internal/config"
	"e2esplit/internal/discovery"
	"e2esplit/internal/execution"
	"e2esplit/internal/storage"
	"e2esplit/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
	Plan *PlanCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.ExcludedDirs)
	filter := discovery.NewFilter(cfg.SharedFiles)
	builder := execution.NewBuilder(cfg)
	runner := execution.NewRunner()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()

	return &Commands{
		Run:  NewRunCommand(cfg, scanner, filter, builder, runner, jsonStorage, formatter),
		List: NewListCommand(cfg, scanner, filter, formatter),
		Plan: NewPlanCommand(cfg, scanner, filter, jsonStorage, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run <ci_index> <ci_total>",
		Short: "Run the e2e test shard for one CI job",
		Long:  "Discover e2e test files, select the shard belonging to this job index, and dispatch the test runner focused on exactly those files",
		Args:  cobra.ExactArgs(2),
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			*cfg = *config.Load(flags.ToConfigFlags())
			return nil
		},
	}
	runCmd.Flags().BoolVar(&flags.ExportCache, "export-cache", false, "Allow the run to export the build cache (default is import-only)")
	runCmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Print the constructed runner command instead of executing it")
	runCmd.Flags().StringVarP(&flags.TestRoot, "test-root", "t", "", "Directory scanned for e2e test files")
	runCmd.Flags().StringVarP(&flags.ModulePath, "module", "m", "", "Go module whose version package receives the ldflags")
	runCmd.Flags().StringVarP(&flags.RunnerPath, "runner", "r", "", "Test runner binary to invoke")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [ci_index ci_total]",
		Short: "List discovered test files",
		Long:  "Scan and list all e2e test files without executing them, optionally restricted to one job's shard",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			*cfg = *config.Load(flags.ToConfigFlags())
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. '*build*' or '*_test.go')")
	listCmd.Flags().StringVarP(&flags.TestRoot, "test-root", "t", "", "Directory scanned for e2e test files")
	rootCmd.AddCommand(listCmd)

	// Plan command
	planCmd := &cobra.Command{
		Use:   "plan <ci_total>",
		Short: "Compute the full shard sweep for a job count",
		Long:  "Compute every job's shard for the given total, print the sweep, and write it as a JSON artifact",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Plan.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			*cfg = *config.Load(flags.ToConfigFlags())
			return nil
		},
	}
	planCmd.Flags().StringVarP(&flags.TestRoot, "test-root", "t", "", "Directory scanned for e2e test files")
	rootCmd.AddCommand(planCmd)
}
