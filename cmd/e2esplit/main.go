package main

import (
	"fmt"
	"os"

	"e2esplit/internal/cli"
	"e2esplit/internal/cli/commands"
	"e2esplit/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "e2esplit",
		Short:   "CI load balancer for e2e test runs",
		Long:    `A CI job-splitting runner for e2e test suites. Deterministically partitions the discovered test files across a fixed number of CI jobs and dispatches the test runner focused on this job's shard.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
