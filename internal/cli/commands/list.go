package commands

import (
	"fmt"

	"e2esplit/internal/config"
	"e2esplit/internal/discovery"
	"e2esplit/internal/shard"
	"e2esplit/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("expected both ci_index and ci_total, got only %q", args[0])
	}

	files, err := lc.scanner.Scan(lc.config.GetTestRoot())
	if err != nil {
		return err
	}
	files = lc.filter.Exclude(files)
	files = lc.filter.ByName(files, lc.config.Flags.NameFilter)

	if len(files) == 0 {
		color.Yellow("No test files found")
		return nil
	}

	// Restrict to one job's shard when an (index, total) pair is given
	if len(args) == 2 {
		index, total, err := parseJobArgs(args)
		if err != nil {
			return err
		}
		files, err = shard.Select(files, index, total)
		if err != nil {
			return err
		}
		color.Cyan("Job %d/%d: %d test files", index, total, len(files))
	} else {
		lc.formatter.PrintDiscovery(files)
	}

	for _, file := range files {
		fmt.Println(file)
	}
	return nil
}
