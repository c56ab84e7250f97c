package commands

import (
	"fmt"
	"strconv"
	"time"

	"e2esplit/internal/config"
	"e2esplit/internal/discovery"
	"e2esplit/internal/domain"
	"e2esplit/internal/shard"
	"e2esplit/internal/storage"
	"e2esplit/internal/ui"

	"github.com/spf13/cobra"
)

// PlanCommand handles the plan command
type PlanCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewPlanCommand creates a new PlanCommand
func NewPlanCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	st storage.Storage,
	formatter *ui.Formatter,
) *PlanCommand {
	return &PlanCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (pc *PlanCommand) Execute(cmd *cobra.Command, args []string) error {
	total, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("ci_total must be an integer, got %q", args[0])
	}

	files, err := pc.scanner.Scan(pc.config.GetTestRoot())
	if err != nil {
		return err
	}
	files = pc.filter.Exclude(files)

	shards, err := shard.Sweep(files, total)
	if err != nil {
		return err
	}

	plan := &domain.Plan{
		Total:      total,
		TotalFiles: len(files),
		Shards:     shards,
		Timestamp:  time.Now().Format(time.RFC3339),
	}
	pc.formatter.PrintPlan(plan)

	if err := pc.storage.SavePlan(plan); err != nil {
		return fmt.Errorf("save shard plan: %w", err)
	}
	return nil
}
