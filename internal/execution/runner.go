package execution

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Runner executes constructed commands against the real runner binary
type Runner struct{}

// NewRunner creates a new Runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the command, streaming its output to this process's stdout
// and stderr, and reports a non-zero exit as an error naming the exit code.
func (r *Runner) Run(ctx context.Context, command *Command) error {
	cmd := exec.CommandContext(ctx, command.Path, command.Args...)
	cmd.Dir = command.Dir
	cmd.Env = command.Environ()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s failed: exit code %d", filepath.Base(command.Path), exitErr.ExitCode())
		}
		return fmt.Errorf("run %s: %w", command.Path, err)
	}
	return nil
}
