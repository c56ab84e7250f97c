// Package buildinfo resolves the version metadata injected into the test
// binary as link-time variables.
package buildinfo

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"e2esplit/internal/domain"
)

// Resolve queries git in dir for the build metadata of the current checkout.
// Any git failure is propagated; a partial metadata set is never returned.
func Resolve(dir string) (domain.BuildMetadata, error) {
	version, err := git(dir, "describe", "--match", "v[0-9]*", "--always", "--tags", "--abbrev=0")
	if err != nil {
		return domain.BuildMetadata{}, err
	}
	commit, err := git(dir, "rev-parse", "HEAD")
	if err != nil {
		return domain.BuildMetadata{}, err
	}
	tag, err := git(dir, "describe", "--tags", "--abbrev=0")
	if err != nil {
		return domain.BuildMetadata{}, err
	}
	status, err := git(dir, "status", "--porcelain")
	if err != nil {
		return domain.BuildMetadata{}, err
	}

	return domain.BuildMetadata{
		Version:      version,
		BuildDate:    time.Now().UTC().Format(time.RFC3339),
		GitCommit:    commit,
		GitTreeState: TreeState(status),
		GitTag:       tag,
	}, nil
}

// TreeState maps `git status --porcelain` output to a tree state string
func TreeState(status string) string {
	if strings.TrimSpace(status) == "" {
		return "clean"
	}
	return "dirty"
}

func git(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}
