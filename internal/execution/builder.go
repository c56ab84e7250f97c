package execution

import (
	"fmt"
	"strings"

	"e2esplit/internal/config"
	"e2esplit/internal/domain"
)

// Builder constructs runner invocations from a shard and run metadata
type Builder struct {
	config *config.Config
}

// NewBuilder creates a new Builder
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{config: cfg}
}

// Build assembles the runner command for one job's shard: a recursive ginkgo
// run with per-file focus filters, build metadata as ldflags, and a coverage
// profile named by the job index.
func (b *Builder) Build(files []string, index int, mode domain.RunMode, meta domain.BuildMetadata) *Command {
	args := []string{
		"run", "-r",
		"--ldflags", b.ldflags(mode, meta),
		"--cover",
		"--covermode", "atomic",
		"--coverprofile", b.config.CoverProfile(index),
		"--coverpkg", b.config.CoverPkg(),
	}
	for _, file := range files {
		args = append(args, "--focus-file", file)
	}
	args = append(args,
		"-v",
		"--timeout", b.config.Timeout,
		"--race",
		b.config.SuitePath(),
	)

	return &Command{
		Path: b.config.RunnerPath,
		Args: args,
		Env: []string{
			b.config.AnalyticsEnvVar + "=false",
			b.config.TagEnvVar + "=" + meta.GitTag,
		},
		Dir: b.config.ProjectPath,
	}
}

// ldflags renders the single --ldflags argument: strip flags plus one -X pair
// per version variable.
func (b *Builder) ldflags(mode domain.RunMode, meta domain.BuildMetadata) string {
	pkg := b.config.VersionPkg()
	parts := []string{"-s", "-w"}
	for _, kv := range [][2]string{
		{"version", meta.Version},
		{"buildDate", meta.BuildDate},
		{"gitCommit", meta.GitCommit},
		{"gitTreeState", meta.GitTreeState},
		{"gitTag", meta.GitTag},
		{"developmentFlag", "true"},
		{"ghaBuildMode", string(mode)},
	} {
		parts = append(parts, fmt.Sprintf("-X %s.%s=%s", pkg, kv[0], kv[1]))
	}
	return strings.Join(parts, " ")
}
