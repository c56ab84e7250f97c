package domain

// BuildMetadata carries the version information injected into the test
// binary as link-time variables.
type BuildMetadata struct {
	Version      string // Semantic version from the nearest v-prefixed tag
	BuildDate    string // UTC build timestamp, RFC3339
	GitCommit    string // Full commit hash of HEAD
	GitTreeState string // "clean" or "dirty"
	GitTag       string // Latest tag reachable from HEAD
}
