package domain

// RunMode controls how the invoked runner treats the shared build cache.
type RunMode string

const (
	// ModeExport lets the run populate (export) the build cache.
	ModeExport RunMode = "safe"
	// ModeImport restricts the run to consuming (importing) the build cache.
	ModeImport RunMode = "import"
)
