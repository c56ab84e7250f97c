package cli

import "e2esplit/internal/config"

// Flags holds command-line flags
type Flags struct {
	ExportCache bool
	DryRun      bool
	TestRoot    string
	ModulePath  string
	RunnerPath  string
	NameFilter  string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ExportCache: f.ExportCache,
		DryRun:      f.DryRun,
		TestRoot:    f.TestRoot,
		ModulePath:  f.ModulePath,
		RunnerPath:  f.RunnerPath,
		NameFilter:  f.NameFilter,
	}
}
