package execution

import (
	"os"

	"github.com/alessio/shellescape"
)

// Command is a fully-constructed runner invocation. Arguments are kept as a
// list so test file names never pass through a shell.
type Command struct {
	Path string   // Runner binary
	Args []string // Arguments, one element per argument
	Env  []string // KEY=VALUE overrides appended to the parent environment
	Dir  string   // Working directory
}

// String renders a copy-pasteable, shell-quoted form of the command
func (c *Command) String() string {
	return shellescape.QuoteCommand(append([]string{c.Path}, c.Args...))
}

// Environ returns the full child environment: the parent environment with
// the command's overrides appended (later entries win).
func (c *Command) Environ() []string {
	return append(os.Environ(), c.Env...)
}
