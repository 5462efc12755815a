package types

import (
	"context"
	"io"
	"time"
)

// Command describes one invocation of an external tool
type Command struct {
	// Name is the executable, resolved through the runner's PATH
	Name string
	Args []string

	// Dir is the working directory; empty means the current one
	Dir string

	// Env holds extra KEY=VALUE pairs layered over the process environment
	Env []string

	// Stdin, Stdout and Stderr are optional. Output is always captured into
	// the CommandResult as well; when a writer is set it is also streamed.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Description is a human readable label used in logs
	Description string
}

// CommandResult is the outcome of a finished command
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Runner executes external commands: the toolchain, git and the chainsaw
// binary are all invoked through it.
type Runner interface {
	// Run blocks until the command exits. A non-zero exit status is
	// reported as an error carrying the exit code; the result is still
	// returned so callers can inspect captured output.
	Run(ctx context.Context, cmd Command) (*CommandResult, error)

	// LookPath resolves an executable using the runner's PATH
	LookPath(name string) (string, error)

	// PrependPath adds dir in front of the PATH seen by later commands
	PrependPath(dir string)
}
