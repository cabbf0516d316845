// Package ports defines the core interfaces for the application.
package ports

import "context"

// Command describes one external child-process invocation.
type Command struct {
	// Path is the executable to spawn.
	Path string
	// Args are the arguments, not including the executable itself.
	Args []string
	// Env holds extra "KEY=VALUE" entries layered over the parent
	// environment, later entries winning.
	Env []string
	// Dir is the working directory; empty means inherit.
	Dir string
	// CaptureStdout buffers the child's standard output into the result
	// instead of streaming it to the parent's stdout.
	CaptureStdout bool
}

// Result is the outcome of a completed child process.
type Result struct {
	ExitCode int
	Stdout   string
}

// ProcessRunner spawns external tools and waits for them to finish.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ProcessRunner interface {
	// Run blocks until the child terminates. A nonzero exit status is not
	// an error; it is reported through Result.ExitCode. The error return
	// covers failures to spawn or wait on the process.
	Run(ctx context.Context, cmd Command) (Result, error)
}
