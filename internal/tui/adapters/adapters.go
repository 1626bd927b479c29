// Package adapters provides adapter interfaces and lightweight types used by
// the TUI to decouple it from the internal domain packages.
package adapters

import "context"

// ExecResult holds the captured streams of one finished command.
type ExecResult struct {
	Stdout []byte
	Stderr []byte
	// ExitCode is the command's exit status, or -1 when it was killed by a
	// signal or never ran.
	ExitCode int
}

// ExecutorAdapter runs a single shell command to completion. A command that
// ran and exited nonzero is reported through ExecResult.ExitCode; the error
// is reserved for commands that could not be started.
type ExecutorAdapter interface {
	Run(ctx context.Context, command string) (ExecResult, error)
}

// ExecutorFunc adapts a plain function to ExecutorAdapter.
type ExecutorFunc func(ctx context.Context, command string) (ExecResult, error)

// Run calls f(ctx, command).
func (f ExecutorFunc) Run(ctx context.Context, command string) (ExecResult, error) {
	return f(ctx, command)
}
