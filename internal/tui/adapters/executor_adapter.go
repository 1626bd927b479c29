package adapters

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/VoxDroid/spliminal/internal/executor"
)

// executorAdapter implements ExecutorAdapter using an executor.Runner.
type executorAdapter struct{ runner executor.Runner }

// NewExecutorAdapter constructs an ExecutorAdapter backed by the provided Runner.
func NewExecutorAdapter(r executor.Runner) ExecutorAdapter { return &executorAdapter{runner: r} }

func (e *executorAdapter) Run(ctx context.Context, command string) (ExecResult, error) {
	var stdout, stderr bytes.Buffer
	err := e.runner.Execute(ctx, command, &stdout, &stderr)
	res := ExecResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return res, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	// The shell exited 0 but a background child kept the pipes open past
	// the wait delay; what was captured so far is the result.
	if errors.Is(err, exec.ErrWaitDelay) {
		return res, nil
	}
	res.ExitCode = -1
	return res, err
}
