// Package executor provides command execution functionality.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"pkt.systems/pslog"
)

// DefaultShell is used when no shell is configured.
const DefaultShell = "sh"

// DefaultWaitDelay bounds how long Execute waits for output pipes to drain
// after the command exits or is killed. Background children that inherit
// the pipes would otherwise keep Execute blocked.
const DefaultWaitDelay = 2 * time.Second

// ErrEmptyShell is returned when the shell setting splits into no words.
var ErrEmptyShell = errors.New("shell is empty")

// Runner is an interface for executing commands. It allows tests to inject
// fake implementations without running real shell commands.
type Runner interface {
	Execute(ctx context.Context, command string, stdout io.Writer, stderr io.Writer) error
}

// SpawnError reports that the shell process could not be started, as opposed
// to a command that ran and failed.
type SpawnError struct {
	Shell string
	Err   error
}

func (e *SpawnError) Error() string { return e.Err.Error() }

func (e *SpawnError) Unwrap() error { return e.Err }

// Executor runs commands as `<shell> -c <command>`.
type Executor struct {
	// Shell is the shell command line, for example "sh" or
	// "bash --noprofile --norc". It is split with POSIX quoting rules.
	Shell string
	// WaitDelay overrides DefaultWaitDelay when positive.
	WaitDelay time.Duration
}

// New returns a Runner backed by the real Executor implementation.
func New(shell string) Runner {
	return &Executor{Shell: shell}
}

// Execute runs command through the shell, writing its stdout and stderr to
// the provided writers. The child's stdin is the null device.
//
// A command that ran and exited nonzero yields an error wrapping
// *exec.ExitError. A shell that could not be started yields *SpawnError.
// Cancelling ctx kills the shell.
func (e *Executor) Execute(ctx context.Context, command string, stdout io.Writer, stderr io.Writer) error {
	shell, args, err := ShellInvocation(command, e.Shell)
	if err != nil {
		return &SpawnError{Shell: e.Shell, Err: err}
	}

	cmd := exec.CommandContext(ctx, shell, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = DefaultWaitDelay
	if e.WaitDelay > 0 {
		cmd.WaitDelay = e.WaitDelay
	}

	pslog.Ctx(ctx).Debug("spawning shell", "argv", shellquote.Join(append([]string{shell}, args...)...))
	if err := cmd.Start(); err != nil {
		return &SpawnError{Shell: shell, Err: err}
	}
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("wait for %s: %w", shell, err)
	}
	return nil
}

// ShellInvocation returns the executable and arguments that run command
// through shell. An empty shell selects DefaultShell.
func ShellInvocation(command string, shell string) (string, []string, error) {
	if strings.TrimSpace(shell) == "" {
		shell = DefaultShell
	}
	words, err := shellquote.Split(shell)
	if err != nil {
		return "", nil, fmt.Errorf("parse shell %q: %w", shell, err)
	}
	if len(words) == 0 {
		return "", nil, ErrEmptyShell
	}
	args := append(words[1:len(words):len(words)], "-c", command)
	return words[0], args, nil
}
