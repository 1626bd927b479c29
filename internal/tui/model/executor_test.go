package model

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoxDroid/spliminal/internal/tui/adapters"
)

// fakeShell returns fixed streams and records the commands it was given.
type fakeShell struct {
	stdout, stderr string
	exitCode       int
	err            error
	commands       []string
}

func (f *fakeShell) Run(_ context.Context, command string) (adapters.ExecResult, error) {
	f.commands = append(f.commands, command)
	return adapters.ExecResult{Stdout: []byte(f.stdout), Stderr: []byte(f.stderr), ExitCode: f.exitCode}, f.err
}

// blockingShell waits until its context is done, like a killed process.
var blockingShell = adapters.ExecutorFunc(func(ctx context.Context, _ string) (adapters.ExecResult, error) {
	<-ctx.Done()
	return adapters.ExecResult{ExitCode: -1}, nil
})

func TestPrepareTrims(t *testing.T) {
	job, ok := Prepare("  echo hi \t", 3)
	require.True(t, ok)
	assert.Equal(t, "echo hi", job.Command)
	assert.Equal(t, 3, job.Source)
	assert.NotEmpty(t, job.ID)

	other, _ := Prepare("echo hi", 3)
	assert.NotEqual(t, job.ID, other.ID)
}

func TestExecuteBlankIsNoop(t *testing.T) {
	shell := &fakeShell{stdout: "should not appear"}
	e := NewCommandExecutor(shell, 0)
	var out, errs History
	for _, raw := range []string{"", "   ", "\t\n "} {
		assert.False(t, e.Execute(context.Background(), raw, &out, &errs), "raw=%q", raw)
	}
	assert.Empty(t, shell.commands)
	assert.Zero(t, out.Len())
	assert.Zero(t, errs.Len())
}

func TestExecuteRoutesStreamsIndependently(t *testing.T) {
	tests := []struct {
		name             string
		stdout, stderr   string
		wantOut, wantErr int
	}{
		{"stdout only", "hi\n", "", 1, 0},
		{"stderr only", "", "oops\n", 0, 1},
		{"both", "hi\n", "oops\n", 1, 1},
		{"neither", "", "", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shell := &fakeShell{stdout: tt.stdout, stderr: tt.stderr}
			var out, errs History
			require.True(t, NewCommandExecutor(shell, 0).Execute(context.Background(), " cmd ", &out, &errs))
			assert.Equal(t, []string{"cmd"}, shell.commands)
			assert.Equal(t, tt.wantOut, out.Len())
			assert.Equal(t, tt.wantErr, errs.Len())
			if tt.wantOut == 1 {
				assert.Equal(t, tt.stdout, out.At(0).Text)
				assert.Equal(t, KindText, out.At(0).Kind)
			}
			if tt.wantErr == 1 {
				assert.Equal(t, tt.stderr, errs.At(0).Text)
			}
		})
	}
}

func TestExecuteNonzeroExitRoutesNormally(t *testing.T) {
	shell := &fakeShell{stdout: "partial\n", stderr: "failed\n", exitCode: 2}
	var out, errs History
	NewCommandExecutor(shell, 0).Execute(context.Background(), "false", &out, &errs)
	require.Equal(t, 1, out.Len())
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, KindText, errs.At(0).Kind)
}

func TestExecuteDecodesInvalidUTF8(t *testing.T) {
	shell := &fakeShell{stdout: "a\xffb\xfe\xfd\n"}
	var out, errs History
	NewCommandExecutor(shell, 0).Execute(context.Background(), "cat blob", &out, &errs)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, "a�b�\n", out.At(0).Text)
}

func TestExecuteSpawnFailureGoesToErrors(t *testing.T) {
	shell := &fakeShell{exitCode: -1, err: errors.New(`exec: "nosh": executable file not found in $PATH`)}
	var out, errs History
	NewCommandExecutor(shell, 0).Execute(context.Background(), "echo hi", &out, &errs)
	assert.Zero(t, out.Len())
	require.Equal(t, 1, errs.Len())
	rec := errs.At(0)
	assert.Equal(t, KindSpawnFailure, rec.Kind)
	assert.Equal(t, `failed to start: exec: "nosh": executable file not found in $PATH`, rec.Text)
}

func TestRunTimeout(t *testing.T) {
	e := NewCommandExecutor(blockingShell, 50*time.Millisecond)
	job, _ := Prepare("sleep 10", 0)
	res := e.Run(context.Background(), job)

	var timeout *TimeoutError
	require.ErrorAs(t, res.Err, &timeout)
	assert.Equal(t, 50*time.Millisecond, timeout.After)

	var out, errs History
	Route(res, &out, &errs)
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, KindTimedOut, errs.At(0).Kind)
	assert.Equal(t, "timed out after 50ms: sleep 10", errs.At(0).Text)
	assert.Equal(t, 0, errs.At(0).Source)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	e := NewCommandExecutor(blockingShell, time.Minute)
	job, _ := Prepare("sleep 10", 2)
	res := e.Run(ctx, job)
	require.ErrorIs(t, res.Err, ErrCancelled)

	var out, errs History
	Route(res, &out, &errs)
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, Record{Text: "cancelled: sleep 10", Kind: KindCancelled, Source: 2}, errs.At(0))
}

func TestRunCleanExitIgnoresExpiredContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	shell := adapters.ExecutorFunc(func(_ context.Context, _ string) (adapters.ExecResult, error) {
		cancel()
		return adapters.ExecResult{Stdout: []byte("done\n")}, nil
	})
	job, _ := Prepare("true", 0)
	res := NewCommandExecutor(shell, 0).Run(ctx, job)
	assert.NoError(t, res.Err)
	assert.Equal(t, "done\n", string(res.Stdout))
}

func TestRouteKeepsSource(t *testing.T) {
	var out, errs History
	Route(Result{Job: Job{Command: "x", Source: 7}, Stdout: []byte("o"), Stderr: []byte("e")}, &out, &errs)
	assert.Equal(t, 7, out.At(0).Source)
	assert.Equal(t, 7, errs.At(0).Source)
}
