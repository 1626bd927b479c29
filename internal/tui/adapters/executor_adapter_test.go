package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"testing"
)

// fakeRunner writes fixed text to each stream and returns err.
type fakeRunner struct {
	stdout, stderr string
	err            error
	gotCommand     string
}

func (f *fakeRunner) Execute(_ context.Context, command string, stdout, stderr io.Writer) error {
	f.gotCommand = command
	_, _ = io.WriteString(stdout, f.stdout)
	_, _ = io.WriteString(stderr, f.stderr)
	return f.err
}

func TestExecutorAdapter_CapturesStreamsSeparately(t *testing.T) {
	r := &fakeRunner{stdout: "out\n", stderr: "err\n"}
	res, err := NewExecutorAdapter(r).Run(context.Background(), "echo hi")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if r.gotCommand != "echo hi" {
		t.Fatalf("expected command passed through, got %q", r.gotCommand)
	}
	if string(res.Stdout) != "out\n" || string(res.Stderr) != "err\n" {
		t.Fatalf("unexpected streams: stdout=%q stderr=%q", res.Stdout, res.Stderr)
	}
	if res.ExitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", res.ExitCode)
	}
}

func TestExecutorAdapter_NonzeroExitIsNotAnError(t *testing.T) {
	exitErr := exec.Command("sh", "-c", "exit 3").Run()
	if exitErr == nil {
		t.Fatalf("expected sh to exit nonzero")
	}
	r := &fakeRunner{stderr: "boom\n", err: exitErr}
	res, err := NewExecutorAdapter(r).Run(context.Background(), "false")
	if err != nil {
		t.Fatalf("nonzero exit should not be an error: %v", err)
	}
	if res.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d", res.ExitCode)
	}
	if string(res.Stderr) != "boom\n" {
		t.Fatalf("expected stderr kept, got %q", res.Stderr)
	}
}

func TestExecutorAdapter_SpawnFailureIsReturned(t *testing.T) {
	spawn := errors.New("no such shell")
	res, err := NewExecutorAdapter(&fakeRunner{err: spawn}).Run(context.Background(), "echo hi")
	if !errors.Is(err, spawn) {
		t.Fatalf("expected spawn error, got %v", err)
	}
	if res.ExitCode != -1 {
		t.Fatalf("expected exit code -1, got %d", res.ExitCode)
	}
}

func TestExecutorFunc(t *testing.T) {
	var got string
	f := ExecutorFunc(func(_ context.Context, command string) (ExecResult, error) {
		got = command
		return ExecResult{Stdout: []byte("ok")}, nil
	})
	res, err := f.Run(context.Background(), "true")
	if err != nil || got != "true" || string(res.Stdout) != "ok" {
		t.Fatalf("unexpected result: %v %q %q", err, got, res.Stdout)
	}
}

func TestExecutorAdapter_WaitDelayIsCompletion(t *testing.T) {
	r := &fakeRunner{stdout: "partial\n", err: fmt.Errorf("wait for sh: %w", exec.ErrWaitDelay)}
	res, err := NewExecutorAdapter(r).Run(context.Background(), "sleep 60 &")
	if err != nil {
		t.Fatalf("expected completion, got %v", err)
	}
	if res.ExitCode != 0 || string(res.Stdout) != "partial\n" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
