package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"pkt.systems/pslog"

	"github.com/VoxDroid/spliminal/internal/tui/adapters"
)

// ErrCancelled is the error of a job whose context was cancelled before the
// command finished.
var ErrCancelled = errors.New("cancelled")

// TimeoutError is the error of a job killed after exceeding its timeout.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string { return "timed out after " + e.After.String() }

// Job is one submitted command awaiting execution.
type Job struct {
	ID      string
	Command string
	// Source is the index of the input record the command was read from.
	Source int
}

// Result is the outcome of running a Job.
type Result struct {
	Job      Job
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Duration time.Duration
	// Err is set when the command did not run to completion: a spawn
	// failure, ErrCancelled or a *TimeoutError. A nonzero exit is not an
	// error.
	Err error
}

// JobRunner runs jobs to completion.
type JobRunner interface {
	Run(ctx context.Context, job Job) Result
}

// Prepare trims raw and turns it into a job. It reports false when nothing
// is left to run.
func Prepare(raw string, source int) (Job, bool) {
	command := strings.TrimSpace(raw)
	if command == "" {
		return Job{}, false
	}
	return Job{ID: uuid.NewString(), Command: command, Source: source}, true
}

// CommandExecutor runs jobs through the shell adapter.
type CommandExecutor struct {
	adapter adapters.ExecutorAdapter
	timeout time.Duration
}

// NewCommandExecutor returns an executor backed by a. A zero timeout lets
// commands run until they exit or are cancelled.
func NewCommandExecutor(a adapters.ExecutorAdapter, timeout time.Duration) *CommandExecutor {
	return &CommandExecutor{adapter: a, timeout: timeout}
}

// Run executes job and blocks until it finishes, is cancelled through ctx, or
// times out.
func (e *CommandExecutor) Run(ctx context.Context, job Job) Result {
	runCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	log := pslog.Ctx(ctx).With("job", job.ID)
	log.Info("command started", "command", job.Command, "source", job.Source)

	start := time.Now()
	res, err := e.adapter.Run(runCtx, job.Command)
	out := Result{
		Job:      job,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		ExitCode: res.ExitCode,
		Duration: time.Since(start),
	}
	// A command that exited cleanly wins over a deadline that expired while
	// it was being reaped.
	if (err != nil || res.ExitCode != 0) && runCtx.Err() != nil {
		if ctx.Err() == nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			out.Err = &TimeoutError{After: e.timeout}
		} else {
			out.Err = ErrCancelled
		}
	} else if err != nil {
		out.Err = err
	}

	if out.Err != nil {
		log.Error("command did not complete", "command", job.Command, "err", out.Err, "duration", out.Duration)
	} else {
		log.Info("command finished",
			"exit_code", out.ExitCode,
			"stdout_bytes", len(out.Stdout),
			"stderr_bytes", len(out.Stderr),
			"duration", out.Duration,
		)
	}
	return out
}

// Execute trims raw, runs it to completion and routes the result into output
// and errs. It reports false, touching nothing, when raw is blank.
func (e *CommandExecutor) Execute(ctx context.Context, raw string, output, errs *History) bool {
	job, ok := Prepare(raw, NoSource)
	if !ok {
		return false
	}
	Route(e.Run(ctx, job), output, errs)
	return true
}

// Route appends the non-empty streams of r to output and errs, followed by a
// tagged error record when the command did not complete.
func Route(r Result, output, errs *History) {
	if len(r.Stdout) > 0 {
		output.AppendRecord(Record{Text: decode(r.Stdout), Source: r.Job.Source})
	}
	if len(r.Stderr) > 0 {
		errs.AppendRecord(Record{Text: decode(r.Stderr), Source: r.Job.Source})
	}
	if r.Err != nil {
		errs.AppendRecord(failureRecord(r))
	}
}

func failureRecord(r Result) Record {
	rec := Record{Source: r.Job.Source}
	var timeout *TimeoutError
	switch {
	case errors.As(r.Err, &timeout):
		rec.Kind = KindTimedOut
		rec.Text = fmt.Sprintf("%s: %s", timeout.Error(), r.Job.Command)
	case errors.Is(r.Err, ErrCancelled):
		rec.Kind = KindCancelled
		rec.Text = "cancelled: " + r.Job.Command
	default:
		rec.Kind = KindSpawnFailure
		rec.Text = "failed to start: " + r.Err.Error()
	}
	return rec
}

// decode converts captured bytes to text, replacing each invalid UTF-8
// sequence with U+FFFD.
func decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
