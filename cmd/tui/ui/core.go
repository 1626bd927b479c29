package ui

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/VoxDroid/spliminal/internal/tui/model"
)

// Options tunes presentation and execution of the TUI.
type Options struct {
	// Title is shown centered in the outer frame.
	Title string
	// Accent colors the focused pane's border.
	Accent string
	// HighContrast switches to a black and white palette.
	HighContrast bool
	// Blocking runs each command inside Update, freezing the screen until
	// it finishes, instead of in the background.
	Blocking bool
}

// NewModel constructs the Bubble Tea TUI model used by cmd. ctx is the parent
// of every job context and carries the logger.
func NewModel(ctx context.Context, session *model.Session, runner model.JobRunner, opts Options) *TuiModel {
	if opts.Title == "" {
		opts.Title = "Spliminal"
	}
	if opts.Accent == "" {
		opts.Accent = "#c084fc"
	}
	m := &TuiModel{
		ctx:     ctx,
		session: session,
		runner:  runner,
		opts:    opts,
		keys:    newKeyMap(),
		help:    help.New(),
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		cancels: map[string]context.CancelFunc{},
	}
	for i := range m.panes {
		m.panes[i] = viewport.New(0, 0)
	}
	return m
}

// NewProgram constructs the tea.Program for the TUI. The program stops when
// ctx is cancelled; extra options are appended after the defaults.
func NewProgram(ctx context.Context, m *TuiModel, opts ...tea.ProgramOption) *tea.Program {
	base := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	return tea.NewProgram(m, append(base, opts...)...)
}

// Init implements tea.Model. There is nothing to load up front.
func (m *TuiModel) Init() tea.Cmd { return nil }

// startJob registers a cancellable context for job and returns the command
// that runs it off the UI loop.
func (m *TuiModel) startJob(job model.Job) tea.Cmd {
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancels[job.ID] = cancel
	m.jobs.Add(1)
	run := func() tea.Msg {
		defer m.jobs.Done()
		return jobDoneMsg(m.runner.Run(ctx, job))
	}
	if len(m.cancels) == 1 {
		return tea.Batch(run, m.spin.Tick)
	}
	return run
}

// cancelJobs kills every running job. Their results still arrive as
// jobDoneMsg and are routed as cancelled.
func (m *TuiModel) cancelJobs() {
	for _, cancel := range m.cancels {
		cancel()
	}
}

// Shutdown cancels running jobs and waits up to timeout for them to be
// reaped. It reports whether all jobs finished in time.
func (m *TuiModel) Shutdown(timeout time.Duration) bool {
	m.cancelJobs()
	return waitTimeout(&m.jobs, timeout)
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
