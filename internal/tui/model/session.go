// Package model holds the terminal-independent state of a Spliminal session:
// pane focus, the input/output/error histories and the dispatch of key
// events onto them. Rendering and command execution live elsewhere and talk
// to the session through KeyEvent, Job and Result.
package model

import (
	"context"
	"slices"
)

// Action tells the caller what a key event requires beyond the state change
// already applied to the session.
type Action struct {
	// Submit is the job to run when Enter submitted a non-blank command.
	Submit *Job
	// Quit is set when the event set the exit flag.
	Quit bool
}

// Session owns the focus state and the three pane histories. It is not safe
// for concurrent use; all mutation is expected on the UI loop.
type Session struct {
	focus   Focus
	input   History
	output  History
	errs    History
	exit    bool
	pending []Job
}

// NewSession returns a session with empty histories and no focused pane.
func NewSession() *Session { return &Session{} }

// Focus returns the focused pane.
func (s *Session) Focus() Focus { return s.focus }

// Exit reports whether the exit flag has been set.
func (s *Session) Exit() bool { return s.exit }

// Input returns the input history. Callers must treat it as read-only.
func (s *Session) Input() *History { return &s.input }

// Output returns the output history. Callers must treat it as read-only.
func (s *Session) Output() *History { return &s.output }

// Errors returns the error history. Callers must treat it as read-only.
func (s *Session) Errors() *History { return &s.errs }

// History returns the history shown in pane f, or nil for FocusNone.
func (s *Session) History(f Focus) *History {
	switch f {
	case FocusInput:
		return &s.input
	case FocusOutput:
		return &s.output
	case FocusError:
		return &s.errs
	}
	return nil
}

// Pending returns the submitted jobs that have not completed, oldest first.
func (s *Session) Pending() []Job { return slices.Clone(s.pending) }

// HandleKey applies ev to the session. Only press events are dispatched.
func (s *Session) HandleKey(ev KeyEvent) Action {
	if ev.Kind != KeyPress {
		return Action{}
	}
	switch ev.Code {
	case KeyTab:
		s.focus = s.focus.Next()
	case KeyBackTab:
		s.focus = s.focus.Prev()
	case KeyRune:
		switch {
		case s.focus == FocusNone && ev.Rune == 'q':
			s.exit = true
			return Action{Quit: true}
		case s.focus == FocusInput:
			if s.input.Len() == 0 {
				s.input.Append("")
			}
			s.input.PushRune(ev.Rune)
		}
	case KeyBackspace:
		if s.focus == FocusInput {
			s.input.PopRune()
		}
	case KeyEnter:
		if s.focus == FocusInput {
			return s.submit()
		}
	}
	return Action{}
}

// submit turns the current edit buffer into a job and opens a fresh buffer.
// The new empty record is appended even when there is nothing to run.
func (s *Session) submit() Action {
	raw, source := "", NoSource
	if last, ok := s.input.Last(); ok {
		raw, source = last.Text, s.input.Len()-1
	}
	s.input.Append("")
	job, ok := Prepare(raw, source)
	if !ok {
		return Action{}
	}
	s.pending = append(s.pending, job)
	return Action{Submit: &job}
}

// Complete routes a finished job into the output and error histories.
func (s *Session) Complete(r Result) {
	s.pending = slices.DeleteFunc(s.pending, func(j Job) bool { return j.ID == r.Job.ID })
	Route(r, &s.output, &s.errs)
}

// Dispatch applies ev and, when it submits a command, runs it with runner
// before returning. This is the blocking mode of operation: the caller
// does not see the next event until the command has finished.
func (s *Session) Dispatch(ctx context.Context, ev KeyEvent, runner JobRunner) Action {
	a := s.HandleKey(ev)
	if a.Submit != nil {
		s.Complete(runner.Run(ctx, *a.Submit))
	}
	return a
}
