package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/VoxDroid/spliminal/internal/tui/model"
)

// translateKey converts a Bubble Tea key message into session key events.
// Fast typing can deliver several runes in one message; each becomes its own
// event. Pastes and Alt combinations are not typed input.
func translateKey(msg tea.KeyMsg) []model.KeyEvent {
	if msg.Paste || msg.Alt {
		return []model.KeyEvent{model.Press(model.KeyOther)}
	}
	switch msg.Type {
	case tea.KeyRunes:
		evs := make([]model.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			evs = append(evs, model.Rune(r))
		}
		return evs
	case tea.KeySpace:
		return []model.KeyEvent{model.Rune(' ')}
	case tea.KeyTab:
		return []model.KeyEvent{model.Press(model.KeyTab)}
	case tea.KeyShiftTab:
		return []model.KeyEvent{model.Press(model.KeyBackTab)}
	case tea.KeyBackspace:
		return []model.KeyEvent{model.Press(model.KeyBackspace)}
	case tea.KeyEnter:
		return []model.KeyEvent{model.Press(model.KeyEnter)}
	}
	return []model.KeyEvent{model.Press(model.KeyOther)}
}

// dispatchKey routes KeyMsg to the UI-level bindings first (cancellation and
// scrolling) and hands everything else to the session.
func dispatchKey(m *TuiModel, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) {
		if len(m.cancels) > 0 {
			m.logger().Info("cancelling running commands", "count", len(m.cancels))
			m.cancelJobs()
		}
		return m, nil
	}
	if handleScroll(m, msg) {
		return m, nil
	}

	var cmds []tea.Cmd
	for _, ev := range translateKey(msg) {
		var a model.Action
		if m.opts.Blocking {
			a = m.session.Dispatch(m.ctx, ev, m.runner)
		} else {
			a = m.session.HandleKey(ev)
			if a.Submit != nil {
				cmds = append(cmds, m.startJob(*a.Submit))
			}
		}
		if a.Quit {
			m.cancelJobs()
			return m, tea.Quit
		}
	}
	m.logger().Trace("key dispatched", "key", msg.String(), "focus", m.session.Focus().String())
	m.syncPanes()
	return m, tea.Batch(cmds...)
}

// handleScroll scrolls the focused pane. It reports whether msg was a
// scroll key.
func handleScroll(m *TuiModel, msg tea.KeyMsg) bool {
	vp := m.pane(m.session.Focus())
	if vp == nil {
		return false
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		vp.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		vp.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		vp.HalfPageUp()
	case key.Matches(msg, m.keys.PageDown):
		vp.HalfPageDown()
	case key.Matches(msg, m.keys.Top):
		vp.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		vp.GotoBottom()
	default:
		return false
	}
	return true
}
