package ui

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"pkt.systems/pslog"

	"github.com/VoxDroid/spliminal/internal/tui/model"
)

// paneOrder lists the panes in the order of TuiModel.panes.
var paneOrder = [...]model.Focus{model.FocusInput, model.FocusOutput, model.FocusError}

// TuiModel is the Bubble Tea model used by cmd.
type TuiModel struct {
	ctx     context.Context
	session *model.Session
	runner  model.JobRunner
	opts    Options

	keys keyMap
	help help.Model
	spin spinner.Model

	// panes holds one viewport per entry of paneOrder. Scroll offsets are
	// presentation state only; the session never sees them.
	panes [len(paneOrder)]viewport.Model

	width  int
	height int

	cancels map[string]context.CancelFunc
	jobs    sync.WaitGroup
}

// Messages
type jobDoneMsg model.Result

func (m *TuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layoutPanes()
		m.syncPanes()
		return m, nil

	case tea.KeyMsg:
		return dispatchKey(m, msg)

	case jobDoneMsg:
		res := model.Result(msg)
		if cancel, ok := m.cancels[res.Job.ID]; ok {
			cancel()
			delete(m.cancels, res.Job.ID)
		}
		m.session.Complete(res)
		m.syncPanes()
		return m, nil

	case spinner.TickMsg:
		// Let the tick chain lapse once nothing is running; startJob
		// restarts it.
		if len(m.cancels) == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

// pane returns the viewport showing f.
func (m *TuiModel) pane(f model.Focus) *viewport.Model {
	for i, p := range paneOrder {
		if p == f {
			return &m.panes[i]
		}
	}
	return nil
}

// syncPanes refreshes every viewport from the session. Panes that were
// scrolled to the bottom keep following new content.
func (m *TuiModel) syncPanes() {
	for i, f := range paneOrder {
		vp := &m.panes[i]
		follow := vp.AtBottom()
		vp.SetContent(m.paneContent(f, vp.Width))
		if follow {
			vp.GotoBottom()
		}
	}
}

func (m *TuiModel) logger() pslog.Logger { return pslog.Ctx(m.ctx) }
