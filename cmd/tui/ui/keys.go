package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/VoxDroid/spliminal/internal/tui/model"
)

// keyMap holds the bindings shown in the help line and the ones handled by
// the UI itself rather than the session (scrolling and cancellation).
type keyMap struct {
	Focus     key.Binding
	FocusBack key.Binding
	Submit    key.Binding
	Quit      key.Binding
	Cancel    key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	Bottom    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		FocusBack: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Cancel:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "cancel running")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "scroll")),
		Down:      key.NewBinding(key.WithKeys("down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "page")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown")),
		Top:       key.NewBinding(key.WithKeys("home")),
		Bottom:    key.NewBinding(key.WithKeys("end")),
	}
}

// shortHelp returns the bindings worth showing for the current focus.
func (k keyMap) shortHelp(focus model.Focus, running bool) []key.Binding {
	var out []key.Binding
	switch focus {
	case model.FocusNone:
		out = []key.Binding{k.Focus, k.Quit}
	case model.FocusInput:
		out = []key.Binding{k.Submit, k.Focus, k.FocusBack}
	default:
		out = []key.Binding{k.Up, k.PageUp, k.Focus, k.FocusBack}
	}
	if running {
		out = append(out, k.Cancel)
	}
	return out
}
