package ui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	modelpkg "github.com/VoxDroid/spliminal/internal/tui/model"
)

func TestTranslateKey(t *testing.T) {
	other := []modelpkg.KeyEvent{modelpkg.Press(modelpkg.KeyOther)}
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want []modelpkg.KeyEvent
	}{
		{"single rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, []modelpkg.KeyEvent{modelpkg.Rune('a')}},
		{"burst", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("é界")}, []modelpkg.KeyEvent{modelpkg.Rune('é'), modelpkg.Rune('界')}},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, []modelpkg.KeyEvent{modelpkg.Rune(' ')}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []modelpkg.KeyEvent{modelpkg.Press(modelpkg.KeyTab)}},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, []modelpkg.KeyEvent{modelpkg.Press(modelpkg.KeyBackTab)}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []modelpkg.KeyEvent{modelpkg.Press(modelpkg.KeyBackspace)}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []modelpkg.KeyEvent{modelpkg.Press(modelpkg.KeyEnter)}},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, other},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, other},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("rm -rf"), Paste: true}, other},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := translateKey(tc.msg); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("translateKey(%v) = %+v, want %+v", tc.msg, got, tc.want)
			}
		})
	}
}

func TestShortHelpFollowsFocus(t *testing.T) {
	k := newKeyMap()
	if got := k.shortHelp(modelpkg.FocusNone, false); len(got) != 2 || got[1].Help().Key != "q" {
		t.Fatalf("unexpected help for no focus: %+v", got)
	}
	if got := k.shortHelp(modelpkg.FocusInput, false); got[0].Help().Key != "enter" {
		t.Fatalf("expected enter first with input focus")
	}
	got := k.shortHelp(modelpkg.FocusOutput, true)
	if got[len(got)-1].Help().Key != "ctrl+c" {
		t.Fatalf("expected cancel hint while running")
	}
}
