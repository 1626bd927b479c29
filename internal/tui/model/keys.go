package model

// KeyCode is the part of a key event the session dispatches on.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyRune
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyEnter
)

// EventKind distinguishes presses from repeats and releases. Terminals that
// cannot report the difference deliver every event as KeyPress.
type EventKind int

const (
	KeyPress EventKind = iota
	KeyRepeat
	KeyRelease
)

// KeyEvent is a terminal-independent key event.
type KeyEvent struct {
	Code KeyCode
	Rune rune // set when Code is KeyRune
	Kind EventKind
}

// Rune builds a press event for a printable character.
func Rune(r rune) KeyEvent { return KeyEvent{Code: KeyRune, Rune: r} }

// Press builds a press event for a non-character key.
func Press(code KeyCode) KeyEvent { return KeyEvent{Code: code} }
