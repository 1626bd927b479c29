package model

// Focus identifies which pane currently receives character-level keystrokes.
// The zero value is FocusNone, where only global bindings apply.
type Focus int

const (
	FocusNone Focus = iota
	FocusInput
	FocusOutput
	FocusError
)

// focusCycle is the forward Tab order.
var focusCycle = [...]Focus{FocusInput, FocusOutput, FocusError, FocusNone}

// Next returns the focus that follows f in Tab order.
func (f Focus) Next() Focus {
	return focusCycle[(f.position()+1)%len(focusCycle)]
}

// Prev returns the focus that precedes f in Tab order (Shift+Tab).
func (f Focus) Prev() Focus {
	return focusCycle[(f.position()+len(focusCycle)-1)%len(focusCycle)]
}

// position returns the index of f in focusCycle. Unknown values behave as
// FocusNone.
func (f Focus) position() int {
	for i, c := range focusCycle {
		if c == f {
			return i
		}
	}
	return len(focusCycle) - 1
}

func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusOutput:
		return "output"
	case FocusError:
		return "error"
	default:
		return "none"
	}
}
