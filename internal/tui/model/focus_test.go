package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allFoci = []Focus{FocusNone, FocusInput, FocusOutput, FocusError}

func TestFocusNextPrevAreInverse(t *testing.T) {
	for _, f := range allFoci {
		assert.Equal(t, f, f.Next().Prev(), "prev(next(%s))", f)
		assert.Equal(t, f, f.Prev().Next(), "next(prev(%s))", f)
	}
}

func TestFocusCycleLength(t *testing.T) {
	for _, f := range allFoci {
		g := f
		for i := 0; i < 3; i++ {
			g = g.Next()
			assert.NotEqual(t, f, g, "%s returned to itself after %d steps", f, i+1)
		}
		assert.Equal(t, f, g.Next())
	}
}

func TestFocusOrder(t *testing.T) {
	assert.Equal(t, FocusInput, FocusNone.Next())
	assert.Equal(t, FocusOutput, FocusInput.Next())
	assert.Equal(t, FocusError, FocusOutput.Next())
	assert.Equal(t, FocusNone, FocusError.Next())

	assert.Equal(t, FocusNone, FocusInput.Prev())
	assert.Equal(t, FocusError, FocusNone.Prev())
}

func TestFocusString(t *testing.T) {
	assert.Equal(t, "none", FocusNone.String())
	assert.Equal(t, "input", FocusInput.String())
	assert.Equal(t, "output", FocusOutput.String())
	assert.Equal(t, "error", FocusError.String())
}
