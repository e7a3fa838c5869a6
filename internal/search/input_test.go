package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput_InitialState(t *testing.T) {
	in := NewInput(nil)
	assert.Equal(t, "", in.Value())
	assert.Equal(t, StateEmpty, in.State())
	assert.Equal(t, DefaultPlaceholder, in.Placeholder())
}

func TestInput_ReportsFullTextOnEveryKeystroke(t *testing.T) {
	var calls []string
	in := NewInput(func(q string) { calls = append(calls, q) })

	in.InsertString("смарт")
	assert.Equal(t, []string{"с", "см", "сма", "смар", "смарт"}, calls)
	assert.Equal(t, StateNonEmpty, in.State())

	calls = nil
	in.Backspace()
	in.Backspace()
	assert.Equal(t, []string{"смар", "сма"}, calls)
	assert.Equal(t, "сма", in.Value())
}

func TestInput_StateTransitions(t *testing.T) {
	var last string
	in := NewInput(func(q string) { last = q })

	in.Insert('r')
	assert.Equal(t, StateNonEmpty, in.State())
	assert.Equal(t, "r", last)

	in.Backspace()
	assert.Equal(t, StateEmpty, in.State())
	assert.Equal(t, "", last)
}

func TestInput_BackspaceOnEmptyStillNotifies(t *testing.T) {
	calls := 0
	in := NewInput(func(q string) {
		calls++
		assert.Equal(t, "", q)
	})

	in.Backspace()
	assert.Equal(t, 1, calls)
	assert.Equal(t, StateEmpty, in.State())
}

func TestInput_SetValue(t *testing.T) {
	var calls []string
	in := NewInput(func(q string) { calls = append(calls, q) })

	in.SetValue("React")
	in.SetValue("")
	assert.Equal(t, []string{"React", ""}, calls)
	assert.Equal(t, StateEmpty, in.State())
}

func TestInput_DoesNotTruncate(t *testing.T) {
	in := NewInput(nil)
	long := strings.Repeat("я", MaxQueryLength+5)
	in.SetValue(long)
	assert.Equal(t, long, in.Value())
	assert.Equal(t, DefaultPlaceholder, in.Placeholder())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "empty", StateEmpty.String())
	assert.Equal(t, "non-empty", StateNonEmpty.String())
}
