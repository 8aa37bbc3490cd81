package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModesAreSortedAndComplete(t *testing.T) {
	modes := Modes()
	assert.Len(t, modes, len(Personas))
	assert.IsIncreasing(t, modes)
	assert.Contains(t, modes, "tactical")
}

func TestNewStateFallsBack(t *testing.T) {
	s := NewState("nonsense")
	assert.Equal(t, "tactical", s.Mode())
	assert.Equal(t, Personas["tactical"], s.Prompt())
}

func TestSetIsObservedImmediately(t *testing.T) {
	s := NewState("tactical")
	prompt, ok := Personas["butler"]
	require.True(t, ok)
	s.Set("butler", prompt)
	assert.Equal(t, "butler", s.Mode())
	assert.Equal(t, prompt, s.Prompt())
}
