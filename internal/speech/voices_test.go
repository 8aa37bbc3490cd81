package speech

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidVoice(t *testing.T) {
	for _, v := range Voices {
		assert.True(t, ValidVoice(v), v)
	}
	assert.False(t, ValidVoice("robocop"))
	assert.False(t, ValidVoice(""))
}

func TestVoiceState(t *testing.T) {
	s := NewVoiceState("verse")
	assert.Equal(t, "verse", s.Name())

	s.Set("echo")
	assert.Equal(t, "echo", s.Name())
}

func TestVoiceStateFallsBack(t *testing.T) {
	s := NewVoiceState("robocop")
	assert.Equal(t, Voices[0], s.Name())
}

func TestWriteScratch(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteScratch(dir, "speak_api.mp3", []byte("audio"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "speak_api.mp3"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("audio"), data)

	// overwrites on the next call
	_, err = WriteScratch(dir, "speak_api.mp3", []byte("newer"))
	require.NoError(t, err)
	data, _ = os.ReadFile(path)
	assert.Equal(t, []byte("newer"), data)
}
