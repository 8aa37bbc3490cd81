package sfx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	path, ok := Lookup("sounds", "flashbang")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("sounds", "flashbang.mp3"), path)
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	path, ok := Lookup("sounds", "FLASHBANG")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("sounds", "flashbang.mp3"), path)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("sounds", "doesnotexist")
	assert.False(t, ok)
}
