package logger

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// capture redirects os.Stdout around f and returns everything written.
func capture(t *testing.T, f func()) []byte {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	f()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return out
}

func lastLine(out []byte) []byte {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	return []byte(lines[len(lines)-1])
}

func TestNewTagsServiceName(t *testing.T) {
	out := capture(t, func() {
		log := New("vox-control")
		log.Info().Msg("starting")
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lastLine(out), &entry))
	require.Equal(t, "vox-control", entry["service"])
	require.Equal(t, "info", entry["level"])
	require.NotEmpty(t, entry["time"])
}

func TestErrorEventsCarryStacks(t *testing.T) {
	for name, err := range map[string]error{
		"std error":     errors.New("boom"),
		"wrapped error": pkgerrors.New("boom"),
	} {
		t.Run(name, func(t *testing.T) {
			err := err
			out := capture(t, func() {
				log := New("vox-panel")
				log.Error().Stack().Err(err).Msg("command failed")
			})

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(lastLine(out), &entry))
			require.Equal(t, "error", entry["level"])
			require.Equal(t, "boom", entry["error"])
			require.Contains(t, entry, "stack")
		})
	}
}
