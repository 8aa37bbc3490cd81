package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.PanelPort)
	assert.Equal(t, "http://127.0.0.1:8765", cfg.ControlURL)
	assert.Equal(t, "127.0.0.1", cfg.ControlHost)
	assert.Equal(t, 8765, cfg.ControlPort)
	assert.Equal(t, 30, cfg.ForwardTimeoutSeconds)
	assert.Equal(t, "dev", cfg.Runtime)
	assert.Equal(t, "tactical", cfg.DefaultPersona)
	assert.Equal(t, "alloy", cfg.DefaultVoice)
	assert.NotEmpty(t, cfg.ScratchDir, "scratch dir should fall back to the OS temp dir")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VOX_PANEL_PORT", "9001")
	t.Setenv("VOX_CONTROL_URL", "http://10.0.0.2:8765")
	t.Setenv("VOX_PANEL_API_KEY", "public-key")
	t.Setenv("VOX_CONTROL_KEY", "internal-key")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.PanelPort)
	assert.Equal(t, "http://10.0.0.2:8765", cfg.ControlURL)
	require.NoError(t, cfg.ValidatePanel())
	require.NoError(t, cfg.ValidateControl())
}

func TestResolveDefaultsRejectsUnknownRuntime(t *testing.T) {
	t.Setenv("VOX_RUNTIME", "quantum")
	_, err := New()
	require.Error(t, err)
}

func TestValidatePanelRequiresKeys(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	cfg.PanelAPIKey = ""
	assert.Error(t, cfg.ValidatePanel())

	cfg.PanelAPIKey = "k"
	cfg.ControlKey = ""
	assert.Error(t, cfg.ValidatePanel())
	assert.Error(t, cfg.ValidateControl())
}
