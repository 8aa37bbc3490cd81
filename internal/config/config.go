// Package config loads service configuration from VOX_-prefixed environment
// variables.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
)

// Config holds configuration for both the panel and control tiers. Each tier
// validates only the fields it needs.
type Config struct {
	// Panel (public) tier
	PanelAPIKey string `envconfig:"PANEL_API_KEY" default:""`
	PanelPort   int    `envconfig:"PANEL_PORT" default:"8000"`

	// Shared secret and address of the control tier
	ControlKey  string `envconfig:"CONTROL_KEY" default:""`
	ControlURL  string `envconfig:"CONTROL_URL" default:"http://127.0.0.1:8765"`
	ControlHost string `envconfig:"CONTROL_HOST" default:"127.0.0.1"`
	ControlPort int    `envconfig:"CONTROL_PORT" default:"8765"`

	// Panel -> control forward timeout
	ForwardTimeoutSeconds int `envconfig:"FORWARD_TIMEOUT_SECONDS" default:"30"`

	// Control-tier runtime and collaborators
	Runtime    string `envconfig:"RUNTIME" default:"dev"`
	SoundsDir  string `envconfig:"SOUNDS_DIR" default:"sounds"`
	ScratchDir string `envconfig:"SCRATCH_DIR" default:""`

	DefaultPersona string `envconfig:"DEFAULT_PERSONA" default:"tactical"`
	DefaultVoice   string `envconfig:"DEFAULT_VOICE" default:"alloy"`

	// AI helper endpoints (OpenAI-compatible). Empty API key selects the
	// no-op adapters.
	AIBaseURL       string `envconfig:"AI_BASE_URL" default:"https://api.openai.com"`
	AIAPIKey        string `envconfig:"AI_API_KEY" default:""`
	CompletionModel string `envconfig:"COMPLETION_MODEL" default:"gpt-4o-mini"`
	SpeechModel     string `envconfig:"SPEECH_MODEL" default:"tts-1"`

	// Media resolver binary
	YtdlpPath string `envconfig:"YTDLP_PATH" default:"yt-dlp"`

	// Health checking
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
}

// New parses VOX_-prefixed environment variables and resolves defaults.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("VOX", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveDefaults fills derived values and rejects unsupported selections.
func (c *Config) ResolveDefaults() error {
	if c.ScratchDir == "" {
		c.ScratchDir = os.TempDir()
	}
	switch c.Runtime {
	case "dev":
	default:
		return fmt.Errorf("unsupported VOX_RUNTIME: %s", c.Runtime)
	}
	if c.ForwardTimeoutSeconds <= 0 {
		return fmt.Errorf("VOX_FORWARD_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// ValidatePanel checks the fields the panel tier cannot run without.
func (c *Config) ValidatePanel() error {
	if c.PanelAPIKey == "" {
		return fmt.Errorf("VOX_PANEL_API_KEY is required")
	}
	if c.ControlKey == "" {
		return fmt.Errorf("VOX_CONTROL_KEY is required")
	}
	if c.ControlURL == "" {
		return fmt.Errorf("VOX_CONTROL_URL is required")
	}
	return nil
}

// ValidateControl checks the fields the control tier cannot run without.
func (c *Config) ValidateControl() error {
	if c.ControlKey == "" {
		return fmt.Errorf("VOX_CONTROL_KEY is required")
	}
	return nil
}
