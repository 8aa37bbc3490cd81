package services

import (
	"strings"

	"github.com/voxctl/voxctl/internal/model"
	"github.com/voxctl/voxctl/internal/persona"
	"github.com/voxctl/voxctl/internal/speech"
)

// SettingsService swaps the process-wide persona and synthesis voice. Both
// are validated against their fixed tables before the swap.
type SettingsService struct {
	personas *persona.State
	voice    *speech.VoiceState
}

func NewSettingsService(personas *persona.State, voice *speech.VoiceState) *SettingsService {
	return &SettingsService{personas: personas, voice: voice}
}

// SetPersona activates the named persona. Unknown modes list the valid set.
func (s *SettingsService) SetPersona(mode string) (string, error) {
	mode = strings.ToLower(mode)
	prompt, ok := persona.Personas[mode]
	if !ok {
		return "", model.Invalidf("invalid persona %q, available: %s", mode, strings.Join(persona.Modes(), ", "))
	}
	s.personas.Set(mode, prompt)
	return mode, nil
}

// SetVoice activates the named synthesis voice. Unknown names list the
// allow-set.
func (s *SettingsService) SetVoice(name string) (string, error) {
	name = strings.ToLower(name)
	if !speech.ValidVoice(name) {
		return "", model.Invalidf("unknown voice %q, try: %s", name, strings.Join(speech.Voices, ", "))
	}
	s.voice.Set(name)
	return name, nil
}
