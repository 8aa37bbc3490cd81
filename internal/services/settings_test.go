package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxctl/voxctl/internal/memory"
	"github.com/voxctl/voxctl/internal/model"
	"github.com/voxctl/voxctl/internal/persona"
	"github.com/voxctl/voxctl/internal/speech"
)

func newSettingsService() (*SettingsService, *persona.State, *speech.VoiceState) {
	personas := persona.NewState("tactical")
	voices := speech.NewVoiceState("alloy")
	return NewSettingsService(personas, voices), personas, voices
}

func TestSetPersona(t *testing.T) {
	svc, personas, _ := newSettingsService()

	mode, err := svc.SetPersona("CHILL")
	require.NoError(t, err)
	require.Equal(t, "chill", mode)
	require.Equal(t, "chill", personas.Mode())
	require.Equal(t, persona.Personas["chill"], personas.Prompt())
}

func TestSetPersonaUnknownMode(t *testing.T) {
	svc, personas, _ := newSettingsService()

	_, err := svc.SetPersona("grumpy")
	require.True(t, errors.Is(err, model.ErrValidation))
	require.Contains(t, err.Error(), "tactical")
	require.Equal(t, "tactical", personas.Mode())
}

func TestSetVoice(t *testing.T) {
	svc, _, voices := newSettingsService()

	name, err := svc.SetVoice("Verse")
	require.NoError(t, err)
	require.Equal(t, "verse", name)
	require.Equal(t, "verse", voices.Name())
}

func TestSetVoiceUnknownName(t *testing.T) {
	svc, _, voices := newSettingsService()

	_, err := svc.SetVoice("brian")
	require.True(t, errors.Is(err, model.ErrValidation))
	require.Equal(t, "alloy", voices.Name())
}

func TestMemoryServiceClears(t *testing.T) {
	store := memory.NewStore()
	store.AppendChannel(7, memory.Exchange{Prompt: "p", Reply: "r"})
	store.AppendUser(9, memory.Exchange{Prompt: "p", Reply: "r"})
	svc := NewMemoryService(store)

	svc.ResetChannel(7)
	require.Empty(t, store.ChannelHistory(7))

	svc.ForgetUser(9)
	require.Empty(t, store.UserHistory(9))

	// Clearing absent history is fine.
	svc.ResetChannel(7)
	svc.ForgetUser(12345)
}
