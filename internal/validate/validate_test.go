package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxctl/voxctl/internal/model"
)

func TestID(t *testing.T) {
	v, err := ID("guild_id", "123")
	require.NoError(t, err)
	assert.Equal(t, int64(123), v)

	_, err = ID("guild_id", "")
	assert.EqualError(t, err, "guild_id is required")

	for _, raw := range []string{"abc", "-4", "0", "1.5"} {
		_, err = ID("guild_id", raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestSay(t *testing.T) {
	assert.NoError(t, Say(model.SayCommand{ChannelID: 123, Message: "hello"}))
	assert.Error(t, Say(model.SayCommand{Message: "hello"}))
	assert.Error(t, Say(model.SayCommand{ChannelID: 123}))
}

func TestPlayMedia(t *testing.T) {
	assert.NoError(t, PlayMedia(model.PlayMediaCommand{URL: "https://example.com/watch?v=1"}))

	vc := int64(55)
	assert.NoError(t, PlayMedia(model.PlayMediaCommand{URL: "https://example.com/x", VoiceChannelID: &vc}))

	assert.Error(t, PlayMedia(model.PlayMediaCommand{}))
	assert.Error(t, PlayMedia(model.PlayMediaCommand{URL: "not a url"}))

	bad := int64(0)
	assert.Error(t, PlayMedia(model.PlayMediaCommand{URL: "https://example.com/x", VoiceChannelID: &bad}))
}

func TestEquipmentCheck(t *testing.T) {
	assert.NoError(t, EquipmentCheck(model.EquipmentCheckCommand{TextChannelID: 9}))

	vc := int64(10)
	assert.NoError(t, EquipmentCheck(model.EquipmentCheckCommand{TextChannelID: 9, VoiceChannelID: &vc}))

	assert.Error(t, EquipmentCheck(model.EquipmentCheckCommand{}))
}

func TestRemainingCommands(t *testing.T) {
	assert.NoError(t, JoinVoice(model.JoinVoiceCommand{VoiceChannelID: 1}))
	assert.Error(t, JoinVoice(model.JoinVoiceCommand{}))

	assert.NoError(t, LeaveVoice(model.LeaveVoiceCommand{GuildID: 1}))
	assert.Error(t, LeaveVoice(model.LeaveVoiceCommand{}))

	assert.NoError(t, PlaySfx(model.PlaySfxCommand{VoiceChannelID: 1, Name: "flashbang"}))
	assert.Error(t, PlaySfx(model.PlaySfxCommand{VoiceChannelID: 1}))

	assert.NoError(t, Speak(model.SpeakCommand{VoiceChannelID: 1, Text: "hi"}))
	assert.Error(t, Speak(model.SpeakCommand{VoiceChannelID: 1}))

	assert.NoError(t, SetPersona(model.SetPersonaCommand{Mode: "tactical"}))
	assert.Error(t, SetPersona(model.SetPersonaCommand{}))

	assert.NoError(t, SetVoice(model.SetVoiceCommand{Name: "alloy"}))
	assert.Error(t, SetVoice(model.SetVoiceCommand{}))
}
