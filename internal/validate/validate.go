// Package validate checks command payloads against the shared schema rules.
// Both tiers run the same checks, so a payload the panel forwards is one the
// control tier accepts.
package validate

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/voxctl/voxctl/internal/model"
)

func requireID(field string, v int64) error {
	if v <= 0 {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func requireText(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// ID parses a required positive integer identifier from its query-parameter
// string form.
func ID(field, raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", field)
	}
	return v, nil
}

func Say(c model.SayCommand) error {
	if err := requireID("channel_id", c.ChannelID); err != nil {
		return err
	}
	return requireText("message", c.Message)
}

func JoinVoice(c model.JoinVoiceCommand) error {
	return requireID("voice_channel_id", c.VoiceChannelID)
}

func LeaveVoice(c model.LeaveVoiceCommand) error {
	return requireID("guild_id", c.GuildID)
}

func PlayMedia(c model.PlayMediaCommand) error {
	if err := requireText("url", c.URL); err != nil {
		return err
	}
	if _, err := url.ParseRequestURI(c.URL); err != nil {
		return fmt.Errorf("url is not a valid URL")
	}
	if c.VoiceChannelID != nil {
		return requireID("voice_channel_id", *c.VoiceChannelID)
	}
	return nil
}

func PlaySfx(c model.PlaySfxCommand) error {
	if err := requireID("voice_channel_id", c.VoiceChannelID); err != nil {
		return err
	}
	return requireText("name", c.Name)
}

func Speak(c model.SpeakCommand) error {
	if err := requireID("voice_channel_id", c.VoiceChannelID); err != nil {
		return err
	}
	return requireText("text", c.Text)
}

func EquipmentCheck(c model.EquipmentCheckCommand) error {
	if err := requireID("text_channel_id", c.TextChannelID); err != nil {
		return err
	}
	if c.VoiceChannelID != nil {
		return requireID("voice_channel_id", *c.VoiceChannelID)
	}
	return nil
}

func SetPersona(c model.SetPersonaCommand) error {
	return requireText("mode", c.Mode)
}

func SetVoice(c model.SetVoiceCommand) error {
	return requireText("name", c.Name)
}
