// Package model declares the command schema and error taxonomy shared by the
// panel and control tiers. Both routers decode requests into these types, so
// the wire contract cannot drift between the two processes.
package model

// SayCommand posts a message to a text channel.
type SayCommand struct {
	ChannelID int64  `json:"channel_id"`
	Message   string `json:"message"`
}

// JoinVoiceCommand connects (or retargets) the guild's voice handle.
type JoinVoiceCommand struct {
	VoiceChannelID int64 `json:"voice_channel_id"`
}

// LeaveVoiceCommand disconnects the guild's voice handle, if any.
type LeaveVoiceCommand struct {
	GuildID int64 `json:"guild_id"`
}

// PlayMediaCommand resolves a media URL and plays it on a voice handle.
// VoiceChannelID is optional; when absent the single currently-connected
// handle is used.
type PlayMediaCommand struct {
	URL            string `json:"url"`
	VoiceChannelID *int64 `json:"voice_channel_id,omitempty"`
}

// SetVolumeCommand adjusts the gain of the current adjustable source.
// The guild is addressed by the guild_id query parameter.
type SetVolumeCommand struct {
	Level int `json:"level"`
}

// PlaySfxCommand plays a named sound effect from the fixed effect table.
type PlaySfxCommand struct {
	VoiceChannelID int64  `json:"voice_channel_id"`
	Name           string `json:"name"`
}

// SpeakCommand synthesizes the text with the current voice and plays it.
type SpeakCommand struct {
	VoiceChannelID int64  `json:"voice_channel_id"`
	Text           string `json:"text"`
}

// EquipmentCheckCommand generates a stylized readiness briefing and posts it
// to a text channel. The sound-off variant additionally plays it as audio
// when VoiceChannelID is set.
type EquipmentCheckCommand struct {
	TextChannelID  int64   `json:"text_channel_id"`
	VoiceChannelID *int64  `json:"voice_channel_id,omitempty"`
	Descriptor     *string `json:"descriptor,omitempty"`
}

// SetPersonaCommand swaps the process-wide persona instruction template.
type SetPersonaCommand struct {
	Mode string `json:"mode"`
}

// SetVoiceCommand swaps the process-wide synthesis voice.
type SetVoiceCommand struct {
	Name string `json:"name"`
}
