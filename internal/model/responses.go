package model

// OK is the bare success envelope.
type OK struct {
	OK bool `json:"ok"`
}

// PingResponse reports control-tier identity and readiness. The panel's ping
// wraps it so callers see both tiers' reachability in one probe.
type PingResponse struct {
	OK    bool   `json:"ok"`
	Bot   string `json:"bot,omitempty"`
	Ready bool   `json:"ready"`
}

// PlayResponse carries the resolved title of the now-playing source.
type PlayResponse struct {
	OK    bool   `json:"ok"`
	Title string `json:"title"`
}

// VolumeResponse carries the clamped level actually applied.
type VolumeResponse struct {
	OK    bool `json:"ok"`
	Level int  `json:"level"`
}

// PersonaResponse confirms the newly active persona mode.
type PersonaResponse struct {
	OK   bool   `json:"ok"`
	Mode string `json:"mode"`
}

// VoiceResponse confirms the newly active synthesis voice.
type VoiceResponse struct {
	OK    bool   `json:"ok"`
	Voice string `json:"voice"`
}
