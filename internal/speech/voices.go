package speech

import "sync"

// Voices is the fixed allow-set of synthesis voice names.
var Voices = []string{"alloy", "ash", "ballad", "coral", "echo", "sage", "shimmer", "verse"}

// ValidVoice reports whether name is in the allow-set.
func ValidVoice(name string) bool {
	for _, v := range Voices {
		if v == name {
			return true
		}
	}
	return false
}

// VoiceState is the process-wide current synthesis voice, shared by every
// guild. Replacement is atomic: the next synthesis uses the new voice.
type VoiceState struct {
	mu   sync.RWMutex
	name string
}

// NewVoiceState starts with the given voice; names outside the allow-set fall
// back to the first entry.
func NewVoiceState(name string) *VoiceState {
	if !ValidVoice(name) {
		name = Voices[0]
	}
	return &VoiceState{name: name}
}

// Name returns the active voice.
func (s *VoiceState) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// Set replaces the active voice.
func (s *VoiceState) Set(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}
