// Package persona holds the fixed persona table and the process-wide active
// persona. One persona is active for the whole process, shared by all guilds.
package persona

import (
	"sort"
	"sync"
)

// Personas maps mode names to their instruction templates. The table is fixed
// at build time; SetPersona only selects among these.
var Personas = map[string]string{
	"tactical": "You are a squad AI with a clipped military register. Keep replies short, " +
		"confident, and mission-focused. Address the room as Soldier.",
	"chill": "You are a laid-back companion. Keep replies relaxed, friendly, and informal. " +
		"Never rush anyone.",
	"hype": "You are the room's hype engine. Reply with high energy, big claims, and " +
		"relentless enthusiasm.",
	"butler": "You are a formal butler. Reply with precise, courteous language and gentle " +
		"understatement.",
}

// Modes returns the valid persona names in stable order.
func Modes() []string {
	out := make([]string, 0, len(Personas))
	for k := range Personas {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// State is the process-wide active persona. Reads and writes are guarded so
// a switch is atomic: the very next read observes the new persona.
type State struct {
	mu     sync.RWMutex
	mode   string
	prompt string
}

// NewState starts with the given mode; unknown modes fall back to "tactical".
func NewState(mode string) *State {
	prompt, ok := Personas[mode]
	if !ok {
		mode = "tactical"
		prompt = Personas[mode]
	}
	return &State{mode: mode, prompt: prompt}
}

// Set replaces the active persona wholesale.
func (s *State) Set(mode, prompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	s.prompt = prompt
}

// Mode returns the active persona name.
func (s *State) Mode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Prompt returns the active instruction template.
func (s *State) Prompt() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prompt
}
