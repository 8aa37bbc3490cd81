// Package speech handles text-to-speech synthesis and the process-wide
// synthesis voice selection.
package speech

import (
	"context"

	"github.com/pkg/errors"
)

// Synthesizer converts text to playable audio bytes using the named voice.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

// Noop is the synthesizer used when no TTS endpoint is configured. Callers
// surface its failure as a dependency error.
type Noop struct{}

func (Noop) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	return nil, errors.New("speech endpoint not configured")
}
