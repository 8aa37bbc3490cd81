// Package ai wraps the conversational-AI helpers the control tier calls:
// text completion and implementations behind it.
package ai

import (
	"context"

	"github.com/pkg/errors"
)

// Completer produces a text completion for a system+user prompt pair.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Noop is the completer used when no AI endpoint is configured. It always
// fails, which exercises the callers' degrade paths.
type Noop struct{}

func (Noop) Complete(ctx context.Context, system, user string) (string, error) {
	return "", errors.New("completion endpoint not configured")
}
