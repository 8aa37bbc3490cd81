package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChannelHistory(t *testing.T) {
	s := NewStore()
	assert.Empty(t, s.ChannelHistory(1))

	s.AppendChannel(1, Exchange{Prompt: "hi", Reply: "hello", At: time.Now()})
	s.AppendChannel(1, Exchange{Prompt: "again", Reply: "yes", At: time.Now()})
	assert.Len(t, s.ChannelHistory(1), 2)
	assert.Empty(t, s.ChannelHistory(2))

	s.ResetChannel(1)
	assert.Empty(t, s.ChannelHistory(1))

	// resetting a channel with no history is not an error
	s.ResetChannel(999999)
}

func TestForgetUser(t *testing.T) {
	s := NewStore()

	// forgetting an unknown user is a no-op
	s.ForgetUser(42)
	assert.Empty(t, s.UserHistory(42))

	s.AppendUser(42, Exchange{Prompt: "remember me", Reply: "ok"})
	assert.Len(t, s.UserHistory(42), 1)

	s.ForgetUser(42)
	assert.Empty(t, s.UserHistory(42))

	// history can accrue again after a forget
	s.AppendUser(42, Exchange{Prompt: "back", Reply: "hi"})
	assert.Len(t, s.UserHistory(42), 1)
}

func TestHistoryCopiesAreIndependent(t *testing.T) {
	s := NewStore()
	s.AppendChannel(1, Exchange{Prompt: "a"})
	h := s.ChannelHistory(1)
	h[0].Prompt = "mutated"
	assert.Equal(t, "a", s.ChannelHistory(1)[0].Prompt)
}
