package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxctl/voxctl/internal/model"
)

func TestVoiceJoinConnectsOnce(t *testing.T) {
	rt, reg, voice := newVoiceFixture(t)
	ctx := context.Background()

	require.NoError(t, voice.Join(ctx, 200))
	h := reg.Handle(1)
	require.NotNil(t, h)
	require.True(t, h.Connected())
	require.Equal(t, int64(200), h.ChannelID())
	require.Equal(t, 1, rt.connects())

	// Joining the channel we are already in is a no-op.
	require.NoError(t, voice.Join(ctx, 200))
	require.Equal(t, 1, rt.connects())
	require.Same(t, h, reg.Handle(1))
}

func TestVoiceJoinRetargetsWithinGuild(t *testing.T) {
	rt, reg, voice := newVoiceFixture(t)
	ctx := context.Background()

	require.NoError(t, voice.Join(ctx, 200))
	h := reg.Handle(1)

	// Same guild, different channel: the handle moves, no second connection.
	require.NoError(t, voice.Join(ctx, 201))
	require.Same(t, h, reg.Handle(1))
	require.Equal(t, int64(201), h.ChannelID())
	require.Equal(t, 1, rt.connects())
}

func TestVoiceJoinRejectsNonVoiceChannels(t *testing.T) {
	_, _, voice := newVoiceFixture(t)
	ctx := context.Background()

	err := voice.Join(ctx, 100) // text channel
	require.True(t, errors.Is(err, model.ErrPrecondition))

	err = voice.Join(ctx, 999999) // unknown channel
	require.True(t, errors.Is(err, model.ErrPrecondition))
}

func TestVoiceJoinConnectFailure(t *testing.T) {
	rt, reg, voice := newVoiceFixture(t)
	rt.connectErr = errors.New("gateway unavailable")

	err := voice.Join(context.Background(), 200)
	require.True(t, errors.Is(err, model.ErrDependency))
	require.Nil(t, reg.Handle(1))
}

func TestVoiceLeave(t *testing.T) {
	_, reg, voice := newVoiceFixture(t)
	ctx := context.Background()

	require.NoError(t, voice.Join(ctx, 200))
	h := reg.Handle(1)

	require.NoError(t, voice.Leave(ctx, 1))
	require.False(t, h.Connected())
	require.Nil(t, reg.Handle(1))

	// Leaving again, or leaving a guild with no session, succeeds.
	require.NoError(t, voice.Leave(ctx, 1))
	require.NoError(t, voice.Leave(ctx, 2))
}

func TestVoiceLeaveUnknownGuild(t *testing.T) {
	_, _, voice := newVoiceFixture(t)

	err := voice.Leave(context.Background(), 42)
	require.True(t, errors.Is(err, model.ErrNotFound))
}
