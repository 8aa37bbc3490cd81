package services

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/voxctl/voxctl/internal/media"
	"github.com/voxctl/voxctl/internal/session"
)

// --- Fakes ---

// testRuntime wraps the dev runtime with failure injection and call counting.
type testRuntime struct {
	*session.DevRuntime
	mu           sync.Mutex
	connectErr   error
	sendErr      error
	connectCalls int
}

func newTestRuntime() *testRuntime {
	rt := &testRuntime{DevRuntime: session.NewDevRuntime(zerolog.Nop())}
	rt.AddGuild(session.Guild{ID: 1, Name: "alpha"})
	rt.AddChannel(session.Channel{ID: 100, GuildID: 1, Kind: session.TextChannel, Name: "general", CanSend: true})
	rt.AddChannel(session.Channel{ID: 101, GuildID: 1, Kind: session.TextChannel, Name: "read-only", CanSend: false})
	rt.AddChannel(session.Channel{ID: 200, GuildID: 1, Kind: session.VoiceChannel, Name: "voice-a"})
	rt.AddChannel(session.Channel{ID: 201, GuildID: 1, Kind: session.VoiceChannel, Name: "voice-b"})
	rt.AddGuild(session.Guild{ID: 2, Name: "bravo"})
	rt.AddChannel(session.Channel{ID: 300, GuildID: 2, Kind: session.VoiceChannel, Name: "voice-c"})
	return rt
}

func (rt *testRuntime) Connect(ctx context.Context, ch session.Channel) (session.Handle, error) {
	rt.mu.Lock()
	rt.connectCalls++
	err := rt.connectErr
	rt.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return rt.DevRuntime.Connect(ctx, ch)
}

func (rt *testRuntime) SendMessage(ctx context.Context, channelID int64, content string) error {
	rt.mu.Lock()
	err := rt.sendErr
	rt.mu.Unlock()
	if err != nil {
		return err
	}
	return rt.DevRuntime.SendMessage(ctx, channelID, content)
}

func (rt *testRuntime) connects() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.connectCalls
}

type fakeResolver struct {
	res   media.Resolution
	err   error
	calls int
}

func (f *fakeResolver) Resolve(ctx context.Context, url string) (media.Resolution, error) {
	f.calls++
	if f.err != nil {
		return media.Resolution{}, f.err
	}
	return f.res, nil
}

type fakeCompleter struct {
	text       string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	f.lastSystem = system
	f.lastUser = user
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeSynth struct {
	data      []byte
	err       error
	lastText  string
	lastVoice string
}

func (f *fakeSynth) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	f.lastText = text
	f.lastVoice = voice
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

// brokenHandle is connected but fails every Play call.
type brokenHandle struct {
	session.Handle
	playErr error
}

func (b *brokenHandle) Play(ctx context.Context, src session.Source) error { return b.playErr }

// --- Shared constructors ---

func newVoiceFixture(t *testing.T) (*testRuntime, *session.Registry, *VoiceService) {
	t.Helper()
	rt := newTestRuntime()
	reg := session.NewRegistry()
	return rt, reg, NewVoiceService(rt, reg)
}

func newPlaybackFixture(t *testing.T, resolver media.Resolver) (*testRuntime, *session.Registry, *PlaybackService) {
	t.Helper()
	rt, reg, voice := newVoiceFixture(t)
	pb := NewPlaybackService(rt, reg, voice, resolver, "sounds", zerolog.Nop())
	return rt, reg, pb
}
