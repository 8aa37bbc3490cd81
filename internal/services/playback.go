package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/voxctl/voxctl/internal/media"
	"github.com/voxctl/voxctl/internal/model"
	"github.com/voxctl/voxctl/internal/session"
	"github.com/voxctl/voxctl/internal/sfx"
)

// DefaultGain is the fractional gain applied to freshly bound media sources.
const DefaultGain = 0.9

// Volume levels are clamped to [MinLevel, MaxLevel] percent.
const (
	MinLevel = 0
	MaxLevel = 200
)

// PlaybackService drives the audio bound to voice handles. One source per
// handle: binding a new one always stops the old one first, never mixes.
type PlaybackService struct {
	rt     session.Runtime
	reg    *session.Registry
	voice  *VoiceService
	media  media.Resolver
	sounds string
	log    zerolog.Logger
}

func NewPlaybackService(rt session.Runtime, reg *session.Registry, voice *VoiceService, resolver media.Resolver, soundsDir string, log zerolog.Logger) *PlaybackService {
	return &PlaybackService{rt: rt, reg: reg, voice: voice, media: resolver, sounds: soundsDir, log: log}
}

// Play resolves url and plays it on the target guild's handle. With no
// explicit target it uses the single currently-connected handle, if exactly
// one exists. Returns the resolved title.
func (s *PlaybackService) Play(ctx context.Context, url string, voiceChannelID *int64) (string, error) {
	if voiceChannelID != nil {
		ch, err := s.voice.ResolveVoiceChannel(*voiceChannelID)
		if err != nil {
			return "", err
		}
		unlock := s.reg.Lock(ch.GuildID)
		defer unlock()
		h, err := s.voice.EnsureLocked(ctx, ch)
		if err != nil {
			return "", err
		}
		return s.playOn(ctx, h, url)
	}

	guildID, ok := s.reg.Single()
	if !ok {
		return "", model.Preconditionf("not connected to a voice channel (provide voice_channel_id)")
	}
	unlock := s.reg.Lock(guildID)
	defer unlock()
	h := s.reg.Handle(guildID)
	if h == nil || !h.Connected() {
		return "", model.Preconditionf("not connected to a voice channel (provide voice_channel_id)")
	}
	return s.playOn(ctx, h, url)
}

func (s *PlaybackService) playOn(ctx context.Context, h session.Handle, url string) (string, error) {
	res, err := s.media.Resolve(ctx, url)
	if err != nil {
		return "", model.Invalidf("media resolution failed: %v", err)
	}
	src := session.Source{
		Title:      res.Title,
		StreamURL:  res.StreamURL,
		PageURL:    res.PageURL,
		Gain:       DefaultGain,
		Adjustable: true,
	}
	stopCurrent(h)
	if err := h.Play(ctx, src); err != nil {
		return "", model.Dependencyf("playback failed: %v", err)
	}
	s.announce(ctx, h.GuildID(), res)
	return res.Title, nil
}

// announce posts the now-playing title to the guild's first postable text
// channel. Best effort: failures are logged, never surfaced.
func (s *PlaybackService) announce(ctx context.Context, guildID int64, res media.Resolution) {
	for _, ch := range s.rt.TextChannels(guildID) {
		if !ch.CanSend {
			continue
		}
		msg := fmt.Sprintf("Now playing: %s\n%s", res.Title, res.PageURL)
		if err := s.rt.SendMessage(ctx, ch.ID, msg); err != nil {
			s.log.Warn().Err(err).Int64("guild", guildID).Msg("now-playing announcement failed")
		}
		return
	}
}

func (s *PlaybackService) connectedHandle(guildID int64) (session.Handle, error) {
	h := s.reg.Handle(guildID)
	if h == nil || !h.Connected() {
		return nil, model.Preconditionf("no voice session for guild %d", guildID)
	}
	return h, nil
}

// Pause suspends playback. Already paused or idle is a no-op.
func (s *PlaybackService) Pause(ctx context.Context, guildID int64) error {
	unlock := s.reg.Lock(guildID)
	defer unlock()
	h, err := s.connectedHandle(guildID)
	if err != nil {
		return err
	}
	if h.Playing() {
		h.Pause()
	}
	return nil
}

// Resume continues paused playback. Not paused is a no-op.
func (s *PlaybackService) Resume(ctx context.Context, guildID int64) error {
	unlock := s.reg.Lock(guildID)
	defer unlock()
	h, err := s.connectedHandle(guildID)
	if err != nil {
		return err
	}
	if h.Paused() {
		h.Resume()
	}
	return nil
}

// Skip stops the current source whether playing or paused.
func (s *PlaybackService) Skip(ctx context.Context, guildID int64) error {
	unlock := s.reg.Lock(guildID)
	defer unlock()
	h, err := s.connectedHandle(guildID)
	if err != nil {
		return err
	}
	if h.Playing() || h.Paused() {
		h.Stop()
	}
	return nil
}

// Stop halts playback if currently playing. Already stopped is a no-op.
func (s *PlaybackService) Stop(ctx context.Context, guildID int64) error {
	unlock := s.reg.Lock(guildID)
	defer unlock()
	h, err := s.connectedHandle(guildID)
	if err != nil {
		return err
	}
	if h.Playing() {
		h.Stop()
	}
	return nil
}

// SetVolume clamps level to [MinLevel, MaxLevel] and applies it as a
// fractional gain. Returns the level actually applied.
func (s *PlaybackService) SetVolume(ctx context.Context, guildID int64, level int) (int, error) {
	unlock := s.reg.Lock(guildID)
	defer unlock()
	h, err := s.connectedHandle(guildID)
	if err != nil {
		return 0, err
	}
	if level < MinLevel {
		level = MinLevel
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	if err := h.SetGain(float64(level) / 100.0); err != nil {
		return 0, model.Preconditionf("current source not adjustable")
	}
	return level, nil
}

// PlaySfx plays a named effect from the fixed table on the target channel's
// handle, joining first if needed.
func (s *PlaybackService) PlaySfx(ctx context.Context, voiceChannelID int64, name string) error {
	path, ok := sfx.Lookup(s.sounds, name)
	if !ok {
		return model.Invalidf("unknown sfx %q", name)
	}
	ch, err := s.voice.ResolveVoiceChannel(voiceChannelID)
	if err != nil {
		return err
	}
	unlock := s.reg.Lock(ch.GuildID)
	defer unlock()
	h, err := s.voice.EnsureLocked(ctx, ch)
	if err != nil {
		return err
	}
	stopCurrent(h)
	if err := h.Play(ctx, session.Source{Title: name, Path: path}); err != nil {
		return model.Dependencyf("could not play sound: %v", err)
	}
	return nil
}

func stopCurrent(h session.Handle) {
	if h.Playing() || h.Paused() {
		h.Stop()
	}
}
