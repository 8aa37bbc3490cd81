package services

import (
	"context"

	"github.com/voxctl/voxctl/internal/model"
	"github.com/voxctl/voxctl/internal/session"
)

// VoiceService owns voice-connection lifecycle: join, retarget, and leave.
// At most one handle exists per guild; the registry's guild lock serializes
// every command that touches it.
type VoiceService struct {
	rt  session.Runtime
	reg *session.Registry
}

func NewVoiceService(rt session.Runtime, reg *session.Registry) *VoiceService {
	return &VoiceService{rt: rt, reg: reg}
}

// ResolveVoiceChannel checks that the destination exists and is voice-capable.
func (s *VoiceService) ResolveVoiceChannel(channelID int64) (session.Channel, error) {
	ch, ok := s.rt.Channel(channelID)
	if !ok || ch.Kind != session.VoiceChannel {
		return session.Channel{}, model.Preconditionf("%d is not a voice channel", channelID)
	}
	return ch, nil
}

// EnsureLocked joins or retargets the guild's handle toward ch. Already being
// in ch is a no-op; being elsewhere in the guild moves the existing handle
// rather than opening a second connection. The caller must hold the guild
// lock.
func (s *VoiceService) EnsureLocked(ctx context.Context, ch session.Channel) (session.Handle, error) {
	if h := s.reg.Handle(ch.GuildID); h != nil && h.Connected() {
		if h.ChannelID() != ch.ID {
			if err := h.Move(ctx, ch.ID); err != nil {
				return nil, model.Dependencyf("move to channel %d: %v", ch.ID, err)
			}
		}
		return h, nil
	}
	h, err := s.rt.Connect(ctx, ch)
	if err != nil {
		return nil, model.Dependencyf("connect to channel %d: %v", ch.ID, err)
	}
	s.reg.Set(ch.GuildID, h)
	return h, nil
}

// Join connects (or retargets) the guild's handle to the voice channel.
func (s *VoiceService) Join(ctx context.Context, voiceChannelID int64) error {
	ch, err := s.ResolveVoiceChannel(voiceChannelID)
	if err != nil {
		return err
	}
	unlock := s.reg.Lock(ch.GuildID)
	defer unlock()
	_, err = s.EnsureLocked(ctx, ch)
	return err
}

// Leave force-disconnects the guild's handle. No handle means nothing to do.
func (s *VoiceService) Leave(ctx context.Context, guildID int64) error {
	if _, ok := s.rt.Guild(guildID); !ok {
		return model.NotFoundf("guild %d not found", guildID)
	}
	unlock := s.reg.Lock(guildID)
	defer unlock()
	h := s.reg.Handle(guildID)
	if h == nil {
		return nil
	}
	if h.Connected() {
		if err := h.Disconnect(ctx); err != nil {
			return model.Dependencyf("disconnect: %v", err)
		}
	}
	s.reg.Remove(guildID)
	return nil
}
