package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/voxctl/voxctl/internal/ai"
	"github.com/voxctl/voxctl/internal/model"
	"github.com/voxctl/voxctl/internal/session"
	"github.com/voxctl/voxctl/internal/speech"
)

const (
	briefingSystemPrompt = "You are the squad announcer AI for readiness checks. " +
		"Write a gritty, motivational, 4-6 line equipment check briefing addressed to the squad as Soldier."
	soundOffSystemPrompt = "You are the squad announcer AI. " +
		"Write a 3-5 line high-intensity equipment check announcement."

	briefingFallback = "**EQUIPMENT CHECK - COMMAND FAILED**\nFallback briefing activated."
	soundOffFallback = "**EQUIPMENT CHECK - COMMAND FAILED**"
)

// SpeechService runs the voice-output commands: direct TTS and the generated
// equipment-check briefings.
type SpeechService struct {
	reg        *session.Registry
	voice      *VoiceService
	msg        *MessageService
	completer  ai.Completer
	synth      speech.Synthesizer
	voices     *speech.VoiceState
	scratchDir string
	log        zerolog.Logger
}

func NewSpeechService(reg *session.Registry, voice *VoiceService, msg *MessageService, completer ai.Completer, synth speech.Synthesizer, voices *speech.VoiceState, scratchDir string, log zerolog.Logger) *SpeechService {
	return &SpeechService{
		reg:        reg,
		voice:      voice,
		msg:        msg,
		completer:  completer,
		synth:      synth,
		voices:     voices,
		scratchDir: scratchDir,
		log:        log,
	}
}

// Speak synthesizes text with the current voice and plays it on the target
// channel's handle, joining first if needed. Synthesis failures propagate.
func (s *SpeechService) Speak(ctx context.Context, voiceChannelID int64, text string) error {
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
	return s.sayAloud(ctx, h, text, "speak_api.mp3")
}

// EquipmentCheck generates a stylized briefing and posts it to the text
// channel. Generation failure degrades to a fixed fallback message instead of
// failing the command. The sound-off variant additionally plays the briefing
// as audio when a voice channel is given, and that stage propagates failures.
func (s *SpeechService) EquipmentCheck(ctx context.Context, cmd model.EquipmentCheckCommand, soundOff bool) error {
	system, fallback := briefingSystemPrompt, briefingFallback
	if soundOff {
		system, fallback = soundOffSystemPrompt, soundOffFallback
	}
	user := "Generate briefing."
	if cmd.Descriptor != nil && *cmd.Descriptor != "" {
		user = fmt.Sprintf("Style: %s.", *cmd.Descriptor)
	}

	text, err := s.completer.Complete(ctx, system, user)
	if err != nil {
		s.log.Warn().Err(err).Msg("equipment check generation failed, using fallback")
		text = fallback
	}

	if err := s.msg.Say(ctx, cmd.TextChannelID, text); err != nil {
		return err
	}

	if soundOff && cmd.VoiceChannelID != nil {
		ch, err := s.voice.ResolveVoiceChannel(*cmd.VoiceChannelID)
		if err != nil {
			return err
		}
		unlock := s.reg.Lock(ch.GuildID)
		defer unlock()
		h, err := s.voice.EnsureLocked(ctx, ch)
		if err != nil {
			return err
		}
		return s.sayAloud(ctx, h, text, "eqcso_api.mp3")
	}
	return nil
}

func (s *SpeechService) sayAloud(ctx context.Context, h session.Handle, text, scratchName string) error {
	data, err := s.synth.Synthesize(ctx, text, s.voices.Name())
	if err != nil {
		return model.Dependencyf("speech synthesis failed: %v", err)
	}
	path, err := speech.WriteScratch(s.scratchDir, scratchName, data)
	if err != nil {
		return model.Dependencyf("%v", err)
	}
	stopCurrent(h)
	if err := h.Play(ctx, session.Source{Title: "speech", Path: path}); err != nil {
		return model.Dependencyf("playback failed: %v", err)
	}
	return nil
}
