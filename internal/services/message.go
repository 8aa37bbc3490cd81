// Package services implements the control tier's command execution against
// live session state. Handlers stay thin; everything that touches the
// runtime, the handle registry, or process-wide state happens here.
package services

import (
	"context"

	"github.com/voxctl/voxctl/internal/model"
	"github.com/voxctl/voxctl/internal/session"
)

// MessageLimit is the platform's maximum message length.
const MessageLimit = 2000

// MessageService posts text into session destinations.
type MessageService struct {
	rt session.Runtime
}

func NewMessageService(rt session.Runtime) *MessageService { return &MessageService{rt: rt} }

// Say sends message to the text channel, truncated to the platform limit.
func (s *MessageService) Say(ctx context.Context, channelID int64, message string) error {
	ch, ok := s.rt.Channel(channelID)
	if !ok || ch.Kind != session.TextChannel {
		return model.NotFoundf("text channel %d not found", channelID)
	}
	if err := s.rt.SendMessage(ctx, channelID, truncate(message, MessageLimit)); err != nil {
		return model.Dependencyf("send message: %v", err)
	}
	return nil
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
