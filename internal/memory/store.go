// Package memory keeps the bot's conversation history, mapped per channel and
// per user. Everything lives in process memory for the process lifetime.
package memory

import (
	"sync"
	"time"
)

// Exchange is one prompt/reply turn.
type Exchange struct {
	Prompt string
	Reply  string
	At     time.Time
}

// Store guards both history maps with a single RWMutex; writers from
// concurrent requests never interleave.
type Store struct {
	mu       sync.RWMutex
	channels map[int64][]Exchange
	users    map[int64][]Exchange
}

func NewStore() *Store {
	return &Store{
		channels: make(map[int64][]Exchange),
		users:    make(map[int64][]Exchange),
	}
}

// AppendChannel records an exchange in the channel's history.
func (s *Store) AppendChannel(channelID int64, e Exchange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channels[channelID] = append(s.channels[channelID], e)
}

// AppendUser records an exchange in the user's history.
func (s *Store) AppendUser(userID int64, e Exchange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = append(s.users[userID], e)
}

// ChannelHistory returns a copy of the channel's history, oldest first.
func (s *Store) ChannelHistory(channelID int64) []Exchange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Exchange(nil), s.channels[channelID]...)
}

// UserHistory returns a copy of the user's history, oldest first.
func (s *Store) UserHistory(userID int64) []Exchange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Exchange(nil), s.users[userID]...)
}

// ResetChannel removes the channel's history entry. Missing entries are fine.
func (s *Store) ResetChannel(channelID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.channels, channelID)
}

// ForgetUser empties the user's history without removing the entry. A user
// with no history is treated as already empty.
func (s *Store) ForgetUser(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; ok {
		s.users[userID] = s.users[userID][:0]
	}
}
