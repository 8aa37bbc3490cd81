package services

import "github.com/voxctl/voxctl/internal/memory"

// MemoryService clears conversation history per channel or per user. Both
// operations succeed when no history exists.
type MemoryService struct {
	store *memory.Store
}

func NewMemoryService(store *memory.Store) *MemoryService {
	return &MemoryService{store: store}
}

// ResetChannel removes the channel's history entry.
func (s *MemoryService) ResetChannel(channelID int64) {
	s.store.ResetChannel(channelID)
}

// ForgetUser empties the user's history.
func (s *MemoryService) ForgetUser(userID int64) {
	s.store.ForgetUser(userID)
}
