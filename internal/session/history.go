package session

import "github.com/inquizitive/backend/internal/models"

// History returns all archived polls, oldest first. The store is append-only
// and unbounded; it lives only as long as the process.
func (s *Session) History() []models.PollHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyLocked()
}

// historyLocked copies the store; never nil, so it serializes as an empty
// array.
func (s *Session) historyLocked() []models.PollHistoryEntry {
	out := make([]models.PollHistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}
