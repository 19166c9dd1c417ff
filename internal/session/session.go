// Package session owns the classroom's shared state: the student registry,
// the single active poll, the answer ledger, the poll history, and the chat
// log. One Session exists per process; every command runs to completion under
// its lock, so compound operations (end poll: aggregate, archive, clear) are
// atomic with respect to each other.
package session

import (
	"sync"

	"go.uber.org/zap"

	"github.com/inquizitive/backend/internal/models"
)

// Session is the process-wide classroom state aggregate.
type Session struct {
	mu     sync.Mutex
	logger *zap.Logger

	participants map[string]*models.Participant
	joinOrder    []string

	current *models.Poll
	answers map[string]models.Answer // studentID -> answer for the current poll

	history []models.PollHistoryEntry
	chat    []models.ChatMessage
}

// New creates an empty session.
func New(logger *zap.Logger) *Session {
	return &Session{
		logger:       logger,
		participants: make(map[string]*models.Participant),
		answers:      make(map[string]models.Answer),
	}
}

// TeacherSnapshot is the catch-up state sent to a teacher on join.
type TeacherSnapshot struct {
	CurrentPoll *models.Poll
	Roster      []models.Participant
	Chat        []models.ChatMessage
}

// StudentSnapshot is the catch-up state sent to a student on join.
type StudentSnapshot struct {
	CurrentPoll *models.Poll
	HasAnswered bool
	Roster      []models.Participant
	Chat        []models.ChatMessage
}

// Teacher returns everything a freshly joined teacher needs to render.
func (s *Session) Teacher() TeacherSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return TeacherSnapshot{
		CurrentPoll: s.currentCopyLocked(),
		Roster:      s.rosterLocked(),
		Chat:        s.chatLocked(),
	}
}

func (s *Session) currentCopyLocked() *models.Poll {
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// chatLocked copies the log; never nil, so it serializes as an empty array.
func (s *Session) chatLocked() []models.ChatMessage {
	out := make([]models.ChatMessage, len(s.chat))
	copy(out, s.chat)
	return out
}
