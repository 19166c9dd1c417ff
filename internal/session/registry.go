package session

import (
	"go.uber.org/zap"

	"github.com/inquizitive/backend/internal/models"
)

// JoinStudent inserts or updates the registry entry for studentID and returns
// the catch-up snapshot for that student. Rejoining with the same ID (page
// reload, reconnect) updates the name and connection in place; HasAnswered is
// recomputed from the ledger against the active poll.
func (s *Session) JoinStudent(studentID, name, connID string) StudentSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.participants[studentID]
	if !ok {
		p = &models.Participant{ID: studentID}
		s.participants[studentID] = p
		s.joinOrder = append(s.joinOrder, studentID)
	}
	p.Name = name
	p.ConnID = connID
	p.HasAnswered = s.hasAnsweredLocked(studentID)

	s.logger.Info("student joined",
		zap.String("student_id", studentID),
		zap.String("name", name),
		zap.Int("roster_size", len(s.participants)),
	)

	return StudentSnapshot{
		CurrentPoll: s.currentCopyLocked(),
		HasAnswered: p.HasAnswered,
		Roster:      s.rosterLocked(),
		Chat:        s.chatLocked(),
	}
}

// RemoveStudent drops a participant on disconnect. The removal only applies
// when connID still matches the registered connection, so a disconnect from a
// stale connection cannot evict a participant who already rejoined.
func (s *Session) RemoveStudent(studentID, connID string) ([]models.Participant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.participants[studentID]
	if !ok || p.ConnID != connID {
		return nil, false
	}
	s.removeLocked(studentID)
	return s.rosterLocked(), true
}

// KickStudent removes a participant at the teacher's request. Unknown IDs are
// ignored.
func (s *Session) KickStudent(studentID string) (models.Participant, []models.Participant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.participants[studentID]
	if !ok {
		return models.Participant{}, nil, false
	}
	removed := *p
	s.removeLocked(studentID)

	s.logger.Info("student kicked",
		zap.String("student_id", studentID),
		zap.String("name", removed.Name),
	)
	return removed, s.rosterLocked(), true
}

// Participants returns the roster in join order.
func (s *Session) Participants() []models.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rosterLocked()
}

func (s *Session) removeLocked(studentID string) {
	delete(s.participants, studentID)
	for i, id := range s.joinOrder {
		if id == studentID {
			s.joinOrder = append(s.joinOrder[:i], s.joinOrder[i+1:]...)
			break
		}
	}
}

// rosterLocked returns participants in join order; the first entry is the
// first-joined student, which the teacher UI highlights.
func (s *Session) rosterLocked() []models.Participant {
	out := make([]models.Participant, 0, len(s.joinOrder))
	for _, id := range s.joinOrder {
		out = append(out, *s.participants[id])
	}
	return out
}

func (s *Session) resetAnsweredLocked() {
	for _, p := range s.participants {
		p.HasAnswered = false
	}
}

func (s *Session) hasAnsweredLocked(studentID string) bool {
	if s.current == nil {
		return false
	}
	a, ok := s.answers[studentID]
	return ok && a.PollID == s.current.ID
}
