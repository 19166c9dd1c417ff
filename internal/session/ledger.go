package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/inquizitive/backend/internal/models"
)

// SubmitAnswer records a student's answer to the active poll, last write
// wins. Returns ok=false when no poll is active (a benign race: the poll
// ended between the student's decision and the submission). The value is
// stored as sent; only aggregation decides whether it matches an option.
func (s *Session) SubmitAnswer(studentID, value string) (models.PollResults, []models.Participant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.PollResults{}, nil, false
	}

	name := "Unknown"
	p, known := s.participants[studentID]
	if known {
		name = p.Name
	}

	s.answers[studentID] = models.Answer{
		PollID:      s.current.ID,
		StudentID:   studentID,
		StudentName: name,
		Value:       value,
		SubmittedAt: time.Now(),
	}
	if known {
		p.HasAnswered = true
	}

	s.logger.Debug("answer recorded",
		zap.String("poll_id", s.current.ID),
		zap.String("student_id", studentID),
		zap.String("answer", value),
	)

	return s.aggregateLocked(), s.rosterLocked(), true
}

// AnswerCount reports how many answers the given poll has received.
func (s *Session) AnswerCount(pollID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, a := range s.answers {
		if a.PollID == pollID {
			n++
		}
	}
	return n
}
