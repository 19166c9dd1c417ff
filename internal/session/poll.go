package session

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inquizitive/backend/internal/models"
)

// DefaultTimeLimit is applied when a create-poll request omits the limit.
const DefaultTimeLimit = 60

// CreatePoll starts a new poll and makes it the session's sole active poll.
// Options are trimmed, empties and duplicates dropped; at least two distinct
// options must remain. The ledger is cleared and every participant's answered
// flag reset. A still-active prior poll is replaced without archival: normal
// operation always ends a poll first, and the override is deliberate.
func (s *Session) CreatePoll(question string, options []string, timeLimit int) (models.Poll, []models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	question = strings.TrimSpace(question)
	if question == "" {
		return models.Poll{}, nil, &ValidationError{Reason: "poll question is required"}
	}

	seen := make(map[string]struct{}, len(options))
	opts := make([]string, 0, len(options))
	for _, o := range options {
		t := strings.TrimSpace(o)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		opts = append(opts, t)
	}
	if len(opts) < 2 {
		return models.Poll{}, nil, &ValidationError{Reason: "poll needs at least two distinct options"}
	}

	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}

	poll := models.Poll{
		ID:        uuid.New().String(),
		Question:  question,
		Options:   opts,
		TimeLimit: timeLimit,
		CreatedAt: time.Now(),
		IsActive:  true,
	}
	s.current = &poll
	s.answers = make(map[string]models.Answer)
	s.resetAnsweredLocked()

	s.logger.Info("poll created",
		zap.String("poll_id", poll.ID),
		zap.String("question", poll.Question),
		zap.Int("options", len(poll.Options)),
		zap.Int("time_limit", poll.TimeLimit),
	)

	return poll, s.rosterLocked(), nil
}

// EndResult is everything the gateway needs to broadcast after ending a poll.
type EndResult struct {
	Results  models.PollResults
	History  []models.PollHistoryEntry
	Archived bool
}

// EndPoll ends the active poll: stamps EndedAt, computes the final
// aggregation, archives the poll iff it received at least one answer, and
// returns the session to idle. Returns ErrNoActivePoll when there is nothing
// to end; the gateway drops that silently.
func (s *Session) EndPoll() (EndResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return EndResult{}, ErrNoActivePoll
	}

	now := time.Now()
	s.current.IsActive = false
	s.current.EndedAt = &now

	results := s.aggregateLocked()
	archived := false
	if results.TotalResponses > 0 {
		s.history = append(s.history, models.PollHistoryEntry{
			ID:               s.current.ID,
			Question:         s.current.Question,
			Options:          s.current.Options,
			TimeLimit:        s.current.TimeLimit,
			CreatedAt:        s.current.CreatedAt,
			EndedAt:          now,
			IsActive:         false,
			Results:          results.Results,
			TotalResponses:   results.TotalResponses,
			StudentResponses: s.responsesLocked(s.current.ID),
		})
		archived = true
	}

	s.logger.Info("poll ended",
		zap.String("poll_id", s.current.ID),
		zap.Int("responses", results.TotalResponses),
		zap.Bool("archived", archived),
	)

	s.current = nil
	return EndResult{
		Results:  results,
		History:  s.historyLocked(),
		Archived: archived,
	}, nil
}

// CurrentPoll returns a copy of the active poll, if any.
func (s *Session) CurrentPoll() (models.Poll, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.Poll{}, false
	}
	return *s.current, true
}

// responsesLocked returns the per-student detail for a poll, ordered by
// submission time.
func (s *Session) responsesLocked(pollID string) []models.StudentResponse {
	out := make([]models.StudentResponse, 0, len(s.answers))
	for _, a := range s.answers {
		if a.PollID != pollID {
			continue
		}
		out = append(out, models.StudentResponse{
			StudentID:   a.StudentID,
			StudentName: a.StudentName,
			Answer:      a.Value,
			Timestamp:   a.SubmittedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].StudentID < out[j].StudentID
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
