package session

import "github.com/inquizitive/backend/internal/models"

// Results aggregates the active poll on demand. ok is false when idle.
func (s *Session) Results() (models.PollResults, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.PollResults{}, false
	}
	return s.aggregateLocked(), true
}

// aggregateLocked tallies the ledger against the active poll's options.
// Every option starts at zero. Answers that match no option still count
// toward TotalResponses: participation and option distribution are measured
// separately, so sum-of-tallies may be below TotalResponses.
func (s *Session) aggregateLocked() models.PollResults {
	res := models.PollResults{
		PollID:        s.current.ID,
		Question:      s.current.Question,
		Results:       make(map[string]int, len(s.current.Options)),
		TotalStudents: len(s.participants),
	}
	for _, opt := range s.current.Options {
		res.Results[opt] = 0
	}
	for _, a := range s.answers {
		if a.PollID != s.current.ID {
			continue
		}
		res.TotalResponses++
		if _, declared := res.Results[a.Value]; declared {
			res.Results[a.Value]++
		}
	}
	return res
}
