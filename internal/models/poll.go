package models

import "time"

// Poll represents a multiple-choice question broadcast to the classroom.
// At most one poll is active in the session at any time. A poll is never
// edited after creation; ending it only flips IsActive and stamps EndedAt.
type Poll struct {
	ID        string     `json:"id"`
	Question  string     `json:"question"`
	Options   []string   `json:"options"`
	TimeLimit int        `json:"timeLimit"` // seconds; display hint, enforced client-side
	CreatedAt time.Time  `json:"createdAt"`
	IsActive  bool       `json:"isActive"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
}

// PollResults is the aggregated view of a poll at a point in time.
// Results tallies only answers that match a declared option; TotalResponses
// counts every recorded answer, so the sum of tallies can be lower.
// TotalStudents is the live roster size at aggregation time.
type PollResults struct {
	PollID         string         `json:"pollId"`
	Question       string         `json:"question"`
	Results        map[string]int `json:"results"`
	TotalResponses int            `json:"totalResponses"`
	TotalStudents  int            `json:"totalStudents"`
}
