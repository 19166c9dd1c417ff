package models

import "time"

// PollHistoryEntry is the archived snapshot of an ended poll: the poll
// itself, its final tallies, and every student's response. Polls that ended
// with zero responses are never archived.
type PollHistoryEntry struct {
	ID               string            `json:"id"`
	Question         string            `json:"question"`
	Options          []string          `json:"options"`
	TimeLimit        int               `json:"timeLimit"`
	CreatedAt        time.Time         `json:"createdAt"`
	EndedAt          time.Time         `json:"endedAt"`
	IsActive         bool              `json:"isActive"`
	Results          map[string]int    `json:"results"`
	TotalResponses   int               `json:"totalResponses"`
	StudentResponses []StudentResponse `json:"studentResponses"`
}
