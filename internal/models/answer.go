package models

import "time"

// Answer is one student's answer to one poll. At most one per
// (poll, student) pair; a resubmission overwrites the earlier value.
type Answer struct {
	PollID      string    `json:"pollId"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	Value       string    `json:"answer"`
	SubmittedAt time.Time `json:"timestamp"`
}

// StudentResponse is the per-student detail kept in poll history.
type StudentResponse struct {
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	Answer      string    `json:"answer"`
	Timestamp   time.Time `json:"timestamp"`
}
