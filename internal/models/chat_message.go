package models

import "time"

// SenderType distinguishes who wrote a chat message.
type SenderType string

const (
	SenderTeacher SenderType = "teacher"
	SenderStudent SenderType = "student"
)

// ChatMessage is one entry in the session chat. Append-only.
type ChatMessage struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Sender     string     `json:"sender"`
	SenderType SenderType `json:"senderType"`
	Timestamp  time.Time  `json:"timestamp"`
}
