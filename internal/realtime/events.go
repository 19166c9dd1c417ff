package realtime

import (
	"encoding/json"

	"github.com/inquizitive/backend/internal/models"
)

// Inbound command events (client -> server).
const (
	EventJoinTeacher  = "join-as-teacher"
	EventJoinStudent  = "join-as-student"
	EventCreatePoll   = "create-poll"
	EventSubmitAnswer = "submit-answer"
	EventEndPoll      = "end-poll"
	EventGetHistory   = "get-poll-history"
	EventSendMessage  = "send-message"
	EventKickStudent  = "kick-student"
)

// Outbound push events (server -> client).
const (
	EventCurrentPoll  = "current-poll"
	EventNewPoll      = "new-poll"
	EventPollCreated  = "poll-created"
	EventPollResults  = "poll-results"
	EventPollEnded    = "poll-ended"
	EventStudentsList = "students-list"
	EventPollHistory  = "poll-history"
	EventChatHistory  = "chat-history"
	EventNewMessage   = "new-message"
	EventKicked       = "kicked"
	EventPollError    = "poll-error"
)

// WSMessage is the WebSocket message envelope.
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// JoinStudentPayload announces a student role on a connection.
type JoinStudentPayload struct {
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
}

// CreatePollPayload is the body of a create-poll command.
type CreatePollPayload struct {
	Question  string   `json:"question"`
	Options   []string `json:"options"`
	TimeLimit int      `json:"timeLimit"`
}

// SubmitAnswerPayload is the body of a submit-answer command.
type SubmitAnswerPayload struct {
	Answer string `json:"answer"`
}

// SendMessagePayload is the body of a send-message command.
type SendMessagePayload struct {
	Text       string `json:"text"`
	Sender     string `json:"sender"`
	SenderType string `json:"senderType"`
}

// ErrorPayload carries a poll-error event to the originating caller.
type ErrorPayload struct {
	Message string `json:"message"`
}

// StudentPollView is the current-poll payload sent to a student: the poll
// plus whether this student already answered it.
type StudentPollView struct {
	models.Poll
	HasAnswered bool `json:"hasAnswered"`
}
