package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/inquizitive/backend/internal/models"
)

// AppendMessage adds a chat message to the session log and returns it with
// its assigned ID and timestamp. The log is append-only.
func (s *Session) AppendMessage(text, sender string, senderType models.SenderType) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.ChatMessage{
		ID:         uuid.New().String(),
		Text:       text,
		Sender:     sender,
		SenderType: senderType,
		Timestamp:  time.Now(),
	}
	s.chat = append(s.chat, msg)
	return msg
}

// ChatHistory returns every message sent in this session, oldest first.
func (s *Session) ChatHistory() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatLocked()
}
