package realtime

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Audience names a broadcast group.
type Audience string

const (
	AudienceTeachers Audience = "teachers"
	AudienceStudents Audience = "students"
)

// Hub tracks which connections belong to which audience group and routes
// outbound events. Membership is an explicit set relation: a connection
// enters a group on its role announcement, not at upgrade time. A student
// index allows targeted pushes (kicked) by participant ID.
type Hub struct {
	mu        sync.RWMutex
	audiences map[Audience]map[string]*Client
	students  map[string]*Client // studentID -> connection
	logger    *zap.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		audiences: map[Audience]map[string]*Client{
			AudienceTeachers: {},
			AudienceStudents: {},
		},
		students: make(map[string]*Client),
		logger:   logger,
	}
}

// Join places a connection in an audience group. A connection belongs to at
// most one group; re-announcing a role moves it.
func (h *Hub) Join(c *Client, a Audience) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, group := range h.audiences {
		delete(group, c.ID)
	}
	h.audiences[a][c.ID] = c
	h.logger.Debug("client joined audience",
		zap.String("client_id", c.ID),
		zap.String("audience", string(a)),
	)
}

// BindStudent indexes a connection by participant ID for targeted pushes.
// A rejoin on a new connection overwrites the binding.
func (h *Hub) BindStudent(c *Client, studentID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.students[studentID] = c
}

// Remove drops a connection from its group and from the student index. The
// index entry is only cleared if it still points at this connection, so a
// stale disconnect cannot unbind a reconnected student.
func (h *Hub) Remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, group := range h.audiences {
		delete(group, c.ID)
	}
	if c.studentID != "" && h.students[c.studentID] == c {
		delete(h.students, c.studentID)
	}
}

// Broadcast sends an event to every connection in one audience group.
func (h *Hub) Broadcast(a Audience, event string, payload interface{}) {
	msg, err := envelope(event, payload)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.audiences[a] {
		c.push(msg)
	}
}

// BroadcastAll sends an event to every connected client in every group.
func (h *Hub) BroadcastAll(event string, payload interface{}) {
	msg, err := envelope(event, payload)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, group := range h.audiences {
		for _, c := range group {
			c.push(msg)
		}
	}
}

// SendToStudent sends an event to the one connection bound to a participant.
func (h *Hub) SendToStudent(studentID, event string, payload interface{}) {
	msg, err := envelope(event, payload)
	if err != nil {
		return
	}
	h.mu.RLock()
	c := h.students[studentID]
	h.mu.RUnlock()
	if c != nil {
		c.push(msg)
	}
}

// Count returns the number of connections in an audience group.
func (h *Hub) Count(a Audience) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.audiences[a])
}

func envelope(event string, payload interface{}) (WSMessage, error) {
	var data json.RawMessage
	switch v := payload.(type) {
	case nil:
		// event with no body, e.g. kicked
	case json.RawMessage:
		data = v
	default:
		b, err := json.Marshal(payload)
		if err != nil {
			return WSMessage{}, err
		}
		data = b
	}
	return WSMessage{Event: event, Data: data}, nil
}
