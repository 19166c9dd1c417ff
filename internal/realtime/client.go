package realtime

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/inquizitive/backend/internal/models"
	"github.com/inquizitive/backend/internal/session"
	"github.com/inquizitive/backend/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is enforced at the HTTP layer
	},
}

const (
	pingInterval   = 30 * time.Second
	pongWait       = 60 * time.Second
	writeWait      = 10 * time.Second
	maxMessageSize = 65536
	sendBuffer     = 256
)

// Client represents a single WebSocket connection. Its role is unknown until
// the client announces itself with join-as-teacher or join-as-student.
type Client struct {
	ID      string
	hub     *Hub
	session *session.Session
	conn    *websocket.Conn
	send    chan WSMessage
	logger  *zap.Logger

	studentID string // set on join-as-student; empty for teachers
}

// ServeWS handles the WebSocket upgrade and runs the client loop.
func ServeWS(hub *Hub, sess *session.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !websocket.IsWebSocketUpgrade(c.Request) {
			response.BadRequest(c, "websocket upgrade required")
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		client := &Client{
			ID:      uuid.New().String(),
			hub:     hub,
			session: sess,
			conn:    conn,
			send:    make(chan WSMessage, sendBuffer),
			logger:  logger,
		}
		go client.writePump()
		client.readPump()
	}
}

func (c *Client) readPump() {
	defer func() {
		c.disconnect()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg WSMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			break
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		c.dispatch(msg)
	}
}

// dispatch routes one inbound command. Unknown events and malformed payloads
// are dropped without a reply; only create-poll validation failures are
// reported back to the caller.
func (c *Client) dispatch(msg WSMessage) {
	switch msg.Event {
	case EventJoinTeacher:
		c.joinTeacher()
	case EventJoinStudent:
		var p JoinStudentPayload
		if json.Unmarshal(msg.Data, &p) == nil && p.StudentID != "" {
			c.joinStudent(p)
		}
	case EventCreatePoll:
		var p CreatePollPayload
		if json.Unmarshal(msg.Data, &p) != nil {
			c.enqueue(EventPollError, ErrorPayload{Message: "invalid poll data"})
			return
		}
		c.createPoll(p)
	case EventSubmitAnswer:
		var p SubmitAnswerPayload
		if json.Unmarshal(msg.Data, &p) == nil {
			c.submitAnswer(p)
		}
	case EventEndPoll:
		c.endPoll()
	case EventGetHistory:
		c.enqueue(EventPollHistory, c.session.History())
	case EventSendMessage:
		var p SendMessagePayload
		if json.Unmarshal(msg.Data, &p) == nil {
			m := c.session.AppendMessage(p.Text, p.Sender, models.SenderType(p.SenderType))
			c.hub.BroadcastAll(EventNewMessage, m)
		}
	case EventKickStudent:
		var id string
		if json.Unmarshal(msg.Data, &id) == nil && id != "" {
			c.kickStudent(id)
		}
	default:
		// ignore
	}
}

func (c *Client) joinTeacher() {
	c.hub.Join(c, AudienceTeachers)
	snap := c.session.Teacher()
	c.enqueue(EventCurrentPoll, snap.CurrentPoll)
	c.enqueue(EventStudentsList, snap.Roster)
	c.enqueue(EventChatHistory, snap.Chat)
	c.logger.Debug("teacher joined", zap.String("client_id", c.ID))
}

func (c *Client) joinStudent(p JoinStudentPayload) {
	c.studentID = p.StudentID
	c.hub.Join(c, AudienceStudents)
	c.hub.BindStudent(c, p.StudentID)

	snap := c.session.JoinStudent(p.StudentID, p.Name, c.ID)
	if snap.CurrentPoll != nil {
		c.enqueue(EventCurrentPoll, StudentPollView{
			Poll:        *snap.CurrentPoll,
			HasAnswered: snap.HasAnswered,
		})
	}
	c.enqueue(EventChatHistory, snap.Chat)
	c.hub.Broadcast(AudienceTeachers, EventStudentsList, snap.Roster)
}

func (c *Client) createPoll(p CreatePollPayload) {
	poll, roster, err := c.session.CreatePoll(p.Question, p.Options, p.TimeLimit)
	if err != nil {
		c.enqueue(EventPollError, ErrorPayload{Message: err.Error()})
		return
	}
	c.hub.Broadcast(AudienceStudents, EventNewPoll, poll)
	c.hub.Broadcast(AudienceTeachers, EventPollCreated, poll)
	c.hub.Broadcast(AudienceTeachers, EventStudentsList, roster)
}

func (c *Client) submitAnswer(p SubmitAnswerPayload) {
	if c.studentID == "" {
		return
	}
	results, roster, ok := c.session.SubmitAnswer(c.studentID, p.Answer)
	if !ok {
		return // poll ended before the answer arrived
	}
	c.hub.BroadcastAll(EventPollResults, results)
	c.hub.Broadcast(AudienceTeachers, EventStudentsList, roster)
}

func (c *Client) endPoll() {
	out, err := c.session.EndPoll()
	if err != nil {
		return // already idle
	}
	if out.Archived {
		c.hub.Broadcast(AudienceTeachers, EventPollHistory, out.History)
	}
	c.hub.BroadcastAll(EventPollEnded, out.Results)
}

func (c *Client) kickStudent(id string) {
	_, roster, ok := c.session.KickStudent(id)
	if !ok {
		return
	}
	c.hub.SendToStudent(id, EventKicked, nil)
	c.hub.Broadcast(AudienceTeachers, EventStudentsList, roster)
}

// disconnect is the synchronous cleanup when a connection drops: leave the
// hub and, for student connections, remove the registry entry and tell the
// teachers.
func (c *Client) disconnect() {
	c.hub.Remove(c)
	if c.studentID == "" {
		return
	}
	roster, removed := c.session.RemoveStudent(c.studentID, c.ID)
	if removed {
		c.hub.Broadcast(AudienceTeachers, EventStudentsList, roster)
	}
}

// enqueue marshals and queues an event for this connection only.
func (c *Client) enqueue(event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	c.push(WSMessage{Event: event, Data: data})
}

func (c *Client) push(msg WSMessage) {
	select {
	case c.send <- msg:
	default:
		// buffer full, skip
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
