package realtime

import (
	"testing"

	"go.uber.org/zap"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	return NewHub(zap.NewNop())
}

func newTestClient(id string) *Client {
	return &Client{ID: id, send: make(chan WSMessage, 8)}
}

func drain(c *Client) []WSMessage {
	var out []WSMessage
	for {
		select {
		case m := <-c.send:
			out = append(out, m)
		default:
			return out
		}
	}
}

func TestBroadcastReachesOnlyItsAudience(t *testing.T) {
	h := newTestHub(t)
	teacher := newTestClient("t1")
	student := newTestClient("s1")
	h.Join(teacher, AudienceTeachers)
	h.Join(student, AudienceStudents)

	h.Broadcast(AudienceTeachers, EventStudentsList, []string{"x"})

	if got := drain(teacher); len(got) != 1 || got[0].Event != EventStudentsList {
		t.Errorf("teacher got %+v, want one students-list", got)
	}
	if got := drain(student); len(got) != 0 {
		t.Errorf("student got %+v, want nothing", got)
	}
}

func TestBroadcastAllReachesEveryGroup(t *testing.T) {
	h := newTestHub(t)
	teacher := newTestClient("t1")
	student := newTestClient("s1")
	h.Join(teacher, AudienceTeachers)
	h.Join(student, AudienceStudents)

	h.BroadcastAll(EventNewMessage, map[string]string{"text": "hi"})

	for _, c := range []*Client{teacher, student} {
		if got := drain(c); len(got) != 1 || got[0].Event != EventNewMessage {
			t.Errorf("client %s got %+v, want one new-message", c.ID, got)
		}
	}
}

func TestJoinMovesConnectionBetweenGroups(t *testing.T) {
	h := newTestHub(t)
	c := newTestClient("c1")
	h.Join(c, AudienceTeachers)
	h.Join(c, AudienceStudents)

	if n := h.Count(AudienceTeachers); n != 0 {
		t.Errorf("teachers count = %d, want 0", n)
	}
	if n := h.Count(AudienceStudents); n != 1 {
		t.Errorf("students count = %d, want 1", n)
	}
}

func TestSendToStudentTargetsOneConnection(t *testing.T) {
	h := newTestHub(t)
	s1 := newTestClient("c1")
	s2 := newTestClient("c2")
	s1.studentID = "ada"
	s2.studentID = "grace"
	h.Join(s1, AudienceStudents)
	h.Join(s2, AudienceStudents)
	h.BindStudent(s1, "ada")
	h.BindStudent(s2, "grace")

	h.SendToStudent("ada", EventKicked, nil)

	if got := drain(s1); len(got) != 1 || got[0].Event != EventKicked {
		t.Errorf("ada got %+v, want one kicked", got)
	}
	if got := drain(s2); len(got) != 0 {
		t.Errorf("grace got %+v, want nothing", got)
	}

	// unknown participant: no delivery, no panic
	h.SendToStudent("nobody", EventKicked, nil)
}

func TestRemoveStopsDelivery(t *testing.T) {
	h := newTestHub(t)
	c := newTestClient("c1")
	c.studentID = "ada"
	h.Join(c, AudienceStudents)
	h.BindStudent(c, "ada")

	h.Remove(c)

	h.Broadcast(AudienceStudents, EventNewPoll, nil)
	h.SendToStudent("ada", EventKicked, nil)
	if got := drain(c); len(got) != 0 {
		t.Errorf("removed client got %+v, want nothing", got)
	}
}

func TestRemoveKeepsFresherStudentBinding(t *testing.T) {
	h := newTestHub(t)
	old := newTestClient("c1")
	fresh := newTestClient("c2")
	old.studentID = "ada"
	fresh.studentID = "ada"
	h.Join(old, AudienceStudents)
	h.BindStudent(old, "ada")
	h.Join(fresh, AudienceStudents)
	h.BindStudent(fresh, "ada") // reconnect overwrote the binding

	h.Remove(old) // stale socket finally dies

	h.SendToStudent("ada", EventKicked, nil)
	if got := drain(fresh); len(got) != 1 {
		t.Errorf("fresh connection got %+v, want one kicked", got)
	}
}

func TestSlowConsumerDoesNotBlockBroadcast(t *testing.T) {
	h := newTestHub(t)
	c := &Client{ID: "c1", send: make(chan WSMessage, 1)}
	h.Join(c, AudienceStudents)

	// second send overflows the buffer and must be dropped, not block
	h.Broadcast(AudienceStudents, EventNewPoll, nil)
	h.Broadcast(AudienceStudents, EventNewPoll, nil)

	if got := drain(c); len(got) != 1 {
		t.Errorf("got %d messages, want 1 (overflow dropped)", len(got))
	}
}
