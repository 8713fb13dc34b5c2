package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConn(userID string) *Connection {
	return &Connection{
		UserID: userID,
		Send:   make(chan []byte, 8),
		joined: make(map[string]bool),
	}
}

func receive(t *testing.T, conn *Connection) *Message {
	t.Helper()
	select {
	case data := <-conn.Send:
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return &msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestPublishReachesSubscribers(t *testing.T) {
	hub := NewHub()
	conn := newTestConn("participant_1")

	hub.Join(conn, "q1")
	hub.Publish("q1", "response-submitted")

	msg := receive(t, conn)
	assert.Equal(t, "response-submitted", msg.Type)
	assert.Equal(t, "q1", msg.QuestionnaireID)
}

func TestPublishSkipsOtherChannels(t *testing.T) {
	hub := NewHub()
	conn := newTestConn("participant_1")

	hub.Join(conn, "q1")
	hub.Publish("q2", "questionnaire-updated")
	hub.Publish("q1", "questionnaire-updated")

	msg := receive(t, conn)
	assert.Equal(t, "q1", msg.QuestionnaireID)
	assert.Empty(t, conn.Send)
}

func TestJoinIdempotent(t *testing.T) {
	hub := NewHub()
	conn := newTestConn("participant_1")

	hub.Join(conn, "q1")
	hub.Join(conn, "q1")

	assert.Equal(t, 1, hub.Subscribers("q1"))

	hub.Publish("q1", "response-submitted")
	receive(t, conn)
	assert.Empty(t, conn.Send, "double join must not double deliver")
}

func TestLeaveIdempotent(t *testing.T) {
	hub := NewHub()
	conn := newTestConn("participant_1")

	hub.Join(conn, "q1")
	hub.Leave(conn, "q1")
	hub.Leave(conn, "q1")
	hub.Leave(conn, "never-joined")

	assert.Equal(t, 0, hub.Subscribers("q1"))
}

func TestUnregisterCleansUpMemberships(t *testing.T) {
	hub := NewHub()
	conn := newTestConn("participant_1")

	hub.Join(conn, "q1")
	hub.Join(conn, "q2")
	hub.Unregister(conn)

	// The unregister channel is drained by the hub loop; poll until done.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if hub.Subscribers("q1") == 0 && hub.Subscribers("q2") == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("memberships not cleaned up after unregister")
}

func TestPublishToEmptyChannel(t *testing.T) {
	hub := NewHub()

	// Nothing subscribed; must not block or panic.
	hub.Publish("q1", "questionnaire-updated")

	assert.Equal(t, 0, hub.Subscribers("q1"))
}
