package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// Message is the WebSocket envelope format. Server-to-client events
// carry only the event name and the questionnaire id; clients reload
// data over REST when one arrives.
type Message struct {
	Type            string `json:"type"`
	QuestionnaireID string `json:"questionnaireId,omitempty"`
}

// Hub manages WebSocket connections and their questionnaire channel
// memberships. It implements service.Notifier.
type Hub struct {
	// questionnaireID -> set of subscribed connections
	channels map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	publish    chan *Message
}

// Connection represents one WebSocket client
type Connection struct {
	UserID string
	Send   chan []byte

	// Channels this connection has joined; guarded by the hub mutex.
	joined map[string]bool
}

// NewHub creates a new hub and starts its event loop
func NewHub() *Hub {
	h := &Hub{
		channels:   make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		publish:    make(chan *Message, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if conn.joined == nil {
				conn.joined = make(map[string]bool)
			}
			h.mu.Unlock()
			log.Printf("client %s connected", conn.UserID)

		case conn := <-h.unregister:
			h.mu.Lock()
			for questionnaireID := range conn.joined {
				if subs, ok := h.channels[questionnaireID]; ok {
					delete(subs, conn)
					if len(subs) == 0 {
						delete(h.channels, questionnaireID)
					}
				}
			}
			close(conn.Send)
			h.mu.Unlock()
			log.Printf("client %s disconnected", conn.UserID)

		case msg := <-h.publish:
			h.mu.RLock()
			data, _ := json.Marshal(msg)
			for conn := range h.channels[msg.QuestionnaireID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection and its channel memberships
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// Join subscribes the connection to a questionnaire channel. Idempotent.
func (h *Hub) Join(conn *Connection, questionnaireID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conn.joined == nil {
		conn.joined = make(map[string]bool)
	}
	if h.channels[questionnaireID] == nil {
		h.channels[questionnaireID] = make(map[*Connection]bool)
	}
	h.channels[questionnaireID][conn] = true
	conn.joined[questionnaireID] = true
}

// Leave unsubscribes the connection from a questionnaire channel.
// Idempotent; leaving a channel never joined is a no-op.
func (h *Hub) Leave(conn *Connection, questionnaireID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs, ok := h.channels[questionnaireID]; ok {
		delete(subs, conn)
		if len(subs) == 0 {
			delete(h.channels, questionnaireID)
		}
	}
	delete(conn.joined, questionnaireID)
}

// Publish sends an event to every subscriber of the questionnaire
// channel (implements service.Notifier)
func (h *Hub) Publish(questionnaireID string, event string) {
	h.publish <- &Message{
		Type:            event,
		QuestionnaireID: questionnaireID,
	}
}

// Subscribers reports the current subscriber count for a channel
func (h *Hub) Subscribers(questionnaireID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[questionnaireID])
}
