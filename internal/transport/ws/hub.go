package ws

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Oliverknowledge/Signal-Backend/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgDecision MessageType = "decision"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans decision events out to connected observers (dashboards). Delivery
// is best effort: a full send buffer drops the frame rather than blocking
// the analyze path.
type Hub struct {
	conns map[*Connection]bool
	mu    sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *Message

	log zerolog.Logger
}

// Connection represents one observer connection
type Connection struct {
	ClientID string
	Send     chan []byte
	Hub      *Hub
}

// NewHub creates and starts a new observer hub
func NewHub(log zerolog.Logger) *Hub {
	h := &Hub{
		conns:      make(map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *Message, 256),
		log:        log,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn] = true
			h.mu.Unlock()
			h.log.Debug().Str("client", conn.ClientID).Msg("observer connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.conns[conn] {
				delete(h.conns, conn)
				close(conn.Send)
				h.log.Debug().Str("client", conn.ClientID).Msg("observer disconnected")
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			data, _ := json.Marshal(msg)
			h.mu.RLock()
			for conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// Drop frame if buffer full
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

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastDecision pushes one analyze result to all observers (implements
// service.Broadcaster)
func (h *Hub) BroadcastDecision(resp *model.AnalyzeResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	select {
	case h.broadcast <- &Message{Type: MsgDecision, Payload: data}:
	default:
		// Hub backed up; observers are best effort
	}
}
