package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Session couples a websocket connection to the authenticated user it
// belongs to. Events are only delivered to the owning user's sessions.
type Session struct {
	Conn   *websocket.Conn
	UserID uuid.UUID
}

// Event is a pushed inventory notification.
type Event struct {
	Type    string      `json:"type"`
	Action  string      `json:"action"`
	Payload interface{} `json:"payload,omitempty"`
}

type message struct {
	userID uuid.UUID
	data   []byte
}

type Hub struct {
	Register   chan Session
	Unregister chan *websocket.Conn
	send       chan message

	clients map[*websocket.Conn]uuid.UUID
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Register:   make(chan Session),
		Unregister: make(chan *websocket.Conn),
		send:       make(chan message),
		clients:    make(map[*websocket.Conn]uuid.UUID),
	}
}

// Publish fans an event out to every open session of the given user.
// Nil-safe so services can run without a hub in tests.
func (h *Hub) Publish(userID uuid.UUID, event Event) {
	if h == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Println("ws: marshal event:", err)
		return
	}
	h.send <- message{userID: userID, data: data}
}

func (h *Hub) Run() {
	for {
		select {
		case session := <-h.Register:
			h.mutex.Lock()
			h.clients[session.Conn] = session.UserID
			h.mutex.Unlock()

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case msg := <-h.send:
			h.mutex.Lock()
			for conn, userID := range h.clients {
				if userID != msg.userID {
					continue
				}
				if err := conn.WriteMessage(websocket.TextMessage, msg.data); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
