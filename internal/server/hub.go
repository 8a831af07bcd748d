package server

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
)

// client wraps a websocket connection with its own write mutex; gorilla
// connections allow one concurrent writer.
type client struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Hub tracks live-reload connections and broadcasts to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[string]*client)}
}

// Add registers conn and returns its client id.
func (h *Hub) Add(conn *websocket.Conn) string {
	c := &client{id: uuid.NewString(), conn: conn}

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()

	log.Debug(log.CatServer, "websocket client connected", "client", c.id, "remote", conn.RemoteAddr())
	return c.id
}

// Remove drops and closes the client with id. Unknown ids are ignored.
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	c, ok := h.clients[id]
	delete(h.clients, id)
	h.mu.Unlock()

	if ok {
		_ = c.conn.Close()
		log.Debug(log.CatServer, "websocket client disconnected", "client", id)
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Send writes msg to one client.
func (h *Hub) Send(id string, msg any) error {
	h.mu.RLock()
	c, ok := h.clients[id]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown websocket client %s", id)
	}
	return c.writeJSON(msg)
}

// Broadcast sends msg to every client. Clients that fail the write are
// removed.
func (h *Hub) Broadcast(msg any) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.writeJSON(msg); err != nil {
			log.Warn(log.CatServer, "dropping websocket client", "client", c.id, "error", err.Error())
			h.Remove(c.id)
		}
	}
}

// CloseAll disconnects every client.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[string]*client)
	h.mu.Unlock()

	for _, c := range clients {
		c.mu.Lock()
		_ = c.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		c.mu.Unlock()
		_ = c.conn.Close()
	}
}
