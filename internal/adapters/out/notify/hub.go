// Package notify pushes change events to connected operator screens over
// WebSocket. Events are coarse invalidation hints ("orders-changed"); screens
// re-query the data they display instead of patching state from payloads.
package notify

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Event is the wire format of one change notification.
type Event struct {
	Event string `json:"event"`
}

// Hub maintains the set of connected screens and broadcasts change events to
// all of them. It implements the change notifier contract: Notify never
// blocks and never fails, a slow or dead screen is dropped rather than
// allowed to stall the business operation that triggered the event.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu     sync.RWMutex
	logger *slog.Logger
}

// NewHub creates a hub. Call Run in a goroutine before serving connections.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		logger:     logger,
	}
}

// Run starts the hub's main loop. It should be called as a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Send buffer full: the screen stopped reading.
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Notify broadcasts a change event to every connected screen. When the
// broadcast buffer is full the event is dropped: screens resynchronize on
// their next query, so a lost hint is harmless.
func (h *Hub) Notify(event string) {
	message, err := json.Marshal(Event{Event: event})
	if err != nil {
		return
	}

	select {
	case h.broadcast <- message:
	default:
	}
}
