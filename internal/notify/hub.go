package notify

import (
	"encoding/json"
	"log"
	"sync"
)

// Event is broadcast to connected admin UIs when access-control data
// changes, so permission screens can refresh without polling.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Event types published by the access-control services.
const (
	EventRoleGrantsUpdated = "role.grants.updated"
	EventCatalogUpdated    = "catalog.updated"
	EventRoleChanged       = "role.changed"
)

// Client represents a single connected WebSocket subscriber
type Client struct {
	hub  *Hub
	send chan []byte
}

// Hub maintains the set of active clients and fans events out to them
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex
}

// NewHub initializes a new notification Hub instance
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Run starts the core dispatch loop for notification events
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Println("Notification client connected")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Println("Notification client disconnected")
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish serializes an event and broadcasts it to all subscribers.
// Delivery is best effort; slow clients are dropped rather than blocking
// the publishing request.
func (h *Hub) Publish(eventType string, payload interface{}) {
	data, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		log.Printf("notify: failed to marshal event %s: %v", eventType, err)
		return
	}
	h.broadcast <- data
}
