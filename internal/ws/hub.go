// Package ws implements the debug introspection server's streaming
// endpoint: a client opens a WebSocket bound to one world handle and
// requests column scans, receiving cave_density_at samples back as the
// client moves through the world.
package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Natfii/voxelbiome/internal/core"
)

// Client represents one connected WebSocket scanning a single world.
type Client struct {
	ID      uuid.UUID
	WorldID uuid.UUID
	Conn    *websocket.Conn
	Send    chan []byte
	hub     *Hub
}

// Hub owns the set of connected clients and the set of worlds they can
// scan, matching the reference engine's register/unregister channel
// pattern for safe concurrent client bookkeeping.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
	worlds  map[uuid.UUID]*core.Core

	register   chan *Client
	unregister chan *Client
}

// NewHub creates an empty Hub. Call Run in its own goroutine before
// accepting connections.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		worlds:     make(map[uuid.UUID]*core.Core),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes register/unregister events until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("ws: client %s connected to world %s", client.ID, client.WorldID)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			log.Printf("ws: client %s disconnected", client.ID)
		}
	}
}

// RegisterWorld makes a world handle reachable under id, so clients can
// connect to it by ID. Supports hosting several independent worlds in one
// process, each with its own seed and catalog.
func (h *Hub) RegisterWorld(id uuid.UUID, c *core.Core) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.worlds[id] = c
}

// UnregisterWorld removes a world handle; already-connected clients simply
// fail their next scan request rather than being forcibly dropped.
func (h *Hub) UnregisterWorld(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.worlds, id)
}

func (h *Hub) worldFor(id uuid.UUID) (*core.Core, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.worlds[id]
	return c, ok
}

// ClientCount returns the number of currently connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Register adds a new client to the hub.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (c *Client) sendJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("ws: failed to marshal message: %v", err)
		return
	}
	select {
	case c.Send <- data:
	default:
		c.hub.unregister <- c
	}
}
