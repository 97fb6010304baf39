package services

import (
	"encoding/json"
	"sync"

	"github.com/tambolahq/tambola-backend/utils/logger"
)

// envelope is the outbound frame shape: an event name plus its payload.
type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Hub tracks which clients are members of which room and fans events
// out to them. It satisfies game.Emitter for the session registry.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]bool)}
}

// Join adds the client to a room's member set.
func (h *Hub) Join(roomCode string, c *Client) {
	h.mu.Lock()
	members, ok := h.rooms[roomCode]
	if !ok {
		members = make(map[*Client]bool)
		h.rooms[roomCode] = members
	}
	members[c] = true
	h.mu.Unlock()
}

// Drop removes the client from every room, for disconnects.
func (h *Hub) Drop(c *Client) {
	h.mu.Lock()
	for code, members := range h.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, code)
		}
	}
	h.mu.Unlock()
}

// CloseRoom forgets the room's membership entirely. Callers broadcast
// room_closed before this, or the frame has no one left to reach.
func (h *Hub) CloseRoom(roomCode string) {
	h.mu.Lock()
	delete(h.rooms, roomCode)
	h.mu.Unlock()
}

// Broadcast sends the event to every member of the room. Delivery is
// best-effort: a client whose send buffer is full misses the frame.
func (h *Hub) Broadcast(roomCode, event string, payload any) {
	b, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		logger.Errorf("hub: marshal %s: %v", event, err)
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.rooms[roomCode]))
	for c := range h.rooms[roomCode] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.enqueue(b)
	}
}
