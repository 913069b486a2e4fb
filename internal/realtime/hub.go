package realtime

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub fans submission events out to a profile's open dashboard connections.
// Delivery is fire-and-forget: a broken connection never fails the
// submission that triggered the event.

type Client struct {
	ProfileID uuid.UUID
	Conn      *websocket.Conn
}

type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uuid.UUID]map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	if h.clients[c.ProfileID] == nil {
		h.clients[c.ProfileID] = make(map[*Client]struct{})
	}
	h.clients[c.ProfileID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if set := h.clients[c.ProfileID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.ProfileID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *Hub) Publish(profileID uuid.UUID, event string, payload any) {
	msg, err := json.Marshal(map[string]any{
		"event": event,
		"data":  payload,
	})
	if err != nil {
		zap.S().Errorw("marshal realtime event", "event", event, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[profileID] {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			zap.S().Debugw("realtime write failed", "event", event, "error", err)
		}
	}
}
