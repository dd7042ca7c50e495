package websocket

import (
	"sync"

	"portfolio-chat-be/internal/pkg/logger"
)

// Hub is the connection registry: caller-supplied client id -> live
// connection. It is the only cross-session shared resource; operations are
// short and contention is low, so a single mutex suffices.
type Hub struct {
	// One client per id. Registering an id that is already present replaces
	// the previous connection.
	clients map[string]*Client

	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		logger:  log,
	}
}

// Register installs a client, replacing (and closing) any previous
// connection with the same id.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	if old, ok := h.clients[client.ID]; ok && old != client {
		close(old.Send)
	}
	h.clients[client.ID] = client
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("Hub", "Client registered", map[string]interface{}{
		"client_id": client.ID,
		"total":     total,
	})
}

// Unregister removes a client and reports whether it was still the
// registered connection for its id. A stale client that was already replaced
// is left alone so the replacement's session survives its teardown.
func (h *Hub) Unregister(client *Client) bool {
	h.mu.Lock()
	current, ok := h.clients[client.ID]
	owned := ok && current == client
	if owned {
		delete(h.clients, client.ID)
		close(client.Send)
	}
	total := len(h.clients)
	h.mu.Unlock()

	if owned {
		h.logger.Info("Hub", "Client unregistered", map[string]interface{}{
			"client_id": client.ID,
			"total":     total,
		})
	}
	return owned
}

// Count reports the number of active connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
