package websocket

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/Rayou-Ryan/Puissance-4/internal/service/game"
)

// Hub keeps the renderers attached to each table and pushes them every new
// state. It implements game.Notifier.
type Hub struct {
	tables map[string]map[*Client]struct{} // tableID → clients
	mu     sync.RWMutex
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		tables: make(map[string]map[*Client]struct{}),
		logger: logger.Named("ws"),
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.tables[c.tableID]
	if !ok {
		clients = make(map[*Client]struct{})
		h.tables[c.tableID] = clients
	}
	clients[c] = struct{}{}
	c.logger.Debug("renderer attached", zap.Int("clients", len(clients)))
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(c)
}

// removeLocked detaches a client without acquiring the lock (caller must hold it)
func (h *Hub) removeLocked(c *Client) {
	clients, ok := h.tables[c.tableID]
	if !ok {
		return
	}
	if _, ok := clients[c]; !ok {
		return
	}
	delete(clients, c)
	if len(clients) == 0 {
		delete(h.tables, c.tableID)
	}
	c.closeSend()
	c.logger.Debug("renderer detached")
}

// Publish sends state to every renderer of the table.
func (h *Hub) Publish(tableID string, state game.State) {
	payload, err := json.Marshal(ServerMessage{Type: MessageState, State: &state})
	if err != nil {
		h.logger.Error("failed to encode state", zap.String("table_id", tableID), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.tables[tableID] {
		if !c.enqueue(payload) {
			c.logger.Warn("renderer too slow, dropping it")
			h.removeLocked(c)
		}
	}
}

// CloseTable tells the renderers the table is gone and disconnects them.
func (h *Hub) CloseTable(tableID string) {
	payload, _ := json.Marshal(ServerMessage{Type: MessageClosed})

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.tables[tableID] {
		c.enqueue(payload)
		h.removeLocked(c)
	}
}

func (h *Hub) ClientCount(tableID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.tables[tableID])
}
