// internal/chat/hub.go

package chat

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
)

// PushFallback receives events for users with no open session. Wired to
// the notification service; nil disables the fallback.
type PushFallback func(userID int64, event string, payload interface{})

// Hub maintains active websocket connections, one per user. The newest
// connection for a user replaces any older one.
type Hub struct {
	clients    map[int64]*Client
	clientsMux sync.RWMutex

	register   chan *Client
	unregister chan *Client

	push PushFallback

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewHub(push PushFallback) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		clients:    make(map[int64]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		push:       push,
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (h *Hub) Run() {
	defer h.cleanup()

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()

	if oldClient, exists := h.clients[client.userID]; exists {
		oldClient.close()
	}
	h.clients[client.userID] = client

	SetActiveConnections(len(h.clients))
	log.Printf("User %d connected. Total clients: %d", client.userID, len(h.clients))
}

func (h *Hub) unregisterClient(client *Client) {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()

	if current, exists := h.clients[client.userID]; exists && current == client {
		client.close()
		delete(h.clients, client.userID)

		SetActiveConnections(len(h.clients))
		log.Printf("User %d disconnected. Total clients: %d", client.userID, len(h.clients))
	}
}

// SendToUser delivers one event to the user's open session, falling back
// to push when they are offline. Delivery is best effort.
func (h *Hub) SendToUser(userID int64, event string, payload interface{}) {
	msg := WSMessage{
		Type:      event,
		Data:      mustMarshalJSON(payload),
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	// The send channel is closed under the write lock, so it stays open
	// for as long as the read lock is held here.
	h.clientsMux.RLock()
	defer h.clientsMux.RUnlock()

	client, exists := h.clients[userID]
	if !exists {
		if h.push != nil {
			h.wg.Add(1)
			go func() {
				defer h.wg.Done()
				h.push(userID, event, payload)
			}()
		}
		return
	}

	select {
	case client.send <- data:
	default:
		go func() { h.unregister <- client }()
	}
}

func (h *Hub) IsUserOnline(userID int64) bool {
	h.clientsMux.RLock()
	defer h.clientsMux.RUnlock()

	_, exists := h.clients[userID]
	return exists
}

func (h *Hub) GetActiveConnections() int {
	h.clientsMux.RLock()
	defer h.clientsMux.RUnlock()
	return len(h.clients)
}

func (h *Hub) Shutdown() {
	h.cancel()
	h.wg.Wait()
}

func (h *Hub) cleanup() {
	h.clientsMux.Lock()
	for _, client := range h.clients {
		client.close()
	}
	h.clients = make(map[int64]*Client)
	h.clientsMux.Unlock()

	h.wg.Wait()
}

func mustMarshalJSON(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshaling: %v", err)
		return json.RawMessage(`{}`)
	}
	return json.RawMessage(data)
}
