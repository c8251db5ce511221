// internal/chat/client.go

package chat

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 64 * 1024
)

// Client represents a websocket client
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	userID  int64
	service Service
}

func NewClient(hub *Hub, conn *websocket.Conn, userID int64, service Service) *Client {
	return &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, 256),
		userID:  userID,
		service: service,
	}
}

func (c *Client) Start() {
	c.hub.register <- c
	go c.writePump()
	go c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		go c.processMessage(message)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) processMessage(data []byte) {
	var msg WSMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Printf("Error unmarshaling message: %v", err)
		return
	}

	ctx := context.Background()

	switch msg.Type {
	case WSTypeMessage:
		c.handleSend(ctx, msg.Data)

	case WSTypeRead:
		c.handleMarkRead(ctx, msg.Data)

	default:
		log.Printf("Unknown message type: %s", msg.Type)
	}
}

// handleSend persists the message through the service, which echoes the
// stored row back over the hub to both participants.
func (c *Client) handleSend(ctx context.Context, data json.RawMessage) {
	var payload wsSendPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Printf("Error unmarshaling send payload: %v", err)
		return
	}

	if _, err := c.service.Send(ctx, payload.MatchID, c.userID, payload.Content); err != nil {
		c.sendError(err)
	}
}

func (c *Client) handleMarkRead(ctx context.Context, data json.RawMessage) {
	var payload wsReadPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Printf("Error unmarshaling read payload: %v", err)
		return
	}

	if err := c.service.MarkRead(ctx, payload.MatchID, c.userID); err != nil {
		log.Printf("Error marking match %d read: %v", payload.MatchID, err)
	}
}

func (c *Client) sendError(err error) {
	msg := WSMessage{
		Type:      "error",
		Data:      mustMarshalJSON(map[string]string{"error": err.Error()}),
		Timestamp: time.Now(),
	}

	data, marshalErr := json.Marshal(msg)
	if marshalErr != nil {
		return
	}

	select {
	case c.send <- data:
	default:
	}
}

func (c *Client) close() {
	close(c.send)
}
