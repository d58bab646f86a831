package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"realmforge-backend/internal/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingInterval   = (pongWait * 9) / 10
	maxMessageSize = 1 << 16
)

// Connection wraps one player's WebSocket socket. ReadPump/WritePump each
// run on their own goroutine; all they do with inbound data is hand it to
// the owning Hub's single-threaded loop.
type Connection struct {
	hub      *Hub
	conn     *websocket.Conn
	PlayerID string
	send     chan []byte
	log      *zap.Logger
}

// NewConnection wraps an upgraded socket for playerID, registered with hub.
func NewConnection(hub *Hub, conn *websocket.Conn, playerID string) *Connection {
	return &Connection{
		hub:      hub,
		conn:     conn,
		PlayerID: playerID,
		send:     make(chan []byte, 16),
		log:      logger.WithClientContext(playerID, playerID, ""),
	}
}

// Send enqueues an outbound frame without blocking the caller; a full
// buffer drops the connection rather than stalling the hub loop.
func (c *Connection) Send(data []byte) {
	select {
	case c.send <- data:
	default:
		c.hub.Unregister(c)
	}
}

// ReadPump reads frames off the socket and forwards them to the hub until
// the connection closes.
func (c *Connection) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			c.log.Debug("websocket read closed", zap.Error(err))
			return
		}
		c.hub.Dispatch(c, data)
	}
}

// WritePump drains the send channel onto the socket and pings on an
// interval to keep intermediaries from closing an idle connection.
func (c *Connection) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendJSON marshals v and enqueues it for write.
func (c *Connection) SendJSON(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.log.Error("failed to marshal outbound message", zap.Error(err))
		return
	}
	c.Send(data)
}
