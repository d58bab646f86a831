// Package ws adapts the authoritative game core to the WebSocket wire
// protocol of §6: one Hub owns one Game and broadcasts perspective-filtered
// gamestate snapshots to each connected player after every mutation.
package ws

import (
	"sync"

	"go.uber.org/zap"

	"realmforge-backend/internal/engine"
	"realmforge-backend/internal/events"
	"realmforge-backend/internal/logger"
	"realmforge-backend/internal/transport/dto"
)

// Hub owns one Game instance and the set of live connections attached to
// it. All mutation of Game happens on the hub's own goroutine (run), so the
// single-threaded cooperative model of §5 holds even though each
// Connection reads from its own socket concurrently.
type Hub struct {
	Game *engine.Game

	mu          sync.RWMutex
	connections map[string]*Connection // player ID -> connection

	register   chan *Connection
	unregister chan *Connection
	inbound    chan inboundMessage

	autoDrawLog []dto.AutoDrawLogLine

	log *zap.Logger
}

type inboundMessage struct {
	conn *Connection
	data []byte
}

// NewHub constructs a Hub around an already-built Game, subscribing to the
// game's event bus to collect the auto_draw detail log (§10) alongside each
// gamestate broadcast.
func NewHub(game *engine.Game) *Hub {
	h := &Hub{
		Game:        game,
		connections: make(map[string]*Connection),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		inbound:     make(chan inboundMessage, 64),
		log:         logger.WithGameContext(game.ID, ""),
	}
	events.Subscribe(game.Bus(), h.recordAutoDraw)
	return h
}

// recordAutoDraw appends one auto-draw firing to the pending detail log.
// Runs synchronously on whatever goroutine drives SubmitDrawOrder, which for
// this hub is always its own single-threaded loop.
func (h *Hub) recordAutoDraw(event events.AutoDrawEvent) {
	h.autoDrawLog = append(h.autoDrawLog, dto.AutoDrawLogLine{
		PlayerID:   event.PlayerID,
		InstanceID: event.InstanceID,
		CardName:   event.CardName,
		Drawn:      event.Drawn,
		Iteration:  event.Iteration,
	})
}

// Run processes registrations, disconnects, and inbound messages on one
// goroutine, serializing every Game mutation (§5).
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.connections[conn.PlayerID] = conn
			h.mu.Unlock()
			h.broadcastGameState()

		case conn := <-h.unregister:
			h.mu.Lock()
			delete(h.connections, conn.PlayerID)
			h.mu.Unlock()
			close(conn.send)

		case msg := <-h.inbound:
			h.handleInbound(msg.conn, msg.data)
			h.broadcastGameState()
		}
	}
}

// Register attaches a connection to the hub and schedules the initial
// gamestate push.
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister detaches a connection, closing its send channel.
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// Dispatch hands a raw inbound frame to the hub's single-goroutine loop.
func (h *Hub) Dispatch(conn *Connection, data []byte) {
	h.inbound <- inboundMessage{conn: conn, data: data}
}

func (h *Hub) connectionFor(playerID string) *Connection {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.connections[playerID]
}

func (h *Hub) eachConnection(fn func(*Connection)) {
	h.mu.RLock()
	conns := make([]*Connection, 0, len(h.connections))
	for _, c := range h.connections {
		conns = append(conns, c)
	}
	h.mu.RUnlock()
	for _, c := range conns {
		fn(c)
	}
}
