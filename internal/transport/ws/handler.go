package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"realmforge-backend/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeHTTP upgrades r to a WebSocket and registers it against hub under
// playerID, then blocks running the connection's read/write pumps until it
// closes.
func ServeHTTP(hub *Hub, playerID string, w http.ResponseWriter, r *http.Request) {
	log := logger.Get()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade websocket connection", zap.Error(err))
		return
	}

	connection := NewConnection(hub, conn, playerID)
	hub.Register(connection)

	go connection.WritePump()
	connection.ReadPump()
}
