// Package http exposes the core over plain HTTP for the pieces that don't
// need a persistent socket: a health check and a spectator/reconnect
// snapshot of a game's state, grounded on the teacher's
// internal/delivery/http handlers.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"realmforge-backend/internal/logger"
	"realmforge-backend/internal/serialize"
)

// GameHandler serves the HTTP-facing views of games held in a GameStore.
type GameHandler struct {
	store *GameStore
}

// NewGameHandler wires a handler to the store it reads from.
func NewGameHandler(store *GameStore) *GameHandler {
	return &GameHandler{store: store}
}

// HealthCheck reports liveness for load balancers and local smoke checks.
func (h *GameHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "realmforge-backend",
	})
}

// GetGame handles GET /api/v1/games/:id, returning a Spectator-perspective
// snapshot — useful for a reconnecting client or an external dashboard,
// since it carries no hidden information to leak.
func (h *GameHandler) GetGame(c *gin.Context) {
	log := logger.Get()
	gameID := c.Param("id")

	g := h.store.Get(gameID)
	if g == nil {
		log.Warn("game not found", zap.String("game_id", gameID))
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}

	var view serialize.GameStateView
	g.Snapshot(func() {
		view = serialize.View(g, serialize.Spectator, "")
	})

	c.JSON(http.StatusOK, view)
}
