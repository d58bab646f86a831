package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine serving the health check and the
// spectator snapshot route, grounded on the teacher's cmd/server/main.go
// route group layout.
func NewRouter(store *GameStore) *gin.Engine {
	handler := NewGameHandler(store)

	r := gin.Default()
	r.Use(corsMiddleware)

	r.GET("/health", handler.HealthCheck)

	api := r.Group("/api/v1")
	{
		api.GET("/games/:id", handler.GetGame)
	}

	return r
}

func corsMiddleware(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
	if c.Request.Method == "OPTIONS" {
		c.AbortWithStatus(204)
		return
	}
	c.Next()
}
