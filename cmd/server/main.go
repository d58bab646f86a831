package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/engine"
	"realmforge-backend/internal/logger"
	realmhttp "realmforge-backend/internal/transport/http"
	"realmforge-backend/internal/transport/ws"
)

func main() {
	if err := logger.Init(nil); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Shutdown()

	registry, errs := cards.LoadStarterSet()
	if len(errs) > 0 {
		for _, e := range errs {
			log.Printf("card set validation error: %v", e)
		}
		log.Fatalf("refusing to start with an invalid card set")
	}

	store := realmhttp.NewGameStore()

	game := engine.New(uuid.NewString(), []string{"Player One", "Player Two"}, engine.Settings{
		StartingDeck:      []string{"scout", "scout", "scout", "scout", "scout", "scout", "scout", "viper", "viper", "viper"},
		StartingAuthority: 50,
		TradeDeck:         starterTradeDeck(),
		ExplorerTypeID:    "explorer",
		Registry:          registry,
	})
	if err := game.Start(); err != nil {
		log.Fatalf("failed to start game: %v", err)
	}
	store.Put(game)

	hub := ws.NewHub(game)
	go hub.Run()

	router := realmhttp.NewRouter(store)
	router.GET("/ws/:playerId", func(c *gin.Context) {
		ws.ServeHTTP(hub, c.Param("playerId"), c.Writer, c.Request)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	log.Printf("realmforge backend starting on port %s", port)
	log.Printf("health check available at http://localhost:%s/health", port)
	log.Printf("websocket endpoint available at ws://localhost:%s/ws/:playerId", port)

	if err := router.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed to start: %v", err)
	}
}

func starterTradeDeck() []string {
	deck := make([]string, 0, 40)
	for i := 0; i < 8; i++ {
		deck = append(deck, "explorer")
	}
	for i := 0; i < 6; i++ {
		deck = append(deck, "courier")
	}
	for i := 0; i < 6; i++ {
		deck = append(deck, "raider")
	}
	for i := 0; i < 4; i++ {
		deck = append(deck, "freighter")
	}
	for i := 0; i < 4; i++ {
		deck = append(deck, "conscript")
	}
	for i := 0; i < 4; i++ {
		deck = append(deck, "broker")
	}
	for i := 0; i < 3; i++ {
		deck = append(deck, "watchtower")
	}
	for i := 0; i < 3; i++ {
		deck = append(deck, "keep")
	}
	for i := 0; i < 3; i++ {
		deck = append(deck, "barracks")
	}
	return deck
}
