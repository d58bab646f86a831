package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/engine"
)

func testRegistry() *cards.Registry {
	scout := &cards.CardType{ID: "scout", Name: "Scout", Cost: 0, Faction: cards.Neutral, Kind: cards.KindShip}
	viper := &cards.CardType{ID: "viper", Name: "Viper", Cost: 0, Faction: cards.Neutral, Kind: cards.KindShip}
	return cards.NewRegistry([]*cards.CardType{scout, viper})
}

func testGame(t *testing.T) *engine.Game {
	t.Helper()
	g := engine.New("game-1", []string{"Alice", "Bob"}, engine.Settings{
		Seed:              1,
		StartingAuthority: 50,
		StartingDeck:      []string{"scout", "scout", "scout", "scout", "scout", "scout", "scout", "viper", "viper", "viper"},
		Registry:          testRegistry(),
	})
	require.NoError(t, g.Start())
	return g
}

func dialTestServer(t *testing.T, server *httptest.Server, playerID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/" + playerID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestHub_RegisterPushesInitialGameState(t *testing.T) {
	game := testGame(t)
	hub := NewHub(game)
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		playerID := strings.TrimPrefix(r.URL.Path, "/ws/")
		ServeHTTP(hub, playerID, w, r)
	}))
	defer server.Close()

	conn := dialTestServer(t, server, game.Players[0].ID)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type  string `json:"type"`
		State struct {
			Phase string `json:"phase"`
		} `json:"state"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	require.Equal(t, "gamestate", msg.Type)
	require.Equal(t, "draw_order", msg.State.Phase)
}

func TestHub_EndTurnRejectedOutsideMainPhase(t *testing.T) {
	game := testGame(t)
	hub := NewHub(game)
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		playerID := strings.TrimPrefix(r.URL.Path, "/ws/")
		ServeHTTP(hub, playerID, w, r)
	}))
	defer server.Close()

	conn := dialTestServer(t, server, game.Players[0].ID)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage() // initial gamestate
	require.NoError(t, err)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "end_turn"}))

	for i := 0; i < 5; i++ {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var envelope struct {
			Type string `json:"type"`
			Code string `json:"code"`
		}
		require.NoError(t, json.Unmarshal(data, &envelope))
		if envelope.Type == "error" {
			require.Equal(t, "wrong-phase", envelope.Code)
			return
		}
	}
	t.Fatal("expected an error message rejecting end_turn outside the main phase")
}
