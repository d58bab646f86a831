// Package engine is the authoritative game core: the Game value, the
// turn-phase state machine, the effect dispatch table, the pending-action
// queue, the auto-draw resolver, and combat. It is built as one cohesive
// package — not split across import-cyclic subpackages — because every one
// of those subsystems needs intimate, mutating access to Game's players,
// trade row, and RNG in the same call (§1's "four tightly coupled
// subsystems that cannot be specified independently").
package engine

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/events"
	"realmforge-backend/internal/logger"
	"realmforge-backend/internal/player"
	"realmforge-backend/internal/traderow"
)

// Phase is a turn-loop state (§4.5).
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseDrawOrder  Phase = "draw_order"
	PhaseMain       Phase = "main"
	PhaseEnd        Phase = "end"
	PhaseGameOver   Phase = "game_over"
)

// Game is the top-level aggregate. All mutation is sequential through its
// exported entry points (Start, SubmitDrawOrder, SkipDrawOrder,
// ProcessAction; pending responses and skips arrive as ProcessAction
// actions) — the core is single threaded and cooperative (§5); callers
// serialize calls onto one goroutine per game.
type Game struct {
	mu sync.RWMutex

	ID           string
	Players      []*player.Player
	ActivePlayer int
	TurnNumber   int
	Phase        Phase
	GameOver     bool
	Winner       int // player index, -1 if unset

	TradeRow *traderow.TradeRow
	Registry *cards.Registry
	Pending  []*PendingAction

	rng      *rand.Rand
	bus      *events.Bus
	settings Settings
}

// New constructs a Game in PhaseNotStarted. playerNames must have length
// 2-4 (core behavior specified for two, per §3).
func New(id string, playerNames []string, settings Settings) *Game {
	rng := rand.New(rand.NewSource(settings.Seed))

	g := &Game{
		ID:       id,
		Phase:    PhaseNotStarted,
		Winner:   -1,
		Registry: settings.Registry,
		rng:      rng,
		bus:      events.New(id),
		settings: settings,
	}

	startingAuthority := settings.StartingAuthority
	if startingAuthority == 0 {
		startingAuthority = 50
	}

	for _, name := range playerNames {
		p := player.New(uuid.NewString(), name, startingAuthority)
		g.populateStartingDeck(p)
		g.Players = append(g.Players, p)
	}

	if len(settings.TradeDeck) > 0 {
		tradeDeck := g.resolveTypes(settings.TradeDeck)
		var explorerType *cards.CardType
		if settings.ExplorerTypeID != "" {
			explorerType = g.Registry.Get(settings.ExplorerTypeID)
		}
		g.TradeRow = traderow.New(tradeDeck, explorerType, rng)
	}

	return g
}

func (g *Game) populateStartingDeck(p *player.Player) {
	for _, typeID := range g.settings.StartingDeck {
		typ := g.Registry.Get(typeID)
		if typ == nil {
			continue
		}
		p.Zones.DrawPile = append(p.Zones.DrawPile, cards.NewInstance(typ, uuid.NewString()))
	}
	p.Zones.Shuffle(g.rng)
}

func (g *Game) resolveTypes(ids []string) []*cards.CardType {
	out := make([]*cards.CardType, 0, len(ids))
	for _, id := range ids {
		if typ := g.Registry.Get(id); typ != nil {
			out = append(out, typ)
		}
	}
	return out
}

// Bus exposes the per-game event bus so transport, narrator, and art
// provider can subscribe (§5, §9's redesign flag).
func (g *Game) Bus() *events.Bus { return g.bus }

// PlayerByID returns the player with the given ID, or nil.
func (g *Game) PlayerByID(id string) *player.Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayerIndex returns the index of the player with the given ID, or -1.
func (g *Game) PlayerIndex(id string) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// ActivePlayerID returns the current active player's ID.
func (g *Game) ActivePlayerID() string {
	return g.Players[g.ActivePlayer].ID
}

// Opponents returns every player other than the given player ID, in seat
// order (the order of Players).
func (g *Game) Opponents(playerID string) []*player.Player {
	out := make([]*player.Player, 0, len(g.Players)-1)
	for _, p := range g.Players {
		if p.ID != playerID {
			out = append(out, p)
		}
	}
	return out
}

// log returns a logger scoped to this game.
func (g *Game) log() *zap.Logger {
	return logger.WithGameContext(g.ID, "")
}

// Snapshot runs fn with a read lock held, for callers on a goroutine other
// than the one driving ProcessAction (e.g. an HTTP spectator endpoint
// reading state concurrently with the WebSocket hub's mutation loop).
func (g *Game) Snapshot(fn func()) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn()
}
