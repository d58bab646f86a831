package engine

import "realmforge-backend/internal/cards"

// Settings configures a new Game. It is a plain struct constructed by the
// caller (transport, CLI, or a test) — the engine never reads it from the
// environment itself; loading configuration from env/files/flags is the
// deploying binary's job, out of scope for the core (§1).
type Settings struct {
	// Seed seeds the game's RNG. New passes it to rand.NewSource unchanged,
	// so 0 is itself a fixed seed; the engine never reads wall-clock time, and
	// a caller that wants a varying stream supplies its own seed.
	Seed int64

	// StartingDeck is the card-type composition each player's deck begins
	// with, expressed as CardType IDs repeated per copy (e.g. eight
	// "scout" + two "viper").
	StartingDeck []string

	// StartingAuthority is every player's starting authority total.
	StartingAuthority int

	// TradeDeck is the pool TradeRow draws from, by CardType ID, with
	// duplicates for multiple copies.
	TradeDeck []string

	// ExplorerTypeID names the CardType used for the infinite Explorer slot.
	ExplorerTypeID string

	// PendingQueueCapacity bounds the pending-action FIFO (I5). Defaults to
	// 8 if zero.
	PendingQueueCapacity int

	// AutoDrawMaxIterations bounds the auto-draw resolver (§4.8). Defaults
	// to 20 if zero.
	AutoDrawMaxIterations int

	// Registry resolves every CardType ID named above. AcquireFree effects
	// carry their own cost cap in Effect.Value; Settings has no default for it.
	Registry *cards.Registry
}

func (s Settings) pendingCapacity() int {
	if s.PendingQueueCapacity > 0 {
		return s.PendingQueueCapacity
	}
	return 8
}

func (s Settings) autoDrawMaxIterations() int {
	if s.AutoDrawMaxIterations > 0 {
		return s.AutoDrawMaxIterations
	}
	return 20
}
