package engine

import "github.com/google/uuid"

// newInstanceID mints a process-stable instance ID for cards created
// mid-game (Spawn effects), matching the uuid scheme used for starting-deck
// instances (game.go) and trade-row instances (internal/traderow).
func newInstanceID() string {
	return uuid.NewString()
}
