// Package player holds per-player state: identity, zones (delegated to
// internal/zone), resource pools, and the d10/d4 deck-flow tracker (I3).
package player

import (
	"sync"

	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/zone"
)

// factionSlot maps a Faction to its bit in the 5-slot factions_played
// bitmap, reset each turn.
var factionSlot = map[cards.Faction]int{
	cards.Neutral:   0,
	cards.Merchant:  1,
	cards.Wilds:     2,
	cards.Kingdom:   3,
	cards.Artificer: 4,
}

// Player is component-delegated: its zones are owned by the Zones field (a
// *zone.Zones) rather than duplicated here, matching the teacher's
// hand/playedCards/resources/turn field-delegation shape.
type Player struct {
	mu sync.RWMutex

	ID           string
	Name         string
	ConnectionID string

	Zones *zone.Zones

	Authority int
	Trade     int
	Combat    int

	D10 int
	D4  int

	factionsPlayed [5]bool

	// Turn-scoped purchase flags (§4.4), cleared on consumption or at
	// StartTurn.
	NextShipFree    bool
	NextShipTop     bool
	FreeShipMaxCost int
}

// New creates a player with starting authority and an empty deck; callers
// populate Zones.DrawPile from the starting deck composition.
func New(id, name string, startingAuthority int) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		Authority: startingAuthority,
		Zones:     zone.New(),
		D10:       5,
	}
}

// HandSize returns max(1, 5+d4), the target hand size applied at the start
// of every turn (I3).
func (p *Player) HandSize() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.handSizeLocked()
}

func (p *Player) handSizeLocked() int {
	size := 5 + p.D4
	if size < 1 {
		return 1
	}
	return size
}

// IncrementD10 applies one purchase tick: d10 increases, wrapping 9->0 with
// a d4 increment (I3).
func (p *Player) IncrementD10() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.D10++
	if p.D10 > 9 {
		p.D10 = 0
		p.D4++
	}
}

// DecrementD10 applies one self-scrap tick: d10 decreases, wrapping -1->9
// with a d4 decrement (I3).
func (p *Player) DecrementD10() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.D10--
	if p.D10 < 0 {
		p.D10 = 9
		p.D4--
	}
}

// StartTurn resets the per-turn resource pools and faction-played bitmap
// (§4.3). It does not draw cards — that's the turn-loop's job via the zone
// manager, since HandSize determines how many to draw.
func (p *Player) StartTurn() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Trade = 0
	p.Combat = 0
	p.factionsPlayed = [5]bool{}
	p.NextShipFree = false
	p.NextShipTop = false
	p.FreeShipMaxCost = 0
}

// HasPlayedFaction reports whether f was already played this turn.
func (p *Player) HasPlayedFaction(f cards.Faction) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	slot, ok := factionSlot[f]
	return ok && p.factionsPlayed[slot]
}

// MarkFactionPlayed sets f's bit in the factions_played bitmap.
func (p *Player) MarkFactionPlayed(f cards.Faction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if slot, ok := factionSlot[f]; ok {
		p.factionsPlayed[slot] = true
	}
}

// FactionsPlayed returns a snapshot of the 5-slot bitmap in faction order
// [neutral, merchant, wilds, kingdom, artificer], for serialization.
func (p *Player) FactionsPlayed() [5]bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.factionsPlayed
}

// SpendTrade deducts amount from the trade pool. Caller must validate
// sufficiency first (internal/engine/validate.go); this only clamps the
// result at zero defensively.
func (p *Player) SpendTrade(amount int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Trade -= amount
	if p.Trade < 0 {
		p.Trade = 0
	}
}

// SpendCombat deducts amount from the combat pool.
func (p *Player) SpendCombat(amount int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Combat -= amount
	if p.Combat < 0 {
		p.Combat = 0
	}
}

// AddTrade/AddCombat/AddAuthority apply resource-gain effects. The caller
// has already added the source card instance's upgrade bonus to amount
// (§4.1).
func (p *Player) AddTrade(amount int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Trade += amount
}

func (p *Player) AddCombat(amount int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Combat += amount
}

func (p *Player) AddAuthority(amount int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Authority += amount
}

// LoseAuthority subtracts amount, never going below 0.
func (p *Player) LoseAuthority(amount int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Authority -= amount
	if p.Authority < 0 {
		p.Authority = 0
	}
}
