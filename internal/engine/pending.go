package engine

import (
	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/engine/errcode"
)

// PendingKind enumerates the nine deferred-choice variants (§4.7). Each
// kind carries only the payload fields it needs, per §9's guidance to
// prefer a tagged variant over a heterogeneous struct with sentinel fields
// — Go doesn't have sum types, so PendingAction stays one struct, but only
// the fields relevant to Kind are ever populated.
type PendingKind string

const (
	PendingDiscard         PendingKind = "discard"
	PendingScrapTradeRow   PendingKind = "scrap_trade_row"
	PendingScrapHand       PendingKind = "scrap_hand"
	PendingScrapDiscard    PendingKind = "scrap_discard"
	PendingScrapHandDiscard PendingKind = "scrap_hand_discard"
	PendingTopDeck         PendingKind = "top_deck"
	PendingCopyShip        PendingKind = "copy_ship"
	PendingDestroyBase     PendingKind = "destroy_base"
	PendingUpgrade         PendingKind = "upgrade"
)

// PendingAction is a deferred player choice created by certain effects. It
// must be resolved (or skipped, if Optional) before the queue will allow
// end_turn (I5).
type PendingAction struct {
	Kind     PendingKind
	PlayerID string // who must respond
	Count    int
	MinCount int
	ResolvedCount int
	Optional bool

	SourceInstanceID string
	SourceEffect     cards.EffectType

	// UpgradeKind is one of "attack"/"trade"/"auth", set only for PendingUpgrade.
	UpgradeKind  string
	UpgradeValue int
}

// Done reports whether this pending has collected every required response.
func (p *PendingAction) Done() bool {
	return p.ResolvedCount >= p.Count
}

// enqueuePending appends to the tail of the bounded FIFO (I5). The bound is
// a safety valve against runaway effect chains, not a gameplay mechanic;
// exceeding it is an internal invariant violation.
func (g *Game) enqueuePending(pa *PendingAction) error {
	if len(g.Pending) >= g.settings.pendingCapacity() {
		return &errcode.InternalError{Invariant: "I5", Detail: "pending_actions queue at capacity"}
	}
	g.Pending = append(g.Pending, pa)
	g.emitPendingCreated(pa)
	return nil
}

// HeadPending returns the single actionable pending, or nil if the queue is
// empty.
func (g *Game) HeadPending() *PendingAction {
	if len(g.Pending) == 0 {
		return nil
	}
	return g.Pending[0]
}

// popHead removes the head of the queue after it's fully resolved or
// skipped.
func (g *Game) popHead() {
	if len(g.Pending) == 0 {
		return
	}
	g.Pending = g.Pending[1:]
}

// AllPendingOptional reports whether every remaining pending is optional.
// endTurnLocked does not consult it: end_turn requires an empty queue, so
// optional pendings must be skipped one by one first.
func (g *Game) AllPendingOptional() bool {
	for _, p := range g.Pending {
		if !p.Optional {
			return false
		}
	}
	return true
}
