// Package zone implements the per-player zone manager: draw pile, hand,
// discard, played, and the two persistent base zones. Most moves between
// zones go through these methods; the engine (destroyed bases, spawned
// units) and the trade row (purchases) append to Discard directly.
package zone

import (
	"math/rand"

	"realmforge-backend/internal/cards"
)

// Zones holds one player's four card collections plus the two base zones.
// DrawPile is ordered with index 0 as the top. Hand order matters (default
// draw order, §4.5). Discard and Played are ordered sequences even though
// Discard's order isn't semantically observable.
type Zones struct {
	DrawPile       []*cards.CardInstance
	Hand           []*cards.CardInstance
	Discard        []*cards.CardInstance
	Played         []*cards.CardInstance
	FrontierBases  []*cards.CardInstance
	InteriorBases  []*cards.CardInstance
}

// New returns an empty zone set.
func New() *Zones {
	return &Zones{}
}

func removeAt[T any](s []T, i int) []T {
	return append(s[:i], s[i+1:]...)
}

func indexOf(s []*cards.CardInstance, instanceID string) int {
	for i, c := range s {
		if c.InstanceID == instanceID {
			return i
		}
	}
	return -1
}

// Shuffle reshuffles the draw pile in place using Fisher-Yates via rng.
func (z *Zones) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(z.DrawPile), func(i, j int) {
		z.DrawPile[i], z.DrawPile[j] = z.DrawPile[j], z.DrawPile[i]
	})
}

// reshuffleDiscardIntoDraw implements I4: when the draw pile is empty and a
// draw is required, the discard becomes the new draw pile and is shuffled.
// Every moved instance's DrawEffectSpent resets, and any instance still
// needing art regen gets a fresh image seed.
func (z *Zones) reshuffleDiscardIntoDraw(rng *rand.Rand) {
	if len(z.DrawPile) > 0 || len(z.Discard) == 0 {
		return
	}
	z.DrawPile, z.Discard = z.Discard, nil
	for _, inst := range z.DrawPile {
		inst.DrawEffectSpent = false
		if inst.NeedsRegen {
			inst.ImageSeed = rng.Uint32()
		}
	}
	z.Shuffle(rng)
}

// DrawTop draws one card from the top of the draw pile into the hand,
// reshuffling the discard in first if necessary. Returns nil if both the
// draw pile and discard are empty (boundary behavior: no cards drawn, no
// error).
func (z *Zones) DrawTop(rng *rand.Rand) *cards.CardInstance {
	z.reshuffleDiscardIntoDraw(rng)
	if len(z.DrawPile) == 0 {
		return nil
	}
	inst := z.DrawPile[0]
	z.DrawPile = z.DrawPile[1:]
	z.Hand = append(z.Hand, inst)
	return inst
}

// DrawN draws up to n cards from the top, stopping early if the draw pile
// and discard are both exhausted.
func (z *Zones) DrawN(rng *rand.Rand, n int) []*cards.CardInstance {
	drawn := make([]*cards.CardInstance, 0, n)
	for i := 0; i < n; i++ {
		inst := z.DrawTop(rng)
		if inst == nil {
			break
		}
		drawn = append(drawn, inst)
	}
	return drawn
}

// DrawAtIndex draws the card currently at position idx in the draw pile
// (post any already-performed draws in this call sequence) into the hand.
func (z *Zones) DrawAtIndex(idx int) *cards.CardInstance {
	if idx < 0 || idx >= len(z.DrawPile) {
		return nil
	}
	inst := z.DrawPile[idx]
	z.DrawPile = removeAt(z.DrawPile, idx)
	z.Hand = append(z.Hand, inst)
	return inst
}

// DrawOrdered draws cards in the order given by perm, where each entry of
// perm is an index into the *original* draw-pile ordering (before any of
// this call's draws happened). The manager adjusts subsequent indices as
// earlier entries are removed.
func (z *Zones) DrawOrdered(rng *rand.Rand, perm []int) []*cards.CardInstance {
	z.reshuffleDiscardIntoDraw(rng)

	// Resolve original positions to stable instance identities first, since
	// removals shift indices as we go.
	originals := make([]*cards.CardInstance, len(z.DrawPile))
	copy(originals, z.DrawPile)

	drawn := make([]*cards.CardInstance, 0, len(perm))
	for _, origIdx := range perm {
		if origIdx < 0 || origIdx >= len(originals) {
			continue
		}
		inst := originals[origIdx]
		cur := indexOf(z.DrawPile, inst.InstanceID)
		if cur < 0 {
			continue
		}
		z.DrawPile = removeAt(z.DrawPile, cur)
		z.Hand = append(z.Hand, inst)
		drawn = append(drawn, inst)
	}
	return drawn
}

// PutOnTop inserts inst at index 0 of the draw pile (TopDeck resolution,
// AcquireTop flag, etc). Caller is responsible for having removed inst from
// its prior zone.
func (z *Zones) PutOnTop(inst *cards.CardInstance) {
	z.DrawPile = append([]*cards.CardInstance{inst}, z.DrawPile...)
}

// RemoveFromHand removes and returns the hand card with the given instance
// ID, or nil if not present.
func (z *Zones) RemoveFromHand(instanceID string) *cards.CardInstance {
	i := indexOf(z.Hand, instanceID)
	if i < 0 {
		return nil
	}
	inst := z.Hand[i]
	z.Hand = removeAt(z.Hand, i)
	return inst
}

// RemoveFromDiscard removes and returns the discard card with the given
// instance ID, or nil if not present.
func (z *Zones) RemoveFromDiscard(instanceID string) *cards.CardInstance {
	i := indexOf(z.Discard, instanceID)
	if i < 0 {
		return nil
	}
	inst := z.Discard[i]
	z.Discard = removeAt(z.Discard, i)
	return inst
}

// RemoveFromPlayed removes and returns the played-zone card with the given
// instance ID, or nil if not present.
func (z *Zones) RemoveFromPlayed(instanceID string) *cards.CardInstance {
	i := indexOf(z.Played, instanceID)
	if i < 0 {
		return nil
	}
	inst := z.Played[i]
	z.Played = removeAt(z.Played, i)
	return inst
}

// PlayFromHand moves a hand card into the played zone, or — when the card
// is a base — into the named base zone undeployed with damage reset.
func (z *Zones) PlayFromHand(instanceID string, placement cards.Placement) *cards.CardInstance {
	inst := z.RemoveFromHand(instanceID)
	if inst == nil {
		return nil
	}
	if inst.Type.Kind == cards.KindBase {
		inst.Placement = placement
		inst.Deployed = false
		inst.DamageTaken = 0
		switch placement {
		case cards.PlacementFrontier:
			z.FrontierBases = append(z.FrontierBases, inst)
		case cards.PlacementInterior:
			z.InteriorBases = append(z.InteriorBases, inst)
		}
	} else {
		z.Played = append(z.Played, inst)
	}
	return inst
}

// ScrapFromHand removes a hand card from the game (to nowhere — callers
// append to whatever zone the spec calls for, usually nothing).
func (z *Zones) ScrapFromHand(instanceID string) *cards.CardInstance {
	return z.RemoveFromHand(instanceID)
}

// ScrapFromDiscard removes a discard card from the game.
func (z *Zones) ScrapFromDiscard(instanceID string) *cards.CardInstance {
	return z.RemoveFromDiscard(instanceID)
}

// ScrapFromPlayed removes a played-zone card from the game.
func (z *Zones) ScrapFromPlayed(instanceID string) *cards.CardInstance {
	return z.RemoveFromPlayed(instanceID)
}

// ScrapFromTradeRow is implemented by the trade row itself (it doesn't own
// per-player zones); see internal/traderow.

// DiscardFromHand moves a hand card to the discard pile.
func (z *Zones) DiscardFromHand(instanceID string) *cards.CardInstance {
	inst := z.RemoveFromHand(instanceID)
	if inst != nil {
		z.Discard = append(z.Discard, inst)
	}
	return inst
}

// DiscardFromPlayed moves a played-zone card to the discard pile.
func (z *Zones) DiscardFromPlayed(instanceID string) *cards.CardInstance {
	inst := z.RemoveFromPlayed(instanceID)
	if inst != nil {
		z.Discard = append(z.Discard, inst)
	}
	return inst
}

// RemoveBase removes a base from whichever base zone holds it, resetting
// its placement/deployed/damage fields, without discarding it (callers
// append to discard themselves per §4.9/§4.7 so the distinction between
// "destroyed in combat" and "destroyed by DestroyBase pending" stays in the
// caller, not here).
func (z *Zones) RemoveBase(instanceID string) *cards.CardInstance {
	if i := indexOf(z.FrontierBases, instanceID); i >= 0 {
		inst := z.FrontierBases[i]
		z.FrontierBases = removeAt(z.FrontierBases, i)
		inst.Placement = cards.PlacementNone
		inst.Deployed = false
		inst.DamageTaken = 0
		return inst
	}
	if i := indexOf(z.InteriorBases, instanceID); i >= 0 {
		inst := z.InteriorBases[i]
		z.InteriorBases = removeAt(z.InteriorBases, i)
		inst.Placement = cards.PlacementNone
		inst.Deployed = false
		inst.DamageTaken = 0
		return inst
	}
	return nil
}

// EndOfTurnCleanup moves all of played and hand to discard; bases persist.
func (z *Zones) EndOfTurnCleanup() {
	z.Discard = append(z.Discard, z.Played...)
	z.Discard = append(z.Discard, z.Hand...)
	z.Played = nil
	z.Hand = nil
}

// FindInHand returns the hand card with instanceID, or nil.
func (z *Zones) FindInHand(instanceID string) *cards.CardInstance {
	if i := indexOf(z.Hand, instanceID); i >= 0 {
		return z.Hand[i]
	}
	return nil
}

// FindInDiscard returns the discard card with instanceID, or nil.
func (z *Zones) FindInDiscard(instanceID string) *cards.CardInstance {
	if i := indexOf(z.Discard, instanceID); i >= 0 {
		return z.Discard[i]
	}
	return nil
}

// FindInPlayed returns the played-zone card with instanceID, or nil.
func (z *Zones) FindInPlayed(instanceID string) *cards.CardInstance {
	if i := indexOf(z.Played, instanceID); i >= 0 {
		return z.Played[i]
	}
	return nil
}

// FindBase returns a base by instance ID from either base zone, and which
// placement it was found under.
func (z *Zones) FindBase(instanceID string) (*cards.CardInstance, cards.Placement) {
	if i := indexOf(z.FrontierBases, instanceID); i >= 0 {
		return z.FrontierBases[i], cards.PlacementFrontier
	}
	if i := indexOf(z.InteriorBases, instanceID); i >= 0 {
		return z.InteriorBases[i], cards.PlacementInterior
	}
	return nil, cards.PlacementNone
}

// TotalCount returns the number of instances across every zone this
// manager owns, used by the conservation property (P1/I1).
func (z *Zones) TotalCount() int {
	return len(z.DrawPile) + len(z.Hand) + len(z.Discard) + len(z.Played) +
		len(z.FrontierBases) + len(z.InteriorBases)
}
