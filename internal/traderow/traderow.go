// Package traderow implements the five-slot marketplace players buy from:
// slot refill, the infinite Explorer virtual slot, and the per-type
// buy-count histogram (recorded on every purchase; nothing in this package
// reads it back).
package traderow

import (
	"math/rand"

	"github.com/google/uuid"

	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/player"
)

const (
	numSlots     = 5
	explorerCost = 2
)

// DMSelect is an optional callback overriding default slot refill. It must
// be total and pure with respect to the trade deck (§9): given the current
// pool, it returns a type currently present, or ok=false to fall back to
// the default draw.
type DMSelect func(pool []*cards.CardType) (chosen *cards.CardType, ok bool)

// TradeRow is the shared marketplace for a Game.
type TradeRow struct {
	Slots        [numSlots]*cards.CardInstance
	TradeDeck    []*cards.CardType
	ExplorerType *cards.CardType
	BuyCounts    map[string]int
	DMSelect     DMSelect

	newInstanceID func() string
}

// New builds a trade row, shuffles tradeDeck, and fills all 5 slots.
func New(tradeDeck []*cards.CardType, explorerType *cards.CardType, rng *rand.Rand) *TradeRow {
	deck := make([]*cards.CardType, len(tradeDeck))
	copy(deck, tradeDeck)
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	tr := &TradeRow{
		TradeDeck:     deck,
		ExplorerType:  explorerType,
		BuyCounts:     make(map[string]int),
		newInstanceID: func() string { return uuid.NewString() },
	}
	for i := range tr.Slots {
		tr.refill(i, rng)
	}
	return tr
}

func (t *TradeRow) popDefault() *cards.CardType {
	if len(t.TradeDeck) == 0 {
		return nil
	}
	typ := t.TradeDeck[0]
	t.TradeDeck = t.TradeDeck[1:]
	return typ
}

// removeFromDeck deletes the first occurrence of typ from TradeDeck.
func (t *TradeRow) removeFromDeck(typ *cards.CardType) bool {
	for i, c := range t.TradeDeck {
		if c.ID == typ.ID {
			t.TradeDeck = append(t.TradeDeck[:i], t.TradeDeck[i+1:]...)
			return true
		}
	}
	return false
}

// refill fills slot i from the DM callback if set and it returns a type
// present in the deck, otherwise from the default shuffled pop.
func (t *TradeRow) refill(i int, rng *rand.Rand) {
	var typ *cards.CardType
	if t.DMSelect != nil {
		if chosen, ok := t.DMSelect(t.TradeDeck); ok && t.removeFromDeck(chosen) {
			typ = chosen
		}
	}
	if typ == nil {
		typ = t.popDefault()
	}
	if typ == nil {
		t.Slots[i] = nil
		return
	}
	t.Slots[i] = cards.NewInstance(typ, t.newInstanceID())
}

// Buy purchases the card in slot i for buyer, applying the free-acquire and
// acquire-top turn-scoped flags (§4.4), then refills the slot.
func (t *TradeRow) Buy(i int, buyer *player.Player, rng *rand.Rand) *cards.CardInstance {
	if i < 0 || i >= numSlots || t.Slots[i] == nil {
		return nil
	}
	inst := t.Slots[i]
	t.Slots[i] = nil

	t.applyPurchase(inst, buyer)
	t.BuyCounts[inst.Type.ID]++
	t.refill(i, rng)
	return inst
}

// BuyExplorer purchases the infinite-supply Explorer virtual slot.
func (t *TradeRow) BuyExplorer(buyer *player.Player) *cards.CardInstance {
	if t.ExplorerType == nil {
		return nil
	}
	inst := cards.NewInstance(t.ExplorerType, t.newInstanceID())
	t.applyPurchase(inst, buyer)
	t.BuyCounts[inst.Type.ID]++
	return inst
}

// applyPurchase spends trade (unless the free-acquire flag covers the
// cost), increments the buyer's d10, and places the instance in the
// buyer's discard or on top of their draw pile per the acquire-top flag.
// Either flag clears after one consumption.
func (t *TradeRow) applyPurchase(inst *cards.CardInstance, buyer *player.Player) {
	free := buyer.NextShipFree && inst.Type.Cost <= buyer.FreeShipMaxCost
	if !free {
		buyer.SpendTrade(inst.Type.Cost)
	}
	buyer.IncrementD10()

	if buyer.NextShipTop {
		buyer.Zones.PutOnTop(inst)
	} else {
		buyer.Zones.Discard = append(buyer.Zones.Discard, inst)
	}

	buyer.NextShipFree = false
	buyer.NextShipTop = false
}

// ScrapSlot removes and returns slot i's card without adding it to any
// discard (ScrapTradeRow pending resolution), then refills.
func (t *TradeRow) ScrapSlot(i int, rng *rand.Rand) *cards.CardInstance {
	if i < 0 || i >= numSlots || t.Slots[i] == nil {
		return nil
	}
	inst := t.Slots[i]
	t.Slots[i] = nil
	t.refill(i, rng)
	return inst
}

// ExplorerCost returns Explorer's fixed cost.
func (t *TradeRow) ExplorerCost() int { return explorerCost }
