package traderow

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/player"
)

func deckOf(n int, id string) []*cards.CardType {
	out := make([]*cards.CardType, n)
	for i := range out {
		out[i] = &cards.CardType{ID: id, Name: id, Cost: 3, Kind: cards.KindShip}
	}
	return out
}

func TestNew_FillsAllSlots(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tr := New(deckOf(10, "freighter"), &cards.CardType{ID: "explorer", Cost: 2}, rng)
	for _, s := range tr.Slots {
		require.NotNil(t, s)
	}
	assert.Len(t, tr.TradeDeck, 5)
}

func TestBuy_SpendsTradeAndIncrementsD10AndRefills(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tr := New(deckOf(10, "freighter"), &cards.CardType{ID: "explorer", Cost: 2}, rng)
	buyer := player.New("p1", "Alice", 50)
	buyer.Trade = 5

	inst := tr.Buy(0, buyer, rng)
	require.NotNil(t, inst)
	assert.Equal(t, 2, buyer.Trade)
	assert.Equal(t, 6, buyer.D10)
	assert.Len(t, buyer.Zones.Discard, 1)
	require.NotNil(t, tr.Slots[0])
}

func TestBuy_FreeFlagSkipsSpend(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tr := New(deckOf(10, "freighter"), &cards.CardType{ID: "explorer", Cost: 2}, rng)
	buyer := player.New("p1", "Alice", 50)
	buyer.Trade = 5
	buyer.NextShipFree = true
	buyer.FreeShipMaxCost = 8

	tr.Buy(0, buyer, rng)
	assert.Equal(t, 5, buyer.Trade)
	assert.False(t, buyer.NextShipFree)
}

func TestBuy_TopFlagPutsCardOnDrawPile(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tr := New(deckOf(10, "freighter"), &cards.CardType{ID: "explorer", Cost: 2}, rng)
	buyer := player.New("p1", "Alice", 50)
	buyer.Trade = 5
	buyer.NextShipTop = true

	inst := tr.Buy(0, buyer, rng)
	require.Len(t, buyer.Zones.DrawPile, 1)
	assert.Equal(t, inst.InstanceID, buyer.Zones.DrawPile[0].InstanceID)
	assert.Empty(t, buyer.Zones.Discard)
}

func TestBuyExplorer_InfiniteSupply(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tr := New(deckOf(10, "freighter"), &cards.CardType{ID: "explorer", Cost: 2}, rng)
	buyer := player.New("p1", "Alice", 50)
	buyer.Trade = 10

	tr.BuyExplorer(buyer)
	tr.BuyExplorer(buyer)
	assert.Equal(t, 6, buyer.Trade)
	assert.Equal(t, 2, tr.BuyCounts["explorer"])
}

func TestDMSelect_FallsBackWhenTypeNotInDeck(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tr := New(deckOf(10, "freighter"), &cards.CardType{ID: "explorer", Cost: 2}, rng)
	tr.DMSelect = func(pool []*cards.CardType) (*cards.CardType, bool) {
		return &cards.CardType{ID: "not-in-deck"}, true
	}
	buyer := player.New("p1", "Alice", 50)
	buyer.Trade = 10
	inst := tr.Buy(1, buyer, rng)
	require.NotNil(t, inst)
	require.NotNil(t, tr.Slots[1])
	assert.Equal(t, "freighter", tr.Slots[1].Type.ID)
}
