package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/engine/errcode"
)

func mkType(id string, kind cards.Kind, faction cards.Faction, cost int, primary ...cards.Effect) *cards.CardType {
	return &cards.CardType{ID: id, Name: id, Cost: cost, Faction: faction, Kind: kind, Primary: primary}
}

func testRegistry() *cards.Registry {
	scout := mkType("scout", cards.KindShip, cards.Neutral, 0, cards.Effect{Type: cards.EffectTrade, Value: 1})
	viper := mkType("viper", cards.KindShip, cards.Neutral, 0, cards.Effect{Type: cards.EffectCombat, Value: 1})
	explorer := mkType("explorer", cards.KindShip, cards.Neutral, 2)
	courier := mkType("courier", cards.KindShip, cards.Merchant, 3,
		cards.Effect{Type: cards.EffectTrade, Value: 2}, cards.Effect{Type: cards.EffectDraw, Value: 1})
	frontierBase := &cards.CardType{ID: "frontier-base", Name: "frontier-base", Kind: cards.KindBase, Defense: 4}
	interiorBase := &cards.CardType{ID: "interior-base", Name: "interior-base", Kind: cards.KindBase, Defense: 5}
	discardCard := mkType("conscript", cards.KindShip, cards.Neutral, 2,
		cards.Effect{Type: cards.EffectDiscard, Value: 2})
	acquireFreeCard := mkType("broker", cards.KindShip, cards.Neutral, 1,
		cards.Effect{Type: cards.EffectAcquireFree, Value: 8})
	freighter := mkType("freighter", cards.KindShip, cards.Neutral, 5)
	return cards.NewRegistry([]*cards.CardType{
		scout, viper, explorer, courier, frontierBase, interiorBase, discardCard, acquireFreeCard, freighter,
	})
}

func testGame(t *testing.T) *Game {
	t.Helper()
	reg := testRegistry()
	deck := make([]string, 0, 10)
	for i := 0; i < 8; i++ {
		deck = append(deck, "scout")
	}
	for i := 0; i < 2; i++ {
		deck = append(deck, "viper")
	}
	tradeDeck := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		tradeDeck = append(tradeDeck, "freighter")
	}
	g := New("game-1", []string{"Alice", "Bob"}, Settings{
		Seed:              1,
		StartingDeck:      deck,
		StartingAuthority: 50,
		TradeDeck:         tradeDeck,
		ExplorerTypeID:    "explorer",
		Registry:          reg,
	})
	return g
}

func setHand(t *testing.T, reg *cards.Registry, typeIDs ...string) []*cards.CardInstance {
	t.Helper()
	out := make([]*cards.CardInstance, len(typeIDs))
	for i, id := range typeIDs {
		out[i] = cards.NewInstance(reg.Get(id), fmt.Sprintf("%s-%d", id, i))
	}
	return out
}

func TestTwoScoutOpen_PlayAllThenBuyExplorer(t *testing.T) {
	g := testGame(t)
	alice := g.Players[0]
	reg := g.Registry

	alice.Zones.Hand = setHand(t, reg, "scout", "scout", "scout", "viper", "viper")
	g.Phase = PhaseMain
	g.ActivePlayer = 0

	for _, inst := range append([]*cards.CardInstance{}, alice.Zones.Hand...) {
		err := g.ProcessAction(Action{Kind: ActionPlayCard, PlayerID: alice.ID, CardID: inst.InstanceID})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, alice.Trade)
	assert.Equal(t, 2, alice.Combat)

	err := g.ProcessAction(Action{Kind: ActionBuyExplorer, PlayerID: alice.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, alice.Trade)
	assert.Equal(t, 6, alice.D10)
	require.Len(t, alice.Zones.Discard, 1)
	assert.Equal(t, "explorer", alice.Zones.Discard[0].Type.ID)
}

func TestAutoDrawChain_FiresOnceAndMarksSpent(t *testing.T) {
	g := testGame(t)
	alice := g.Players[0]
	reg := g.Registry

	alice.Zones.Hand = setHand(t, reg, "courier", "scout", "scout", "scout", "scout")
	alice.Zones.DrawPile = setHand(t, reg, "scout")

	g.resolveAutoDraw(alice)

	assert.Len(t, alice.Zones.Hand, 6)
	assert.True(t, alice.Zones.Hand[0].DrawEffectSpent)
}

func TestFrontierBlocksInterior_ThenDestroyBothThenAttackPlayer(t *testing.T) {
	g := testGame(t)
	alice, bob := g.Players[0], g.Players[1]
	reg := g.Registry

	frontier := cards.NewInstance(reg.Get("frontier-base"), "frontier-1")
	interior := cards.NewInstance(reg.Get("interior-base"), "interior-1")
	bob.Zones.FrontierBases = []*cards.CardInstance{frontier}
	bob.Zones.InteriorBases = []*cards.CardInstance{interior}

	g.Phase = PhaseMain
	g.ActivePlayer = 0
	alice.Combat = 10

	err := g.ProcessAction(Action{Kind: ActionAttackBase, PlayerID: alice.ID, BaseID: "interior-1", Amount: 5})
	require.Error(t, err)
	actionErr, ok := err.(*errcode.ActionError)
	require.True(t, ok)
	assert.Equal(t, errcode.MustDestroyFrontierFirst, actionErr.Code)

	require.NoError(t, g.ProcessAction(Action{Kind: ActionAttackBase, PlayerID: alice.ID, BaseID: "frontier-1", Amount: 4}))
	assert.Equal(t, 6, alice.Combat)
	assert.Empty(t, bob.Zones.FrontierBases)
	require.Len(t, bob.Zones.Discard, 1)

	require.NoError(t, g.ProcessAction(Action{Kind: ActionAttackBase, PlayerID: alice.ID, BaseID: "interior-1", Amount: 5}))
	assert.Equal(t, 1, alice.Combat)
	assert.Empty(t, bob.Zones.InteriorBases)

	bob.Authority = 30
	require.NoError(t, g.ProcessAction(Action{Kind: ActionAttackPlayer, PlayerID: alice.ID, Amount: 1}))
	assert.Equal(t, 29, bob.Authority)
}

func TestDiscardEffect_CreatesMandatoryPendingOnOpponent(t *testing.T) {
	g := testGame(t)
	alice, bob := g.Players[0], g.Players[1]
	reg := g.Registry

	alice.Zones.Hand = setHand(t, reg, "conscript")
	bob.Zones.Hand = setHand(t, reg, "scout", "scout")
	g.Phase = PhaseMain
	g.ActivePlayer = 0

	require.NoError(t, g.ProcessAction(Action{Kind: ActionPlayCard, PlayerID: alice.ID, CardID: "conscript-0"}))

	head := g.HeadPending()
	require.NotNil(t, head)
	assert.Equal(t, PendingDiscard, head.Kind)
	assert.Equal(t, bob.ID, head.PlayerID)
	assert.False(t, head.Optional)

	err := g.ProcessAction(Action{Kind: ActionEndTurn, PlayerID: alice.ID})
	require.Error(t, err)

	require.NoError(t, g.ProcessAction(Action{Kind: ActionResolvePending, PlayerID: bob.ID, CardID: "scout-0"}))
	require.NoError(t, g.ProcessAction(Action{Kind: ActionResolvePending, PlayerID: bob.ID, CardID: "scout-1"}))
	assert.Nil(t, g.HeadPending())
	assert.Len(t, bob.Zones.Discard, 2)
}

func TestAcquireFree_CoversCostThenClearsFlag(t *testing.T) {
	g := testGame(t)
	alice := g.Players[0]
	reg := g.Registry

	alice.Zones.Hand = setHand(t, reg, "broker")
	g.Phase = PhaseMain
	g.ActivePlayer = 0
	alice.Trade = 0

	require.NoError(t, g.ProcessAction(Action{Kind: ActionPlayCard, PlayerID: alice.ID, CardID: "broker-0"}))
	assert.True(t, alice.NextShipFree)
	assert.Equal(t, 8, alice.FreeShipMaxCost)

	require.NoError(t, g.ProcessAction(Action{Kind: ActionBuyCard, PlayerID: alice.ID, Slot: 0}))
	assert.Equal(t, 0, alice.Trade)
	assert.False(t, alice.NextShipFree)
}

func TestPlayCard_BaseWithoutPlacement_RejectedBeforeAnyMutation(t *testing.T) {
	g := testGame(t)
	alice := g.Players[0]
	reg := g.Registry

	alice.Zones.Hand = setHand(t, reg, "frontier-base")
	g.Phase = PhaseMain
	g.ActivePlayer = 0

	err := g.ProcessAction(Action{Kind: ActionPlayCard, PlayerID: alice.ID, CardID: "frontier-base-0"})
	require.Error(t, err)
	actionErr, ok := err.(*errcode.ActionError)
	require.True(t, ok)
	assert.Equal(t, errcode.InvalidBaseTarget, actionErr.Code)

	// The card must still be sitting untouched in hand, not vanished.
	require.Len(t, alice.Zones.Hand, 1)
	assert.Empty(t, alice.Zones.FrontierBases)
	assert.Empty(t, alice.Zones.InteriorBases)
}

func TestScrapHand_OnlyReachableThroughGrantingPending(t *testing.T) {
	g := testGame(t)
	alice := g.Players[0]
	reg := g.Registry

	scrapper := mkType("scrapper", cards.KindShip, cards.Neutral, 0,
		cards.Effect{Type: cards.EffectScrapHand, Value: int(cards.ScrapHandOnly)})
	g.Registry = cards.NewRegistry(append(reg.All(), scrapper))

	alice.Zones.Hand = setHand(t, g.Registry, "scrapper", "scout")
	g.Phase = PhaseMain
	g.ActivePlayer = 0
	alice.D10 = 5

	require.NoError(t, g.ProcessAction(Action{Kind: ActionPlayCard, PlayerID: alice.ID, CardID: "scrapper-0"}))

	head := g.HeadPending()
	require.NotNil(t, head)
	assert.Equal(t, PendingScrapHand, head.Kind)
	assert.Equal(t, alice.ID, head.PlayerID)

	require.NoError(t, g.ProcessAction(Action{Kind: ActionResolvePending, PlayerID: alice.ID, CardID: "scout-1"}))
	assert.Nil(t, g.HeadPending())
	assert.Equal(t, 4, alice.D10)
	assert.Empty(t, alice.Zones.Hand)
}
