package serialize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/engine"
)

func testRegistry() *cards.Registry {
	knight := &cards.CardType{ID: "knight", Name: "Knight", Cost: 4, Faction: cards.Kingdom, Kind: cards.KindShip}
	scout := &cards.CardType{ID: "scout", Name: "Scout", Cost: 0, Faction: cards.Neutral, Kind: cards.KindShip}
	return cards.NewRegistry([]*cards.CardType{knight, scout})
}

func testGame() *engine.Game {
	reg := testRegistry()
	return engine.New("g1", []string{"Alice", "Bob"}, engine.Settings{
		Seed:              1,
		StartingAuthority: 50,
		Registry:          reg,
	})
}

func TestView_OpponentPerspective_HidesHandIdentity(t *testing.T) {
	g := testGame()
	alice := g.Players[0]
	alice.Zones.Hand = append(alice.Zones.Hand, cards.NewInstance(g.Registry.Get("knight"), "inst_deadbeef"))

	state := View(g, Opponent, g.Players[1].ID)

	raw, err := json.Marshal(state)
	require.NoError(t, err)
	body := string(raw)

	assert.NotContains(t, body, "inst_deadbeef")
	assert.NotContains(t, body, "Knight")

	var opp *PlayerView
	for i := range state.Opponents {
		if state.Opponents[i].ID == alice.ID {
			opp = &state.Opponents[i]
		}
	}
	require.NotNil(t, opp)
	require.NotNil(t, opp.HandCount)
	assert.Equal(t, 1, *opp.HandCount)
	assert.Nil(t, opp.Hand)
}

func TestView_SelfPerspective_ExposesOwnHand(t *testing.T) {
	g := testGame()
	alice := g.Players[0]
	alice.Zones.Hand = append(alice.Zones.Hand, cards.NewInstance(g.Registry.Get("knight"), "inst_deadbeef"))

	state := View(g, Self, alice.ID)

	require.Len(t, state.You.Hand, 1)
	assert.Equal(t, "inst_deadbeef", state.You.Hand[0].InstanceID)
	assert.Nil(t, state.You.HandCount)
}

func TestView_SpectatorPerspective_ExposesEveryHand(t *testing.T) {
	g := testGame()
	alice := g.Players[0]
	bob := g.Players[1]
	alice.Zones.Hand = append(alice.Zones.Hand, cards.NewInstance(g.Registry.Get("knight"), "a1"))
	bob.Zones.Hand = append(bob.Zones.Hand, cards.NewInstance(g.Registry.Get("scout"), "b1"))

	state := View(g, Spectator, "")

	require.Len(t, state.Opponents, 2)
	assert.NotNil(t, state.Opponents[0].Hand)
	assert.Len(t, state.Opponents[0].Hand, 1)
}

func TestView_NoPendingHead_OmitsPending(t *testing.T) {
	g := testGame()
	alice := g.Players[0]
	alice.Zones.Hand = append(alice.Zones.Hand, cards.NewInstance(g.Registry.Get("knight"), "k1"))
	g.Phase = engine.PhaseMain

	require.NoError(t, g.ProcessAction(engine.Action{
		Kind:     engine.ActionPlayCard,
		PlayerID: alice.ID,
		CardID:   "k1",
	}))

	// Knight has no effects in this fixture, so no pending is created and the
	// gamestate carries no pending head.
	state := View(g, Self, alice.ID)
	assert.Nil(t, state.Pending)
}
