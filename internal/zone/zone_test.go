package zone

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realmforge-backend/internal/cards"
)

func mkInstance(id string) *cards.CardInstance {
	return cards.NewInstance(&cards.CardType{ID: "scout", Kind: cards.KindShip}, id)
}

func TestDrawTop_ReshufflesDiscardWhenDrawPileEmpty(t *testing.T) {
	z := New()
	a, b := mkInstance("a"), mkInstance("b")
	a.DrawEffectSpent = true
	z.Discard = []*cards.CardInstance{a, b}

	rng := rand.New(rand.NewSource(1))
	drawn := z.DrawTop(rng)
	require.NotNil(t, drawn)
	assert.Empty(t, z.Discard)
	assert.False(t, a.DrawEffectSpent)
	assert.False(t, b.DrawEffectSpent)
}

func TestDrawTop_EmptyDrawAndDiscard_NoErrorNoCard(t *testing.T) {
	z := New()
	rng := rand.New(rand.NewSource(1))
	drawn := z.DrawTop(rng)
	assert.Nil(t, drawn)
}

func TestPlayFromHand_BaseGoesToBaseZoneUndeployed(t *testing.T) {
	z := New()
	base := cards.NewInstance(&cards.CardType{ID: "fort", Kind: cards.KindBase, Defense: 5}, "base-1")
	base.Deployed = true
	base.DamageTaken = 3
	z.Hand = []*cards.CardInstance{base}

	played := z.PlayFromHand("base-1", cards.PlacementFrontier)
	require.NotNil(t, played)
	assert.Empty(t, z.Hand)
	assert.Len(t, z.FrontierBases, 1)
	assert.False(t, played.Deployed)
	assert.Equal(t, 0, played.DamageTaken)
}

func TestEndOfTurnCleanup_BasesPersist(t *testing.T) {
	z := New()
	z.Played = []*cards.CardInstance{mkInstance("p1")}
	z.Hand = []*cards.CardInstance{mkInstance("h1")}
	z.FrontierBases = []*cards.CardInstance{mkInstance("base-1")}

	z.EndOfTurnCleanup()

	assert.Empty(t, z.Played)
	assert.Empty(t, z.Hand)
	assert.Len(t, z.Discard, 2)
	assert.Len(t, z.FrontierBases, 1)
}

func TestDrawOrdered_ReferencesOriginalPositions(t *testing.T) {
	z := New()
	c0, c1, c2 := mkInstance("c0"), mkInstance("c1"), mkInstance("c2")
	z.DrawPile = []*cards.CardInstance{c0, c1, c2}

	rng := rand.New(rand.NewSource(1))
	drawn := z.DrawOrdered(rng, []int{2, 0})

	require.Len(t, drawn, 2)
	assert.Equal(t, "c2", drawn[0].InstanceID)
	assert.Equal(t, "c0", drawn[1].InstanceID)
	require.Len(t, z.DrawPile, 1)
	assert.Equal(t, "c1", z.DrawPile[0].InstanceID)
}
