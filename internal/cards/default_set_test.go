package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStarterSet_ParsesWithoutErrors(t *testing.T) {
	registry, errs := LoadStarterSet()
	require.Empty(t, errs)
	require.NotNil(t, registry)

	scout := registry.Get("scout")
	require.NotNil(t, scout)
	assert.Equal(t, KindShip, scout.Kind)

	barracks := registry.Get("barracks")
	require.NotNil(t, barracks)
	assert.Equal(t, "levy", barracks.SpawnsID)
	assert.True(t, registry.Get(barracks.SpawnsID) != nil)
}

func TestLoadStarterSet_EveryBaseHasPositiveDefense(t *testing.T) {
	registry, errs := LoadStarterSet()
	require.Empty(t, errs)

	for _, typ := range registry.All() {
		if typ.Kind == KindBase {
			assert.Greater(t, typ.Defense, 0, "base %s must have positive defense", typ.ID)
		}
	}
}
