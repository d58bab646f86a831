package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBatch = `[
	{"id":"scout","name":"Scout","cost":0,"faction":"neutral","kind":"ship",
	 "effects":[{"type":"trade","value":1}]},
	{"id":"viper","name":"Viper","cost":0,"faction":"neutral","kind":"ship",
	 "effects":[{"type":"combat","value":1}]},
	{"id":"outpost","name":"Outpost","cost":3,"faction":"kingdom","kind":"base",
	 "defense":5,"is_outpost":true,"effects":[{"type":"authority","value":2}]}
]`

func TestLoadJSON_Valid(t *testing.T) {
	types, errs := LoadJSON([]byte(validBatch))
	require.Empty(t, errs)
	require.Len(t, types, 3)

	reg := NewRegistry(types)
	scout := reg.Get("scout")
	require.NotNil(t, scout)
	assert.Equal(t, Neutral, scout.Faction)
	assert.Equal(t, KindShip, scout.Kind)
	assert.Equal(t, EffectTrade, scout.Primary[0].Type)

	outpost := reg.Get("outpost")
	require.NotNil(t, outpost)
	assert.Equal(t, 5, outpost.Defense)
	assert.True(t, outpost.IsOutpost)
}

func TestLoadJSON_DuplicateID(t *testing.T) {
	batch := `[
		{"id":"scout","name":"Scout","cost":0,"faction":"neutral","kind":"ship","effects":[]},
		{"id":"scout","name":"Scout Two","cost":0,"faction":"neutral","kind":"ship","effects":[]}
	]`
	_, errs := LoadJSON([]byte(batch))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate id")
}

func TestLoadJSON_InvalidEffectType(t *testing.T) {
	batch := `[{"id":"x","name":"X","cost":0,"faction":"neutral","kind":"ship",
		"effects":[{"type":"nonsense","value":1}]}]`
	_, errs := LoadJSON([]byte(batch))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "invalid type")
}

func TestLoadJSON_BaseRequiresPositiveDefense(t *testing.T) {
	batch := `[{"id":"x","name":"X","cost":3,"faction":"kingdom","kind":"base","defense":0,"effects":[]}]`
	_, errs := LoadJSON([]byte(batch))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "defense > 0")
}

func TestCardInstance_ApplyUpgrade(t *testing.T) {
	typ := &CardType{ID: "x", Kind: KindShip}
	inst := NewInstance(typ, "inst-1")
	inst.ApplyUpgrade("attack", 2)
	inst.ApplyUpgrade("attack", 1)
	inst.ApplyUpgrade("trade", 3)
	assert.Equal(t, 3, inst.AttackBonus)
	assert.Equal(t, 3, inst.TradeBonus)
	assert.Equal(t, 0, inst.AuthorityBonus)
}
