// Package cards holds the card data model: the immutable CardType shared by
// every copy of a card, the Effect value type, and the mutable per-copy
// CardInstance. CardType values are never duplicated; every CardInstance
// holds a non-owning back-reference into the registry built once at game
// construction (see Registry).
package cards

// Faction is one of five card affiliations. Playing a second card of the
// same faction in a turn triggers that card's ally effects.
type Faction string

const (
	Neutral   Faction = "neutral"
	Merchant  Faction = "merchant"
	Wilds     Faction = "wilds"
	Kingdom   Faction = "kingdom"
	Artificer Faction = "artificer"
)

// Kind distinguishes the three card shapes.
type Kind string

const (
	KindShip Kind = "ship"
	KindBase Kind = "base"
	KindUnit Kind = "unit"
)

// Placement is a base's current zone, or None if it isn't in play.
type Placement string

const (
	PlacementNone     Placement = "none"
	PlacementFrontier Placement = "frontier"
	PlacementInterior Placement = "interior"
)

// CardType is immutable and shared across every copy in play. It is built
// once from JSON card definitions (see LoadJSON) and never mutated after a
// game starts.
type CardType struct {
	ID       string
	Name     string
	Flavor   string
	Cost     int
	Faction  Faction
	Kind     Kind
	Defense  int // bases only, > 0
	IsOutpost bool // legacy JSON round-trip field; targeting uses Placement, not this
	Primary  []Effect
	Ally     []Effect
	Scrap    []Effect
	SpawnsID string // optional: the unit type a Spawn effect on this card instantiates
}

// Effect is a value type: a typed operation with an integer parameter whose
// meaning depends on Type, and an optional fixed target.
type Effect struct {
	Type         EffectType
	Value        int
	TargetCardID string
}

// CardInstance is a single mutable copy of a CardType in play. Type is a
// non-owning back-reference into the game's CardTypeRegistry.
type CardInstance struct {
	Type       *CardType
	InstanceID string

	AttackBonus    int
	TradeBonus     int
	AuthorityBonus int

	ImageSeed  uint32
	NeedsRegen bool

	DrawEffectSpent bool

	// Base-only fields.
	Placement   Placement
	Deployed    bool
	DamageTaken int
}

// NewInstance creates a fresh CardInstance for typ with a process-stable
// instance ID assigned by the caller (the engine and trade row mint IDs via
// uuid).
func NewInstance(typ *CardType, instanceID string) *CardInstance {
	inst := &CardInstance{
		Type:       typ,
		InstanceID: instanceID,
		NeedsRegen: true,
	}
	if typ.Kind == KindBase {
		inst.Placement = PlacementNone
	}
	return inst
}

// ApplyUpgrade bumps one of the three monotonic upgrade bonuses. kind is one
// of "attack", "trade", "auth".
func (c *CardInstance) ApplyUpgrade(kind string, value int) {
	if value < 0 {
		value = 0
	}
	switch kind {
	case "attack":
		c.AttackBonus += value
	case "trade":
		c.TradeBonus += value
	case "auth":
		c.AuthorityBonus += value
	}
}
