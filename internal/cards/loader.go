package cards

import (
	"encoding/json"
	"fmt"
)

// cardJSON mirrors the wire shape in spec §6: each card is an object with
// id/name/cost/faction/kind/defense(base only)/is_outpost(optional, base
// only)/effects/ally_effects/scrap_effects/spawns_id(optional).
type cardJSON struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Flavor      string      `json:"flavor"`
	Cost        int         `json:"cost"`
	Faction     Faction     `json:"faction"`
	Kind        Kind        `json:"kind"`
	Defense     int         `json:"defense,omitempty"`
	IsOutpost   bool        `json:"is_outpost,omitempty"`
	Effects     []effectJSON `json:"effects"`
	AllyEffects []effectJSON `json:"ally_effects"`
	ScrapEffects []effectJSON `json:"scrap_effects"`
	SpawnsID    string      `json:"spawns_id,omitempty"`
}

type effectJSON struct {
	Type         EffectType `json:"type"`
	Value        int        `json:"value"`
	TargetCardID string     `json:"target_card_id,omitempty"`
}

// LoadJSON parses a batch of card JSON definitions into CardType values,
// paired with every validation error found across the whole batch so a deck
// author sees every problem at once rather than stopping at the first.
func LoadJSON(data []byte) ([]*CardType, []error) {
	var raw []cardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, []error{fmt.Errorf("parsing card batch: %w", err)}
	}

	var errs []error
	seen := make(map[string]bool, len(raw))
	types := make([]*CardType, 0, len(raw))

	for i, rc := range raw {
		errs = append(errs, validateCardJSON(i, rc, seen)...)

		types = append(types, &CardType{
			ID:        rc.ID,
			Name:      rc.Name,
			Flavor:    rc.Flavor,
			Cost:      rc.Cost,
			Faction:   rc.Faction,
			Kind:      rc.Kind,
			Defense:   rc.Defense,
			IsOutpost: rc.IsOutpost,
			Primary:   toEffects(rc.Effects),
			Ally:      toEffects(rc.AllyEffects),
			Scrap:     toEffects(rc.ScrapEffects),
			SpawnsID:  rc.SpawnsID,
		})
	}

	return types, errs
}

func toEffects(in []effectJSON) []Effect {
	out := make([]Effect, 0, len(in))
	for _, e := range in {
		out = append(out, Effect{Type: e.Type, Value: e.Value, TargetCardID: e.TargetCardID})
	}
	return out
}

func validateCardJSON(index int, rc cardJSON, seen map[string]bool) []error {
	var errs []error

	if rc.ID == "" {
		errs = append(errs, fmt.Errorf("card[%d]: missing id", index))
	} else if seen[rc.ID] {
		errs = append(errs, fmt.Errorf("card[%d] %s: duplicate id", index, rc.ID))
	} else {
		seen[rc.ID] = true
	}

	if rc.Name == "" {
		errs = append(errs, fmt.Errorf("card %s: missing name", rc.ID))
	}
	if rc.Cost < 0 {
		errs = append(errs, fmt.Errorf("card %s: negative cost %d", rc.ID, rc.Cost))
	}
	if !isValidFaction(rc.Faction) {
		errs = append(errs, fmt.Errorf("card %s: invalid faction %q", rc.ID, rc.Faction))
	}
	if !isValidKind(rc.Kind) {
		errs = append(errs, fmt.Errorf("card %s: invalid kind %q", rc.ID, rc.Kind))
	}
	if rc.Kind == KindBase && rc.Defense <= 0 {
		errs = append(errs, fmt.Errorf("card %s: base must have defense > 0, got %d", rc.ID, rc.Defense))
	}
	if rc.Kind != KindBase && rc.Defense != 0 {
		errs = append(errs, fmt.Errorf("card %s: non-base must not set defense", rc.ID))
	}
	if rc.Kind != KindBase && rc.IsOutpost {
		errs = append(errs, fmt.Errorf("card %s: is_outpost only valid on bases", rc.ID))
	}

	for _, group := range [][]effectJSON{rc.Effects, rc.AllyEffects, rc.ScrapEffects} {
		for j, e := range group {
			if !isValidEffectType(e.Type) {
				errs = append(errs, fmt.Errorf("card %s: effect[%d] has invalid type %q", rc.ID, j, e.Type))
			}
		}
	}

	return errs
}

func isValidFaction(f Faction) bool {
	switch f {
	case Neutral, Merchant, Wilds, Kingdom, Artificer:
		return true
	default:
		return false
	}
}

func isValidKind(k Kind) bool {
	switch k {
	case KindShip, KindBase, KindUnit:
		return true
	default:
		return false
	}
}

func isValidEffectType(t EffectType) bool {
	for _, known := range AllEffectTypes {
		if known == t {
			return true
		}
	}
	return false
}
