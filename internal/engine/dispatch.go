package engine

import (
	"fmt"

	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/player"
)

// effectHandler mutates game/actor state for one effect instance. source is
// the CardInstance the effect sequence came from (needed for upgrade bonuses
// and pending back-references); it may be nil for effects re-executed
// without a concrete source (not currently exercised, but handlers must not
// assume non-nil beyond what they read).
type effectHandler func(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error

var effectHandlers map[cards.EffectType]effectHandler

func init() {
	effectHandlers = map[cards.EffectType]effectHandler{
		cards.EffectTrade:         handleTrade,
		cards.EffectCombat:        handleCombat,
		cards.EffectAuthority:     handleAuthority,
		cards.EffectDraw:          handleDraw,
		cards.EffectDiscard:       handleDiscard,
		cards.EffectScrapTradeRow: handleScrapTradeRow,
		cards.EffectScrapHand:     handleScrapHand,
		cards.EffectTopDeck:       handleTopDeck,
		cards.EffectD10Up:         handleD10Up,
		cards.EffectD10Down:       handleD10Down,
		cards.EffectDestroyBase:   handleDestroyBase,
		cards.EffectCopyShip:      handleCopyShip,
		cards.EffectAcquireFree:   handleAcquireFree,
		cards.EffectAcquireTop:    handleAcquireTop,
		cards.EffectUpgradeAttack: handleUpgrade("attack"),
		cards.EffectUpgradeTrade:  handleUpgrade("trade"),
		cards.EffectUpgradeAuth:   handleUpgrade("auth"),
		cards.EffectSpawn:         handleSpawn,
	}

	// Exhaustiveness check: every declared effect type must have a handler,
	// so adding a variant to cards.AllEffectTypes without wiring a handler
	// here fails fast at process start rather than silently no-opping.
	for _, t := range cards.AllEffectTypes {
		if _, ok := effectHandlers[t]; !ok {
			panic(fmt.Sprintf("engine: no handler registered for effect type %q", t))
		}
	}
}

// dispatchEffect looks up and runs the handler for effect, then fires the
// effect-applied event callback (§4.1: "after every handler invocation").
func (g *Game) dispatchEffect(actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
	h, ok := effectHandlers[effect.Type]
	if !ok {
		return fmt.Errorf("engine: unknown effect type %q", effect.Type)
	}
	if err := h(g, actor, effect, source); err != nil {
		return err
	}
	sourceID := ""
	if source != nil {
		sourceID = source.InstanceID
	}
	g.emitEffectApplied(actor.ID, sourceID, string(effect.Type), effect.Value)
	return nil
}

// executeEffects runs a declared effect sequence (primary, ally, or scrap)
// in order, stopping at the first failure.
func (g *Game) executeEffects(actor *player.Player, effects []cards.Effect, source *cards.CardInstance) error {
	for _, eff := range effects {
		if err := g.dispatchEffect(actor, eff, source); err != nil {
			return err
		}
	}
	return nil
}

func handleTrade(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
	amount := effect.Value
	if source != nil {
		amount += source.TradeBonus
	}
	actor.AddTrade(amount)
	return nil
}

func handleCombat(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
	amount := effect.Value
	if source != nil {
		amount += source.AttackBonus
	}
	actor.AddCombat(amount)
	return nil
}

func handleAuthority(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
	amount := effect.Value
	if source != nil {
		amount += source.AuthorityBonus
	}
	actor.AddAuthority(amount)
	return nil
}

// handleDraw draws effect.Value cards immediately from the actor's own deck.
// The dedicated chain semantics of §4.8 (spent-flag bookkeeping, 20-iteration
// bound) apply only to the automatic scan run at DrawOrder->Main; a Draw
// effect fired directly from a primary/ally/scrap sequence just draws.
func handleDraw(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
	actor.Zones.DrawN(g.rng, effect.Value)
	return nil
}

func (g *Game) firstOpponent(actor *player.Player) *player.Player {
	opponents := g.Opponents(actor.ID)
	if len(opponents) == 0 {
		return nil
	}
	return opponents[0]
}

// handleDiscard enqueues a mandatory pending for the opponent to discard
// effect.Value cards of their choice (§4.7).
func handleDiscard(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
	opponent := g.firstOpponent(actor)
	if opponent == nil {
		return nil
	}
	return g.enqueuePending(&PendingAction{
		Kind:             PendingDiscard,
		PlayerID:         opponent.ID,
		Count:            effect.Value,
		Optional:         false,
		SourceInstanceID: instanceID(source),
		SourceEffect:     effect.Type,
	})
}

func handleScrapTradeRow(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
	return g.enqueuePending(&PendingAction{
		Kind:             PendingScrapTradeRow,
		PlayerID:         actor.ID,
		Count:            1,
		Optional:         true,
		SourceInstanceID: instanceID(source),
		SourceEffect:     effect.Type,
	})
}

// handleScrapHand enqueues one of ScrapHand/ScrapDiscard/ScrapHandDiscard
// depending on effect.Value (§3: "value; meaning depends on type").
func handleScrapHand(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
	kind := PendingScrapHand
	switch cards.ScrapHandVariant(effect.Value) {
	case cards.ScrapDiscardOnly:
		kind = PendingScrapDiscard
	case cards.ScrapEither:
		kind = PendingScrapHandDiscard
	}
	return g.enqueuePending(&PendingAction{
		Kind:             kind,
		PlayerID:         actor.ID,
		Count:            1,
		Optional:         true,
		SourceInstanceID: instanceID(source),
		SourceEffect:     effect.Type,
	})
}

func handleTopDeck(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
	return g.enqueuePending(&PendingAction{
		Kind:             PendingTopDeck,
		PlayerID:         actor.ID,
		Count:            1,
		Optional:         true,
		SourceInstanceID: instanceID(source),
		SourceEffect:     effect.Type,
	})
}

func handleD10Up(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
	actor.IncrementD10()
	return nil
}

func handleD10Down(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
	actor.DecrementD10()
	return nil
}

func handleDestroyBase(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
	return g.enqueuePending(&PendingAction{
		Kind:             PendingDestroyBase,
		PlayerID:         actor.ID,
		Count:            1,
		Optional:         true,
		SourceInstanceID: instanceID(source),
		SourceEffect:     effect.Type,
	})
}

func handleCopyShip(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
	return g.enqueuePending(&PendingAction{
		Kind:             PendingCopyShip,
		PlayerID:         actor.ID,
		Count:            1,
		Optional:         true,
		SourceInstanceID: instanceID(source),
		SourceEffect:     effect.Type,
	})
}

// handleAcquireFree sets the turn-scoped flag making the actor's next
// purchase free, so long as its cost is within effect.Value (§4.4).
func handleAcquireFree(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
	actor.NextShipFree = true
	actor.FreeShipMaxCost = effect.Value
	return nil
}

func handleAcquireTop(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
	actor.NextShipTop = true
	return nil
}

func handleUpgrade(kind string) effectHandler {
	return func(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
		return g.enqueuePending(&PendingAction{
			Kind:             PendingUpgrade,
			PlayerID:         actor.ID,
			Count:            1,
			Optional:         true,
			SourceInstanceID: instanceID(source),
			SourceEffect:     effect.Type,
			UpgradeKind:      kind,
			UpgradeValue:     effect.Value,
		})
	}
}

// handleSpawn instantiates the source card's spawn type into the actor's
// discard. Nothing happens if the type lacks a SpawnsID or the registry
// doesn't resolve it.
func handleSpawn(g *Game, actor *player.Player, effect cards.Effect, source *cards.CardInstance) error {
	if source == nil || source.Type.SpawnsID == "" {
		return nil
	}
	spawnType := g.Registry.Get(source.Type.SpawnsID)
	if spawnType == nil {
		return nil
	}
	inst := cards.NewInstance(spawnType, newInstanceID())
	actor.Zones.Discard = append(actor.Zones.Discard, inst)
	return nil
}

func instanceID(inst *cards.CardInstance) string {
	if inst == nil {
		return ""
	}
	return inst.InstanceID
}
