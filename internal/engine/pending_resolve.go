package engine

import (
	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/engine/errcode"
	"realmforge-backend/internal/player"
)

// resolvePending applies one response to the head pending action. cardID
// and slot are interpreted according to the head's Kind; unused parameters
// for a given kind are ignored.
func (g *Game) resolvePending(actor *player.Player, cardID string, slot int) error {
	head := g.HeadPending()
	if head == nil {
		return errcode.New(errcode.NoPendingAction, "no pending action to resolve")
	}
	if head.PlayerID != actor.ID {
		return errcode.New(errcode.PendingMismatch, "pending action belongs to a different player")
	}

	var err error
	switch head.Kind {
	case PendingDiscard:
		err = g.resolveDiscard(actor, cardID)
	case PendingScrapTradeRow:
		err = g.resolveScrapTradeRow(slot)
	case PendingScrapHand:
		err = g.resolveScrapFromZone(actor, cardID, false, true)
	case PendingScrapDiscard:
		err = g.resolveScrapFromZone(actor, cardID, true, false)
	case PendingScrapHandDiscard:
		err = g.resolveScrapFromZone(actor, cardID, true, true)
	case PendingTopDeck:
		err = g.resolveTopDeck(actor, cardID)
	case PendingCopyShip:
		err = g.resolveCopyShip(actor, cardID)
	case PendingDestroyBase:
		err = g.resolveDestroyBase(actor, cardID)
	case PendingUpgrade:
		err = g.resolveUpgrade(actor, cardID, head.UpgradeKind, head.UpgradeValue)
	}
	if err != nil {
		return err
	}

	head.ResolvedCount++
	if head.Done() {
		g.popHead()
		g.emitPendingResolved(head, false)
	}
	return nil
}

// skipPending pops the head if it's optional; mandatory pendings cannot be
// skipped (§4.7, §7).
func (g *Game) skipPending(actor *player.Player) error {
	head := g.HeadPending()
	if head == nil {
		return errcode.New(errcode.NoPendingAction, "no pending action to skip")
	}
	if head.PlayerID != actor.ID {
		return errcode.New(errcode.PendingMismatch, "pending action belongs to a different player")
	}
	if !head.Optional {
		return errcode.New(errcode.CannotSkipMandatory, "pending action is mandatory")
	}
	g.popHead()
	g.emitPendingResolved(head, true)
	return nil
}

func (g *Game) resolveDiscard(actor *player.Player, cardID string) error {
	inst := actor.Zones.DiscardFromHand(cardID)
	if inst == nil {
		return errcode.New(errcode.CardNotInHand, "card not in hand")
	}
	return nil
}

func (g *Game) resolveScrapTradeRow(slot int) error {
	inst := g.TradeRow.ScrapSlot(slot, g.rng)
	if inst == nil {
		return errcode.New(errcode.InvalidSlot, "trade row slot is empty")
	}
	return nil
}

// resolveScrapFromZone scraps cardID from the hand and/or discard zone
// depending on which the kind permits, running its scrap effects and
// decrementing d10 (§4.1, §4.3).
func (g *Game) resolveScrapFromZone(actor *player.Player, cardID string, allowDiscard, allowHand bool) error {
	var inst *cards.CardInstance
	if allowHand {
		inst = actor.Zones.FindInHand(cardID)
		if inst != nil {
			inst = actor.Zones.ScrapFromHand(cardID)
		}
	}
	if inst == nil && allowDiscard {
		inst = actor.Zones.FindInDiscard(cardID)
		if inst != nil {
			inst = actor.Zones.ScrapFromDiscard(cardID)
		}
	}
	if inst == nil {
		return errcode.New(errcode.CardNotInHand, "card not found in a permitted zone to scrap")
	}
	if err := g.executeEffects(actor, inst.Type.Scrap, inst); err != nil {
		return err
	}
	actor.DecrementD10()
	return nil
}

func (g *Game) resolveTopDeck(actor *player.Player, cardID string) error {
	inst := actor.Zones.RemoveFromDiscard(cardID)
	if inst == nil {
		return errcode.New(errcode.CardNotInDiscard, "card not in discard")
	}
	actor.Zones.PutOnTop(inst)
	return nil
}

// resolveCopyShip re-executes a non-base played card's primary effects,
// using that card itself as the effect source (§4.7).
func (g *Game) resolveCopyShip(actor *player.Player, cardID string) error {
	inst := actor.Zones.FindInPlayed(cardID)
	if inst == nil || inst.Type.Kind == cards.KindBase {
		return errcode.New(errcode.InvalidBaseTarget, "copy target must be a non-base card in play")
	}
	return g.executeEffects(actor, inst.Type.Primary, inst)
}

// resolveDestroyBase removes an opponent base without combat, honoring
// frontier-before-interior priority (§4.7, I2).
func (g *Game) resolveDestroyBase(actor *player.Player, baseID string) error {
	for _, opp := range g.Opponents(actor.ID) {
		inst, placement := opp.Zones.FindBase(baseID)
		if inst == nil {
			continue
		}
		if placement == cards.PlacementInterior && len(opp.Zones.FrontierBases) > 0 {
			return errcode.New(errcode.MustDestroyFrontierFirst, "opponent has frontier bases remaining")
		}
		opp.Zones.RemoveBase(baseID)
		opp.Zones.Discard = append(opp.Zones.Discard, inst)
		g.emitBaseDestroyed(opp.ID, baseID, string(placement))
		return nil
	}
	return errcode.New(errcode.InvalidBaseTarget, "base not found among opponents")
}

// resolveUpgrade applies a monotonic bonus to a card anywhere in the
// actor's hand, discard, or played zone.
func (g *Game) resolveUpgrade(actor *player.Player, cardID, kind string, value int) error {
	inst := actor.Zones.FindInHand(cardID)
	if inst == nil {
		inst = actor.Zones.FindInDiscard(cardID)
	}
	if inst == nil {
		inst = actor.Zones.FindInPlayed(cardID)
	}
	if inst == nil {
		return errcode.New(errcode.CardNotInHand, "upgrade target not found in hand, discard, or played zone")
	}
	inst.ApplyUpgrade(kind, value)
	return nil
}
