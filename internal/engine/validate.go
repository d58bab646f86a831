package engine

import (
	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/engine/errcode"
)

// validateAction runs the checks of §4.11 before any handler touches state:
// turn ownership, phase permission, pending-queue-head match, and basic
// resource sufficiency. Handlers still re-check target legitimacy in detail
// (card-in-zone, frontier-before-interior) since that requires the same
// zone lookups the handler performs anyway; this layer rejects what it can
// cheaply reject before a single mutation happens. Caller holds g.mu.
func (g *Game) validateAction(action Action) error {
	if g.GameOver || g.Phase == PhaseGameOver {
		return errcode.New(errcode.GameOver, "game has already ended")
	}

	actor := g.PlayerByID(action.PlayerID)
	if actor == nil {
		return errcode.New(errcode.NotYourTurn, "unknown player")
	}

	switch action.Kind {
	case ActionResolvePending, ActionSkipPending:
		head := g.HeadPending()
		if head == nil {
			return errcode.New(errcode.NoPendingAction, "no pending action to resolve")
		}
		if head.PlayerID != action.PlayerID {
			return errcode.New(errcode.PendingMismatch, "this pending action belongs to another player")
		}
		return nil
	}

	if g.Phase != PhaseMain {
		return errcode.New(errcode.WrongPhase, "action not permitted outside the main phase")
	}
	if action.PlayerID != g.ActivePlayerID() {
		return errcode.New(errcode.NotYourTurn, "it is not this player's turn")
	}
	if len(g.Pending) != 0 {
		return errcode.New(errcode.CannotSkipMandatory, "resolve the pending action before taking other actions")
	}

	switch action.Kind {
	case ActionBuyCard:
		if action.Slot < 0 || action.Slot >= len(g.TradeRow.Slots) {
			return errcode.New(errcode.InvalidSlot, "trade row slot out of range")
		}
		slot := g.TradeRow.Slots[action.Slot]
		if slot == nil {
			return errcode.New(errcode.NoCardsAvailable, "trade row slot is empty")
		}
		free := actor.NextShipFree && slot.Type.Cost <= actor.FreeShipMaxCost
		if !free && slot.Type.Cost > actor.Trade {
			return errcode.New(errcode.InsufficientTrade, "not enough trade to buy this card")
		}
	case ActionBuyExplorer:
		if g.TradeRow == nil || g.TradeRow.ExplorerType == nil {
			return errcode.New(errcode.NoCardsAvailable, "explorer not configured for this game")
		}
		free := actor.NextShipFree && g.TradeRow.ExplorerCost() <= actor.FreeShipMaxCost
		if !free && g.TradeRow.ExplorerCost() > actor.Trade {
			return errcode.New(errcode.InsufficientTrade, "not enough trade to buy explorer")
		}
	case ActionAttackPlayer, ActionAttackBase:
		if action.Amount <= 0 || action.Amount > actor.Combat {
			return errcode.New(errcode.InvalidDamageAmount, "attack amount must be positive and within current combat")
		}
	case ActionPlayCard:
		inst := actor.Zones.FindInHand(action.CardID)
		if inst == nil {
			return errcode.New(errcode.CardNotInHand, "card not in hand")
		}
		if inst.Type.Kind == cards.KindBase {
			if action.Placement != cards.PlacementFrontier && action.Placement != cards.PlacementInterior {
				return errcode.New(errcode.InvalidBaseTarget, "base must be played to frontier or interior")
			}
		}
	}

	return nil
}
