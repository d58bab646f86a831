package engine

import (
	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/engine/errcode"
	"realmforge-backend/internal/player"
)

// attackableTargets reports, for one opponent, which base zone (if any) is
// currently targetable under frontier-before-interior priority (§4.9, I2):
// frontier bases block interior bases, and any base blocks the player's
// authority.
func attackableTargets(opponent *player.Player) (bases []*cards.CardInstance, authorityTargetable bool) {
	if len(opponent.Zones.FrontierBases) > 0 {
		return opponent.Zones.FrontierBases, false
	}
	if len(opponent.Zones.InteriorBases) > 0 {
		return opponent.Zones.InteriorBases, false
	}
	return nil, true
}

// attackBase applies damage to a base by instance ID, validating frontier-
// before-interior priority, destroying it on lethal damage.
func (g *Game) attackBase(actor *player.Player, baseID string, amount int) error {
	if amount <= 0 || amount > actor.Combat {
		return errcode.New(errcode.InvalidDamageAmount, "attack amount must be positive and within current combat")
	}

	var owner *player.Player
	var base *cards.CardInstance
	var placement cards.Placement
	for _, opp := range g.Opponents(actor.ID) {
		if inst, p := opp.Zones.FindBase(baseID); inst != nil {
			owner, base, placement = opp, inst, p
			break
		}
	}
	if base == nil {
		return errcode.New(errcode.InvalidBaseTarget, "base not found among opponents")
	}

	if placement == cards.PlacementInterior && len(owner.Zones.FrontierBases) > 0 {
		return errcode.New(errcode.MustDestroyFrontierFirst, "opponent has frontier bases remaining")
	}

	actor.SpendCombat(amount)
	base.DamageTaken += amount
	if base.DamageTaken >= base.Type.Defense {
		owner.Zones.RemoveBase(base.InstanceID)
		owner.Zones.Discard = append(owner.Zones.Discard, base)
		g.emitBaseDestroyed(owner.ID, base.InstanceID, string(placement))
	}
	return nil
}

// attackPlayer spends combat against an opponent's authority directly. Only
// legal when the opponent has no bases in either zone (I2).
func (g *Game) attackPlayer(actor *player.Player, amount int) error {
	if amount <= 0 || amount > actor.Combat {
		return errcode.New(errcode.InvalidDamageAmount, "attack amount must be positive and within current combat")
	}
	opponent := g.firstOpponent(actor)
	if opponent == nil {
		return errcode.New(errcode.InvalidBaseTarget, "no opponent")
	}
	if len(opponent.Zones.FrontierBases) > 0 || len(opponent.Zones.InteriorBases) > 0 {
		return errcode.New(errcode.MustDestroyBasesFirst, "opponent still has bases in play")
	}

	actor.SpendCombat(amount)
	opponent.LoseAuthority(amount)
	g.emitPlayerAttacked(opponent.ID, amount, opponent.Authority)

	if opponent.Authority <= 0 {
		g.GameOver = true
		g.Winner = g.PlayerIndex(actor.ID)
		g.Phase = PhaseGameOver
		g.emitGameOver(actor.ID, opponent.ID)
	}
	return nil
}
