package engine

import "realmforge-backend/internal/events"

func (g *Game) emitPendingCreated(pa *PendingAction) {
	events.Publish(g.bus, events.PendingCreatedEvent{
		GameID:   g.ID,
		PlayerID: pa.PlayerID,
		Kind:     string(pa.Kind),
	})
}

func (g *Game) emitPendingResolved(pa *PendingAction, skipped bool) {
	events.Publish(g.bus, events.PendingResolvedEvent{
		GameID:   g.ID,
		PlayerID: pa.PlayerID,
		Kind:     string(pa.Kind),
		Skipped:  skipped,
	})
}

func (g *Game) emitEffectApplied(playerID, instanceID, effectType string, value int) {
	events.Publish(g.bus, events.EffectAppliedEvent{
		GameID:     g.ID,
		PlayerID:   playerID,
		InstanceID: instanceID,
		EffectType: effectType,
		Value:      value,
	})
}

func (g *Game) emitCardPlayed(playerID, instanceID, cardName string, allyFired bool) {
	events.Publish(g.bus, events.CardPlayedEvent{
		GameID:     g.ID,
		PlayerID:   playerID,
		InstanceID: instanceID,
		CardName:   cardName,
		AllyFired:  allyFired,
	})
}

func (g *Game) emitBasePlayed(playerID, instanceID, placement string) {
	events.Publish(g.bus, events.BasePlayedEvent{
		GameID:     g.ID,
		PlayerID:   playerID,
		InstanceID: instanceID,
		Placement:  placement,
	})
}

func (g *Game) emitBaseDeployed(playerID, instanceID string) {
	events.Publish(g.bus, events.BaseDeployedEvent{GameID: g.ID, PlayerID: playerID, InstanceID: instanceID})
}

func (g *Game) emitBaseDestroyed(ownerID, instanceID, placement string) {
	events.Publish(g.bus, events.BaseDestroyedEvent{
		GameID:     g.ID,
		OwnerID:    ownerID,
		InstanceID: instanceID,
		Placement:  placement,
	})
}

func (g *Game) emitPlayerAttacked(targetID string, amount, authority int) {
	events.Publish(g.bus, events.PlayerAttackedEvent{
		GameID:    g.ID,
		TargetID:  targetID,
		Amount:    amount,
		Authority: authority,
	})
}

func (g *Game) emitTurnAdvanced() {
	events.Publish(g.bus, events.TurnAdvancedEvent{
		GameID:       g.ID,
		TurnNumber:   g.TurnNumber,
		ActivePlayer: g.ActivePlayerID(),
	})
}

func (g *Game) emitGameOver(winnerID, loserID string) {
	events.Publish(g.bus, events.GameOverEvent{GameID: g.ID, Winner: winnerID, Loser: loserID})
}

func (g *Game) emitAutoDraw(playerID, instanceID, cardName string, drawn []string, iteration int) {
	events.Publish(g.bus, events.AutoDrawEvent{
		GameID:     g.ID,
		PlayerID:   playerID,
		InstanceID: instanceID,
		CardName:   cardName,
		Drawn:      drawn,
		Iteration:  iteration,
	})
}

func (g *Game) emitAutoDrawMaxIter(playerID string, iteration int) {
	events.Publish(g.bus, events.AutoDrawMaxIterEvent{GameID: g.ID, PlayerID: playerID, Iteration: iteration})
}
