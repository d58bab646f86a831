package engine

import (
	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/player"
)

// resolveAutoDraw runs the chain resolver (§4.8) immediately after the
// initial hand is drawn, on the DrawOrder->Main transition. Caller holds
// g.mu.
func (g *Game) resolveAutoDraw(p *player.Player) {
	maxIter := g.settings.autoDrawMaxIterations()
	for iter := 0; iter < maxIter; iter++ {
		firing := g.collectUnspentDrawers(p)
		if len(firing) == 0 {
			return
		}
		for _, inst := range firing {
			inst.DrawEffectSpent = true
			value := drawValue(inst)
			drawn := p.Zones.DrawN(g.rng, value)
			drawnIDs := make([]string, len(drawn))
			for i, d := range drawn {
				drawnIDs[i] = d.InstanceID
			}
			g.emitAutoDraw(p.ID, inst.InstanceID, inst.Type.Name, drawnIDs, iter)
		}
	}
	g.emitAutoDrawMaxIter(p.ID, maxIter)
}

// collectUnspentDrawers scans hand order for instances whose CardType has a
// primary Draw effect and whose draw_effect_spent flag is still false.
func (g *Game) collectUnspentDrawers(p *player.Player) []*cards.CardInstance {
	var out []*cards.CardInstance
	for _, inst := range p.Zones.Hand {
		if inst.DrawEffectSpent {
			continue
		}
		if hasDrawEffect(inst.Type) {
			out = append(out, inst)
		}
	}
	return out
}

func hasDrawEffect(t *cards.CardType) bool {
	for _, eff := range t.Primary {
		if eff.Type == cards.EffectDraw {
			return true
		}
	}
	return false
}

// drawValue returns the card count of the first primary Draw effect on the
// instance's type.
func drawValue(inst *cards.CardInstance) int {
	for _, eff := range inst.Type.Primary {
		if eff.Type == cards.EffectDraw {
			return eff.Value
		}
	}
	return 0
}
