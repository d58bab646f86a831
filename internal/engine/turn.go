package engine

import (
	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/engine/errcode"
	"realmforge-backend/internal/player"
)

// ActionKind names a Main-phase action (§4.5).
type ActionKind string

// ScrapHand/ScrapDiscard/ScrapTradeRow are never free-standing actions: §4.5
// only permits them "when an effect permits", and §4.7's pending table is
// the sole grantor of that permission. They are reached exclusively through
// ActionResolvePending against a PendingScrapHand/PendingScrapDiscard/
// PendingScrapHandDiscard/PendingScrapTradeRow head.
const (
	ActionPlayCard     ActionKind = "play_card"
	ActionBuyCard      ActionKind = "buy_card"
	ActionBuyExplorer  ActionKind = "buy_explorer"
	ActionAttackPlayer ActionKind = "attack_player"
	ActionAttackBase   ActionKind = "attack_base"
	ActionEndTurn      ActionKind = "end_turn"

	ActionResolvePending ActionKind = "resolve_pending"
	ActionSkipPending    ActionKind = "skip_pending"
)

// Action is one Main-phase request from a player, already resolved to a
// concrete PlayerID by the transport layer.
type Action struct {
	Kind     ActionKind
	PlayerID string

	CardID    string
	Placement cards.Placement // PlayCard on a base

	Slot int // BuyCard

	Amount   int    // AttackPlayer / AttackBase
	BaseID   string // AttackBase
	TargetIsPlayer bool
}

// Start transitions NotStarted -> DrawOrder. Requires at least two players.
func (g *Game) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Phase != PhaseNotStarted {
		return errcode.New(errcode.WrongPhase, "game already started")
	}
	if len(g.Players) < 2 {
		return errcode.New(errcode.GameNotStarted, "need at least two players")
	}
	g.Phase = PhaseDrawOrder
	g.TurnNumber = 1
	g.ActivePlayer = 0
	return nil
}

func (g *Game) drawInitialHandLocked(p *player.Player) {
	n := p.HandSize() - len(p.Zones.Hand)
	if n > 0 {
		p.Zones.DrawN(g.rng, n)
	}
}

// SubmitDrawOrder draws the active player's starting hand in the client-
// chosen order, then runs the auto-draw chain and enters Main.
func (g *Game) SubmitDrawOrder(order []int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Phase != PhaseDrawOrder {
		return errcode.New(errcode.WrongPhase, "not awaiting a draw order")
	}
	active := g.Players[g.ActivePlayer]
	want := active.HandSize() - len(active.Zones.Hand)
	if want < 0 {
		want = 0
	}
	if len(order) != want {
		return errcode.New(errcode.InvalidDrawOrder, "draw order length must match remaining hand size")
	}
	active.Zones.DrawOrdered(g.rng, order)
	g.resolveAutoDraw(active)
	g.Phase = PhaseMain
	return nil
}

// SkipDrawOrder draws top-to-hand-size in default order, then runs auto-draw
// and enters Main.
func (g *Game) SkipDrawOrder() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Phase != PhaseDrawOrder {
		return errcode.New(errcode.WrongPhase, "not awaiting a draw order")
	}
	active := g.Players[g.ActivePlayer]
	g.drawInitialHandLocked(active)
	g.resolveAutoDraw(active)
	g.Phase = PhaseMain
	return nil
}

// ProcessAction validates and dispatches one Main-phase action.
func (g *Game) ProcessAction(action Action) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.validateAction(action); err != nil {
		return err
	}

	actor := g.PlayerByID(action.PlayerID)
	switch action.Kind {
	case ActionPlayCard:
		return g.playCard(actor, action.CardID, action.Placement)
	case ActionBuyCard:
		return g.buyCard(actor, action.Slot)
	case ActionBuyExplorer:
		return g.buyExplorer(actor)
	case ActionAttackPlayer:
		return g.attackPlayer(actor, action.Amount)
	case ActionAttackBase:
		return g.attackBase(actor, action.BaseID, action.Amount)
	case ActionEndTurn:
		return g.endTurnLocked()
	case ActionResolvePending:
		return g.resolvePending(actor, action.CardID, action.Slot)
	case ActionSkipPending:
		return g.skipPending(actor)
	default:
		return errcode.New(errcode.UnknownMessageType, "unrecognized action")
	}
}

// playCard executes step 2-5 of §4.6: move the card out of hand, run
// primary (then ally if the faction was already played this turn), mark the
// faction played, and emit the card-played event.
func (g *Game) playCard(actor *player.Player, cardID string, placement cards.Placement) error {
	inst := actor.Zones.FindInHand(cardID)
	if inst == nil {
		return errcode.New(errcode.CardNotInHand, "card not in hand")
	}

	allyFires := actor.HasPlayedFaction(inst.Type.Faction)
	moved := actor.Zones.PlayFromHand(cardID, placement)

	isBase := inst.Type.Kind == cards.KindBase
	if !isBase {
		if err := g.executeEffects(actor, inst.Type.Primary, moved); err != nil {
			return err
		}
		if allyFires {
			if err := g.executeEffects(actor, inst.Type.Ally, moved); err != nil {
				return err
			}
		}
	} else {
		g.emitBasePlayed(actor.ID, moved.InstanceID, string(placement))
	}

	actor.MarkFactionPlayed(inst.Type.Faction)
	g.emitCardPlayed(actor.ID, moved.InstanceID, inst.Type.Name, allyFires)
	return nil
}

func (g *Game) buyCard(actor *player.Player, slot int) error {
	inst := g.TradeRow.Buy(slot, actor, g.rng)
	if inst == nil {
		return errcode.New(errcode.NoCardsAvailable, "trade row slot is empty")
	}
	return nil
}

func (g *Game) buyExplorer(actor *player.Player) error {
	inst := g.TradeRow.BuyExplorer(actor)
	if inst == nil {
		return errcode.New(errcode.NoCardsAvailable, "explorer not configured for this game")
	}
	return nil
}

// endTurnLocked implements Main->End->DrawOrder (§4.5). Caller holds g.mu.
func (g *Game) endTurnLocked() error {
	if len(g.Pending) != 0 {
		return errcode.New(errcode.CannotSkipMandatory, "pending actions remain")
	}

	active := g.Players[g.ActivePlayer]
	active.Zones.EndOfTurnCleanup()

	g.Phase = PhaseEnd
	g.ActivePlayer = (g.ActivePlayer + 1) % len(g.Players)
	if g.ActivePlayer == 0 {
		g.TurnNumber++
	}

	next := g.Players[g.ActivePlayer]
	next.StartTurn()
	g.Phase = PhaseDrawOrder
	g.runStartOfTurnBases(next)
	g.emitTurnAdvanced()
	return nil
}

// runStartOfTurnBases deploys freshly played bases and fires the primary
// effects of already-deployed bases, in frontier-then-interior order
// (§4.6's deployment-delay rule).
func (g *Game) runStartOfTurnBases(p *player.Player) {
	for _, base := range append(append([]*cards.CardInstance{}, p.Zones.FrontierBases...), p.Zones.InteriorBases...) {
		if !base.Deployed {
			base.Deployed = true
			g.emitBaseDeployed(p.ID, base.InstanceID)
			continue
		}
		_ = g.executeEffects(p, base.Type.Primary, base)
	}
}
