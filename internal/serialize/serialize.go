// Package serialize produces perspective-filtered JSON views of a Game for
// the hidden-information wire protocol (§4.10, §6). It only reads state —
// no Game method here ever mutates the engine.
package serialize

import (
	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/engine"
	"realmforge-backend/internal/player"
	"realmforge-backend/internal/traderow"
)

// Perspective selects how much of the game state a view exposes.
type Perspective string

const (
	Self      Perspective = "self"
	Opponent  Perspective = "opponent"
	Spectator Perspective = "spectator"
)

// CardView is the wire shape of one CardInstance, joined with its CardType.
type CardView struct {
	InstanceID     string `json:"instance_id"`
	CardID         string `json:"card_id"`
	Name           string `json:"name"`
	Cost           int    `json:"cost"`
	Faction        string `json:"faction"`
	Kind           string `json:"kind"`
	Defense        int    `json:"defense,omitempty"`
	DamageTaken    int    `json:"damage_taken,omitempty"`
	Deployed       bool   `json:"deployed,omitempty"`
	AttackBonus    int    `json:"attack_bonus,omitempty"`
	TradeBonus     int    `json:"trade_bonus,omitempty"`
	AuthorityBonus int    `json:"authority_bonus,omitempty"`
}

func cardView(inst *cards.CardInstance) CardView {
	return CardView{
		InstanceID:     inst.InstanceID,
		CardID:         inst.Type.ID,
		Name:           inst.Type.Name,
		Cost:           inst.Type.Cost,
		Faction:        string(inst.Type.Faction),
		Kind:           string(inst.Type.Kind),
		Defense:        inst.Type.Defense,
		DamageTaken:    inst.DamageTaken,
		Deployed:       inst.Deployed,
		AttackBonus:    inst.AttackBonus,
		TradeBonus:     inst.TradeBonus,
		AuthorityBonus: inst.AuthorityBonus,
	}
}

func cardViews(insts []*cards.CardInstance) []CardView {
	out := make([]CardView, len(insts))
	for i, inst := range insts {
		out[i] = cardView(inst)
	}
	return out
}

// BasesView holds both persistent base zones.
type BasesView struct {
	Frontier []CardView `json:"frontier"`
	Interior []CardView `json:"interior"`
}

func basesView(p *player.Player) BasesView {
	return BasesView{
		Frontier: cardViews(p.Zones.FrontierBases),
		Interior: cardViews(p.Zones.InteriorBases),
	}
}

// PlayerView is the per-player wire shape. Which of Hand/HandCount and
// Trade/Combat are populated depends on visibility (§4.10): a nil pointer
// means "omitted", not "zero".
type PlayerView struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Authority      int        `json:"authority"`
	Trade          *int       `json:"trade,omitempty"`
	Combat         *int       `json:"combat,omitempty"`
	D10            int        `json:"d10"`
	D4             int        `json:"d4"`
	Hand           []CardView `json:"hand,omitempty"`
	HandCount      *int       `json:"hand_count,omitempty"`
	DeckCount      int        `json:"deck_count"`
	Discard        []CardView `json:"discard"`
	Played         []CardView `json:"played"`
	Bases          BasesView  `json:"bases"`
	FactionsPlayed []bool     `json:"factions_played,omitempty"`
}

func intPtr(v int) *int { return &v }

// visiblePlayerView renders p with full (Self-grade) detail: hand contents,
// resource pools, and factions played all shown. Used for the viewing
// player themself, and for every player under Spectator (§4.10).
func visiblePlayerView(p *player.Player) PlayerView {
	factions := p.FactionsPlayed()
	return PlayerView{
		ID:             p.ID,
		Name:           p.Name,
		Authority:      p.Authority,
		Trade:          intPtr(p.Trade),
		Combat:         intPtr(p.Combat),
		D10:            p.D10,
		D4:             p.D4,
		Hand:           cardViews(p.Zones.Hand),
		DeckCount:      len(p.Zones.DrawPile),
		Discard:        cardViews(p.Zones.Discard),
		Played:         cardViews(p.Zones.Played),
		Bases:          basesView(p),
		FactionsPlayed: factions[:],
	}
}

// hiddenPlayerView renders p as an opponent: hand contents are replaced by
// a count; discard, played, and bases remain public (§4.10). P6 relies on
// this never touching p.Zones.Hand.
func hiddenPlayerView(p *player.Player) PlayerView {
	return PlayerView{
		ID:        p.ID,
		Name:      p.Name,
		Authority: p.Authority,
		D10:       p.D10,
		D4:        p.D4,
		HandCount: intPtr(len(p.Zones.Hand)),
		DeckCount: len(p.Zones.DrawPile),
		Discard:   cardViews(p.Zones.Discard),
		Played:    cardViews(p.Zones.Played),
		Bases:     basesView(p),
	}
}

// TradeSlotView is a trade-row slot's public card data, or nil for an empty
// slot.
type TradeSlotView struct {
	CardID  string `json:"card_id"`
	Name    string `json:"name"`
	Cost    int    `json:"cost"`
	Faction string `json:"faction"`
	Kind    string `json:"kind"`
}

// ExplorerView describes the infinite-supply virtual slot.
type ExplorerView struct {
	CardID    string `json:"card_id"`
	Name      string `json:"name"`
	Cost      int    `json:"cost"`
	Available bool   `json:"available"`
}

// TradeRowView is the marketplace's wire shape.
type TradeRowView struct {
	Slots         []*TradeSlotView `json:"slots"`
	Explorer      *ExplorerView    `json:"explorer,omitempty"`
	DeckRemaining int              `json:"deck_remaining"`
}

func tradeRowView(tr *traderow.TradeRow) TradeRowView {
	if tr == nil {
		return TradeRowView{}
	}
	slots := make([]*TradeSlotView, len(tr.Slots))
	for i, s := range tr.Slots {
		if s == nil {
			continue
		}
		slots[i] = &TradeSlotView{
			CardID:  s.Type.ID,
			Name:    s.Type.Name,
			Cost:    s.Type.Cost,
			Faction: string(s.Type.Faction),
			Kind:    string(s.Type.Kind),
		}
	}
	view := TradeRowView{Slots: slots, DeckRemaining: len(tr.TradeDeck)}
	if tr.ExplorerType != nil {
		view.Explorer = &ExplorerView{
			CardID:    tr.ExplorerType.ID,
			Name:      tr.ExplorerType.Name,
			Cost:      tr.ExplorerCost(),
			Available: true,
		}
	}
	return view
}

// PendingView is the head pending action's public shape, or nil if the
// queue is empty.
type PendingView struct {
	Type     string `json:"type"`
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
	MinCount int    `json:"min_count"`
	Optional bool   `json:"optional"`
}

// GameStateView is the full server->client gamestate payload (§6).
type GameStateView struct {
	Turn         int            `json:"turn"`
	Phase        string         `json:"phase"`
	ActivePlayer int            `json:"active_player"`
	IsYourTurn   bool           `json:"is_your_turn"`
	GameOver     bool           `json:"game_over"`
	Winner       *int           `json:"winner,omitempty"`
	You          PlayerView     `json:"you"`
	Opponents    []PlayerView   `json:"opponents"`
	TradeRow     TradeRowView   `json:"trade_row"`
	Pending      *PendingView   `json:"pending,omitempty"`
}

// View builds the gamestate payload for viewerID under the given
// perspective. For Spectator, viewerID still selects which player occupies
// "you" (commonly empty/a synthetic ID) but every player — "you" and
// "opponents" alike — gets full (Self-grade) detail, per §4.10.
func View(g *engine.Game, perspective Perspective, viewerID string) GameStateView {
	var winner *int
	if g.GameOver && g.Winner >= 0 {
		winner = intPtr(g.Winner)
	}

	state := GameStateView{
		Turn:         g.TurnNumber,
		Phase:        string(g.Phase),
		ActivePlayer: g.ActivePlayer,
		IsYourTurn:   g.ActivePlayerID() == viewerID,
		GameOver:     g.GameOver,
		Winner:       winner,
		TradeRow:     tradeRowView(g.TradeRow),
	}

	for _, p := range g.Players {
		isViewer := p.ID == viewerID
		switch {
		case isViewer:
			state.You = visiblePlayerView(p)
		case perspective == Spectator:
			state.Opponents = append(state.Opponents, visiblePlayerView(p))
		default:
			state.Opponents = append(state.Opponents, hiddenPlayerView(p))
		}
	}

	if head := g.HeadPending(); head != nil {
		state.Pending = &PendingView{
			Type:     string(head.Kind),
			PlayerID: head.PlayerID,
			Count:    head.Count,
			MinCount: head.MinCount,
			Optional: head.Optional,
		}
	}

	return state
}
