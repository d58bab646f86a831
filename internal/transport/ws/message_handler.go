package ws

import (
	"encoding/json"

	"go.uber.org/zap"

	"realmforge-backend/internal/cards"
	"realmforge-backend/internal/engine"
	"realmforge-backend/internal/engine/errcode"
	"realmforge-backend/internal/serialize"
	"realmforge-backend/internal/transport/dto"
)

// handleInbound parses one client frame and applies it to the hub's game,
// mirroring the teacher's parse-discriminator-then-reparse-payload shape:
// unmarshal only the "type" field first, then unmarshal again into the
// concrete message struct once the type is known.
func (h *Hub) handleInbound(conn *Connection, data []byte) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		conn.SendJSON(dto.ErrorMessage{Type: "error", Code: string(errcode.MalformedRequest), Message: "invalid JSON"})
		return
	}

	var err error
	switch envelope.Type {
	case "action":
		err = h.handleAction(conn, data)
	case "draw_order":
		err = h.handleDrawOrder(conn, data)
	case "resolve_pending":
		err = h.handleResolvePending(conn, data)
	case "skip_pending":
		err = h.Game.ProcessAction(engine.Action{Kind: engine.ActionSkipPending, PlayerID: conn.PlayerID})
	case "end_turn":
		err = h.Game.ProcessAction(engine.Action{Kind: engine.ActionEndTurn, PlayerID: conn.PlayerID})
	case "leave":
		h.Unregister(conn)
		return
	case "chat":
		h.handleChat(conn, data)
		return
	default:
		conn.SendJSON(dto.ErrorMessage{Type: "error", Code: string(errcode.UnknownMessageType), Message: "unrecognized message type"})
		return
	}

	if err != nil {
		h.sendError(conn, err)
	}
}

func (h *Hub) sendError(conn *Connection, err error) {
	code := "internal-error"
	if actionErr, ok := err.(*errcode.ActionError); ok {
		code = string(actionErr.Code)
	}
	conn.SendJSON(dto.ErrorMessage{Type: "error", Code: code, Message: err.Error()})
}

// handleAction covers the free-standing Main actions. Scrapping a hand,
// discard, or trade-row card is never free-standing — §4.5 only permits it
// "when an effect permits", so those three operations only ever happen as
// a resolve_pending response against the matching pending kind.
func (h *Hub) handleAction(conn *Connection, data []byte) error {
	var msg dto.ActionMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return errcode.New(errcode.MalformedRequest, "could not parse action message")
	}

	action := engine.Action{PlayerID: conn.PlayerID, CardID: msg.CardID}
	switch msg.Action {
	case "play_card":
		action.Kind = engine.ActionPlayCard
		if msg.Placement != "" {
			action.Placement = cards.Placement(msg.Placement)
		}
	case "buy_card":
		action.Kind = engine.ActionBuyCard
		if msg.Slot != nil {
			action.Slot = *msg.Slot
		}
	case "buy_explorer":
		action.Kind = engine.ActionBuyExplorer
	case "attack":
		action.Amount = msg.Amount
		if msg.Target == "player" {
			action.Kind = engine.ActionAttackPlayer
		} else {
			action.Kind = engine.ActionAttackBase
			action.BaseID = msg.BaseID
		}
	default:
		return errcode.New(errcode.UnknownMessageType, "unrecognized action")
	}

	return h.Game.ProcessAction(action)
}

func (h *Hub) handleDrawOrder(conn *Connection, data []byte) error {
	var msg dto.DrawOrderMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return errcode.New(errcode.MalformedRequest, "could not parse draw_order message")
	}
	return h.Game.SubmitDrawOrder(msg.Order)
}

func (h *Hub) handleResolvePending(conn *Connection, data []byte) error {
	var msg dto.ResolvePendingMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return errcode.New(errcode.MalformedRequest, "could not parse resolve_pending message")
	}
	slot := 0
	if msg.Slot != nil {
		slot = *msg.Slot
	}
	return h.Game.ProcessAction(engine.Action{
		Kind:     engine.ActionResolvePending,
		PlayerID: conn.PlayerID,
		CardID:   msg.CardID,
		Slot:     slot,
	})
}

func (h *Hub) handleChat(conn *Connection, data []byte) {
	var msg dto.ChatMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	h.eachConnection(func(c *Connection) {
		c.SendJSON(dto.ChatMessage{Type: "chat", Text: msg.Text})
	})
}

// broadcastGameState pushes a perspective-filtered snapshot to every
// connected player (§4.10): each gets Self for themself, Opponent for
// everyone else.
func (h *Hub) broadcastGameState() {
	autoDraw := h.autoDrawLog
	h.autoDrawLog = nil

	count := 0
	h.eachConnection(func(c *Connection) {
		count++
		if len(autoDraw) > 0 {
			c.SendJSON(dto.AutoDrawMessage{Type: "auto_draw", Events: autoDraw})
		}
		state := serialize.View(h.Game, serialize.Self, c.PlayerID)
		c.SendJSON(dto.GameStateMessage{Type: "gamestate", State: state})
	})
	h.log.Debug("broadcast gamestate", zap.Int("connections", count), zap.Int("auto_draw_events", len(autoDraw)))
}
