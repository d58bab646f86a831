// Package errcode defines the typed error-code taxonomy returned by every
// public engine entry point, mirrored to clients over the transport's
// {"type":"error","code":...} message.
package errcode

// Category groups related codes for coarse-grained client handling.
type Category string

const (
	CategoryTransport Category = "transport"
	CategoryTurn      Category = "turn"
	CategoryPhase     Category = "phase"
	CategoryTargeting Category = "targeting"
	CategoryResources Category = "resources"
	CategoryPending   Category = "pending"
	CategoryStructural Category = "structural"
)

// Code is a stable kebab-case identifier for a specific failure.
type Code string

const (
	// Transport / parse
	MalformedRequest    Code = "malformed-request"
	MissingField        Code = "missing-field"
	InvalidFieldType    Code = "invalid-field-type"
	UnknownMessageType  Code = "unknown-message-type"

	// Turn / phase
	NotYourTurn   Code = "not-your-turn"
	WrongPhase    Code = "wrong-phase"
	GameNotStarted Code = "game-not-started"
	GameOver      Code = "game-over"

	// Targeting
	CardNotInHand           Code = "card-not-in-hand"
	CardNotInDiscard        Code = "card-not-in-discard"
	InvalidSlot             Code = "invalid-slot"
	InvalidBaseTarget       Code = "invalid-base-target"
	MustDestroyFrontierFirst Code = "must-destroy-frontier-first"
	MustDestroyBasesFirst   Code = "must-destroy-bases-first"

	// Resources
	InsufficientTrade    Code = "insufficient-trade"
	InsufficientCombat   Code = "insufficient-combat"
	InvalidDamageAmount  Code = "invalid-damage-amount"

	// Pending
	NoPendingAction     Code = "no-pending-action"
	PendingMismatch     Code = "pending-mismatch"
	CannotSkipMandatory Code = "cannot-skip-mandatory"

	// Structural
	GameFull         Code = "game-full"
	InvalidDrawOrder Code = "invalid-draw-order"
	NoCardsAvailable Code = "no-cards-available"
)

var categories = map[Code]Category{
	MalformedRequest:   CategoryTransport,
	MissingField:       CategoryTransport,
	InvalidFieldType:   CategoryTransport,
	UnknownMessageType: CategoryTransport,

	NotYourTurn:    CategoryTurn,
	WrongPhase:     CategoryPhase,
	GameNotStarted: CategoryPhase,
	GameOver:       CategoryPhase,

	CardNotInHand:            CategoryTargeting,
	CardNotInDiscard:         CategoryTargeting,
	InvalidSlot:              CategoryTargeting,
	InvalidBaseTarget:        CategoryTargeting,
	MustDestroyFrontierFirst: CategoryTargeting,
	MustDestroyBasesFirst:    CategoryTargeting,

	InsufficientTrade:   CategoryResources,
	InsufficientCombat:  CategoryResources,
	InvalidDamageAmount: CategoryResources,

	NoPendingAction:     CategoryPending,
	PendingMismatch:     CategoryPending,
	CannotSkipMandatory: CategoryPending,

	GameFull:         CategoryStructural,
	InvalidDrawOrder: CategoryStructural,
	NoCardsAvailable: CategoryStructural,
}

// CategoryOf returns the category a code was registered under.
func CategoryOf(c Code) Category {
	if cat, ok := categories[c]; ok {
		return cat
	}
	return CategoryStructural
}
