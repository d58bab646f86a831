package errcode

import "fmt"

// ActionError is returned by every public engine entry point on a rejected
// action. It never carries a state mutation: handlers validate fully before
// touching state, so an ActionError implies the game is untouched.
type ActionError struct {
	Code    Code
	Message string
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New builds an ActionError with the given code and message.
func New(code Code, message string) *ActionError {
	return &ActionError{Code: code, Message: message}
}

// InternalError wraps an I1-I5 invariant violation. These are fatal for the
// owning game session: the core does not attempt to repair state it no
// longer trusts.
type InternalError struct {
	Invariant string
	Detail    string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal invariant %s violated: %s", e.Invariant, e.Detail)
}

// NarrativeError wraps a non-fatal failure from the narrator or art
// provider. Callers may log and discard it; it never affects game state.
type NarrativeError struct {
	Source string
	Cause  error
}

func (e *NarrativeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Cause)
}

func (e *NarrativeError) Unwrap() error { return e.Cause }

// NotFoundError reports a missing resource referenced by ID, e.g. a game or
// player that transport code expected to already exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}
