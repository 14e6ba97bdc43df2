// Package common defines shared constants and sentinel errors used across
// the client engine. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Precondition errors, kept distinct so the UI can route on them
	// instead of offering a retry.
	ErrProfileRequired = errors.New("profile not created")
	ErrNoRecipient     = errors.New("unable to determine recipient")

	// Deck state machine errors.
	ErrDeckNotReady       = errors.New("deck not ready")
	ErrDeckExhausted      = errors.New("deck exhausted")
	ErrDeckBusy           = errors.New("deck load already in progress")
	ErrDeckLoaded         = errors.New("deck already loaded")
	ErrDecisionInFlight   = errors.New("decision already in flight")
	ErrInvalidSwipeAction = errors.New("invalid swipe action")

	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")
)
