package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session errors
	ErrMsgSessionNotFound = "session not found"

	// Combat errors
	ErrMsgNoActiveCombat = "no active combat"
	ErrMsgInvalidEnemyID = "invalid enemy id"

	// Item errors
	ErrMsgInvalidItemKind    = "invalid item kind"
	ErrMsgItemNotPurchasable = "cannot be bought here"

	// Economy errors
	ErrMsgInsufficientFunds = "not enough credits"
	ErrMsgUnknownLocation   = "unknown locked location"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Command errors
	ErrMsgCommandUnavailable = "command execution not available"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

	ErrNoActiveCombat = errors.New(ErrMsgNoActiveCombat)
	ErrInvalidEnemyID = errors.New(ErrMsgInvalidEnemyID)

	ErrInvalidItemKind    = errors.New(ErrMsgInvalidItemKind)
	ErrItemNotPurchasable = errors.New(ErrMsgItemNotPurchasable)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrUnknownLocation   = errors.New(ErrMsgUnknownLocation)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrCommandUnavailable = errors.New(ErrMsgCommandUnavailable)
)
