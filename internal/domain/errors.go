package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Purchase errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgMaxLevel          = "already at max level"

	// Lookup errors
	ErrMsgUnknownProducer = "unknown producer"
	ErrMsgUnknownBoost    = "unknown boost"
	ErrMsgUnknownResource = "unknown resource"

	// Persistence errors
	ErrMsgCheckpointNotFound = "checkpoint not found"
	ErrMsgCorruptCheckpoint  = "corrupt checkpoint"

	// Session errors
	ErrMsgSessionStopped = "session stopped"

	// Configuration errors
	ErrMsgInvalidConfig = "invalid configuration"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrMaxLevel          = errors.New(ErrMsgMaxLevel)

	ErrUnknownProducer = errors.New(ErrMsgUnknownProducer)
	ErrUnknownBoost    = errors.New(ErrMsgUnknownBoost)
	ErrUnknownResource = errors.New(ErrMsgUnknownResource)

	ErrCheckpointNotFound = errors.New(ErrMsgCheckpointNotFound)
	ErrCorruptCheckpoint  = errors.New(ErrMsgCorruptCheckpoint)

	ErrSessionStopped = errors.New(ErrMsgSessionStopped)

	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)
)
