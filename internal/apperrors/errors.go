package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPositionNotFound indicates that a position with the given ID does not exist.
	ErrPositionNotFound = errors.New("position not found")

	// ErrLotNotFound indicates that a lot with the given ID does not exist.
	ErrLotNotFound = errors.New("lot not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidDate indicates that a provided date could not be parsed.
	ErrInvalidDate = errors.New("invalid date")
)

// Retrieval errors are the user-facing messages returned when a read fails for
// reasons other than the entity being absent.
var (
	ErrFailedToRetrievePositions = errors.New("failed to retrieve positions")
	ErrFailedToRetrievePosition  = errors.New("failed to retrieve position")
	ErrFailedToRetrieveOverview  = errors.New("failed to retrieve portfolio overview")
	ErrFailedToRetrieveChart     = errors.New("failed to retrieve chart data")
)
