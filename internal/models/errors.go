package models

import "errors"

// Domain errors shared by the store and service layers. Handlers classify
// these with errors.Is to pick the response code and reason.
var (
	ErrGameNotFound  = errors.New("game not found")
	ErrVenueNotFound = errors.New("venue not found")
	ErrUserNotFound  = errors.New("user not found")

	// ErrGameNotOpen is returned when joining a game outside the open state.
	ErrGameNotOpen = errors.New("game is not open for registration")

	// ErrGameFull is returned when no slots remain.
	ErrGameFull = errors.New("game is full")

	// ErrAlreadyJoined is returned when a participation row already exists
	// for the (game, user) pair, whether caught by the pre-check or by the
	// unique constraint under a race.
	ErrAlreadyJoined = errors.New("user is already registered for this game")

	// ErrNotRegistered is returned when leaving a game the user never joined.
	ErrNotRegistered = errors.New("user is not registered for this game")

	// ErrGameStarted blocks leaving or deleting a game that is in progress
	// or completed.
	ErrGameStarted = errors.New("game has already started")

	// ErrTooLateToLeave enforces the cutoff before kickoff.
	ErrTooLateToLeave = errors.New("cannot leave within 2 hours of game time")
)
