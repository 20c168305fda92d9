package model

import "errors"

// Common errors used across the application
var (
	// Registry errors
	ErrDuplicateName = errors.New("player name already registered")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrInvalidName   = errors.New("invalid player name")

	// Round errors
	ErrIncompletePickSet = errors.New("pick set does not match registered players")
	ErrPickOutOfRange    = errors.New("pick out of range")
	ErrAlreadyPicked     = errors.New("player has already picked this round")

	// Game errors
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrInvalidRoundCount   = errors.New("round count must be at least 1")
	ErrGameNotStarted      = errors.New("game has not started")
	ErrGameInProgress      = errors.New("game is in progress")
	ErrGameComplete        = errors.New("game is already complete")

	// Bot errors
	ErrUnknownBotStrategy = errors.New("unknown bot strategy")
)
