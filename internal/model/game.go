package model

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateSetup           GameState = "setup"             // Registering players
	GameStateRoundInProgress GameState = "round_in_progress" // Collecting secret picks
	GameStateRoundScored     GameState = "round_scored"      // Round scored, more rounds to play
	GameStateFinished        GameState = "finished"          // All rounds played
)

const (
	// MinPlayers is the smallest player count a game can start with
	MinPlayers = 2
	// MinPick is the lowest number a player may pick
	MinPick = 1
)

// RecommendedRounds returns the suggested round count for a player count
func RecommendedRounds(playerCount int) int {
	return 2 * playerCount
}
