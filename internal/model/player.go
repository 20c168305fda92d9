package model

// Seat is a player's registration index. It is stable for the life of a game.
type Seat int

// Player represents a game participant and their running score
type Player struct {
	Seat        Seat   `json:"seat"`
	Name        string `json:"name"`
	Score       int    `json:"score"`
	IsBot       bool   `json:"is_bot,omitempty"`
	BotStrategy string `json:"bot_strategy,omitempty"`
}

// Standing is a (name, score) pair used in score snapshots
type Standing struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Standings converts players to standings, preserving order
func Standings(players []Player) []Standing {
	standings := make([]Standing, len(players))
	for i, p := range players {
		standings[i] = Standing{Name: p.Name, Score: p.Score}
	}
	return standings
}
