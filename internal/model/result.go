package model

// GameResult is a snapshot of the scoreboard with the current leaders.
// At game end Winners holds the final winner set.
type GameResult struct {
	FinalScores []Standing `json:"final_scores"`
	MaxScore    int        `json:"max_score"`
	Winners     []string   `json:"winners"`
}

// IsTie returns true if more than one player shares the top score
func (r GameResult) IsTie() bool {
	return len(r.Winners) > 1
}

// Winner returns the sole winner, or empty string if tie
func (r GameResult) Winner() string {
	if len(r.Winners) != 1 {
		return ""
	}
	return r.Winners[0]
}
