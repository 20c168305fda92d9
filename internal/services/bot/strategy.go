package bot

import "github.com/mcoot/uniquepick/internal/model"

// RoundView is what a bot may see when choosing: the public history, never
// the picks of the round in progress
type RoundView struct {
	PlayerCount int
	Round       int
	History     []model.RoundRecord
}

// Strategy defines how a bot chooses its secret number
type Strategy interface {
	// ChoosePick returns a number in [1, view.PlayerCount]
	ChoosePick(view RoundView) int
}
