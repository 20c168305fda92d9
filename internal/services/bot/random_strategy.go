package bot

import (
	"github.com/mcoot/uniquepick/internal/dependencies/random"
	"github.com/mcoot/uniquepick/internal/model"
)

// RandomStrategy picks uniformly from the whole range
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChoosePick returns a random number in [1, N]
func (s *RandomStrategy) ChoosePick(view RoundView) int {
	return s.random.IntRange(model.MinPick, view.PlayerCount)
}
