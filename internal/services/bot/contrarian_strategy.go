package bot

import (
	"github.com/mcoot/uniquepick/internal/dependencies/random"
	"github.com/mcoot/uniquepick/internal/model"
)

// ContrarianStrategy picks a number nobody chose last round, betting that the
// table repeats itself
type ContrarianStrategy struct {
	random random.Random
}

// NewContrarianStrategy creates a new ContrarianStrategy
func NewContrarianStrategy(rnd random.Random) *ContrarianStrategy {
	return &ContrarianStrategy{random: rnd}
}

// ChoosePick returns a random number unused in the previous round, or any
// random number on the first round or when every number was used
func (s *ContrarianStrategy) ChoosePick(view RoundView) int {
	if len(view.History) == 0 {
		return s.random.IntRange(model.MinPick, view.PlayerCount)
	}

	used := make(map[int]bool)
	for _, value := range view.History[len(view.History)-1].Picks {
		used[value] = true
	}

	var unused []int
	for v := model.MinPick; v <= view.PlayerCount; v++ {
		if !used[v] {
			unused = append(unused, v)
		}
	}
	if len(unused) == 0 {
		return s.random.IntRange(model.MinPick, view.PlayerCount)
	}
	return unused[s.random.IntRange(0, len(unused)-1)]
}
