package model

import (
	"sort"
	"time"
)

// PickSet maps each player name to the number they picked for a round
type PickSet map[string]int

// Names returns the player names in the pick set, sorted
func (p PickSet) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Deltas maps each player name to the score change they received for a round
type Deltas map[string]int

// RoundRecord is the outcome of one scored round
type RoundRecord struct {
	Number    int        `json:"round"`
	Picks     PickSet    `json:"picks"`
	Deltas    Deltas     `json:"deltas"`
	Standings []Standing `json:"standings"`
	ScoredAt  time.Time  `json:"scored_at"`
}
