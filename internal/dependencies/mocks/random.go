package mocks

import (
	"github.com/mcoot/uniquepick/internal/dependencies/random"
)

// MockRandom replays queued results. When a queue runs dry IntRange returns
// lo and String returns an empty string.
type MockRandom struct {
	IntRangeResults []int
	intRangeIndex   int

	StringResults []string
	stringIndex   int

	// Ranges records the [lo, hi] bounds of every IntRange call
	Ranges [][2]int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// IntRange returns the next queued result without checking it against the bounds
func (r *MockRandom) IntRange(lo, hi int) int {
	r.Ranges = append(r.Ranges, [2]int{lo, hi})
	if r.intRangeIndex >= len(r.IntRangeResults) {
		return lo
	}
	result := r.IntRangeResults[r.intRangeIndex]
	r.intRangeIndex++
	return result
}

// String returns the next queued result
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex >= len(r.StringResults) {
		return ""
	}
	result := r.StringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// QueueIntRange adds values to the IntRange result queue
func (r *MockRandom) QueueIntRange(values ...int) {
	r.IntRangeResults = append(r.IntRangeResults, values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}
