package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/uniquepick/internal/dependencies/mocks"
	"github.com/mcoot/uniquepick/internal/model"
	"github.com/mcoot/uniquepick/internal/services/bot"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	random     *bot.RandomStrategy
	contrarian *bot.ContrarianStrategy
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.random = bot.NewRandomStrategy(s.mockRandom)
	s.contrarian = bot.NewContrarianStrategy(s.mockRandom)
}

func (s *StrategySuite) TestRandom_UsesFullRange() {
	s.mockRandom.QueueIntRange(3)

	pick := s.random.ChoosePick(bot.RoundView{PlayerCount: 4, Round: 1})

	s.Equal(3, pick)
	s.Equal([][2]int{{1, 4}}, s.mockRandom.Ranges)
}

func (s *StrategySuite) TestContrarian_FirstRoundIsRandom() {
	s.mockRandom.QueueIntRange(2)

	pick := s.contrarian.ChoosePick(bot.RoundView{PlayerCount: 3, Round: 1})

	s.Equal(2, pick)
	s.Equal([][2]int{{1, 3}}, s.mockRandom.Ranges)
}

func (s *StrategySuite) TestContrarian_AvoidsLastRoundPicks() {
	view := bot.RoundView{
		PlayerCount: 4,
		Round:       2,
		History: []model.RoundRecord{
			{Number: 1, Picks: model.PickSet{"A": 1, "B": 3, "C": 3, "D": 1}},
		},
	}
	// Unused values are [2, 4]; index 1 selects 4
	s.mockRandom.QueueIntRange(1)

	s.Equal(4, s.contrarian.ChoosePick(view))
	s.Equal([][2]int{{0, 1}}, s.mockRandom.Ranges)
}

func (s *StrategySuite) TestContrarian_OnlyLooksAtLastRound() {
	view := bot.RoundView{
		PlayerCount: 3,
		Round:       3,
		History: []model.RoundRecord{
			{Number: 1, Picks: model.PickSet{"A": 2, "B": 2, "C": 2}},
			{Number: 2, Picks: model.PickSet{"A": 1, "B": 3, "C": 3}},
		},
	}
	s.mockRandom.QueueIntRange(0)

	s.Equal(2, s.contrarian.ChoosePick(view))
}

func (s *StrategySuite) TestContrarian_FallsBackWhenEveryValueUsed() {
	view := bot.RoundView{
		PlayerCount: 2,
		Round:       2,
		History: []model.RoundRecord{
			{Number: 1, Picks: model.PickSet{"A": 1, "B": 2}},
		},
	}
	s.mockRandom.QueueIntRange(2)

	s.Equal(2, s.contrarian.ChoosePick(view))
	s.Equal([][2]int{{1, 2}}, s.mockRandom.Ranges)
}
