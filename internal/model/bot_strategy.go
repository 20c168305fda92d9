package model

// Bot strategy constants
const (
	BotStrategyRandom     = "random"
	BotStrategyContrarian = "contrarian"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyRandom:
		return "Random"
	case BotStrategyContrarian:
		return "Contrarian"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyRandom, BotStrategyContrarian}
}
