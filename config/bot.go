package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay int     // Ticks between decisions
	AttackRange   float64 // Distance to start attacking
	ChaseRange    float64 // Distance to start chasing
	DodgeChance   float64 // Probability of dodging an incoming attack window (0-1)
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulty   BotDifficulty
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

// Current returns the tuning for the active difficulty.
func (b BotConfigData) Current() BotDifficultyConfig {
	return b.Difficulties[b.Difficulty]
}

func init() {
	Bot = BotConfigData{
		Difficulty: BotDifficultyNormal,
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay: 30, // 0.5 second reaction time
				AttackRange:   1.6,
				ChaseRange:    8.0,
				DodgeChance:   0.1,
			},
			BotDifficultyNormal: {
				ReactionDelay: 15,
				AttackRange:   1.8,
				ChaseRange:    10.0,
				DodgeChance:   0.3,
			},
			BotDifficultyHard: {
				ReactionDelay: 5, // Near-instant reaction
				AttackRange:   2.0,
				ChaseRange:    12.0,
				DodgeChance:   0.6,
			},
		},
	}
}
