package config

// SettingsConfig contains the player-adjustable combat settings and their steps
type SettingsConfig struct {
	QTEAssistSteps []float64 // multipliers on QTE required time
	DefaultAssist  int       // index into QTEAssistSteps
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		QTEAssistSteps: []float64{1.0, 1.25, 1.5, 2.0},
		DefaultAssist:  0,
	}
}
