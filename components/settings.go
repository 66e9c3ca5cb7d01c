package components

import "github.com/yohamta/donburi"

// SettingsData stores the player-facing combat settings (singleton component)
type SettingsData struct {
	Debug         bool
	ScreenEffects bool
	AssistIndex   int // index into config.Settings.QTEAssistSteps
}

var Settings = donburi.NewComponentType[SettingsData]()
