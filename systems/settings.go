package systems

import (
	"log"

	"github.com/automoto/animevent/components"
	cfg "github.com/automoto/animevent/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating
// it from the global tuning if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug:         cfg.Debug.Overlay,
			ScreenEffects: cfg.Effects.ScreenEffectsOn,
			AssistIndex:   assistIndexOf(cfg.QTE.Assist),
		})
	}
	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

func assistIndexOf(v float64) int {
	for i, step := range cfg.Settings.QTEAssistSteps {
		if step == v {
			return i
		}
	}
	return cfg.Settings.DefaultAssist
}

// UpdateSettings handles the settings hotkeys: F1 debug overlay, F2 QTE
// assist, F3 screen effects. Changes are saved immediately.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	changed := false

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		settings.Debug = !settings.Debug
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		settings.AssistIndex = (settings.AssistIndex + 1) % len(cfg.Settings.QTEAssistSteps)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		settings.ScreenEffects = !settings.ScreenEffects
		changed = true
	}
	if !changed {
		return
	}

	applySettings(settings)
	log.Printf("[settings] debug=%t assist=%.2f effects=%t", settings.Debug, cfg.QTE.Assist, settings.ScreenEffects)
	SaveCurrentSettings(settings)
}

func applySettings(s *components.SettingsData) {
	cfg.QTE.Assist = cfg.Settings.QTEAssistSteps[clampAssist(s.AssistIndex)]
	cfg.Effects.ScreenEffectsOn = s.ScreenEffects
	cfg.Debug.Overlay = s.Debug
}
