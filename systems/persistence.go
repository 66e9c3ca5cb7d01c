package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/animevent/components"
	cfg "github.com/automoto/animevent/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	AssistIndex   int  `json:"assistIndex"`
	ScreenEffects bool `json:"screenEffects"`
	Debug         bool `json:"debug"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "animevent",
	})
	if err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. Nil settings mean nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}
	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[persistence] could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("[persistence] could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the SettingsData component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		AssistIndex:   s.AssistIndex,
		ScreenEffects: s.ScreenEffects,
		Debug:         s.Debug,
	})
}

// ApplySavedSettings applies loaded settings to the settings component and
// the global tuning.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	ApplySavedSettingsGlobal(saved)

	settings := GetOrCreateSettings(e)
	settings.AssistIndex = clampAssist(saved.AssistIndex)
	settings.ScreenEffects = saved.ScreenEffects
	settings.Debug = saved.Debug
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference
// Used during initial game startup before scenes are created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.QTE.Assist = cfg.Settings.QTEAssistSteps[clampAssist(saved.AssistIndex)]
	cfg.Effects.ScreenEffectsOn = saved.ScreenEffects
	cfg.Debug.Overlay = saved.Debug
}

func clampAssist(i int) int {
	if i < 0 || i >= len(cfg.Settings.QTEAssistSteps) {
		return cfg.Settings.DefaultAssist
	}
	return i
}
