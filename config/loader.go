package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides, e.g. ANIMEVENT_COMBAT__BUFFER_LIFETIME=0.3.
const EnvPrefix = "ANIMEVENT_"

// Sentinel errors so callers can use errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// tunables mirrors the global configuration sections for koanf unmarshalling.
type tunables struct {
	Game       Config           `koanf:"game"`
	Simulation SimulationConfig `koanf:"simulation"`
	Timeline   TimelineConfig   `koanf:"timeline"`
	Combat     CombatConfig     `koanf:"combat"`
	QTE        QTEConfig        `koanf:"qte"`
	Effects    EffectsConfig    `koanf:"effects"`
	Camera     CameraConfig     `koanf:"camera"`
	Physics    PhysicsConfig    `koanf:"physics"`
	Fighter    FighterConfig    `koanf:"fighter"`
	Debug      DebugConfig      `koanf:"debug"`
}

func snapshot() tunables {
	return tunables{
		Game:       *C,
		Simulation: Simulation,
		Timeline:   Timeline,
		Combat:     Combat,
		QTE:        QTE,
		Effects:    Effects,
		Camera:     Camera,
		Physics:    Physics,
		Fighter:    Fighter,
		Debug:      Debug,
	}
}

func (t tunables) apply() {
	game := t.Game
	C = &game
	Simulation = t.Simulation
	Timeline = t.Timeline
	Combat = t.Combat
	QTE = t.QTE
	Effects = t.Effects
	Camera = t.Camera
	Physics = t.Physics
	Fighter = t.Fighter
	Debug = t.Debug
}

// Load layers overrides on top of the defaults set in init().
// Order of precedence (low -> high):
//  1. defaults
//  2. YAML file at path, if path is not empty
//  3. env vars prefixed with EnvPrefix; a double underscore separates section and key
//
// The globals are only replaced when the merged result validates.
func Load(path string) error {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(s, "__", ".", 1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	t := snapshot()
	if err := k.UnmarshalWithConf("", &t, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}
	if err := t.validate(); err != nil {
		return err
	}
	t.apply()
	return nil
}

func (t tunables) validate() error {
	switch {
	case t.Simulation.TicksPerSecond <= 0 && t.Simulation.FixedDelta <= 0:
		return fmt.Errorf("%w: simulation needs ticks_per_second or fixed_delta", ErrInvalidConfig)
	case t.Timeline.BlendDuration < 0:
		return fmt.Errorf("%w: timeline.blend_duration must not be negative", ErrInvalidConfig)
	case t.QTE.DefaultTimeScale <= 0 || t.QTE.DefaultTimeScale > 1:
		return fmt.Errorf("%w: qte.default_time_scale must be in (0, 1]", ErrInvalidConfig)
	case t.QTE.Assist <= 0:
		return fmt.Errorf("%w: qte.assist must be positive", ErrInvalidConfig)
	case t.Fighter.Health <= 0:
		return fmt.Errorf("%w: fighter.health must be positive", ErrInvalidConfig)
	case t.Combat.BufferLifetime < 0:
		return fmt.Errorf("%w: combat.buffer_lifetime must not be negative", ErrInvalidConfig)
	}
	return nil
}
