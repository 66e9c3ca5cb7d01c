package config

// SimulationConfig contains the fixed-step clock configuration
type SimulationConfig struct {
	TicksPerSecond int     `koanf:"ticks_per_second"`
	FixedDelta     float64 `koanf:"fixed_delta"` // real seconds per tick, derived from TicksPerSecond when zero
}

// TimelineConfig contains animation timeline configuration values
type TimelineConfig struct {
	BlendEnabled  bool    `koanf:"blend_enabled"`
	BlendDuration float64 `koanf:"blend_duration"` // seconds to cross-fade into the next clip
	DefaultSpeed  float64 `koanf:"default_speed"`
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Proximity
	ProximityThreshold float64 `koanf:"proximity_threshold"` // distance at which movement stops short of the opponent
	DodgeProximity     float64 `koanf:"dodge_proximity"`     // max distance for the perfect-dodge trigger

	// Perfect dodge
	PerfectDodgeLead float64 `koanf:"perfect_dodge_lead"` // seconds before an attack window opens

	// Input buffering
	BufferLifetime float64 `koanf:"buffer_lifetime"` // seconds of simulated time a latched action stays valid

	// Combo
	MaxComboStep int `koanf:"max_combo_step"`

	// Cooldowns (seconds)
	DashCooldown  float64 `koanf:"dash_cooldown"`
	MagicCooldown float64 `koanf:"magic_cooldown"`

	// Hit reactions
	DefaultStunDuration float64 `koanf:"default_stun_duration"`
	HurtboxRadius       float64 `koanf:"hurtbox_radius"`
}

// QTEConfig contains quick-time-event configuration values
type QTEConfig struct {
	DefaultTimeScale float64 `koanf:"default_time_scale"`
	Epsilon          float64 `koanf:"epsilon"` // countdown values at or below this are expired
	Assist           float64 `koanf:"assist"`  // multiplier on required time, player setting
}

// EffectsConfig contains effect emission configuration
type EffectsConfig struct {
	OriginOffset      float64 `koanf:"origin_offset"`     // height above the character origin effects emit from
	ParticleLifetime  float64 `koanf:"particle_lifetime"` // seconds
	MaxQueuedSounds   int     `koanf:"max_queued_sounds"` // cues dropped beyond this per frame
	ScreenEffectsOn   bool    `koanf:"screen_effects_on"` // player setting
	HitStopMaxSeconds float64 `koanf:"hit_stop_max_seconds"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `koanf:"follow_smoothing"` // How fast camera follows the player (0.0-1.0)
	ShakeFrequencyX float64 `koanf:"shake_frequency_x"`
	ShakeFrequencyY float64 `koanf:"shake_frequency_y"`
	ClipLength      float64 `koanf:"clip_length"` // seconds an unsynced camera clip plays
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity       float64 `koanf:"gravity"`
	MaxFallSpeed  float64 `koanf:"max_fall_speed"`
	JumpSpeed     float64 `koanf:"jump_speed"`
	GroundHeight  float64 `koanf:"ground_height"`
	Friction      float64 `koanf:"friction"` // planar deceleration, units/s²
	WalkSpeed     float64 `koanf:"walk_speed"`
	TurnSmoothing float64 `koanf:"turn_smoothing"` // fraction of the remaining angle closed per tick
}

// FighterConfig contains the body and weapon dimensions of a fighter
type FighterConfig struct {
	Health      float64 `koanf:"health"`
	WeaponReach float64 `koanf:"weapon_reach"` // tip distance in front of the grip
	WeaponSize  float64 `koanf:"weapon_size"`  // hit volume edge when the attack sets none
	GripHeight  float64 `koanf:"grip_height"`
	SpawnGap    float64 `koanf:"spawn_gap"` // starting distance between the fighters
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	StrictClips bool `koanf:"strict_clips"` // panic on unknown clips instead of ignoring them
	Overlay     bool `koanf:"overlay"`
	LogEvents   bool `koanf:"log_events"`
}

// Config holds general game configuration
type Config struct {
	Width     int    `koanf:"width"`
	Height    int    `koanf:"height"`
	EventsDir string `koanf:"events_dir"`

	ArenaSize int `koanf:"arena_size"` // arena edge in world units
	ArenaCell int `koanf:"arena_cell"` // collision cell edge
}

// Global configuration instances
var C *Config
var Simulation SimulationConfig
var Timeline TimelineConfig
var Combat CombatConfig
var QTE QTEConfig
var Effects EffectsConfig
var Camera CameraConfig
var Physics PhysicsConfig
var Fighter FighterConfig
var Debug DebugConfig

// FixedDelta returns the real seconds per simulation tick.
func FixedDelta() float64 {
	if Simulation.FixedDelta > 0 {
		return Simulation.FixedDelta
	}
	if Simulation.TicksPerSecond <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(Simulation.TicksPerSecond)
}

func init() {
	C = &Config{
		Width:     640,
		Height:    360,
		EventsDir: "content/events",
		ArenaSize: 64,
		ArenaCell: 2,
	}

	Simulation = SimulationConfig{
		TicksPerSecond: 60,
	}

	Timeline = TimelineConfig{
		BlendEnabled:  true,
		BlendDuration: 0.1,
		DefaultSpeed:  1.0,
	}

	Combat = CombatConfig{
		ProximityThreshold:  1.2,
		DodgeProximity:      4.0,
		PerfectDodgeLead:    0.2,
		BufferLifetime:      0.5,
		MaxComboStep:        3,
		DashCooldown:        0.6,
		MagicCooldown:       3.0,
		DefaultStunDuration: 0.4,
		HurtboxRadius:       0.5,
	}

	QTE = QTEConfig{
		DefaultTimeScale: 0.1,
		Epsilon:          1e-6,
		Assist:           1.0,
	}

	Effects = EffectsConfig{
		OriginOffset:      1.0,
		ParticleLifetime:  0.5,
		MaxQueuedSounds:   16,
		ScreenEffectsOn:   true,
		HitStopMaxSeconds: 0.5,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		ShakeFrequencyX: 1.1,
		ShakeFrequencyY: 1.3,
		ClipLength:      1.0,
	}

	Physics = PhysicsConfig{
		Gravity:       30.0,
		MaxFallSpeed:  40.0,
		JumpSpeed:     12.0,
		GroundHeight:  0,
		Friction:      20.0,
		WalkSpeed:     5.0,
		TurnSmoothing: 0.25,
	}

	Fighter = FighterConfig{
		Health:      100,
		WeaponReach: 1.0,
		WeaponSize:  0.6,
		GripHeight:  1.0,
		SpawnGap:    4.0,
	}

	Debug = DebugConfig{
		StrictClips: false,
		Overlay:     true,
	}
}
