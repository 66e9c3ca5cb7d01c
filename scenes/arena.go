package scenes

import (
	"image/color"
	"log"
	"math"
	"sync"

	"github.com/automoto/animevent/components"
	cfg "github.com/automoto/animevent/config"
	"github.com/automoto/animevent/events"
	"github.com/automoto/animevent/shared/gamemath"
	"github.com/automoto/animevent/shared/leveldata"
	"github.com/automoto/animevent/systems"
	"github.com/automoto/animevent/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ArenaOptions configures a duel.
type ArenaOptions struct {
	// Headless skips the systems that read devices; the player must then be
	// driven by Script.
	Headless bool
	// TickLimit ends the match after this many ticks. Zero is unlimited.
	TickLimit int
	// Script replaces keyboard and gamepad input for the player.
	Script []components.ScriptedPress

	// Layout supplies the arena bounds, pillars and spawns. Nil gives an
	// empty square arena.
	Layout *leveldata.ArenaLayout

	Library    *events.Library
	EventsDir  string
	Watch      bool
	Difficulty cfg.BotDifficulty
}

// FighterStatus is a read-only view of one fighter for reporting.
type FighterStatus struct {
	Name   string
	State  cfg.StateID
	Health float64
	Down   bool
}

// ArenaScene is a one-on-one duel between the player and a bot.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         ArenaOptions
	once         sync.Once

	player      *donburi.Entry
	enemy       *donburi.Entry
	resultTicks int
}

// rematchDelay is how long the results stay up, in ticks.
const rematchDelay = 240

// NewArenaScene creates a duel. sc may be nil when nothing follows the
// match, as in headless runs.
func NewArenaScene(sc SceneChanger, opts ArenaOptions) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, opts: opts}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if !systems.IsMatchFinished(as.ecs) || as.sceneChanger == nil || as.opts.Headless {
		return
	}
	// Show the results, then rematch with the same options
	as.resultTicks++
	if as.resultTicks >= rematchDelay {
		as.Close()
		as.sceneChanger.ChangeScene(NewArenaScene(as.sceneChanger, as.opts))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// ECS exposes the scene's world, configuring it on first use.
func (as *ArenaScene) ECS() *ecs.ECS {
	as.once.Do(as.configure)
	return as.ecs
}

// Finished reports whether the duel has ended.
func (as *ArenaScene) Finished() bool {
	return as.ecs != nil && systems.IsMatchFinished(as.ecs)
}

// Result returns the final match state.
func (as *ArenaScene) Result() components.MatchData {
	return *factory.GetMatch(as.ECS())
}

// Fighters reports the player and the enemy, in that order.
func (as *ArenaScene) Fighters() []FighterStatus {
	as.once.Do(as.configure)
	out := make([]FighterStatus, 0, 2)
	for _, e := range []*donburi.Entry{as.player, as.enemy} {
		if e == nil || !e.Valid() {
			continue
		}
		m := components.State.Get(e).Machine
		out = append(out, FighterStatus{
			Name:   components.Character.Get(e).Name,
			State:  m.State(),
			Health: components.Health.Get(e).Current,
			Down:   m.Destroyed(),
		})
	}
	return out
}

// Close stops the content watcher.
func (as *ArenaScene) Close() {
	if as.ecs != nil {
		systems.CloseContent(as.ecs)
	}
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that run even when paused
	if !as.opts.Headless {
		ecs.AddSystem(systems.UpdateSettings)
	}
	ecs.AddSystem(systems.UpdateContent)

	// Input sources, then pause
	if !as.opts.Headless {
		ecs.AddSystem(systems.UpdateInput)
	}
	ecs.AddSystem(systems.UpdateScripts)
	ecs.AddSystem(systems.UpdateBots)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSimulation))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCharacters))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCharacterPhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateWeapons))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMatch))

	ecs.AddSystem(systems.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Overlay, systems.DrawOverlays)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	as.ecs = ecs

	// Singletons first: fighters read them while being created.
	arena := factory.CreateArena(ecs, as.opts.Layout)
	cameraEntry := factory.CreateCamera(ecs)
	factory.GetSimulation(ecs)
	factory.CreateContent(ecs, as.opts.EventsDir, as.opts.Library)
	factory.GetMatch(ecs).Limit = as.opts.TickLimit
	if !as.opts.Headless {
		restoreSettings(ecs)
	}

	player := as.spawnPoint(arena, "player")
	enemy := as.spawnPoint(arena, "enemy")
	playerPos := gamemath.Vec3{X: player.X, Y: cfg.Physics.GroundHeight, Z: player.Z}
	enemyPos := gamemath.Vec3{X: enemy.X, Y: cfg.Physics.GroundHeight, Z: enemy.Z}

	if as.opts.Script != nil {
		as.player = factory.CreateScriptedPlayer(ecs, playerPos, player.Yaw, as.opts.Script)
	} else {
		as.player = factory.CreatePlayer(ecs, playerPos, player.Yaw)
	}
	as.enemy = factory.CreateEnemy(ecs, enemyPos, enemy.Yaw, as.opts.Difficulty)
	factory.Pair(as.player, as.enemy)

	// Snap camera to the fighters' midpoint to prevent panning from (0,0)
	camera := components.Camera.Get(cameraEntry)
	camera.Position.X = (playerPos.X + enemyPos.X) / 2
	camera.Position.Y = (playerPos.Z + enemyPos.Z) / 2

	if as.opts.Watch {
		if err := systems.WatchContent(ecs); err != nil {
			log.Printf("[content] hot reload disabled: %v", err)
		}
	}
}

// spawnPoint returns the layout's spawn for character. Without one, the
// fighters face each other across the arena center, the player at the near
// side.
func (as *ArenaScene) spawnPoint(arena *components.ArenaData, character string) leveldata.SpawnPoint {
	if as.opts.Layout != nil {
		if s, ok := as.opts.Layout.Spawn(character); ok {
			return s
		}
	}
	half := cfg.Fighter.SpawnGap / 2
	s := leveldata.SpawnPoint{Character: character, X: arena.Width / 2, Z: arena.Depth/2 - half}
	if character != "player" {
		s.Z = arena.Depth/2 + half
		s.Yaw = math.Pi
	}
	return s
}

// restoreSettings creates the settings singleton and applies
// the persisted settings, if any.
func restoreSettings(e *ecs.ECS) {
	systems.GetOrCreateSettings(e)
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(e, saved)
	}
}

// DuelScript is a fixed player routine: close in with a three-hit combo,
// dodge the reply and counter, then dash in for a spell.
func DuelScript() []components.ScriptedPress {
	return []components.ScriptedPress{
		{At: 10, Hold: 20, Action: cfg.ActionMoveForward},
		{At: 30, Hold: 1, Action: cfg.ActionAttack},
		{At: 50, Hold: 1, Action: cfg.ActionAttack},
		{At: 72, Hold: 1, Action: cfg.ActionAttack},
		{At: 150, Hold: 1, Action: cfg.ActionDodge},
		{At: 162, Hold: 1, Action: cfg.ActionCounter},
		{At: 240, Hold: 1, Action: cfg.ActionDash},
		{At: 262, Hold: 1, Action: cfg.ActionAttack},
		{At: 330, Hold: 1, Action: cfg.ActionMagic},
		{At: 420, Hold: 1, Action: cfg.ActionAttack},
		{At: 440, Hold: 1, Action: cfg.ActionAttack},
		{At: 462, Hold: 1, Action: cfg.ActionAttack},
	}
}
