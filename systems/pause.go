package systems

import (
	"image/color"

	"github.com/automoto/animevent/components"
	cfg "github.com/automoto/animevent/config"
	"github.com/automoto/animevent/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var pauseOverlayColor = color.RGBA{0, 0, 0, 160}

// UpdatePause toggles pause on the player's pause action.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if components.Input.Get(e).JustPressed(cfg.ActionPause) {
			pause.IsPaused = !pause.IsPaused
			pause.Toggles++
		}
	})
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, pauseOverlayColor, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED", int(width)/2-18, int(height)/2-8)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Pause))
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
