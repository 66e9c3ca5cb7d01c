package systems

import (
	"image/color"

	"github.com/automoto/animevent/components"
	cfg "github.com/automoto/animevent/config"
	"github.com/automoto/animevent/events"
	"github.com/automoto/animevent/systems/factory"
	"github.com/automoto/animevent/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pixelsPerUnit maps arena units to screen pixels.
const pixelsPerUnit = 16.0

var (
	floorColor    = color.RGBA{30, 30, 36, 255}
	wallColor     = color.RGBA{90, 90, 100, 255}
	playerColor   = color.RGBA{70, 130, 255, 255}
	enemyColor    = color.RGBA{230, 70, 70, 255}
	stunColor     = color.RGBA{255, 200, 60, 255}
	flashColor    = color.RGBA{255, 255, 255, 255}
	weaponColor   = color.RGBA{200, 200, 200, 255}
	armedColor    = color.RGBA{255, 120, 0, 255}
	particleColor = color.RGBA{255, 240, 160, 255}
)

// overlayColors tints the screen for each enabled post effect.
var overlayColors = map[events.PostEffect]color.RGBA{
	events.PostEffectDepthOfField: {20, 20, 40, 60},
	events.PostEffectVignette:     {0, 0, 0, 90},
	events.PostEffectRadialBlur:   {255, 255, 255, 30},
	events.PostEffectGrayscale:    {90, 90, 90, 80},
}

// cameraTransform returns the screen offset of the arena origin.
func cameraTransform(e *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - (camera.Position.X+camera.Offset.X)*pixelsPerUnit
	camY := float64(height)/2 - (camera.Position.Y+camera.Offset.Y)*pixelsPerUnit
	return camX, camY, true
}

// DrawArena draws the arena, fighters, weapons and particles top-down.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraTransform(e, screen)
	if !ok {
		return
	}
	toScreen := func(x, z float64) (float32, float32) {
		// Arena forward (+Z) is screen up
		return float32(camX + x*pixelsPerUnit), float32(camY - z*pixelsPerUnit)
	}

	arena := factory.GetArena(e)
	x0, y0 := toScreen(0, arena.Depth)
	vector.FillRect(screen, x0, y0, float32(arena.Width*pixelsPerUnit), float32(arena.Depth*pixelsPerUnit), floorColor, false)

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		// Object Y is arena Z; the far edge is at the top of the screen
		wx, wy := toScreen(obj.X, obj.Y+obj.H)
		vector.FillRect(screen, wx, wy, float32(obj.W*pixelsPerUnit), float32(obj.H*pixelsPerUnit), wallColor, false)
	})

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		state := components.State.Get(entry)
		if state.Machine == nil || state.Machine.Destroyed() {
			return
		}
		body := components.Character.Get(entry)
		c := playerColor
		if entry.HasComponent(tags.Enemy) {
			c = enemyColor
		}
		switch {
		case body.FlashTicks > 0:
			c = flashColor
		case state.Machine.IsStunned():
			c = stunColor
		}
		p := body.Position()
		r := float32(cfg.Combat.HurtboxRadius * pixelsPerUnit)
		sx, sy := toScreen(p.X, p.Z)
		// Height lifts the body toward the top of the screen
		sy -= float32(p.Y * pixelsPerUnit / 2)
		vector.FillCircle(screen, sx, sy, r, c, true)
	})

	tags.Weapon.Each(e.World, func(entry *donburi.Entry) {
		w := components.Weapon.Get(entry)
		if w.Holder == nil {
			return
		}
		c := weaponColor
		if w.Armed() {
			c = armedColor
		}
		hx, hy := toScreen(w.Holder.Position().X, w.Holder.Position().Z)
		tip := w.TipPosition()
		tx, ty := toScreen(tip.X, tip.Z)
		vector.StrokeLine(screen, hx, hy, tx, ty, 2, c, true)
	})

	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry).Position
		sx, sy := toScreen(p.X, p.Z)
		vector.FillCircle(screen, sx, sy, 3, particleColor, true)
	})
}

// DrawOverlays tints the screen for the enabled post effects.
func DrawOverlays(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(e).ScreenEffects {
		return
	}
	sim := factory.GetSimulation(e)
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	for _, p := range sim.Overlays.Active() {
		if c, ok := overlayColors[p]; ok {
			vector.FillRect(screen, 0, 0, width, height, c, false)
		}
	}
}
