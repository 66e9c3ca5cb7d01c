package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/animevent/components"
	"github.com/automoto/animevent/systems/factory"
	"github.com/automoto/animevent/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	camX, camY, ok := cameraTransform(ecs, screen)
	if !ok {
		return // No camera yet
	}

	// Draw all collision objects in the space
	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// resolv Y is arena Z, which points up the screen
			x := camX + obj.X*pixelsPerUnit
			y := camY - (obj.Y+obj.H)*pixelsPerUnit
			w, h := obj.W*pixelsPerUnit, obj.H*pixelsPerUnit

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvWeapon) {
				c = color.RGBA{255, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255} // Red
			}
			vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
		}
	}

	ebitenutil.DebugPrintAt(screen, debugText(ecs), 4, 4)
}

// debugText summarizes the shared clock and every fighter's live state.
func debugText(e *ecs.ECS) string {
	sim := factory.GetSimulation(e)
	var b strings.Builder
	fmt.Fprintf(&b, "tick %d  t=%.2fs  scale %.2f  hitstop %.2fs\n",
		sim.Tick(), sim.Clock(), sim.TimeScale.Scale(), sim.HitStop.Remaining())
	if active := sim.Overlays.Active(); len(active) > 0 {
		fmt.Fprintf(&b, "overlays %v\n", active)
	}

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		body := components.Character.Get(entry)
		hp := components.Health.Get(entry)
		m := components.State.Get(entry).Machine
		if m == nil {
			return
		}
		if m.Destroyed() {
			fmt.Fprintf(&b, "%s  KO\n", body.Name)
			return
		}
		fmt.Fprintf(&b, "%s  %s  clip %s %.2f  hp %.0f/%.0f  live %d  buffered %d\n",
			body.Name, m.State(), m.Timeline.CurrentClip(), m.Timeline.CurrentTime(),
			hp.Current, hp.Max, m.Dispatcher().Live(), m.Actor.Buffer.Len())
		if armed := m.Dispatcher().QTE.Armed(); armed > 0 {
			fmt.Fprintf(&b, "  qte armed %d\n", armed)
		}
	})
	return b.String()
}
