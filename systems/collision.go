package systems

import (
	"github.com/automoto/animevent/components"
	"github.com/automoto/animevent/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions pushes fighters out of solid pillars. Runs after
// physics, so both event-driven and integrated movement are resolved.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Character.Get(e)
		if body.Hurtbox == nil {
			return
		}
		check := body.Hurtbox.Check(0, 0, tags.ResolvSolid)
		if check == nil {
			return
		}
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			resolveSolidOverlap(body, solid)
		}
	})
}

// resolveSolidOverlap moves the body out along the axis of least overlap.
func resolveSolidOverlap(body *components.CharacterData, solid *resolv.Object) {
	box := body.Hurtbox
	left := box.X + box.W - solid.X
	right := solid.X + solid.W - box.X
	back := box.Y + box.H - solid.Y
	front := solid.Y + solid.H - box.Y
	if left <= 0 || right <= 0 || back <= 0 || front <= 0 {
		return
	}

	pos := body.Position()
	dx := -left
	if right < left {
		dx = right
	}
	dz := -back
	if front < back {
		dz = front
	}
	if abs(dx) < abs(dz) {
		pos.X += dx
		body.Velocity.X = 0
	} else {
		pos.Z += dz
		body.Velocity.Z = 0
	}
	body.SetPosition(pos)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
