// Package leveldata parses arena layouts authored as Tiled maps.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

// ArenaLayout holds the arena extents, spawn points and solid pillars, in
// world units. Map X is world X and map Y is world Z.
type ArenaLayout struct {
	Name    string
	Width   float64
	Depth   float64
	Spawns  []SpawnPoint
	Pillars []SolidRect
}

// SolidRect is an axis-aligned obstacle in the XZ plane.
type SolidRect struct {
	X, Z, W, D float64
}

// SpawnPoint places a character, facing Yaw radians.
type SpawnPoint struct {
	Character string
	X, Z      float64
	Yaw       float64
}

// Spawn returns the spawn point for character.
func (a *ArenaLayout) Spawn(character string) (SpawnPoint, bool) {
	for _, s := range a.Spawns {
		if s.Character == character {
			return s, true
		}
	}
	return SpawnPoint{}, false
}
