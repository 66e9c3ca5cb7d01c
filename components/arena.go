package components

import "github.com/yohamta/donburi"

// ArenaData holds the arena extents in world units (singleton component).
type ArenaData struct {
	Name  string
	Width float64
	Depth float64
}

var Arena = donburi.NewComponentType[ArenaData]()
