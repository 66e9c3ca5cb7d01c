package components

import (
	"github.com/automoto/animevent/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Library  *animations.Library
	Timeline *animations.Timeline
}

// NewAnimationData builds a timeline over the clips configured for character.
func NewAnimationData(character string) AnimationData {
	lib := animations.NewLibraryFromConfig(character)
	return AnimationData{
		Library:  lib,
		Timeline: animations.NewTimeline(lib),
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
