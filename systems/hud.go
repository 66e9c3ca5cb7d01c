package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/animevent/components"
	cfg "github.com/automoto/animevent/config"
	"github.com/automoto/animevent/fonts"
	"github.com/automoto/animevent/systems/factory"
	"github.com/automoto/animevent/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
)

var (
	hudBackColor  = color.RGBA{40, 40, 40, 255}
	hudHealthLow  = color.RGBA{220, 60, 40, 255}
	hudHealthHigh = color.RGBA{40, 220, 40, 255}
	hudTextColor  = color.RGBA{255, 255, 255, 255}
	hudTitleColor = color.RGBA{255, 165, 0, 255}
	hudDimColor   = color.RGBA{0, 0, 0, 200}
)

// DrawHUD renders a health bar per fighter, the player's on the left, and
// the results once the match is over.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.Bold) {
		return
	}
	width := screen.Bounds().Dx()

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		x := hudMargin
		if e.HasComponent(tags.Enemy) {
			x = width - hudMargin - hudBarWidth
		}
		drawHealthBar(screen, x, components.Character.Get(e).Name, components.Health.Get(e))
	})

	if match := factory.GetMatch(ecs); match.Ended {
		drawMatchResults(screen, match)
	}
}

func drawHealthBar(screen *ebiten.Image, x int, name string, hp *components.HealthData) {
	// Background (dark gray)
	vector.FillRect(screen,
		float32(x), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		hudBackColor, false)

	ratio := float32(0)
	if hp.Max > 0 {
		ratio = float32(hp.Current / hp.Max)
	}
	if ratio < 0 {
		ratio = 0
	}
	c := hudHealthHigh
	if ratio < 0.3 {
		c = hudHealthLow
	}
	vector.FillRect(screen,
		float32(x), float32(hudMargin),
		float32(hudBarWidth)*ratio, float32(hudBarHeight),
		c, false)

	text.Draw(screen, name, fonts.Small.Get(), x, hudMargin+hudBarHeight+12, hudTextColor)
}

func drawMatchResults(screen *ebiten.Image, match *components.MatchData) {
	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)
	fontFace := fonts.Bold.Get()
	titleFont := fonts.Title.Get()

	// Full overlay
	vector.FillRect(screen, 0, 0, float32(width), float32(height), hudDimColor, false)

	// Title
	title := "MATCH OVER"
	titleWidth := len(title) * 16
	titleX := int(width/2) - titleWidth/2
	text.Draw(screen, title, titleFont, titleX, 60, hudTitleColor)

	winnerStr := "Time!"
	if match.Winner != "" {
		winnerStr = fmt.Sprintf("%s wins", match.Winner)
	}
	winnerWidth := len(winnerStr) * 7
	winnerX := int(width/2) - winnerWidth/2
	text.Draw(screen, winnerStr, fontFace, winnerX, 100, hudTextColor)

	// Score table
	y := 140
	for _, score := range match.Scores {
		scoreStr := fmt.Sprintf("%s: %d hits / %.0f damage / %d KOs", score.Name, score.HitsDealt, score.Damage, score.KOs)
		scoreWidth := len(scoreStr) * 7
		x := int(width/2) - scoreWidth/2
		text.Draw(screen, scoreStr, fontFace, x, y, hudTextColor)
		y += 25
	}
}
