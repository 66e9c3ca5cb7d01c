package scenes

import (
	"math"
	"testing"

	"github.com/automoto/animevent/components"
	cfg "github.com/automoto/animevent/config"
	"github.com/automoto/animevent/content"
	"github.com/automoto/animevent/shared/gamemath"
	"github.com/automoto/animevent/systems/factory"
)

func TestHeadlessDuel(t *testing.T) {
	lib, err := content.Library()
	if err != nil {
		t.Fatalf("Library: %v", err)
	}
	layout, err := content.Arena(content.DefaultArena)
	if err != nil {
		t.Fatalf("Arena: %v", err)
	}

	const limit = 300
	scene := NewArenaScene(nil, ArenaOptions{
		Headless:   true,
		TickLimit:  limit,
		Script:     DuelScript(),
		Layout:     layout,
		Library:    lib,
		Difficulty: cfg.BotDifficultyNormal,
	})
	defer scene.Close()

	fighters := scene.Fighters()
	if len(fighters) != 2 || fighters[0].Name != "player" || fighters[1].Name != "enemy" {
		t.Fatalf("Expected player and enemy, got %+v", fighters)
	}
	spawn, _ := layout.Spawn("player")
	if body := components.Character.Get(scene.player); body.Position().X != spawn.X {
		t.Errorf("Expected the player at the map spawn, got %v", body.Position())
	}

	seen := map[cfg.StateID]bool{}
	for tick := 0; tick < limit+10 && !scene.Finished(); tick++ {
		scene.Update()
		seen[scene.Fighters()[0].State] = true
	}

	if !scene.Finished() {
		t.Fatal("Expected the tick limit to end the duel")
	}
	if !seen[cfg.StateAttack] {
		t.Errorf("Expected the scripted player to attack, saw %v", seen)
	}
	if got := scene.Result().Ticks; got < 1 || got > limit {
		t.Errorf("Expected at most %d ticks, got %d", limit, got)
	}
}

func TestSpawnWithoutLayout(t *testing.T) {
	scene := NewArenaScene(nil, ArenaOptions{Headless: true, Difficulty: cfg.BotDifficultyEasy})
	defer scene.Close()

	arena := factory.GetArena(scene.ECS())
	player := components.Character.Get(scene.player).Position()
	enemy := components.Character.Get(scene.enemy).Position()

	if player.X != arena.Width/2 || enemy.X != arena.Width/2 {
		t.Errorf("Expected both fighters on the center line, got %v and %v", player, enemy)
	}
	if math.Abs(enemy.Z-player.Z-cfg.Fighter.SpawnGap) > 1e-9 {
		t.Errorf("Expected a gap of %v, got %v", cfg.Fighter.SpawnGap, enemy.Z-player.Z)
	}
	if fwd := components.Character.Get(scene.enemy).Orientation().Rotate(gamemath.Forward); fwd.Z > -0.99 {
		t.Errorf("Expected the enemy to face the player, got forward %v", fwd)
	}
	if scene.Finished() {
		t.Error("Expected a fresh duel not to be finished")
	}
}
