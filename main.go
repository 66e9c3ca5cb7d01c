package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/animevent/config"
	"github.com/automoto/animevent/content"
	"github.com/automoto/animevent/events"
	"github.com/automoto/animevent/fonts"
	"github.com/automoto/animevent/scenes"
	"github.com/automoto/animevent/shared/leveldata"
	"github.com/automoto/animevent/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.ArenaOptions) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, opts)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	headless := flag.Bool("headless", false, "run a scripted duel without a window")
	ticks := flag.Int("ticks", 1200, "tick limit for a headless duel")
	configPath := flag.String("config", "", "YAML tuning file")
	eventsDir := flag.String("events", "", "directory of event documents, watched for changes")
	arenaPath := flag.String("arena", "", "Tiled map of the arena; the embedded duel map by default")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lib, dir := loadLibrary(*eventsDir)
	layout, err := loadArena(*arenaPath)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}
	opts := scenes.ArenaOptions{
		Layout:     layout,
		Library:    lib,
		EventsDir:  dir,
		Watch:      dir != "" && !*headless,
		Difficulty: config.Bot.Difficulty,
	}

	if *headless {
		opts.Headless = true
		opts.TickLimit = *ticks
		opts.Script = scenes.DuelScript()
		runHeadless(opts)
		return
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("animevent")
	ebiten.SetTPS(config.Simulation.TicksPerSecond)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}

// loadLibrary reads the event documents from dir, falling back to the
// embedded defaults. The returned directory is empty when nothing on disk
// can be watched.
func loadLibrary(dir string) (*events.Library, string) {
	if dir == "" {
		dir = config.C.EventsDir
	}
	lib, err := events.LoadDir(dir)
	if err == nil {
		log.Printf("[content] loaded %s", dir)
		return lib, dir
	}
	log.Printf("[content] %v, using embedded documents", err)

	lib, err = content.Library()
	if err != nil {
		log.Fatalf("Failed to load embedded documents: %v", err)
	}
	return lib, ""
}

// loadArena reads a Tiled map from disk, or the embedded default.
func loadArena(path string) (*leveldata.ArenaLayout, error) {
	if path == "" {
		return content.Arena(content.DefaultArena)
	}
	return leveldata.LoadArena(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func runHeadless(opts scenes.ArenaOptions) {
	scene := scenes.NewArenaScene(nil, opts)
	defer scene.Close()

	last := map[string]config.StateID{}
	for tick := 0; tick < opts.TickLimit && !scene.Finished(); tick++ {
		scene.Update()
		for _, f := range scene.Fighters() {
			if prev, ok := last[f.Name]; !ok || prev != f.State {
				log.Printf("[duel] tick %d: %s -> %s (hp %.0f)", tick, f.Name, f.State, f.Health)
				last[f.Name] = f.State
			}
		}
	}

	result := scene.Result()
	winner := result.Winner
	if winner == "" {
		winner = "none"
	}
	log.Printf("[duel] finished after %d ticks, winner %s", result.Ticks, winner)
	for _, s := range result.Scores {
		log.Printf("[duel] %s: %d hits, %.0f damage, %d KOs", s.Name, s.HitsDealt, s.Damage, s.KOs)
	}
}
