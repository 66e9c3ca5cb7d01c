package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object groups read from an arena map.
const (
	SpawnGroup  = "Spawns"
	PillarGroup = "Pillars"
)

var ErrNoSpawns = errors.New("arena has no spawn points")

// LoadArena parses a TMX file into an arena layout. One map tile is one
// world unit. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaLayout, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if arenaMap.TileWidth <= 0 || arenaMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size must be positive", tmxPath)
	}

	unitX := 1 / float64(arenaMap.TileWidth)
	unitZ := 1 / float64(arenaMap.TileHeight)
	layout := &ArenaLayout{
		Name:  strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width: float64(arenaMap.Width),
		Depth: float64(arenaMap.Height),
	}

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case SpawnGroup:
			for _, o := range og.Objects {
				layout.Spawns = append(layout.Spawns, SpawnPoint{
					Character: o.Name,
					X:         o.X * unitX,
					Z:         o.Y * unitZ,
					Yaw:       o.Properties.GetFloat("yaw") * math.Pi / 180,
				})
			}
		case PillarGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				layout.Pillars = append(layout.Pillars, SolidRect{
					X: o.X * unitX,
					Z: o.Y * unitZ,
					W: o.Width * unitX,
					D: o.Height * unitZ,
				})
			}
		}
	}
	if len(layout.Spawns) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawns)
	}

	// Sort spawns by character for consistent assignment
	sort.Slice(layout.Spawns, func(i, j int) bool {
		return layout.Spawns[i].Character < layout.Spawns[j].Character
	})

	return layout, nil
}
