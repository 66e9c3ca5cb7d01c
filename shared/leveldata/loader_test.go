package leveldata

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"
)

const testArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Spawns">
  <object id="1" name="player" x="160" y="32">
   <properties><property name="yaw" type="float" value="0"/></properties>
  </object>
  <object id="2" name="enemy" x="160" y="128">
   <properties><property name="yaw" type="float" value="180"/></properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Pillars">
  <object id="3" x="32" y="48" width="32" height="16"/>
  <object id="4" name="marker" x="64" y="64"/>
 </objectgroup>
</map>
`

const emptyArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="8" height="8" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Pillars">
  <object id="1" x="0" y="0" width="16" height="16"/>
 </objectgroup>
</map>
`

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{"maps/ring.tmx": {Data: []byte(testArena)}}

	layout, err := LoadArena(fsys, "maps/ring.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	if layout.Name != "ring" {
		t.Errorf("Expected name ring, got %q", layout.Name)
	}
	if layout.Width != 20 || layout.Depth != 10 {
		t.Errorf("Expected 20x10 arena, got %vx%v", layout.Width, layout.Depth)
	}

	if len(layout.Spawns) != 2 {
		t.Fatalf("Expected 2 spawns, got %d", len(layout.Spawns))
	}
	// Sorted by character
	if layout.Spawns[0].Character != "enemy" || layout.Spawns[1].Character != "player" {
		t.Errorf("Unexpected spawn order %+v", layout.Spawns)
	}

	player, ok := layout.Spawn("player")
	if !ok {
		t.Fatal("Expected a player spawn")
	}
	if !near(player.X, 10) || !near(player.Z, 2) || player.Yaw != 0 {
		t.Errorf("Unexpected player spawn %+v", player)
	}
	enemy, _ := layout.Spawn("enemy")
	if !near(enemy.Yaw, math.Pi) || !near(enemy.Z, 8) {
		t.Errorf("Unexpected enemy spawn %+v", enemy)
	}
	if _, ok := layout.Spawn("referee"); ok {
		t.Error("Expected no spawn for an unknown character")
	}

	// Zero-size objects are not solid
	if len(layout.Pillars) != 1 {
		t.Fatalf("Expected 1 pillar, got %d", len(layout.Pillars))
	}
	p := layout.Pillars[0]
	if !near(p.X, 2) || !near(p.Z, 3) || !near(p.W, 2) || !near(p.D, 1) {
		t.Errorf("Unexpected pillar %+v", p)
	}
}

func TestLoadArenaErrors(t *testing.T) {
	fsys := fstest.MapFS{"empty.tmx": {Data: []byte(emptyArena)}}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"no spawns", "empty.tmx", ErrNoSpawns},
		{"missing file", "missing.tmx", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadArena(fsys, tt.path)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
