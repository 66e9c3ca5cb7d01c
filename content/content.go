// Package content embeds the default event documents and arena maps, so
// the game runs without the content directory next to the binary.
package content

import (
	"embed"
	"io/fs"

	"github.com/automoto/animevent/events"
	"github.com/automoto/animevent/shared/leveldata"
)

// DefaultArena is the map a duel uses unless told otherwise.
const DefaultArena = "duel"

//go:embed events/*.yaml
var eventFiles embed.FS

//go:embed arenas/*.tmx
var arenaFiles embed.FS

// Events returns the embedded documents with the events directory as root.
func Events() fs.FS {
	sub, err := fs.Sub(eventFiles, "events")
	if err != nil {
		panic(err)
	}
	return sub
}

// Library decodes the embedded documents.
func Library() (*events.Library, error) {
	return events.LoadFS(Events())
}

// Arena loads an embedded arena map by name.
func Arena(name string) (*leveldata.ArenaLayout, error) {
	return leveldata.LoadArena(arenaFiles, "arenas/"+name+".tmx")
}
