package systems

import (
	"log"

	"github.com/automoto/animevent/components"
	"github.com/automoto/animevent/events"
	"github.com/automoto/animevent/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WatchContent starts hot reload of the event documents in the content
// directory.
func WatchContent(e *ecs.ECS) error {
	content := factory.GetContent(e)
	if content.Dir == "" || content.Watcher != nil {
		return nil
	}
	w, err := events.NewWatcher(content.Dir)
	if err != nil {
		return err
	}
	content.Watcher = w
	log.Printf("[content] watching %s", content.Dir)
	return nil
}

// UpdateContent drains watcher notifications and swaps the schedule
// library at the frame boundary. Live states keep the schedule they
// entered with; the next state picks up the new data.
func UpdateContent(e *ecs.ECS) {
	content := factory.GetContent(e)
	if content.Watcher != nil {
		drainWatcher(content)
	}
	if !content.TakeDirty() {
		return
	}

	lib, err := events.LoadDir(content.Dir)
	if err != nil {
		// Keep the last good library
		content.LastErr = err
		log.Printf("[content] reload failed: %v", err)
		return
	}
	content.Library = lib
	content.LastErr = nil
	content.Reloads++
	components.State.Each(e.World, func(entry *donburi.Entry) {
		if m := components.State.Get(entry).Machine; m != nil {
			m.SetLibrary(lib)
		}
	})
	log.Printf("[content] reloaded %s (%d characters)", content.Dir, len(lib.Characters()))
}

func drainWatcher(content *components.ContentData) {
	for {
		select {
		case path, ok := <-content.Watcher.Events:
			if !ok {
				content.Watcher = nil
				return
			}
			log.Printf("[content] %s changed", path)
			content.MarkDirty()
		case err, ok := <-content.Watcher.Errors:
			if !ok {
				content.Watcher = nil
				return
			}
			log.Printf("[content] watcher error: %v", err)
		default:
			return
		}
	}
}

// CloseContent stops the watcher.
func CloseContent(e *ecs.ECS) {
	content := factory.GetContent(e)
	if content.Watcher == nil {
		return
	}
	if err := content.Watcher.Close(); err != nil {
		log.Printf("[content] closing watcher: %v", err)
	}
	content.Watcher = nil
}
