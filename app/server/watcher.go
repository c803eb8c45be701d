package server

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/go-pkgz/lgr"

	"github.com/exgallery/galleryui/app/prefs"
)

// PaletteSetter receives reloaded palettes.
type PaletteSetter interface {
	SetPalette(p prefs.Palette)
}

const paletteDebounce = 100 * time.Millisecond

// WatchPalette watches the palette file and re-applies it to the theme on change.
// Invalid files are logged and ignored, the previous palette stays in effect.
// The watcher stops when the context is canceled.
func WatchPalette(ctx context.Context, path string, target PaletteSetter) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// watch the directory to catch atomic renames done by editors
	dir := filepath.Dir(path)
	filename := filepath.Base(path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	log.Printf("[INFO] watching palette file %s for changes", path)

	go func() {
		defer watcher.Close()

		var debounceTimer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				log.Printf("[INFO] palette watcher stopped")
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filename {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(paletteDebounce, func() {
					p, err := prefs.LoadPalette(path)
					if err != nil {
						log.Printf("[WARN] failed to reload palette: %v", err)
						return
					}
					target.SetPalette(p)
					log.Printf("[INFO] palette reloaded from %s", path)
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[WARN] palette watcher error: %v", err)
			}
		}
	}()

	return nil
}
