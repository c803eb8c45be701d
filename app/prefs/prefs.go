// Package prefs implements the persisted UI-mode controllers: display theme and privacy ("mom") mode.
// Each controller is a single shared instance per process. Mutations run as one synchronous
// sequence of update, persist and apply to the Document; readers go through accessors.
package prefs

import (
	"errors"

	log "github.com/go-pkgz/lgr"

	"github.com/exgallery/galleryui/app/store"
)

//go:generate moq -out mocks/storage.go -pkg mocks -skip-ensure -fmt goimports . Storage

// storage keys
const (
	ThemeKey = "theme"
	ModeKey  = "mom-mode"
)

// ErrInvalidTheme is returned when setting a theme outside of enum.ThemeValues.
var ErrInvalidTheme = errors.New("invalid theme")

// Storage is a string key-value store. Get returns store.ErrNotFound for absent keys.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// readKey returns the persisted value and true if it is present.
// Read failures are treated as absence.
func readKey(st Storage, key string) (string, bool) {
	v, err := st.Get(key)
	if err == nil {
		return v, true
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Printf("[WARN] failed to read %q, using default: %v", key, err)
	}
	return "", false
}
