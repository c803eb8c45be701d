// Package api provides JSON handlers for the /api/prefs and /api/gallery endpoints.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/exgallery/galleryui/app/enum"
	"github.com/exgallery/galleryui/app/prefs"
	"github.com/exgallery/galleryui/app/store"
)

//go:generate moq -out mocks/entrystore.go -pkg mocks -skip-ensure -fmt goimports . EntryStore

// ThemeController defines the theme operations exposed over the API.
type ThemeController interface {
	Set(th enum.Theme) error
	Toggle() error
	Current() enum.Theme
	IsDark() bool
	Icon() string
	Label() string
}

// ModeController defines the privacy mode operations exposed over the API.
type ModeController interface {
	Toggle() (bool, error)
	Enabled() bool
	Initialized() bool
	Icon() string
	Label() string
}

// EntryStore gives read and delete access to raw persisted preferences.
type EntryStore interface {
	List() ([]store.Entry, error)
	Delete(key string) error
}

// Handler handles API requests for /api/prefs/* endpoints.
type Handler struct {
	theme ThemeController
	mode  ModeController
	store EntryStore
}

// New creates a new API handler.
func New(theme ThemeController, mode ModeController, st EntryStore) *Handler {
	return &Handler{theme: theme, mode: mode, store: st}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleGet)
	r.HandleFunc("PUT /theme", h.handleSetTheme)
	r.HandleFunc("POST /theme/toggle", h.handleToggleTheme)
	r.HandleFunc("POST /mode/toggle", h.handleToggleMode)
	r.HandleFunc("GET /stored", h.handleListStored)
	r.HandleFunc("DELETE /stored/{key}", h.handleDeleteStored)
}

// prefsResponse is the JSON view of both controllers.
type prefsResponse struct {
	Theme           string `json:"theme"`
	IsDark          bool   `json:"is_dark"`
	ThemeIcon       string `json:"theme_icon"`
	ThemeLabel      string `json:"theme_label"`
	ModeEnabled     bool   `json:"mode_enabled"`
	ModeInitialized bool   `json:"mode_initialized"`
	ModeIcon        string `json:"mode_icon"`
	ModeLabel       string `json:"mode_label"`
}

type setThemeRequest struct {
	Theme string `json:"theme"`
}

// handleGet returns the current state of both controllers.
// GET /api/prefs
func (h *Handler) handleGet(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, h.snapshot())
}

// handleSetTheme sets the theme explicitly.
// PUT /api/prefs/theme with body {"theme":"light"}
func (h *Handler) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req setThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "failed to decode request")
		return
	}

	th, err := enum.ParseTheme(req.Theme)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid theme")
		return
	}

	if err := h.theme.Set(th); err != nil {
		if errors.Is(err, prefs.ErrInvalidTheme) {
			rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid theme")
			return
		}
		// state is applied even if it could not be stored
		log.Printf("[WARN] theme set for this session only: %v", err)
	}
	rest.RenderJSON(w, h.snapshot())
}

// handleToggleTheme flips the theme.
// POST /api/prefs/theme/toggle
func (h *Handler) handleToggleTheme(w http.ResponseWriter, _ *http.Request) {
	if err := h.theme.Toggle(); err != nil {
		log.Printf("[WARN] theme changed for this session only: %v", err)
	}
	rest.RenderJSON(w, h.snapshot())
}

// handleToggleMode flips privacy mode.
// POST /api/prefs/mode/toggle
func (h *Handler) handleToggleMode(w http.ResponseWriter, _ *http.Request) {
	if _, err := h.mode.Toggle(); err != nil {
		log.Printf("[WARN] mode changed for this session only: %v", err)
	}
	rest.RenderJSON(w, h.snapshot())
}

// handleListStored returns persisted entries as they are in the store.
// GET /api/prefs/stored
func (h *Handler) handleListStored(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.List()
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to list entries")
		return
	}
	log.Printf("[DEBUG] list stored prefs: %d found", len(entries))
	rest.RenderJSON(w, entries)
}

// handleDeleteStored removes a persisted entry. Controllers keep their current state.
// DELETE /api/prefs/stored/{key}
func (h *Handler) handleDeleteStored(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(r.PathValue("key"))
	if key == "" {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, nil, "key is required")
		return
	}

	err := h.store.Delete(key)
	if errors.Is(err, store.ErrNotFound) {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusNotFound, err, "key not found")
		return
	}
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to delete key")
		return
	}

	log.Printf("[INFO] forget stored pref %q", key)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) snapshot() prefsResponse {
	return prefsResponse{
		Theme:           h.theme.Current().String(),
		IsDark:          h.theme.IsDark(),
		ThemeIcon:       h.theme.Icon(),
		ThemeLabel:      h.theme.Label(),
		ModeEnabled:     h.mode.Enabled(),
		ModeInitialized: h.mode.Initialized(),
		ModeIcon:        h.mode.Icon(),
		ModeLabel:       h.mode.Label(),
	}
}
