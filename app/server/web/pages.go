package web

import (
	"errors"
	"net/http"
	"strconv"

	log "github.com/go-pkgz/lgr"

	"github.com/exgallery/galleryui/app/gallery"
)

// handleView renders the page shell for a route, passing its path params through.
func (h *Handler) handleView(rt Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := make(map[string]string, len(rt.Params))
		for _, name := range rt.Params {
			params[name] = r.PathValue(name)
		}
		data := h.pageData(rt.View, params)
		if gid, ok := params["gid"]; ok {
			data.Gallery = h.lookupGallery(gid)
		}
		h.render(w, data)
	}
}

// lookupGallery returns metadata for the gid path param, nil if unknown.
// The page renders either way.
func (h *Handler) lookupGallery(gid string) *gallery.Item {
	if h.gallery == nil {
		return nil
	}
	id, err := strconv.ParseInt(gid, 10, 64)
	if err != nil {
		log.Printf("[DEBUG] gallery id %q is not a number", gid)
		return nil
	}
	item, err := h.gallery.Get(id)
	if err != nil {
		if !errors.Is(err, gallery.ErrNotFound) {
			log.Printf("[WARN] failed to get gallery %d: %v", id, err)
		}
		return nil
	}
	return &item
}

// handleThemeToggle toggles the theme between light and dark.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	if err := h.theme.Toggle(); err != nil {
		log.Printf("[WARN] theme changed for this session only: %v", err)
	}
	h.refresh(w, r)
}

// handleModeToggle toggles privacy mode.
func (h *Handler) handleModeToggle(w http.ResponseWriter, r *http.Request) {
	if _, err := h.mode.Toggle(); err != nil {
		log.Printf("[WARN] mode changed for this session only: %v", err)
	}
	h.refresh(w, r)
}
