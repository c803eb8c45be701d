package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/exgallery/galleryui/app/gallery"
)

//go:generate moq -out mocks/catalog.go -pkg mocks -skip-ensure -fmt goimports . Catalog

// Catalog is the read-only gallery metadata source.
type Catalog interface {
	List(q gallery.Query) (gallery.Page, error)
	Get(gid int64) (gallery.Item, error)
}

// GalleryHandler handles API requests for /api/gallery/* endpoints.
type GalleryHandler struct {
	catalog Catalog
}

// NewGallery creates a new gallery API handler.
func NewGallery(catalog Catalog) *GalleryHandler {
	return &GalleryHandler{catalog: catalog}
}

// Register registers gallery routes on the given router.
func (h *GalleryHandler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleList)
	r.HandleFunc("GET /item/{gid}", h.handleItem)
}

// handleList returns a filtered page of galleries.
// GET /api/gallery?page=1&per_page=10&keyword=x&type=Manga
func (h *GalleryHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q := gallery.Query{
		Keyword:  strings.TrimSpace(r.URL.Query().Get("keyword")),
		Category: strings.TrimSpace(r.URL.Query().Get("type")),
	}
	var err error
	if q.Page, err = intParam(r, "page"); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid page")
		return
	}
	if q.PerPage, err = intParam(r, "per_page"); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid per_page")
		return
	}

	page, err := h.catalog.List(q)
	if errors.Is(err, gallery.ErrInvalidQuery) {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid query")
		return
	}
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to list galleries")
		return
	}
	log.Printf("[DEBUG] list galleries: page %d, %d of %d", page.Page, len(page.Results), page.Total)
	rest.RenderJSON(w, page)
}

// handleItem returns a single gallery by gid.
// GET /api/gallery/item/{gid}
func (h *GalleryHandler) handleItem(w http.ResponseWriter, r *http.Request) {
	gid, err := strconv.ParseInt(r.PathValue("gid"), 10, 64)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid gid")
		return
	}

	item, err := h.catalog.Get(gid)
	if errors.Is(err, gallery.ErrNotFound) {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusNotFound, err, "gallery not found")
		return
	}
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to get gallery")
		return
	}
	rest.RenderJSON(w, item)
}

// intParam parses an optional integer query param, zero if absent.
func intParam(r *http.Request, name string) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
