// Package web provides HTTP handlers for the web UI.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/routegroup"

	"github.com/exgallery/galleryui/app/enum"
	"github.com/exgallery/galleryui/app/gallery"
	"github.com/exgallery/galleryui/app/prefs"
)

//go:generate moq -out mocks/themecontroller.go -pkg mocks -skip-ensure -fmt goimports . ThemeController
//go:generate moq -out mocks/modecontroller.go -pkg mocks -skip-ensure -fmt goimports . ModeController

//go:embed templates
var templatesFS embed.FS

// ThemeController is the theme state used by pages.
type ThemeController interface {
	Toggle() error
	Current() enum.Theme
	IsDark() bool
	Icon() string
	Label() string
}

// ModeController is the privacy mode state used by pages.
type ModeController interface {
	Toggle() (bool, error)
	Enabled() bool
	Icon() string
	Label() string
}

// DocumentSource provides the document state pages are rendered from.
type DocumentSource interface {
	Snapshot() prefs.DocumentState
}

// LabelSource provides localized strings.
type LabelSource interface {
	Text(id string) string
	Lang() string
}

// GalleryLookup finds metadata shown on gallery and reader pages.
type GalleryLookup interface {
	Get(gid int64) (gallery.Item, error)
}

// Config holds web handler configuration.
type Config struct {
	BaseURL string
	Gallery GalleryLookup // optional, pages render without metadata if nil
}

// Handler handles web UI requests.
type Handler struct {
	theme   ThemeController
	mode    ModeController
	doc     DocumentSource
	labels  LabelSource
	gallery GalleryLookup
	tmpl    *template.Template
	baseURL string
}

// New creates a new web handler.
func New(theme ThemeController, mode ModeController, doc DocumentSource, labels LabelSource, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Handler{
		theme:   theme,
		mode:    mode,
		doc:     doc,
		labels:  labels,
		gallery: cfg.Gallery,
		tmpl:    tmpl,
		baseURL: cfg.BaseURL,
	}, nil
}

// Register registers view routes and toggle endpoints on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	for _, rt := range Routes {
		r.HandleFunc("GET "+rt.Pattern, h.handleView(rt))
	}
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
	r.HandleFunc("POST /web/mode", h.handleModeToggle)
}

// parseTemplates parses base and view templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

type navItem struct {
	Label  string
	URL    string
	Active bool
}

// templateData holds data passed to templates.
type templateData struct {
	View     string
	Title    string
	Lang     string
	BaseURL  string
	Params   map[string]string
	Gallery  *gallery.Item
	Nav      []navItem
	ThemeURL string
	ModeURL  string

	// document state
	RootClass string
	BodyClass string
	BodyStyle template.CSS // palette colors are validated on load

	ThemeIcon   string
	ThemeLabel  string
	IsDark      bool
	ModeIcon    string
	ModeLabel   string
	ModeEnabled bool
}

// pageData collects everything a page needs in a single pass over controllers and document.
func (h *Handler) pageData(view enum.View, params map[string]string) templateData {
	state := h.doc.Snapshot()
	data := templateData{
		View:        view.String(),
		Title:       h.labels.Text(viewMessage(view)),
		Lang:        h.labels.Lang(),
		BaseURL:     h.baseURL,
		Params:      params,
		ThemeURL:    h.url("/web/theme"),
		ModeURL:     h.url("/web/mode"),
		RootClass:   state.RootClass,
		BodyClass:   state.BodyClass(),
		BodyStyle:   template.CSS(state.BodyStyle()), //nolint:gosec // values checked by prefs.Palette.Validate
		ThemeIcon:   h.theme.Icon(),
		ThemeLabel:  h.theme.Label(),
		IsDark:      h.theme.IsDark(),
		ModeIcon:    h.mode.Icon(),
		ModeLabel:   h.mode.Label(),
		ModeEnabled: h.mode.Enabled(),
	}
	for _, rt := range Routes {
		if !rt.InNav {
			continue
		}
		data.Nav = append(data.Nav, navItem{
			Label:  h.labels.Text(viewMessage(rt.View)),
			URL:    h.url(strings.TrimSuffix(rt.Pattern, "{$}")),
			Active: rt.View == view,
		})
	}
	return data
}

// refresh finishes a toggle request: HTMX clients reload, plain form posts go back to the referring page.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, h.backURL(r), http.StatusSeeOther)
}

// backURL returns the local path of the referer, or the index page.
func (h *Handler) backURL(r *http.Request) string {
	ref := r.Header.Get("Referer")
	if ref == "" {
		return h.url("/")
	}
	u, err := url.Parse(ref)
	// browsers read a backslash as a slash
	if err != nil || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") || strings.Contains(u.Path, "\\") {
		return h.url("/")
	}
	return u.Path
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

func (h *Handler) render(w http.ResponseWriter, data templateData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}
