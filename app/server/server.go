// Package server provides the HTTP server for the gallery UI.
package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"
	"golang.org/x/crypto/bcrypt"

	"github.com/exgallery/galleryui/app/gallery"
	"github.com/exgallery/galleryui/app/prefs"
	"github.com/exgallery/galleryui/app/server/api"
	"github.com/exgallery/galleryui/app/server/web"
)

// Server represents the HTTP server.
type Server struct {
	theme      *prefs.Theme
	mode       *prefs.Mode
	cfg        Config
	version    string
	baseURL    string
	apiHandler *api.Handler
	galleryAPI *api.GalleryHandler
	webHandler *web.Handler
}

// Config holds server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Version         string
	BaseURL         string // base URL path for reverse proxy (e.g., /gallery)

	AuthUser     string // basic auth user, used only with PasswordHash
	PasswordHash string // bcrypt hash (empty = auth disabled)

	PaletteFile      string // palette yaml, empty = built-in palette
	PaletteHotReload bool   // watch palette file for changes and re-apply

	// limits
	BodySizeLimit  int64 // max request body size in bytes
	RequestsPerSec int64 // max requests per second
}

// New creates a new Server instance. The theme is expected to be resolved already,
// mode is initialized by Run once routes are mounted. A nil catalog serves no galleries.
func New(theme *prefs.Theme, mode *prefs.Mode, doc *prefs.Document, labels *prefs.Labels, st api.EntryStore,
	catalog *gallery.Catalog, cfg Config) (*Server, error) {
	if theme == nil || mode == nil || doc == nil {
		return nil, errors.New("theme, mode and document are required")
	}
	if labels == nil {
		labels = prefs.DefaultLabels()
	}
	if catalog == nil {
		catalog = gallery.New(nil)
	}

	webHandler, err := web.New(theme, mode, doc, labels, web.Config{BaseURL: cfg.BaseURL, Gallery: catalog})
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}

	return &Server{
		theme:      theme,
		mode:       mode,
		cfg:        cfg,
		version:    cfg.Version,
		baseURL:    cfg.BaseURL,
		webHandler: webHandler,
		apiHandler: api.New(theme, mode, st),
		galleryAPI: api.NewGallery(catalog),
	}, nil
}

// Run starts the HTTP server and blocks until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	// routes are mounted, bring up the privacy mode
	enabled := s.mode.InitFromStorage()
	log.Printf("[INFO] theme %s, mode enabled=%v", s.theme.Current(), enabled)

	if s.cfg.PaletteFile != "" && s.cfg.PaletteHotReload {
		if err := WatchPalette(ctx, s.cfg.PaletteFile, s.theme); err != nil {
			return fmt.Errorf("failed to start palette watcher: %w", err)
		}
		log.Printf("[INFO] palette hot-reload enabled")
	}

	// graceful shutdown
	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] shutdown error: %v", err)
		}
	}()

	log.Printf("[DEBUG] started server on %s", s.cfg.Address)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// handler returns the HTTP handler, wrapping routes with base URL support if configured.
func (s *Server) handler() http.Handler {
	routes := s.routes()
	if s.baseURL == "" {
		return routes
	}
	mux := http.NewServeMux()
	// redirect /base to /base/
	mux.HandleFunc(s.baseURL, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.baseURL+"/", http.StatusMovedPermanently)
	})
	mux.Handle(s.baseURL+"/", http.StripPrefix(s.baseURL, routes))
	return mux
}

// routes configures and returns the HTTP handler with all routes and middleware.
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	router.Use(
		rest.Recoverer(log.Default()),
		rest.RealIP, // must be before Throttle to rate-limit by real client IP
		rest.Throttle(s.requestsPerSec()),
		rest.Trace,
		rest.SizeLimit(s.bodySizeLimit()),
		rest.AppInfo("galleryui", "exgallery", s.version),
		rest.Ping,
	)

	auth := NoopAuth
	if s.cfg.PasswordHash != "" {
		auth = rest.BasicAuth(s.checkPassword)
	}

	router.Group().Route(func(webRouter *routegroup.Bundle) {
		webRouter.Use(auth)
		s.webHandler.Register(webRouter)
	})

	router.Mount("/api/prefs").Route(func(apiRouter *routegroup.Bundle) {
		apiRouter.Use(auth)
		s.apiHandler.Register(apiRouter)
	})

	router.Mount("/api/gallery").Route(func(apiRouter *routegroup.Bundle) {
		apiRouter.Use(auth)
		s.galleryAPI.Register(apiRouter)
	})

	return router
}

// checkPassword validates basic auth credentials against the configured user and bcrypt hash.
func (s *Server) checkPassword(user, passwd string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(s.authUser())) == 1
	// always run bcrypt to keep timing independent of the user name
	passOK := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(passwd)) == nil
	return userOK && passOK
}

func (s *Server) authUser() string {
	if s.cfg.AuthUser != "" {
		return s.cfg.AuthUser
	}
	return "galleryui"
}

// bodySizeLimit returns the configured body size limit, or default 64KB if not set.
func (s *Server) bodySizeLimit() int64 {
	if s.cfg.BodySizeLimit > 0 {
		return s.cfg.BodySizeLimit
	}
	return 64 * 1024
}

// requestsPerSec returns the configured requests per second limit, or default 1000 if not set.
func (s *Server) requestsPerSec() int64 {
	if s.cfg.RequestsPerSec > 0 {
		return s.cfg.RequestsPerSec
	}
	return 1000 // default
}

// NoopAuth returns a pass-through middleware (used when auth is disabled).
func NoopAuth(next http.Handler) http.Handler {
	return next
}
