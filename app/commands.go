package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"

	"github.com/exgallery/galleryui/app/gallery"
	"github.com/exgallery/galleryui/app/prefs"
	"github.com/exgallery/galleryui/app/server"
	"github.com/exgallery/galleryui/app/store"
)

// SharedOptions contains options shared between all commands
type SharedOptions struct {
	DB    string `short:"d" long:"db" env:"GALLERYUI_DB" default:"galleryui.db" description:"database URL (sqlite file or postgres://...)"`
	Debug bool   `long:"dbg" env:"DEBUG" description:"debug mode"`
}

// ServerCmd implements the server subcommand
type ServerCmd struct {
	SharedOptions

	CacheSize int    `long:"cache-size" env:"GALLERYUI_CACHE_SIZE" default:"100" description:"max cached preference keys, 0 to disable"`
	Lang      string `long:"lang" env:"GALLERYUI_LANG" default:"en" description:"UI language (en, zh)"`

	Server struct {
		Address         string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout     time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout    time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"30s" description:"write timeout"`
		IdleTimeout     time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"30s" description:"idle timeout"`
		ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"5s" description:"graceful shutdown timeout"`
		BaseURL         string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /gallery)"`
		BodyLimit       int64         `long:"body-limit" env:"BODY_LIMIT" default:"65536" description:"max request body size in bytes"`
		RPS             int64         `long:"rps" env:"RPS" default:"1000" description:"max requests per second"`
	} `group:"server" namespace:"server" env-namespace:"GALLERYUI_SERVER"`

	Auth struct {
		User         string `long:"user" env:"USER" default:"galleryui" description:"basic auth user name"`
		PasswordHash string `long:"password-hash" env:"PASSWORD_HASH" description:"bcrypt hash for the password (enables auth)"`
	} `group:"auth" namespace:"auth" env-namespace:"GALLERYUI_AUTH"`

	Theme struct {
		Palette      string `long:"palette" env:"PALETTE" description:"palette yaml file (built-in palette if empty)"`
		PaletteWatch bool   `long:"palette-watch" env:"PALETTE_WATCH" description:"reload palette file on change"`
		ModeClass    string `long:"mode-class" env:"MODE_CLASS" default:"mom-mode" description:"body class set while mom mode is on"`
	} `group:"theme" namespace:"theme" env-namespace:"GALLERYUI_THEME"`

	Gallery struct {
		Data string `long:"data" env:"DATA_PATH" description:"favorites metadata json file (no galleries if empty)"`
	} `group:"gallery" namespace:"gallery" env-namespace:"GALLERYUI_GALLERY"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	baseURL, err := validateBaseURL(s.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	log.Printf("[INFO] starting gallery ui on %s", s.Server.Address)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}
	if s.Auth.PasswordHash != "" {
		log.Printf("[INFO] basic authentication enabled for %s", s.Auth.User)
	}

	modeCfg := prefs.ModeConfig{MarkerClass: s.Theme.ModeClass}
	if err = modeCfg.Validate(); err != nil {
		return fmt.Errorf("invalid mode class: %w", err)
	}

	catalog, err := gallery.Load(s.Gallery.Data)
	if err != nil {
		return fmt.Errorf("failed to load galleries: %w", err)
	}

	st, err := openStore(s.DB, s.CacheSize)
	if err != nil {
		return err
	}
	defer st.Close()

	labels, err := prefs.NewLabels(s.Lang)
	if err != nil {
		return fmt.Errorf("failed to load labels: %w", err)
	}

	palette := prefs.DefaultPalette()
	if s.Theme.Palette != "" {
		if palette, err = prefs.LoadPalette(s.Theme.Palette); err != nil {
			return fmt.Errorf("failed to load palette: %w", err)
		}
		log.Printf("[INFO] palette loaded from %s", s.Theme.Palette)
	}

	// theme is resolved and applied here, before any route exists
	doc := prefs.NewDocument()
	theme := prefs.NewTheme(st, doc, prefs.ThemeConfig{Palette: palette, Labels: labels})
	modeCfg.Labels = labels
	mode := prefs.NewMode(st, doc, modeCfg)

	srv, err := server.New(theme, mode, doc, labels, st, catalog, server.Config{
		Address:          s.Server.Address,
		ReadTimeout:      s.Server.ReadTimeout,
		WriteTimeout:     s.Server.WriteTimeout,
		IdleTimeout:      s.Server.IdleTimeout,
		ShutdownTimeout:  s.Server.ShutdownTimeout,
		Version:          revision,
		BaseURL:          baseURL,
		AuthUser:         s.Auth.User,
		PasswordHash:     s.Auth.PasswordHash,
		PaletteFile:      s.Theme.Palette,
		PaletteHotReload: s.Theme.PaletteWatch,
		BodySizeLimit:    s.Server.BodyLimit,
		RequestsPerSec:   s.Server.RPS,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// ResetCmd implements the reset subcommand
type ResetCmd struct {
	SharedOptions

	Keys []string `short:"k" long:"key" description:"stored key to forget (all keys if not set)"`

	out io.Writer
}

// Execute runs the reset command
func (r *ResetCmd) Execute(_ []string) error {
	setupLogs(r.Debug)
	if r.out == nil {
		r.out = os.Stdout
	}

	st, err := store.New(r.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer st.Close()

	removed, err := st.DeleteKeys(r.Keys...)
	if err != nil {
		return fmt.Errorf("failed to reset preferences: %w", err)
	}

	log.Printf("[INFO] removed %d stored preference(s) from %s", removed, r.DB)
	_, _ = fmt.Fprintf(r.out, "removed %d stored preference(s)\n", removed)
	return nil
}

// PaletteCmd implements the palette subcommand
type PaletteCmd struct {
	File   string `short:"f" long:"file" description:"palette yaml file to verify"`
	Schema bool   `long:"schema" description:"print palette JSON schema"`
	Debug  bool   `long:"dbg" env:"DEBUG" description:"debug mode"`

	out io.Writer
}

// Execute runs the palette command
func (p *PaletteCmd) Execute(_ []string) error {
	setupLogs(p.Debug)
	if p.out == nil {
		p.out = os.Stdout
	}

	if p.Schema {
		data, err := prefs.GeneratePaletteSchema()
		if err != nil {
			return fmt.Errorf("failed to generate schema: %w", err)
		}
		_, _ = fmt.Fprintln(p.out, string(data))
		return nil
	}

	palette := prefs.DefaultPalette()
	if p.File != "" {
		var err error
		if palette, err = prefs.LoadPalette(p.File); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(palette)
	if err != nil {
		return fmt.Errorf("failed to marshal palette: %w", err)
	}
	_, _ = fmt.Fprint(p.out, string(data))
	return nil
}

// openStore opens the database store, wrapped with a read cache if cacheSize is positive.
func openStore(dbURL string, cacheSize int) (store.Interface, error) {
	db, err := store.New(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	if cacheSize <= 0 {
		return db, nil
	}
	cached, err := store.NewCached(db, cacheSize)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	log.Printf("[DEBUG] store cache enabled, max keys %d", cacheSize)
	return cached, nil
}
