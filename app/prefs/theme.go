package prefs

import (
	"fmt"
	"sync"

	log "github.com/go-pkgz/lgr"

	"github.com/exgallery/galleryui/app/enum"
)

// theme icons
const (
	IconLight = "☀️"
	IconDark  = "🌙"
)

// ThemeConfig holds optional theme controller settings; zero values mean defaults.
type ThemeConfig struct {
	Palette Palette
	Labels  *Labels
}

// Theme owns the current display theme. It mirrors every change to storage and the Document.
type Theme struct {
	mu      sync.Mutex
	store   Storage
	doc     *Document
	labels  *Labels
	palette Palette
	theme   enum.Theme
	isDark  bool
}

// NewTheme makes the theme controller and resolves the theme from storage right away,
// so the document is themed before anything is rendered from it.
func NewTheme(st Storage, doc *Document, cfg ThemeConfig) *Theme {
	if cfg.Palette.isZero() {
		cfg.Palette = DefaultPalette()
	}
	if cfg.Labels == nil {
		cfg.Labels = DefaultLabels()
	}
	t := &Theme{store: st, doc: doc, labels: cfg.Labels, palette: cfg.Palette}
	t.InitFromStorage()
	return t
}

// InitFromStorage reads the persisted theme, falling back to dark for absent or invalid values.
// The result is applied to the document before it is written back to storage. Returns IsDark.
func (t *Theme) InitFromStorage() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	resolved := enum.ThemeDark
	if v, ok := readKey(t.store, ThemeKey); ok {
		parsed, err := enum.ParseTheme(v)
		if err != nil {
			log.Printf("[DEBUG] ignore persisted theme %q, default to %s", v, resolved)
		} else {
			resolved = parsed
		}
	}

	t.theme = resolved
	t.apply()
	if err := t.persist(); err != nil {
		log.Printf("[WARN] %v", err)
	}
	log.Printf("[DEBUG] theme initialized to %s", t.theme)
	return t.isDark
}

// Set changes the theme: update, persist, apply. On a storage failure the new theme
// stays applied and the error is returned.
func (t *Theme) Set(th enum.Theme) error {
	if !th.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, th.String())
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.set(th)
}

// Toggle flips the theme between light and dark.
func (t *Theme) Toggle() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.set(t.theme.Toggle())
}

// Current returns the current theme.
func (t *Theme) Current() enum.Theme {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.theme
}

// IsDark reports whether the current theme is dark.
func (t *Theme) IsDark() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isDark
}

// Icon returns the icon for the current theme.
func (t *Theme) Icon() string {
	if t.Current() == enum.ThemeLight {
		return IconLight
	}
	return IconDark
}

// Label returns the localized name of the current theme.
func (t *Theme) Label() string {
	if t.Current() == enum.ThemeLight {
		return t.labels.Text(MsgThemeLight)
	}
	return t.labels.Text(MsgThemeDark)
}

// Palette returns the palette in use.
func (t *Theme) Palette() Palette {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.palette
}

// SetPalette replaces the palette and re-applies the current theme. Nothing is persisted.
func (t *Theme) SetPalette(p Palette) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.palette = p
	t.apply()
}

// set must be called with lock held.
func (t *Theme) set(th enum.Theme) error {
	t.theme = th
	err := t.persist()
	t.apply()
	log.Printf("[INFO] theme set to %s", th)
	return err
}

// apply mirrors the theme to the document and refreshes isDark. Must be called with lock held.
func (t *Theme) apply() {
	dark := t.theme.IsDark()
	t.doc.ApplyTheme(dark, t.palette)
	t.isDark = dark
}

// persist must be called with lock held.
func (t *Theme) persist() error {
	if err := t.store.Set(ThemeKey, t.theme.String()); err != nil {
		return fmt.Errorf("failed to persist theme %s: %w", t.theme, err)
	}
	return nil
}
