package prefs

import (
	"fmt"
	"strconv"
	"sync"

	log "github.com/go-pkgz/lgr"
)

// mode icons
const (
	IconModeEnabled  = "👩‍👧‍👦"
	IconModeDisabled = "🔒"
)

// DefaultModeClass is the body marker class set while mode is enabled.
const DefaultModeClass = "mom-mode"

// ModeConfig holds optional mode controller settings; zero values mean defaults.
type ModeConfig struct {
	MarkerClass string
	Labels      *Labels
}

// Mode owns the privacy mode flag. Unlike Theme it does not touch storage or the document
// until InitFromStorage is called by the host.
type Mode struct {
	mu          sync.Mutex
	store       Storage
	doc         *Document
	labels      *Labels
	marker      string
	enabled     bool
	initialized bool
}

// Validate checks the marker class is a single CSS class name. Empty means default.
func (c ModeConfig) Validate() error {
	if c.MarkerClass != "" && !classRe.MatchString(c.MarkerClass) {
		return fmt.Errorf("marker class %q is not a valid css class name", c.MarkerClass)
	}
	return nil
}

// NewMode makes a disabled, uninitialized mode controller.
// An invalid marker class is replaced with DefaultModeClass.
func NewMode(st Storage, doc *Document, cfg ModeConfig) *Mode {
	if err := cfg.Validate(); err != nil {
		log.Printf("[WARN] %v, using %s", err, DefaultModeClass)
		cfg.MarkerClass = ""
	}
	if cfg.MarkerClass == "" {
		cfg.MarkerClass = DefaultModeClass
	}
	if cfg.Labels == nil {
		cfg.Labels = DefaultLabels()
	}
	return &Mode{store: st, doc: doc, labels: cfg.Labels, marker: cfg.MarkerClass}
}

// InitFromStorage reads the persisted flag and applies the body marker.
// Only the exact string "true" enables the mode.
func (m *Mode) InitFromStorage() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, _ := readKey(m.store, ModeKey)
	m.enabled = v == "true"
	m.initialized = true
	m.apply()
	log.Printf("[DEBUG] mode initialized, enabled=%v", m.enabled)
	return m.enabled
}

// Toggle flips the flag, persists it and re-applies the marker. Returns the new state.
// On a storage failure the new state stays applied and the error is returned.
func (m *Mode) Toggle() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = !m.enabled
	var err error
	if serr := m.store.Set(ModeKey, strconv.FormatBool(m.enabled)); serr != nil {
		err = fmt.Errorf("failed to persist mode: %w", serr)
	}
	m.apply()
	log.Printf("[INFO] mode toggled, enabled=%v", m.enabled)
	return m.enabled, err
}

// Enabled reports whether the mode is on.
func (m *Mode) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// Initialized reports whether InitFromStorage was called.
func (m *Mode) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// MarkerClass returns the body class used for the mode.
func (m *Mode) MarkerClass() string {
	return m.marker
}

// Icon returns the icon for the current state.
func (m *Mode) Icon() string {
	if m.Enabled() {
		return IconModeEnabled
	}
	return IconModeDisabled
}

// Label returns the localized label for the current state.
func (m *Mode) Label() string {
	if m.Enabled() {
		return m.labels.Text(MsgModeEnabled)
	}
	return m.labels.Text(MsgModeDisabled)
}

func (m *Mode) apply() {
	m.doc.SetBodyClass(m.marker, m.enabled)
}
