package prefs

import (
	"slices"
	"strings"
	"sync"
)

// Document models the presentation surface pages are rendered from:
// a root node with one theme marker class and a body with inline colors and marker classes.
type Document struct {
	mu          sync.RWMutex
	rootClass   string
	background  string
	foreground  string
	bodyClasses []string
}

// DocumentState is an immutable copy of the Document for rendering.
type DocumentState struct {
	RootClass   string
	Background  string
	Foreground  string
	BodyClasses []string
}

// NewDocument makes an empty document, nothing applied yet.
func NewDocument() *Document {
	return &Document{}
}

// ApplyTheme sets the root marker class and body colors for the given theme variant.
// The previous marker is replaced, so the root never carries both markers.
func (d *Document) ApplyTheme(dark bool, p Palette) {
	d.mu.Lock()
	defer d.mu.Unlock()
	colors := p.Light
	d.rootClass = p.LightClass
	if dark {
		colors = p.Dark
		d.rootClass = p.DarkClass
	}
	d.background = colors.Background
	d.foreground = colors.Foreground
}

// SetBodyClass adds or removes a marker class on the body.
func (d *Document) SetBodyClass(class string, on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	idx := slices.Index(d.bodyClasses, class)
	switch {
	case on && idx < 0:
		d.bodyClasses = append(d.bodyClasses, class)
	case !on && idx >= 0:
		d.bodyClasses = slices.Delete(d.bodyClasses, idx, idx+1)
	}
}

// HasBodyClass reports whether the body carries the class.
func (d *Document) HasBodyClass(class string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Contains(d.bodyClasses, class)
}

// Snapshot returns a copy of the current document state.
func (d *Document) Snapshot() DocumentState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return DocumentState{
		RootClass:   d.rootClass,
		Background:  d.background,
		Foreground:  d.foreground,
		BodyClasses: slices.Clone(d.bodyClasses),
	}
}

// BodyClass returns body classes joined for a class attribute.
func (s DocumentState) BodyClass() string {
	return strings.Join(s.BodyClasses, " ")
}

// BodyStyle returns the inline body style, empty if no theme was applied.
func (s DocumentState) BodyStyle() string {
	if s.Background == "" && s.Foreground == "" {
		return ""
	}
	return "background-color: " + s.Background + "; color: " + s.Foreground
}
