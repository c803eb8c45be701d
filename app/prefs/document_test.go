package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_ApplyTheme(t *testing.T) {
	doc := NewDocument()
	assert.Empty(t, doc.Snapshot().RootClass)
	assert.Empty(t, doc.Snapshot().BodyStyle())

	pal := DefaultPalette()
	doc.ApplyTheme(true, pal)
	state := doc.Snapshot()
	assert.Equal(t, "my-app-dark", state.RootClass)
	assert.Equal(t, "background-color: #0f172a; color: #f1f5f9", state.BodyStyle())

	doc.ApplyTheme(false, pal)
	state = doc.Snapshot()
	assert.Equal(t, "my-app-light", state.RootClass)
	assert.Equal(t, "background-color: #faf8f5; color: #2d3748", state.BodyStyle())
}

func TestDocument_BodyClasses(t *testing.T) {
	doc := NewDocument()

	doc.SetBodyClass("mom-mode", true)
	doc.SetBodyClass("mom-mode", true)
	doc.SetBodyClass("reader", true)
	assert.Equal(t, []string{"mom-mode", "reader"}, doc.Snapshot().BodyClasses)
	assert.Equal(t, "mom-mode reader", doc.Snapshot().BodyClass())

	doc.SetBodyClass("mom-mode", false)
	doc.SetBodyClass("mom-mode", false)
	assert.Equal(t, []string{"reader"}, doc.Snapshot().BodyClasses)
	assert.False(t, doc.HasBodyClass("mom-mode"))
}

func TestDocument_SnapshotIsCopy(t *testing.T) {
	doc := NewDocument()
	doc.SetBodyClass("a", true)
	state := doc.Snapshot()
	state.BodyClasses[0] = "changed"
	assert.True(t, doc.HasBodyClass("a"))
}
