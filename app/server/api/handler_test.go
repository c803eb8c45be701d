package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-pkgz/routegroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exgallery/galleryui/app/prefs"
	"github.com/exgallery/galleryui/app/server/api/mocks"
	"github.com/exgallery/galleryui/app/store"
)

func TestHandler_Get(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, map[string]string{"theme": "light", "mom-mode": "true"})

	rec := env.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode(t, rec)
	assert.Equal(t, "dark", resp.Theme, "theme resolved before seed was written")
	assert.True(t, resp.IsDark)
	assert.False(t, resp.ModeEnabled)
	assert.False(t, resp.ModeInitialized)
	assert.Equal(t, prefs.IconModeDisabled, resp.ModeIcon)
	assert.Equal(t, "Privacy mode", resp.ModeLabel)

	// re-resolve from what is stored now
	assert.False(t, env.theme.InitFromStorage())
	assert.True(t, env.mode.InitFromStorage())

	resp = decode(t, env.do(t, http.MethodGet, "/", ""))
	assert.Equal(t, "light", resp.Theme)
	assert.False(t, resp.IsDark)
	assert.Equal(t, prefs.IconLight, resp.ThemeIcon)
	assert.Equal(t, "Light mode", resp.ThemeLabel)
	assert.True(t, resp.ModeEnabled)
	assert.True(t, resp.ModeInitialized)
	assert.Equal(t, "Mom mode", resp.ModeLabel)
}

func TestHandler_SetTheme(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		want     string
		stored   string
	}{
		{name: "light", body: `{"theme":"light"}`, wantCode: http.StatusOK, want: "light", stored: "light"},
		{name: "dark", body: `{"theme":"dark"}`, wantCode: http.StatusOK, want: "dark", stored: "dark"},
		{name: "unknown value", body: `{"theme":"sepia"}`, wantCode: http.StatusBadRequest, stored: "dark"},
		{name: "case sensitive", body: `{"theme":"Light"}`, wantCode: http.StatusBadRequest, stored: "dark"},
		{name: "empty", body: `{}`, wantCode: http.StatusBadRequest, stored: "dark"},
		{name: "bad json", body: `{"theme":`, wantCode: http.StatusBadRequest, stored: "dark"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := env.do(t, http.MethodPut, "/theme", tc.body)
			require.Equal(t, tc.wantCode, rec.Code, rec.Body.String())
			if tc.want != "" {
				assert.Equal(t, tc.want, decode(t, rec).Theme)
			} else {
				assert.Contains(t, rec.Body.String(), `"error"`)
			}

			v, err := env.store.Get(prefs.ThemeKey)
			require.NoError(t, err)
			assert.Equal(t, tc.stored, v)
		})
	}
}

func TestHandler_ToggleTheme(t *testing.T) {
	env := newTestEnv(t)

	resp := decode(t, env.do(t, http.MethodPost, "/theme/toggle", ""))
	assert.Equal(t, "light", resp.Theme)
	assert.False(t, resp.IsDark)
	assert.Equal(t, "my-app-light", env.doc.Snapshot().RootClass)

	resp = decode(t, env.do(t, http.MethodPost, "/theme/toggle", ""))
	assert.Equal(t, "dark", resp.Theme)
	assert.Equal(t, "my-app-dark", env.doc.Snapshot().RootClass)

	v, err := env.store.Get(prefs.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
}

func TestHandler_ToggleMode(t *testing.T) {
	env := newTestEnv(t)
	env.mode.InitFromStorage()

	resp := decode(t, env.do(t, http.MethodPost, "/mode/toggle", ""))
	assert.True(t, resp.ModeEnabled)
	assert.True(t, env.doc.HasBodyClass(prefs.DefaultModeClass))

	v, err := env.store.Get(prefs.ModeKey)
	require.NoError(t, err)
	assert.Equal(t, "true", v)

	resp = decode(t, env.do(t, http.MethodPost, "/mode/toggle", ""))
	assert.False(t, resp.ModeEnabled)
	assert.False(t, env.doc.HasBodyClass(prefs.DefaultModeClass))
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/theme/toggle", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandler_Stored(t *testing.T) {
	t.Run("list and delete", func(t *testing.T) {
		env := newTestEnv(t)
		env.do(t, http.MethodPost, "/mode/toggle", "")

		rec := env.do(t, http.MethodGet, "/stored", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var entries []store.Entry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "mom-mode", entries[0].Key)
		assert.Equal(t, "true", entries[0].Value)
		assert.Equal(t, "theme", entries[1].Key)
		assert.Equal(t, "dark", entries[1].Value)

		rec = env.do(t, http.MethodDelete, "/stored/mom-mode", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		_, err := env.store.Get(prefs.ModeKey)
		require.ErrorIs(t, err, store.ErrNotFound)
		assert.True(t, env.mode.Enabled(), "in-memory state is kept")

		rec = env.do(t, http.MethodDelete, "/stored/mom-mode", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list error", func(t *testing.T) {
		st := &mocks.EntryStoreMock{
			ListFunc: func() ([]store.Entry, error) { return nil, errors.New("db error") },
		}
		h := New(nil, nil, st)
		rec := httptest.NewRecorder()
		h.handleListStored(rec, httptest.NewRequest(http.MethodGet, "/stored", http.NoBody))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Len(t, st.ListCalls(), 1)
	})

	t.Run("delete error", func(t *testing.T) {
		st := &mocks.EntryStoreMock{
			DeleteFunc: func(string) error { return errors.New("db error") },
		}
		h := New(nil, nil, st)
		router := routegroup.New(http.NewServeMux())
		h.Register(router)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/stored/theme", http.NoBody))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Len(t, st.DeleteCalls(), 1)
		assert.Equal(t, "theme", st.DeleteCalls()[0].Key)
	})
}

type testEnv struct {
	store  *store.Store
	doc    *prefs.Document
	theme  *prefs.Theme
	mode   *prefs.Mode
	router http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	doc := prefs.NewDocument()
	env := &testEnv{
		store: st,
		doc:   doc,
		theme: prefs.NewTheme(st, doc, prefs.ThemeConfig{}),
		mode:  prefs.NewMode(st, doc, prefs.ModeConfig{}),
	}
	router := routegroup.New(http.NewServeMux())
	New(env.theme, env.mode, st).Register(router)
	env.router = router
	return env
}

func (e *testEnv) seed(t *testing.T, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		require.NoError(t, e.store.Set(k, v))
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) prefsResponse {
	t.Helper()
	var resp prefsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}
