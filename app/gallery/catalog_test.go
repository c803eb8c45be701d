package gallery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		c, err := Load("testdata/favorites.json")
		require.NoError(t, err)
		assert.Equal(t, 5, c.Len())
	})

	t.Run("empty path", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
		_, err = c.Get(1)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/favorites.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read gallery data")
	})

	t.Run("not an array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"gid": 1}`), 0o600))
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse gallery data")
	})
}

func TestCatalog_Get(t *testing.T) {
	c := loadTestCatalog(t)

	it, err := c.Get(2001)
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d4e5", it.Token, "first record wins on duplicate gid")
	assert.Equal(t, "Summer Trip Sketchbook", it.Title)
	assert.Equal(t, []string{"language:english", "artist:hoshino", "female:glasses"}, it.Tags)

	it.Tags[0] = "changed"
	again, err := c.Get(2001)
	require.NoError(t, err)
	assert.Equal(t, "language:english", again.Tags[0], "returned item is a copy")

	_, err = c.Get(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_List(t *testing.T) {
	c := loadTestCatalog(t)

	tests := []struct {
		name     string
		query    Query
		wantGIDs []int64
		total    int
		page     int
		perPage  int
	}{
		{name: "defaults", query: Query{}, wantGIDs: []int64{2001, 2002, 2003, 2004, 2001}, total: 5, page: 1, perPage: 10},
		{name: "keyword in tag ignores case", query: Query{Keyword: "HOSHINO"}, wantGIDs: []int64{2001, 2003},
			total: 2, page: 1, perPage: 10},
		{name: "keyword in title", query: Query{Keyword: "night"}, wantGIDs: []int64{2003}, total: 1, page: 1, perPage: 10},
		{name: "keyword does not search category", query: Query{Keyword: "manga"}, wantGIDs: []int64{},
			total: 0, page: 1, perPage: 10},
		{name: "category exact", query: Query{Category: "Manga"}, wantGIDs: []int64{2002, 2004}, total: 2, page: 1, perPage: 10},
		{name: "category is case sensitive", query: Query{Category: "manga"}, wantGIDs: []int64{}, total: 0, page: 1, perPage: 10},
		{name: "keyword and category", query: Query{Keyword: "language", Category: "Manga"}, wantGIDs: []int64{2002},
			total: 1, page: 1, perPage: 10},
		{name: "second page", query: Query{Page: 2, PerPage: 2}, wantGIDs: []int64{2003, 2004}, total: 5, page: 2, perPage: 2},
		{name: "last partial page", query: Query{Page: 3, PerPage: 2}, wantGIDs: []int64{2001}, total: 5, page: 3, perPage: 2},
		{name: "past the end", query: Query{Page: 9, PerPage: 2}, wantGIDs: []int64{}, total: 5, page: 9, perPage: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := c.List(tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.total, res.Total)
			assert.Equal(t, tc.page, res.Page)
			assert.Equal(t, tc.perPage, res.PerPage)
			gids := []int64{}
			for _, it := range res.Results {
				gids = append(gids, it.GID)
			}
			assert.Equal(t, tc.wantGIDs, gids)
		})
	}
}

func TestCatalog_ListInvalidQuery(t *testing.T) {
	c := loadTestCatalog(t)

	tests := []struct {
		name   string
		query  Query
		errMsg string
	}{
		{name: "negative page", query: Query{Page: -1}, errMsg: "page must be at least 1"},
		{name: "per page too large", query: Query{PerPage: MaxPerPage + 1}, errMsg: "per_page must be within"},
		{name: "negative per page", query: Query{PerPage: -5}, errMsg: "per_page must be within"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.List(tc.query)
			require.ErrorIs(t, err, ErrInvalidQuery)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load("testdata/favorites.json")
	require.NoError(t, err)
	return c
}
