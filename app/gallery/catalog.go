// Package gallery provides read-only access to the favorites metadata dump.
// The dump is a JSON array of galleries as exported by the sync job.
package gallery

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/go-pkgz/lgr"
)

// ErrNotFound is returned when no gallery has the requested gid.
var ErrNotFound = errors.New("gallery not found")

// ErrInvalidQuery is returned by List for out of range paging.
var ErrInvalidQuery = errors.New("invalid query")

// paging limits
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Item is a single gallery record.
type Item struct {
	GID      int64    `json:"gid"`
	Token    string   `json:"token"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Posted   string   `json:"posted,omitempty"` // unix seconds as string
}

// Query selects a page of galleries.
type Query struct {
	Page     int    // 1-based
	PerPage  int    // 1..MaxPerPage
	Keyword  string // case-insensitive substring of title or any tag
	Category string // exact category match
}

// Page is a slice of matching galleries with the total match count.
type Page struct {
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	Total   int    `json:"total"`
	Results []Item `json:"results"`
}

// Catalog holds galleries in file order. It is immutable after Load.
type Catalog struct {
	items []Item
	byGID map[int64]int
}

// Load reads the metadata file. An empty path makes an empty catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return New(nil), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path from trusted config
	if err != nil {
		return nil, fmt.Errorf("failed to read gallery data: %w", err)
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse gallery data %s: %w", path, err)
	}
	c := New(items)
	log.Printf("[INFO] loaded %d galleries from %s", c.Len(), path)
	return c, nil
}

// New makes a catalog from items. The first item wins on duplicate gids.
func New(items []Item) *Catalog {
	c := &Catalog{items: items, byGID: make(map[int64]int, len(items))}
	for i, it := range items {
		if _, ok := c.byGID[it.GID]; ok {
			log.Printf("[WARN] duplicate gallery gid %d, keeping first", it.GID)
			continue
		}
		c.byGID[it.GID] = i
	}
	return c
}

// Len returns the number of galleries.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Get returns the gallery with the given gid.
func (c *Catalog) Get(gid int64) (Item, error) {
	i, ok := c.byGID[gid]
	if !ok {
		return Item{}, ErrNotFound
	}
	return c.items[i].clone(), nil
}

// List filters galleries and returns the requested page. Zero Page and PerPage take defaults,
// a page past the end has no results but still reports the total.
func (c *Catalog) List(q Query) (Page, error) {
	if err := q.normalize(); err != nil {
		return Page{}, err
	}

	kw := strings.ToLower(q.Keyword)
	var matched []Item
	for _, it := range c.items {
		if kw != "" && !it.matches(kw) {
			continue
		}
		if q.Category != "" && it.Category != q.Category {
			continue
		}
		matched = append(matched, it)
	}

	res := Page{Page: q.Page, PerPage: q.PerPage, Total: len(matched), Results: []Item{}}
	start := (q.Page - 1) * q.PerPage
	if start >= len(matched) {
		return res, nil
	}
	end := min(start+q.PerPage, len(matched))
	for _, it := range matched[start:end] {
		res.Results = append(res.Results, it.clone())
	}
	return res, nil
}

func (q *Query) normalize() error {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PerPage == 0 {
		q.PerPage = DefaultPerPage
	}
	if q.Page < 1 {
		return fmt.Errorf("%w: page must be at least 1, got %d", ErrInvalidQuery, q.Page)
	}
	if q.PerPage < 1 || q.PerPage > MaxPerPage {
		return fmt.Errorf("%w: per_page must be within 1..%d, got %d", ErrInvalidQuery, MaxPerPage, q.PerPage)
	}
	return nil
}

func (it Item) matches(kw string) bool {
	if strings.Contains(strings.ToLower(it.Title), kw) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), kw) {
			return true
		}
	}
	return false
}

func (it Item) clone() Item {
	it.Tags = append([]string(nil), it.Tags...)
	return it
}
