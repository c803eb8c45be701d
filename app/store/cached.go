package store

import (
	"fmt"
	"sync"

	"github.com/go-pkgz/lcw/v2"
)

// Cached wraps a store Interface with a loading cache and satisfies the Interface itself.
// Cache is populated on reads via loader function, invalidated on writes.
//
// Reads share mu and writes take it exclusively, so a load that read the old value
// always lands in the cache before the write invalidates it.
type Cached struct {
	mu    sync.RWMutex
	store Interface
	cache lcw.LoadingCache[string]
}

// NewCached creates a new cached store wrapper.
// maxKeys sets the maximum number of entries in the cache.
func NewCached(store Interface, maxKeys int) (*Cached, error) {
	cache, err := lcw.NewLruCache(lcw.NewOpts[string]().MaxKeys(maxKeys))
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Cached{store: store, cache: cache}, nil
}

// Get retrieves the value for a key, using cache with load-through.
// Missing keys are not cached.
func (c *Cached) Get(key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, err := c.cache.Get(key, func() (string, error) {
		v, loadErr := c.store.Get(key)
		if loadErr != nil {
			return "", fmt.Errorf("load from store: %w", loadErr)
		}
		return v, nil
	})
	if err != nil {
		return "", fmt.Errorf("cache get: %w", err)
	}
	return val, nil
}

// Set stores a value and invalidates the cache entry.
func (c *Cached) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Set(key, value); err != nil {
		return fmt.Errorf("store set: %w", err)
	}
	c.cache.Invalidate(func(k string) bool { return k == key })
	return nil
}

// Delete removes a key and invalidates the cache entry.
func (c *Cached) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.store.Delete(key)
	// invalidate regardless of error - key might have been cached
	c.cache.Invalidate(func(k string) bool { return k == key })
	if err != nil {
		return fmt.Errorf("store delete: %w", err)
	}
	return nil
}

// List returns all entries from the underlying store (not cached).
func (c *Cached) List() ([]Entry, error) {
	entries, err := c.store.List()
	if err != nil {
		return nil, fmt.Errorf("store list: %w", err)
	}
	return entries, nil
}

// Close closes the cache and underlying store.
func (c *Cached) Close() error {
	_ = c.cache.Close()
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("store close: %w", err)
	}
	return nil
}

// Stats returns cache statistics.
func (c *Cached) Stats() lcw.CacheStat {
	return c.cache.Stat()
}
