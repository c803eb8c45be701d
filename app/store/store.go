// Package store provides persistent string key-value storage for UI preferences.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a key is not found in the store.
var ErrNotFound = errors.New("key not found")

// Entry is a stored preference with its metadata.
type Entry struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Interface defines the storage operations shared by Store and Cached.
type Interface interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	List() ([]Entry, error)
	Close() error
}
