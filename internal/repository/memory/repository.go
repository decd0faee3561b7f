// Package memory provides an in-memory implementation of the repository interface
package memory

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when a requested key is not present
var ErrNotFound = errors.New("key not found")

// Repository implements the repository interface with in-memory storage
type Repository struct {
	values map[string]string
	mu     sync.RWMutex
}

// NewRepository creates a new in-memory repository
func NewRepository() *Repository {
	return &Repository{
		values: make(map[string]string),
	}
}

// Get returns the value stored under key
func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set stores value under key, replacing any previous value
func (r *Repository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
	return nil
}
