// Package store holds the process-wide entity stores. Each store is a JSON
// array mirrored to a storage backend on every mutation: full-document
// replace, seeded with demo data on first load, reseeded when the stored
// document cannot be parsed.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"cloudstage/storage"
)

// ErrNotFound indicates no entity matched the lookup.
var ErrNotFound = errors.New("store: not found")

// Collection is a mutex-guarded slice of entities mirrored to one backend key.
type Collection[T any] struct {
	mu      sync.RWMutex
	key     string
	backend storage.Backend
	seed    []T
	items   []T
}

// NewCollection loads the collection from the backend, seeding the demo
// dataset when the key is absent or holds malformed JSON.
func NewCollection[T any](backend storage.Backend, key string, seed []T) (*Collection[T], error) {
	c := &Collection[T]{key: key, backend: backend, seed: seed}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Collection[T]) load() error {
	data, err := c.backend.Read(c.key)
	if errors.Is(err, storage.ErrNotFound) {
		return c.reseed()
	}
	if err != nil {
		return err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupt state is non-fatal: discard and fall back to the seed.
		log.Printf("store: discarding malformed %q document: %v", c.key, err)
		return c.reseed()
	}
	if len(items) == 0 && len(c.seed) > 0 {
		return c.reseed()
	}
	c.items = items
	return nil
}

func (c *Collection[T]) reseed() error {
	c.items = append([]T(nil), c.seed...)
	return c.persist()
}

// persist rewrites the whole array. Callers must hold c.mu.
func (c *Collection[T]) persist() error {
	data, err := json.MarshalIndent(c.items, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", c.key, err)
	}
	return c.backend.Write(c.key, data)
}

// All returns a copy of the collection, most recent first.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

// Filter returns copies of all entities matching the predicate.
func (c *Collection[T]) Filter(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []T{}
	for _, item := range c.items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Find returns the first entity matching the predicate.
func (c *Collection[T]) Find(match func(T) bool) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if match(item) {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Prepend inserts the entity at the head (most-recent-first ordering).
func (c *Collection[T]) Prepend(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append([]T{item}, c.items...)
	return c.persist()
}

// Replace swaps the first entity matching the predicate for item.
func (c *Collection[T]) Replace(match func(T) bool, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if match(c.items[i]) {
			c.items[i] = item
			return c.persist()
		}
	}
	return ErrNotFound
}

// Update mutates the first entity matching the predicate in place. The
// mutate callback may return an error to abort without persisting.
func (c *Collection[T]) Update(match func(T) bool, mutate func(*T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if match(c.items[i]) {
			if err := mutate(&c.items[i]); err != nil {
				return err
			}
			return c.persist()
		}
	}
	return ErrNotFound
}

// InsertIfAbsent prepends item only when no existing entity matches the
// predicate. The check and the insert run under one lock, so concurrent
// callers with the same key cannot double-insert. Returns false when an
// entity already existed.
func (c *Collection[T]) InsertIfAbsent(match func(T) bool, item T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.items {
		if match(existing) {
			return false, nil
		}
	}
	c.items = append([]T{item}, c.items...)
	return true, c.persist()
}

// Count returns how many entities match the predicate.
func (c *Collection[T]) Count(match func(T) bool) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, item := range c.items {
		if match(item) {
			n++
		}
	}
	return n
}

// Len returns the number of stored entities.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
