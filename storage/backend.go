// Package storage provides the raw persistence contract behind the entity
// stores: one JSON document per fixed string key, replaced whole on every
// write.
package storage

import "errors"

// ErrNotFound indicates no document exists under the requested key.
var ErrNotFound = errors.New("storage: not found")

// Backend reads and writes opaque documents by key. Implementations must be
// safe for concurrent use.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}
