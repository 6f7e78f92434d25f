package store

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"cloudstage/storage"
)

// AppStatusStore persists the single global online/offline flag under its
// own key, independent of the entity collections.
type AppStatusStore struct {
	mu      sync.RWMutex
	key     string
	backend storage.Backend
	online  bool
}

type appStatusDoc struct {
	Online bool `json:"online"`
}

// NewAppStatusStore loads the flag, defaulting to online on first run or
// when the stored document cannot be parsed.
func NewAppStatusStore(backend storage.Backend, key string) (*AppStatusStore, error) {
	s := &AppStatusStore{key: key, backend: backend, online: true}

	data, err := backend.Read(key)
	if errors.Is(err, storage.ErrNotFound) {
		return s, s.persist()
	}
	if err != nil {
		return nil, err
	}

	var doc appStatusDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("store: discarding malformed %q document: %v", key, err)
		return s, s.persist()
	}
	s.online = doc.Online
	return s, nil
}

func (s *AppStatusStore) persist() error {
	data, err := json.MarshalIndent(appStatusDoc{Online: s.online}, "", "  ")
	if err != nil {
		return err
	}
	return s.backend.Write(s.key, data)
}

// Online reports whether streaming and ticketing are enabled.
func (s *AppStatusStore) Online() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.online
}

// SetOnline flips the global flag and persists it.
func (s *AppStatusStore) SetOnline(online bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.online = online
	return s.persist()
}
