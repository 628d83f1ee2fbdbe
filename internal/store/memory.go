package store

import (
	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore implements an in-memory store. Used directly in tests and as
// the read-through layer of LayeredStore.
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates a new memory store. Entries never expire.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves a value from the store
func (s *MemoryStore) Get(key string) (string, bool) {
	if val, found := s.cache.Get(key); found {
		return val.(string), true
	}
	return "", false
}

// Set stores a value
func (s *MemoryStore) Set(key string, value string) error {
	s.cache.Set(key, value, gocache.NoExpiration)
	return nil
}
