package memory

import (
	"context"
	"sync"
)

// Store is an in-process storage.Store. Its contents vanish with the process.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Get returns the value for key.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set overwrites the value for key.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Remove deletes key.
func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
