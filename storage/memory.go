package storage

import (
	"context"
	"sync"
	"time"

	"github.com/sapsa07/ecommerce"
)

// MemoryStorage implements the Storage interface using an in-memory map.
// It is the default backend: nothing outlives the process.
type MemoryStorage struct {
	mu    sync.RWMutex
	users map[string]*ecommerce.Settings // userID -> Settings
}

// NewMemoryStorage creates a new instance of MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users: make(map[string]*ecommerce.Settings),
	}
}

// Get retrieves the settings for userID.
// It returns ecommerce.ErrNotFound if the user has no entry.
func (s *MemoryStorage) Get(_ context.Context, userID string) (*ecommerce.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings, ok := s.users[userID]
	if !ok {
		return nil, ecommerce.ErrNotFound
	}

	// Return a copy to prevent modification of the stored entry through the pointer
	c := *settings
	return &c, nil
}

// Set stores settings, replacing any previous entry for the same user.
func (s *MemoryStorage) Set(_ context.Context, settings *ecommerce.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	toStore := *settings
	if toStore.UpdatedAt.IsZero() {
		toStore.UpdatedAt = time.Now()
	}
	s.users[settings.UserID] = &toStore
	return nil
}

// Delete removes the entry for userID.
// It returns ecommerce.ErrNotFound if the user has no entry.
func (s *MemoryStorage) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return ecommerce.ErrNotFound
	}
	delete(s.users, userID)
	return nil
}

// GetAll retrieves copies of all stored entries keyed by user ID.
func (s *MemoryStorage) GetAll(_ context.Context) (map[string]*ecommerce.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*ecommerce.Settings, len(s.users))
	for user, settings := range s.users {
		c := *settings
		out[user] = &c
	}
	return out, nil
}

// Close is a no-op for MemoryStorage as there are no external resources to release.
func (s *MemoryStorage) Close() error {
	return nil
}
