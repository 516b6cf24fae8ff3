// Package ecommerce defines the storage interface used by UserPreference.
package ecommerce

import (
	"context"
)

// Storage defines the methods required for a storage backend.
// Get returns ErrNotFound when the user has no entry.
type Storage interface {
	Get(ctx context.Context, userID string) (*Settings, error)
	Set(ctx context.Context, settings *Settings) error
	Delete(ctx context.Context, userID string) error
	GetAll(ctx context.Context) (map[string]*Settings, error)
	Close() error
}
