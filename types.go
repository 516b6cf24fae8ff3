// Package ecommerce defines the core types used by the preference store.
package ecommerce

import (
	"time"
)

// Settings is the (country, language) pair stored for one user.
// A field left empty has not been set yet.
type Settings struct {
	// UserID is the user name the entry is keyed by.
	UserID string `json:"user_id"`
	// Country is the user's chosen country code.
	Country Country `json:"country,omitempty"`
	// Language is the user's chosen language code.
	Language Language `json:"language,omitempty"`
	// UpdatedAt records the time of the last write.
	UpdatedAt time.Time `json:"updated_at"`
}

// Config holds the internal configuration for a UserPreference.
// It is populated by applying functional Options when New is called.
type Config struct {
	storage Storage
	logger  Logger
}

// Option defines the signature for a functional option that configures a UserPreference.
type Option func(*Config)

// WithStorage sets the Storage backend. This option is mandatory: a
// UserPreference without storage returns ErrStorageUnavailable from every
// operation. The storage package provides MemoryStorage and SQLiteStorage.
func WithStorage(s Storage) Option {
	return func(c *Config) {
		c.storage = s
	}
}

// WithLogger sets the Logger. If not set, or set to nil, NewDefaultLogger is used.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.logger = l
	}
}
