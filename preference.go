// preference.go
package ecommerce

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

// UserPreference maps user names to their (country, language) settings.
// One instance is typically shared by several platform handlers; all writes
// go through it so that read-modify-write sequences are serialized.
type UserPreference struct {
	mu     sync.Mutex
	config *Config
}

// New creates a UserPreference configured by opts.
// A Storage must be supplied with WithStorage; without one every operation
// returns ErrStorageUnavailable. A nil Logger falls back to NewDefaultLogger.
func New(opts ...Option) *UserPreference {
	cfg := &Config{}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = NewDefaultLogger()
	}

	return &UserPreference{
		config: cfg,
	}
}

// SetCountry records country for userID, keeping any language already set.
func (p *UserPreference) SetCountry(ctx context.Context, userID string, country Country) error {
	if err := validateUser(userID); err != nil {
		return err
	}
	if err := validateCountry(country); err != nil {
		return err
	}

	return p.update(ctx, userID, func(s *Settings) {
		s.Country = country
	})
}

// SetLanguage records language for userID, keeping any country already set.
func (p *UserPreference) SetLanguage(ctx context.Context, userID string, language Language) error {
	if err := validateUser(userID); err != nil {
		return err
	}
	if err := validateLanguage(language); err != nil {
		return err
	}

	return p.update(ctx, userID, func(s *Settings) {
		s.Language = language
	})
}

// Set records both country and language for userID in a single write.
func (p *UserPreference) Set(ctx context.Context, userID string, country Country, language Language) error {
	if err := validateUser(userID); err != nil {
		return err
	}
	if err := validateCountry(country); err != nil {
		return err
	}
	if err := validateLanguage(language); err != nil {
		return err
	}

	return p.update(ctx, userID, func(s *Settings) {
		s.Country = country
		s.Language = language
	})
}

// Get returns the settings stored for userID. The boolean is false, with a nil
// error, when the user has never been written.
func (p *UserPreference) Get(ctx context.Context, userID string) (Settings, bool, error) {
	if err := validateUser(userID); err != nil {
		return Settings{}, false, err
	}
	if p.config.storage == nil {
		return Settings{}, false, ErrStorageUnavailable
	}

	s, err := p.config.storage.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return Settings{}, false, nil
	}
	if err != nil {
		return Settings{}, false, err
	}

	return *s, true, nil
}

// Delete removes userID from the store. It returns ErrNotFound if the user
// has no entry.
func (p *UserPreference) Delete(ctx context.Context, userID string) error {
	if err := validateUser(userID); err != nil {
		return err
	}
	if p.config.storage == nil {
		return ErrStorageUnavailable
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.config.storage.Delete(ctx, userID); err != nil {
		return err
	}
	p.config.logger.Debug("Deleted user preference", "user", userID)
	return nil
}

// All returns a snapshot of every stored entry keyed by user name.
func (p *UserPreference) All(ctx context.Context) (map[string]Settings, error) {
	if p.config.storage == nil {
		return nil, ErrStorageUnavailable
	}

	stored, err := p.config.storage.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]Settings, len(stored))
	for user, s := range stored {
		out[user] = *s
	}
	return out, nil
}

// Users returns the names of all stored users in ascending order.
func (p *UserPreference) Users(ctx context.Context) ([]string, error) {
	all, err := p.All(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]string, 0, len(all))
	for user := range all {
		users = append(users, user)
	}
	slices.Sort(users)
	return users, nil
}

func (p *UserPreference) update(ctx context.Context, userID string, apply func(*Settings)) error {
	if p.config.storage == nil {
		return ErrStorageUnavailable
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	s, err := p.config.storage.Get(ctx, userID)
	switch {
	case errors.Is(err, ErrNotFound):
		s = &Settings{UserID: userID}
	case err != nil:
		return fmt.Errorf("failed to load preference for %q: %w", userID, err)
	}

	apply(s)
	s.UpdatedAt = time.Now()

	if err := p.config.storage.Set(ctx, s); err != nil {
		p.config.logger.Error("Failed to store user preference", "user", userID, "error", err)
		return err
	}

	p.config.logger.Debug("Stored user preference",
		"user", userID,
		"country", s.Country,
		"language", s.Language,
	)
	return nil
}
