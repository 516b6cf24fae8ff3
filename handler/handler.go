// Package handler provides the platform-facing entry points for changing a
// user's locale. Every handler wraps a shared *ecommerce.UserPreference and
// delegates to it; several handlers may share the same store.
package handler

import (
	"context"
	"fmt"

	"github.com/sapsa07/ecommerce"
)

// Platform names reported by the handlers.
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

// PlatformHandler is the capability every platform exposes.
type PlatformHandler interface {
	Platform() string
	ChangeUserCountry(ctx context.Context, name string, country ecommerce.Country) error
	ChangeUserLanguage(ctx context.Context, name string, country ecommerce.Country, language ecommerce.Language) error
}

// delegate holds what the platform variants have in common: the shared
// store they write to and the logger they report through.
type delegate struct {
	platform string
	prefs    *ecommerce.UserPreference
	logger   ecommerce.Logger
}

func newDelegate(platform string, prefs *ecommerce.UserPreference, logger ecommerce.Logger) delegate {
	if logger == nil {
		logger = ecommerce.NewDefaultLogger()
	}
	return delegate{
		platform: platform,
		prefs:    prefs,
		logger:   logger,
	}
}

func (d delegate) changeUserCountry(ctx context.Context, name string, country ecommerce.Country) error {
	d.logger.Info("Changing user country",
		"platform", d.platform,
		"user", name,
		"country", country,
	)
	if err := d.prefs.SetCountry(ctx, name, country); err != nil {
		return fmt.Errorf("%s: change country for %q: %w", d.platform, name, err)
	}
	return nil
}

func (d delegate) changeUserLanguage(ctx context.Context, name string, country ecommerce.Country, language ecommerce.Language) error {
	d.logger.Info("Changing user language",
		"platform", d.platform,
		"user", name,
		"country", country,
		"language", language,
	)
	if err := d.prefs.Set(ctx, name, country, language); err != nil {
		return fmt.Errorf("%s: change language for %q: %w", d.platform, name, err)
	}
	return nil
}
