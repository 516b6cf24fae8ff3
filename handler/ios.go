package handler

import (
	"context"

	"github.com/sapsa07/ecommerce"
)

// IOSHandler applies locale changes coming from the iOS app.
type IOSHandler struct {
	d delegate
}

// NewIOSHandler wraps prefs. A nil logger selects ecommerce.NewDefaultLogger.
func NewIOSHandler(prefs *ecommerce.UserPreference, logger ecommerce.Logger) *IOSHandler {
	return &IOSHandler{d: newDelegate(PlatformIOS, prefs, logger)}
}

// Platform reports PlatformIOS.
func (h *IOSHandler) Platform() string { return h.d.platform }

// ChangeUserCountry sets name's country, leaving the language untouched.
func (h *IOSHandler) ChangeUserCountry(ctx context.Context, name string, country ecommerce.Country) error {
	return h.d.changeUserCountry(ctx, name, country)
}

// ChangeUserLanguage sets both name's country and language.
func (h *IOSHandler) ChangeUserLanguage(ctx context.Context, name string, country ecommerce.Country, language ecommerce.Language) error {
	return h.d.changeUserLanguage(ctx, name, country, language)
}
