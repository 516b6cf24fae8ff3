package handler

import (
	"context"

	"github.com/sapsa07/ecommerce"
)

// AndroidHandler applies locale changes coming from the Android app.
type AndroidHandler struct {
	d delegate
}

// NewAndroidHandler wraps prefs. A nil logger selects ecommerce.NewDefaultLogger.
func NewAndroidHandler(prefs *ecommerce.UserPreference, logger ecommerce.Logger) *AndroidHandler {
	return &AndroidHandler{d: newDelegate(PlatformAndroid, prefs, logger)}
}

// Platform reports PlatformAndroid.
func (h *AndroidHandler) Platform() string { return h.d.platform }

// ChangeUserCountry sets name's country, leaving the language untouched.
func (h *AndroidHandler) ChangeUserCountry(ctx context.Context, name string, country ecommerce.Country) error {
	return h.d.changeUserCountry(ctx, name, country)
}

// ChangeUserLanguage sets both name's country and language.
func (h *AndroidHandler) ChangeUserLanguage(ctx context.Context, name string, country ecommerce.Country, language ecommerce.Language) error {
	return h.d.changeUserLanguage(ctx, name, country, language)
}
