// Package i18n resolves the request language and prints site copy.
package i18n

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jppf-project/site/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "site_lang"
)

var (
	supportedTags = []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}
	matcher       = language.NewMatcher(supportedTags)
)

func init() {
	if err := checkCatalog(catalog.Default()); err != nil {
		panic(err)
	}
}

// checkCatalog fails when a supported tag has no catalog or lacks base keys.
func checkCatalog(bundle *catalog.Bundle) error {
	if bundle == nil {
		return fmt.Errorf("i18n catalog is not loaded")
	}
	for _, tag := range supportedTags {
		locale := tag.String()
		if !bundle.HasLocale(locale) {
			return fmt.Errorf("i18n catalog has no locale %q", locale)
		}
		if missing := bundle.MissingKeys(locale); len(missing) > 0 {
			return fmt.Errorf("i18n catalog locale %q is missing keys: %s", locale, strings.Join(missing, ", "))
		}
	}
	return nil
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.AmericanEnglish
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ParseTag maps a raw language value onto a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return language.Und, false
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return language.Und, false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence < language.High {
		return language.Und, false
	}
	return supportedTags[idx], true
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}

	if r.URL != nil {
		if tag, ok := ParseTag(r.URL.Query().Get(LangParam)); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, confidence := matcher.Match(tags...)
			if confidence != language.No {
				return supportedTags[idx], false
			}
		}
	}

	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves the request language, persisting an explicit
// selection, and returns its printer with the tag string.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag.String()
}
