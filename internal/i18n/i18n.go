// Package i18n provides internationalization support for the necklace report.
// It handles translation of user-facing report lines.
package i18n

import (
	"fmt"
	"strings"
	"sync"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// Translatef translates key and formats it with args.
func (t *Translator) Translatef(key, locale string, args ...any) string {
	return fmt.Sprintf(t.Translate(key, locale), args...)
}

// Supported reports whether locale has its own message table.
func (t *Translator) Supported(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// NormalizeLocale reduces a locale such as "sv-SE", "sv_SE.UTF-8" or
// "en-US,en;q=0.9" to a supported base language, falling back to DefaultLocale.
func NormalizeLocale(locale string) string {
	lang := strings.TrimSpace(strings.Split(locale, ",")[0])
	lang = strings.Split(lang, ";")[0]
	lang = strings.Split(lang, ".")[0]
	if idx := strings.IndexAny(lang, "-_"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)

	if GetTranslator().Supported(lang) {
		return lang
	}
	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"report.generating":    "Generating a test necklace!",
			"report.shape_heading": "Shape count:",
			"report.shape_count":   "This necklace has %d teardrops and %d round pearls.",
			"report.details":       "More details:",
			"report.sorted":        "Sorted pearls:",
			"report.total_cost":    "Total cost of the necklace is %dkr.",
			"report.search":        "Trying to find a match for %s.",
			"report.match_found":   "Match found at #%d: %s.",
			"report.no_match":      "No matching pearl found.",
		},
		"sv": {
			"report.generating":    "Skapar ett testhalsband!",
			"report.shape_heading": "Antal per form:",
			"report.shape_count":   "Halsbandet har %d droppformade och %d runda pärlor.",
			"report.details":       "Fler detaljer:",
			"report.sorted":        "Sorterade pärlor:",
			"report.total_cost":    "Halsbandets totala kostnad är %dkr.",
			"report.search":        "Försöker hitta en matchning för %s.",
			"report.match_found":   "Matchning hittad på #%d: %s.",
			"report.no_match":      "Ingen matchande pärla hittades.",
		},
	}
}
