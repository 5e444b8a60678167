// File: locale.go
// Title: Locale Normalization and Detection
// Description: Normalizes locale strings given on the command line, in the
//              configuration or in POSIX environment variables such as
//              LANG=de_DE.UTF-8.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation of locale helpers

package i18n

import (
	"strings"

	mdwerror "github.com/msto63/summa/foundation/core/error"
)

// NormalizeLocale normalizes a locale string to the form "en" or "en-US".
// Invalid input yields "".
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ""
	}

	// Strip POSIX codeset and modifier: de_DE.UTF-8@euro
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}

	locale = strings.ReplaceAll(strings.ToLower(locale), "_", "-")
	parts := strings.Split(locale, "-")

	language := parts[0]
	if len(language) != 2 && len(language) != 3 {
		return ""
	}
	for _, r := range language {
		if r < 'a' || r > 'z' {
			return ""
		}
	}

	if len(parts) > 1 && len(parts[1]) == 2 {
		return language + "-" + strings.ToUpper(parts[1])
	}

	return language
}

// ValidateLocale validates if a locale string is in valid format
func ValidateLocale(locale string) error {
	if strings.TrimSpace(locale) == "" {
		return mdwerror.New("locale cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("i18n.ValidateLocale")
	}

	if NormalizeLocale(locale) == "" {
		return mdwerror.New("invalid locale format").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("i18n.ValidateLocale").
			WithDetail("locale", locale).
			WithDetail("expected_format", "e.g., 'en', 'en-US'")
	}

	return nil
}

// SplitLocale splits a locale into language and country parts
func SplitLocale(locale string) (language, country string) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return "", ""
	}

	language, country, _ = strings.Cut(normalized, "-")
	return language, country
}

// DetectLocale picks the locale from the POSIX environment lookup order
// LC_ALL, LC_MESSAGES, LANG. The values "C" and "POSIX" are ignored.
func DetectLocale(getenv func(string) string) string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := getenv(name)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if normalized := NormalizeLocale(value); normalized != "" {
			return normalized
		}
	}
	return ""
}

// GetLocaleDisplayName returns a human-readable name for the locales summa
// ships catalogs for
func GetLocaleDisplayName(locale string) string {
	displayNames := map[string]string{
		"en":    "English",
		"en-US": "English (United States)",
		"en-GB": "English (United Kingdom)",
		"de":    "Deutsch",
		"de-DE": "Deutsch (Deutschland)",
		"de-AT": "Deutsch (Österreich)",
		"de-CH": "Deutsch (Schweiz)",
	}

	normalized := NormalizeLocale(locale)
	if name, ok := displayNames[normalized]; ok {
		return name
	}
	if normalized != "" {
		return normalized
	}
	return locale
}
