// File: doc.go
// Title: Internationalization (i18n) Package Documentation
// Description: Package i18n provides the localized message catalog for
//              summa diagnostics and user interface texts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with TOML/YAML catalogs

/*
Package i18n provides localized messages for summa.

Catalogs are TOML or YAML files named after their locale. The English
catalog locales/en.toml and the German catalog locales/de.yaml are embedded
in the binary; a directory or fs.FS can replace them.

Keys use dot notation and values are text/template strings rendered with a
map of arguments:

	[diagnostic]
	incomplete = "failed to parse full input: consumed {{.consumed}} of {{.total}} tokens"

Array values hold plural forms, singular first:

	[output]
	tokens = ["{{.count}} token", "{{.count}} tokens"]

# Usage

	m, err := i18n.New(i18n.Options{Locale: "de"})
	if err != nil {
		return err
	}
	fmt.Println(m.T("diagnostic.overflow", map[string]interface{}{"text": "9999999999"}))
	fmt.Println(m.Plural("output.tokens", 3, nil))

Structured errors carry a message key derived from their code, so
Localize(err) renders a diagnostic in the current locale:

	fmt.Fprintln(os.Stderr, m.Localize(err))

Lookups fall back to the default locale when the current one lacks a key.
The manager is safe for concurrent use.
*/
package i18n
