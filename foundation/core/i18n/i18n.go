// File: i18n.go
// Title: Core Internationalization Implementation
// Description: Implements the i18n Manager which loads TOML and YAML
//              catalogs from a file system, resolves dotted keys with
//              fallback to the default locale and renders messages with
//              text/template.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with embedded catalogs

package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/summa/foundation/core/error"
)

//go:embed locales/*.toml locales/*.yaml
var embedded embed.FS

// DefaultLocale is the locale used when Options leaves it unset
const DefaultLocale = "en"

// Format represents the catalog file format
type Format int

const (
	// FormatTOML represents TOML catalogs
	FormatTOML Format = iota

	// FormatYAML represents YAML catalogs
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// formatFromExt maps a file extension to its catalog format
func formatFromExt(ext string) (Format, bool) {
	switch strings.ToLower(ext) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return 0, false
	}
}

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale string // Default locale (e.g., "en")
	Locale        string // Initial locale, defaults to DefaultLocale
	LocalesDir    string // Optional directory with catalogs overriding the embedded ones
	FS            fs.FS  // Optional catalog file system, takes precedence over LocalesDir
}

// Manager manages localized messages
type Manager struct {
	mu            sync.RWMutex
	defaultLocale string
	currentLocale string
	translations  map[string]map[string]interface{} // locale -> translations
	templates     map[string]*template.Template     // locale/key -> compiled template
}

// TranslationData represents the structure of a catalog file
type TranslationData map[string]interface{}

// New creates a new manager. Catalogs are read from opts.FS, from
// opts.LocalesDir, or from the catalogs embedded in the binary.
func New(opts Options) (*Manager, error) {
	if strings.TrimSpace(opts.DefaultLocale) == "" {
		opts.DefaultLocale = DefaultLocale
	}

	fsys, dir := opts.FS, "."
	switch {
	case fsys != nil:
	case opts.LocalesDir != "":
		if _, err := os.Stat(opts.LocalesDir); err != nil {
			return nil, mdwerror.Wrap(err, "locales directory not found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("i18n.New").
				WithDetail("directory", opts.LocalesDir)
		}
		fsys = os.DirFS(opts.LocalesDir)
	default:
		fsys, dir = embedded, "locales"
	}

	m := &Manager{
		defaultLocale: opts.DefaultLocale,
		currentLocale: opts.DefaultLocale,
		translations:  make(map[string]map[string]interface{}),
		templates:     make(map[string]*template.Template),
	}

	if err := m.loadAll(fsys, dir); err != nil {
		return nil, err
	}

	if opts.Locale != "" {
		if err := m.SetLocale(opts.Locale); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustNew is like New but panics on error. It is meant for the embedded
// catalogs, which are known to be valid.
func MustNew(opts Options) *Manager {
	m, err := New(opts)
	if err != nil {
		panic(err)
	}
	return m
}

// loadAll loads every catalog file in dir
func (m *Manager) loadAll(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read locales").
			WithCode(mdwerror.CodeIOError).
			WithOperation("i18n.loadAll").
			WithDetail("reason", err.Error())
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := path.Ext(name)
		format, ok := formatFromExt(ext)
		if !ok {
			continue
		}

		locale := NormalizeLocale(strings.TrimSuffix(name, ext))
		if locale == "" {
			continue
		}

		if err := m.loadFile(fsys, path.Join(dir, name), locale, format); err != nil {
			return err
		}
	}

	if _, exists := m.translations[m.defaultLocale]; !exists {
		return mdwerror.Newf("default locale '%s' not found", m.defaultLocale).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.loadAll").
			WithDetail("locale", m.defaultLocale)
	}

	return nil
}

// loadFile parses one catalog file
func (m *Manager) loadFile(fsys fs.FS, name, locale string, format Format) error {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read catalog").
			WithCode(mdwerror.CodeIOError).
			WithOperation("i18n.loadFile").
			WithDetail("file", name).
			WithDetail("reason", err.Error())
	}

	data := map[string]interface{}{}
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(content, &data)
	case FormatYAML:
		err = yaml.Unmarshal(content, &data)
	}
	if err != nil {
		return mdwerror.Wrap(err, fmt.Sprintf("failed to parse %s catalog", format)).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("i18n.loadFile").
			WithDetail("file", name).
			WithDetail("reason", err.Error())
	}

	m.mu.Lock()
	m.translations[locale] = data
	m.mu.Unlock()

	return nil
}

// T translates a key with optional template data. Unknown keys render as
// "[key]".
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	translation, err := m.TryT(key, data...)
	if err != nil && translation == "" {
		return fmt.Sprintf("[%s]", key)
	}
	return translation
}

// TryT translates a key and returns an error if translation fails
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	m.mu.RLock()
	locale := m.currentLocale
	raw := m.lookup(key, locale)
	m.mu.RUnlock()

	if raw == nil {
		return "", mdwerror.New("translation not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.TryT").
			WithDetail("key", key)
	}

	forms := pluralForms(raw)
	if len(data) == 0 || data[0] == nil {
		return forms[0], nil
	}

	return m.render(locale+"/"+key, forms[0], data[0])
}

// Plural returns the form matching count. Catalog entries given as arrays
// hold the singular form first.
func (m *Manager) Plural(key string, count int, data map[string]interface{}) string {
	m.mu.RLock()
	locale := m.currentLocale
	raw := m.lookup(key, locale)
	m.mu.RUnlock()

	if raw == nil {
		return fmt.Sprintf("[%s]", key)
	}

	forms := pluralForms(raw)
	index := 1
	if count == 1 {
		index = 0
	}
	if index >= len(forms) {
		index = len(forms) - 1
	}

	if data == nil {
		data = map[string]interface{}{}
	}
	if _, ok := data["count"]; !ok {
		data["count"] = count
	}

	rendered, err := m.render(fmt.Sprintf("%s/%s#%d", locale, key, index), forms[index], data)
	if err != nil {
		return forms[index]
	}
	return rendered
}

// lookup finds the raw value for key, falling back to the default locale.
// The caller must hold the read lock.
func (m *Manager) lookup(key, locale string) interface{} {
	if value := nestedValue(m.translations[locale], key); value != nil {
		return value
	}
	if locale != m.defaultLocale {
		return nestedValue(m.translations[m.defaultLocale], key)
	}
	return nil
}

// nestedValue retrieves a value using dot notation
func nestedValue(data map[string]interface{}, key string) interface{} {
	if data == nil {
		return nil
	}

	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		value, ok := current[k]
		if !ok {
			return nil
		}
		if i == len(keys)-1 {
			if _, isSection := section(value); isSection {
				return nil
			}
			return value
		}

		next, ok := section(value)
		if !ok {
			return nil
		}
		current = next
	}

	return nil
}

// section returns value as a catalog table. The YAML decoder types nested
// mappings after the map it decodes into, so TranslationData is accepted too.
func section(value interface{}) (map[string]interface{}, bool) {
	switch v := value.(type) {
	case map[string]interface{}:
		return v, true
	case TranslationData:
		return v, true
	default:
		return nil, false
	}
}

// pluralForms returns the forms of a catalog value; scalars have one form
func pluralForms(value interface{}) []string {
	if arr, ok := value.([]interface{}); ok && len(arr) > 0 {
		forms := make([]string, len(arr))
		for i, v := range arr {
			forms[i] = fmt.Sprintf("%v", v)
		}
		return forms
	}
	return []string{fmt.Sprintf("%v", value)}
}

// render executes a message template, compiling and caching it on first use
func (m *Manager) render(cacheKey, text string, data map[string]interface{}) (string, error) {
	m.mu.RLock()
	tmpl, cached := m.templates[cacheKey]
	m.mu.RUnlock()

	if !cached {
		var err error
		tmpl, err = template.New(cacheKey).Option("missingkey=zero").Parse(text)
		if err != nil {
			return text, mdwerror.Wrap(err, "template compilation failed").
				WithCode(mdwerror.CodeInternal).
				WithOperation("i18n.render").
				WithDetail("key", cacheKey)
		}
		m.mu.Lock()
		m.templates[cacheKey] = tmpl
		m.mu.Unlock()
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return text, mdwerror.Wrap(err, "template execution failed").
			WithCode(mdwerror.CodeInternal).
			WithOperation("i18n.render").
			WithDetail("key", cacheKey)
	}

	return result.String(), nil
}

// SetLocale changes the current locale. Regional variants such as "de-AT"
// fall back to their language when only that is available.
func (m *Manager) SetLocale(locale string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	resolved := m.resolve(locale)
	if resolved == "" {
		return mdwerror.New("locale not available").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.SetLocale").
			WithDetail("locale", locale)
	}

	m.currentLocale = resolved
	return nil
}

// resolve maps a requested locale onto a loaded one. The caller must hold
// the lock.
func (m *Manager) resolve(locale string) string {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return ""
	}
	if _, ok := m.translations[normalized]; ok {
		return normalized
	}
	language, _ := SplitLocale(normalized)
	if _, ok := m.translations[language]; ok {
		return language
	}
	return ""
}

// GetCurrentLocale returns the current active locale
func (m *Manager) GetCurrentLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// GetDefaultLocale returns the default locale
func (m *Manager) GetDefaultLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultLocale
}

// GetAvailableLocales returns a sorted list of all loaded locales
func (m *Manager) GetAvailableLocales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	locales := make([]string, 0, len(m.translations))
	for locale := range m.translations {
		locales = append(locales, locale)
	}

	sort.Strings(locales)
	return locales
}

// HasLocale checks if a locale, or its language, is available
func (m *Manager) HasLocale(locale string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.resolve(locale) != ""
}

// HasTranslation checks if a key exists in the current or default locale
func (m *Manager) HasTranslation(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lookup(key, m.currentLocale) != nil
}

// GetTranslationKeys returns all keys of the current locale
func (m *Manager) GetTranslationKeys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := collectKeys(m.translations[m.currentLocale], "")
	sort.Strings(keys)
	return keys
}

func collectKeys(data map[string]interface{}, prefix string) []string {
	var keys []string
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := section(value); ok {
			keys = append(keys, collectKeys(nested, fullKey)...)
			continue
		}
		keys = append(keys, fullKey)
	}
	return keys
}

// String provides a readable representation of the manager
func (m *Manager) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fmt.Sprintf("i18n.Manager{defaultLocale: %s, currentLocale: %s, locales: %d}",
		m.defaultLocale, m.currentLocale, len(m.translations))
}
