package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

const (
	LangRU = "ru"
	LangEN = "en"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

type Manager struct {
	defaultLanguage string
	locales         map[string]map[string]string
	supported       []string
}

// NewManager loads catalogs from localesDir, or from the catalogs compiled
// into the binary when localesDir is empty.
func NewManager(defaultLanguage string, localesDir string) (*Manager, error) {
	if strings.TrimSpace(localesDir) == "" {
		locales, err := fs.Sub(embeddedLocales, "locales")
		if err != nil {
			return nil, fmt.Errorf("open embedded locales: %w", err)
		}
		return NewManagerFromFS(defaultLanguage, locales)
	}
	return NewManagerFromFS(defaultLanguage, os.DirFS(localesDir))
}

func NewManagerFromFS(defaultLanguage string, locales fs.FS) (*Manager, error) {
	manager := &Manager{
		locales: map[string]map[string]string{},
	}

	entries, err := fs.ReadDir(locales, ".")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}

		language := strings.TrimSuffix(strings.ToLower(entry.Name()), path.Ext(entry.Name()))
		content, err := fs.ReadFile(locales, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", language, err)
		}

		messages := map[string]string{}
		if err := json.Unmarshal(content, &messages); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", language, err)
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("locale %s is empty", language)
		}

		manager.locales[language] = messages
		manager.supported = append(manager.supported, language)
	}

	if len(manager.supported) == 0 {
		return nil, fmt.Errorf("no locales found")
	}
	for _, required := range []string{LangEN, LangRU} {
		if _, ok := manager.locales[required]; !ok {
			return nil, fmt.Errorf("required locale %q missing", required)
		}
	}

	sort.Strings(manager.supported)
	manager.defaultLanguage = LangEN
	manager.defaultLanguage = manager.NormalizeLanguage(defaultLanguage)
	return manager, nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) SupportedLanguages() []string {
	result := make([]string, len(manager.supported))
	copy(result, manager.supported)
	return result
}

func (manager *Manager) NormalizeLanguage(raw string) string {
	normalized := normalizeLanguageTag(raw)
	if manager.isSupported(normalized) {
		return normalized
	}
	return manager.defaultLanguage
}

func (manager *Manager) DetectFromAcceptLanguage(raw string) string {
	for _, part := range strings.Split(raw, ",") {
		token := strings.TrimSpace(strings.Split(part, ";")[0])
		normalized := normalizeLanguageTag(token)
		if manager.isSupported(normalized) {
			return normalized
		}
	}
	return manager.defaultLanguage
}

func (manager *Manager) Translate(language string, key string) string {
	for _, candidate := range []string{manager.NormalizeLanguage(language), manager.defaultLanguage} {
		if value, ok := manager.locales[candidate][key]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return key
}

// Translator binds language so catalogs can be handed to code that only
// knows message keys.
func (manager *Manager) Translator(language string) func(key string) string {
	resolved := manager.NormalizeLanguage(language)
	return func(key string) string {
		return manager.Translate(resolved, key)
	}
}

// MissingKeys lists the keys absent from, or blank in, the language's catalog.
func (manager *Manager) MissingKeys(language string, keys []string) []string {
	messages := manager.locales[normalizeLanguageTag(language)]
	missing := make([]string, 0)
	for _, key := range keys {
		if strings.TrimSpace(messages[key]) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

func (manager *Manager) isSupported(language string) bool {
	if language == "" {
		return false
	}
	_, ok := manager.locales[language]
	return ok
}

func normalizeLanguageTag(raw string) string {
	language := strings.ToLower(strings.TrimSpace(raw))
	if language == "" {
		return ""
	}
	language = strings.ReplaceAll(language, "_", "-")
	if separator := strings.Index(language, "-"); separator >= 0 {
		language = language[:separator]
	}
	return language
}
