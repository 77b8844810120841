package i18n

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/dmitrymomot/optkit/pkg/logger"
)

// Translator resolves translation keys against per-language catalogs. A
// catalog maps a language code to a (possibly nested) map of templates; keys
// are dot-separated paths into that map. Catalogs are fixed at construction,
// so a Translator is safe for concurrent use without locking.
type Translator struct {
	catalogs      map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger
}

// Option configures Translator creation.
type Option func(*Translator)

// WithDefaultLanguage sets the language tried when the requested one has no
// translation for a key.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether an untranslatable key is returned as-is
// (true, the default) or as an empty string.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) { t.fallbackToKey = fallback }
}

// WithLogger sets the logger used to report missing translations.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTranslator creates a Translator over the given catalogs. Missing
// translations are reported through the pkg/logger environment-configured
// logger unless WithLogger overrides it.
func NewTranslator(catalogs map[string]map[string]any, options ...Option) (*Translator, error) {
	t := &Translator{
		catalogs:      catalogs,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.NewFromEnv(),
	}
	for _, option := range options {
		option(t)
	}
	if err := validateCatalogs(catalogs); err != nil {
		return nil, err
	}
	return t, nil
}

func validateCatalogs(catalogs map[string]map[string]any) error {
	for lang, translations := range catalogs {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if translations == nil {
			return fmt.Errorf("%w: %s", ErrNilLanguageMap, lang)
		}
	}
	return nil
}

// SupportedLanguages returns the language codes that have catalogs, sorted.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.catalogs))
	for lang := range t.catalogs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// T resolves key in the given language and substitutes named placeholders.
// The args are name/value pairs: T("en", "greeting", "name", "Alice")
// replaces "%{name}" in the template with "Alice". Lookup falls back to the
// default language, then (when fallback-to-key is enabled) to the key itself.
func (t *Translator) T(lang, key string, args ...any) string {
	return t.TValues(lang, key, buildParams(args))
}

// TValues is T with the placeholder values already in map form — the shape
// a normalizer ValidationError carries in TranslationValues.
func (t *Translator) TValues(lang, key string, values map[string]any) string {
	template, ok := t.lookup(lang, key)
	if !ok && lang != t.defaultLang {
		template, ok = t.lookup(t.defaultLang, key)
	}
	if !ok {
		t.logger.Warn("missing translation", "lang", lang, "key", key)
		if t.fallbackToKey {
			template = key
		} else {
			return ""
		}
	}
	return namedSprintf(template, values)
}

// lookup traverses a catalog using dot-separated keys, so "normalizer.enum"
// reads catalog["normalizer"]["enum"].
func (t *Translator) lookup(lang, key string) (string, bool) {
	catalog, ok := t.catalogs[lang]
	if !ok {
		return "", false
	}
	parts := strings.Split(key, ".")
	current := catalog
	for i, part := range parts {
		if i == len(parts)-1 {
			if s, ok := current[part].(string); ok {
				return s, true
			}
			return "", false
		}
		next, ok := current[part].(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

// buildParams converts name/value pairs into a map. An odd trailing argument
// is ignored; a non-string name is skipped.
func buildParams(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	params := make(map[string]any, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		name, ok := args[i].(string)
		if !ok {
			continue
		}
		params[name] = args[i+1]
	}
	return params
}

// paramRegex finds named parameters in the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf substitutes "%{name}" placeholders from values. Placeholders
// without a value are kept verbatim so a half-filled template stays visible
// instead of silently losing its slot.
func namedSprintf(template string, values map[string]any) string {
	if len(values) == 0 {
		return template
	}
	return paramRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-1]
		val, ok := values[name]
		if !ok {
			return match
		}
		return formatValue(val)
	})
}

// formatValue renders a placeholder value as user-facing text: string slices
// become comma-joined lists, everything else goes through fmt.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	default:
		return fmt.Sprint(val)
	}
}
