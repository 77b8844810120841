package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/optkit/pkg/config"
)

// DefaultLanguage is used when no language can be detected from the process
// environment.
const DefaultLanguage = "en"

// Config overrides locale detection through the environment.
type Config struct {
	Language string `env:"OPTKIT_LANG"`
}

// Detect returns the language code for the current process. OPTKIT_LANG wins,
// then the POSIX locale variables in their usual precedence order: LC_ALL,
// LC_MESSAGES, LANG. Locale spellings such as "en_US.UTF-8" normalize to the
// base language "en"; the C and POSIX locales mean "no preference".
func Detect() string {
	var cfg Config
	if err := config.Load(&cfg); err == nil && cfg.Language != "" {
		if lang, ok := normalizeLocale(cfg.Language); ok {
			return lang
		}
	}
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			if lang, ok := normalizeLocale(v); ok {
				return lang
			}
		}
	}
	return DefaultLanguage
}

// normalizeLocale reduces a POSIX locale value to a base language code.
func normalizeLocale(v string) (string, bool) {
	v = strings.TrimSpace(v)
	// Strip charset and modifier suffixes: "en_US.UTF-8@euro" -> "en_US".
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || strings.EqualFold(v, "C") || strings.EqualFold(v, "POSIX") {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	return base.String(), true
}
