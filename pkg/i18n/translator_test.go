package i18n_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/optkit/normalizer"
	"github.com/dmitrymomot/optkit/pkg/i18n"
	"github.com/dmitrymomot/optkit/pkg/logger"
)

func testCatalogs() map[string]map[string]any {
	return map[string]map[string]any{
		"en": {
			"normalizer": map[string]any{
				"number_required": "Numeric value is required",
				"enum_member":     "Value must be one of %{allowed}",
				"greeting":        "Hello, %{name}!",
			},
		},
		"de": {
			"normalizer": map[string]any{
				"number_required": "Numerischer Wert ist erforderlich",
			},
		},
	}
}

func TestTranslator(t *testing.T) {
	t.Run("resolves nested keys", func(t *testing.T) {
		tr, err := i18n.NewTranslator(testCatalogs())
		require.NoError(t, err)

		assert.Equal(t, "Numerischer Wert ist erforderlich", tr.T("de", "normalizer.number_required"))
	})

	t.Run("substitutes named placeholders from pairs", func(t *testing.T) {
		tr, err := i18n.NewTranslator(testCatalogs())
		require.NoError(t, err)

		assert.Equal(t, "Hello, Alice!", tr.T("en", "normalizer.greeting", "name", "Alice"))
	})

	t.Run("renders a normalizer validation error", func(t *testing.T) {
		tr, err := i18n.NewTranslator(testCatalogs())
		require.NoError(t, err)

		_, ferr := normalizer.NewEnum([]string{"a", "b"}).Format("c")
		verr, ok := normalizer.AsValidationError(ferr)
		require.True(t, ok)

		got := tr.TValues("en", verr.TranslationKey, verr.TranslationValues)
		assert.Equal(t, "Value must be one of a, b", got)
	})

	t.Run("string slices render comma-joined", func(t *testing.T) {
		tr, err := i18n.NewTranslator(testCatalogs())
		require.NoError(t, err)

		got := tr.TValues("en", "normalizer.enum_member", map[string]any{
			"allowed": []string{"x", "y", "z"},
		})
		assert.Equal(t, "Value must be one of x, y, z", got)
	})

	t.Run("unfilled placeholders stay visible", func(t *testing.T) {
		tr, err := i18n.NewTranslator(testCatalogs())
		require.NoError(t, err)

		assert.Equal(t, "Hello, %{name}!", tr.T("en", "normalizer.greeting"))
		assert.Equal(t, "Hello, %{name}!", tr.T("en", "normalizer.greeting", "other", "x"))
	})

	t.Run("falls back to the default language", func(t *testing.T) {
		tr, err := i18n.NewTranslator(testCatalogs())
		require.NoError(t, err)

		got := tr.T("de", "normalizer.enum_member", "allowed", "'a', 'b'")
		assert.Equal(t, "Value must be one of 'a', 'b'", got)
	})

	t.Run("falls back to the key and logs", func(t *testing.T) {
		var buf bytes.Buffer
		tr, err := i18n.NewTranslator(testCatalogs(),
			i18n.WithLogger(logger.New(logger.WithOutput(&buf))))
		require.NoError(t, err)

		assert.Equal(t, "normalizer.unknown_key", tr.T("en", "normalizer.unknown_key"))
		assert.Contains(t, buf.String(), "missing translation")
	})

	t.Run("fallback to key can be disabled", func(t *testing.T) {
		var buf bytes.Buffer
		tr, err := i18n.NewTranslator(testCatalogs(),
			i18n.WithFallbackToKey(false),
			i18n.WithLogger(logger.New(logger.WithOutput(&buf))))
		require.NoError(t, err)

		assert.Equal(t, "", tr.T("en", "normalizer.unknown_key"))
	})

	t.Run("supported languages are sorted", func(t *testing.T) {
		tr, err := i18n.NewTranslator(testCatalogs())
		require.NoError(t, err)

		assert.Equal(t, []string{"de", "en"}, tr.SupportedLanguages())
	})

	t.Run("invalid catalogs are rejected", func(t *testing.T) {
		_, err := i18n.NewTranslator(map[string]map[string]any{"": {}})
		assert.ErrorIs(t, err, i18n.ErrEmptyLanguageCode)

		_, err = i18n.NewTranslator(map[string]map[string]any{"en": nil})
		assert.ErrorIs(t, err, i18n.ErrNilLanguageMap)
	})
}
