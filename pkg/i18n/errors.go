package i18n

import "errors"

// Package errors use descriptive messages for debugging while avoiding
// implementation details.
var (
	// Catalog parsing
	ErrFailedToParseJSON = errors.New("failed to parse JSON catalog")
	ErrFailedToParseYAML = errors.New("failed to parse YAML catalog")
	ErrNoTranslations    = errors.New("no translations found in catalog")

	// Catalog structure
	ErrEmptyLanguageCode = errors.New("empty language code in catalog")
	ErrNilLanguageMap    = errors.New("nil translations map for language")
)
