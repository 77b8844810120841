package i18n

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses YAML catalog content. The top level must map language
// codes to translation maps:
//
//	en:
//	  normalizer:
//	    number_required: Numeric value is required
//	de:
//	  normalizer:
//	    number_required: Numerischer Wert ist erforderlich
func ParseYAML(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return toCatalogs(data)
}

func toCatalogs(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		translations, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid catalog structure for language '%s': expected map, got %T", lang, val)
		}
		result[lang] = translations
	}
	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}
