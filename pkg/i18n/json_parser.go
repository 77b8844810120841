package i18n

import (
	"encoding/json"
	"errors"
)

// ParseJSON parses JSON catalog content with the same language-keyed
// structure ParseYAML expects.
func ParseJSON(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return toCatalogs(data)
}
