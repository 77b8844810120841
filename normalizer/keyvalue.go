package normalizer

import "strings"

// KeyValueList parses a flat or nested key/value list, falling back to JSON
// when the strict grammar does not describe the whole input.
//
// The strict grammar is one or more comma-separated `key=value` pairs,
// anchored so the entire string must be consumed. A key is any non-empty run
// of characters excluding comma and `=`. A value is either a non-empty run
// of characters excluding comma and `[`, or a bracketed run `[...]` whose
// interior is split on comma into a list. Later duplicate keys overwrite
// earlier ones. Scalars and list elements are trimmed of surrounding
// whitespace and have a leading and trailing run of quote characters
// stripped.
//
// Input that fails the strict grammar is handed to the JSON path (inline
// document or a path to a JSON file). When both interpretations fail the two
// underlying diagnostics are discarded and a single generic ValidationError
// is returned: the caller cannot tell which grammar the user was aiming for,
// so neither diagnostic is trustworthy.
type KeyValueList struct {
	json JSONInput
}

// NewKeyValueList creates a key/value list normalizer.
func NewKeyValueList() KeyValueList { return KeyValueList{} }

func (n KeyValueList) Format(raw string) (any, error) {
	if raw == "" {
		return map[string]any{}, nil
	}
	if pairs, ok := parseKeyValuePairs(raw); ok {
		return pairs, nil
	}
	v, err := n.json.Format(raw)
	if err != nil {
		return nil, ValidationError{
			Message:        "Value must be a key=value list or valid JSON",
			TranslationKey: "normalizer.key_value_list",
			TranslationValues: map[string]any{
				"value": raw,
			},
		}
	}
	return v, nil
}

func (KeyValueList) Describe() string {
	return "a comma-separated list of key=value pairs, or a JSON document"
}

func (KeyValueList) Complete(string) []string { return nil }

// parseKeyValuePairs is a linear-time scanner for the strict grammar. It
// reports ok=false as soon as a character falls outside the grammar, which is
// what anchors the "whole string must match" rule: any unconsumed or stray
// input invalidates the strict interpretation.
func parseKeyValuePairs(s string) (map[string]any, bool) {
	out := make(map[string]any)
	i := 0
	for {
		keyStart := i
		for i < len(s) && s[i] != '=' && s[i] != ',' {
			i++
		}
		if i == keyStart || i == len(s) || s[i] != '=' {
			return nil, false
		}
		key := s[keyStart:i]
		i++ // '='

		if i < len(s) && s[i] == '[' {
			i++
			innerStart := i
			for i < len(s) && s[i] != ']' && s[i] != '[' {
				i++
			}
			if i == len(s) || s[i] != ']' {
				return nil, false // nested '[' or unterminated bracket
			}
			out[key] = splitListValue(s[innerStart:i])
			i++ // ']'
		} else {
			valueStart := i
			for i < len(s) && s[i] != ',' {
				if s[i] == '[' {
					return nil, false
				}
				i++
			}
			if i == valueStart {
				return nil, false // empty value
			}
			out[key] = unquote(strings.TrimSpace(s[valueStart:i]))
		}

		if i == len(s) {
			return out, true
		}
		if s[i] != ',' {
			return nil, false // stray character after a bracketed value
		}
		i++
		if i == len(s) {
			return nil, false // trailing comma
		}
	}
}

func splitListValue(inner string) []string {
	parts := strings.Split(inner, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = unquote(strings.TrimSpace(p))
	}
	return out
}

// unquote strips one leading and one trailing run of quote characters. The
// runs are stripped independently, so asymmetric quoting like `"'x'` still
// collapses to `x`.
func unquote(s string) string {
	const quotes = `"'`
	return strings.TrimRight(strings.TrimLeft(s, quotes), quotes)
}
