// Package tokenizer splits comma-separated option values into fields,
// honoring single/double quoting and backslash escaping of embedded commas.
package tokenizer

import "strings"

// Split breaks s into comma-separated fields. A quoted run ('...' or "...")
// keeps commas literal; a backslash escapes the next character anywhere. Each
// field is trimmed of whitespace outside quotes, then has one level of
// quoting and escaping removed. An unterminated quote or a trailing backslash
// is kept literally rather than rejected: option values come from a shell,
// which has already done one round of quote processing.
func Split(s string) []string {
	if s == "" {
		return []string{}
	}

	var fields []string
	start := 0
	var quote byte
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == ',':
			fields = append(fields, unescape(strings.TrimSpace(s[start:i])))
			start = i + 1
		}
	}
	fields = append(fields, unescape(strings.TrimSpace(s[start:])))
	return fields
}

// unescape removes one level of quoting and backslash escaping from a single
// field.
func unescape(field string) string {
	var b strings.Builder
	var quote byte
	escaped := false

	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case escaped:
			b.WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				b.WriteByte(c)
			}
		case c == '\'' || c == '"':
			quote = c
		default:
			b.WriteByte(c)
		}
	}
	if escaped {
		b.WriteByte('\\')
	}
	return b.String()
}
