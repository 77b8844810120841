package normalizer

import (
	"fmt"
	"time"
)

// dateTimeLayouts are tried in order. Layouts without a zone parse as UTC,
// which keeps the canonical output round-trip stable.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// DateTime validates date/time text and rewrites it to the canonical
// RFC 3339 form. Re-parsing the output yields the same instant.
type DateTime struct{}

// NewDateTime creates a date/time normalizer.
func NewDateTime() DateTime { return DateTime{} }

func (DateTime) Format(raw string) (any, error) {
	if raw == "" {
		return nil, ValidationError{
			Message:        "Date/time value is required",
			TranslationKey: "normalizer.datetime_required",
		}
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(time.RFC3339), nil
		}
	}
	return nil, ValidationError{
		Message:        fmt.Sprintf("Unable to parse date/time value '%s'", raw),
		TranslationKey: "normalizer.datetime_invalid",
		TranslationValues: map[string]any{
			"value": raw,
		},
	}
}

func (DateTime) Describe() string {
	return "a date/time value, e.g. '2006-01-02 15:04:05' or RFC 3339"
}

func (DateTime) Complete(string) []string { return nil }
