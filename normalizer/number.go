package normalizer

import "strconv"

// Number accepts only a whole-input integer literal: optional leading sign,
// decimal digits, no fractional part, no exponent.
type Number struct{}

// NewNumber creates a strict integer normalizer.
func NewNumber() Number { return Number{} }

func (Number) Format(raw string) (any, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, ValidationError{
			Message:        "Numeric value is required",
			TranslationKey: "normalizer.number_required",
			TranslationValues: map[string]any{
				"value": raw,
			},
		}
	}
	return v, nil
}

func (Number) Describe() string { return "an integer value" }

func (Number) Complete(string) []string { return nil }
