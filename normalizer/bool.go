package normalizer

import "strings"

var (
	truthy = []string{"true", "t", "yes", "y", "1"}
	falsy  = []string{"false", "f", "no", "n", "0"}
)

// Bool matches the raw value case-insensitively against a fixed set of
// truthy and falsy spellings.
type Bool struct{}

// NewBool creates a boolean normalizer.
func NewBool() Bool { return Bool{} }

func (Bool) Format(raw string) (any, error) {
	lowered := strings.ToLower(raw)
	for _, s := range truthy {
		if lowered == s {
			return true, nil
		}
	}
	for _, s := range falsy {
		if lowered == s {
			return false, nil
		}
	}
	return nil, ValidationError{
		Message: "Value must be one of: " +
			strings.Join(truthy, ", ") + ", " + strings.Join(falsy, ", "),
		TranslationKey: "normalizer.bool_required",
		TranslationValues: map[string]any{
			"value":  raw,
			"truthy": truthy,
			"falsy":  falsy,
		},
	}
}

func (Bool) Describe() string { return "a boolean value (yes/no)" }

// Complete always offers the canonical spellings, whatever the prefix: the
// completion finalizer downstream filters by the typed prefix.
func (Bool) Complete(string) []string { return []string{"yes ", "no "} }
