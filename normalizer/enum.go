package normalizer

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/optkit/pkg/completion"
)

// Enum accepts a value only if it is an exact member of a fixed allowed set.
// The set is copied at construction and never mutated afterwards.
type Enum struct {
	allowed []string
}

// NewEnum creates an exact-membership normalizer over allowed. The set is
// assumed non-empty; an empty set rejects every input.
func NewEnum(allowed []string) Enum {
	return Enum{allowed: append([]string(nil), allowed...)}
}

// Allowed returns a copy of the allowed-value set in declaration order.
func (n Enum) Allowed() []string {
	return append([]string(nil), n.allowed...)
}

func (n Enum) Format(raw string) (any, error) {
	for _, v := range n.allowed {
		if raw == v {
			return raw, nil
		}
	}
	return nil, ValidationError{
		Message:        enumMessage(n.allowed),
		TranslationKey: "normalizer.enum_member",
		TranslationValues: map[string]any{
			"value":   raw,
			"allowed": n.Allowed(),
		},
	}
}

func (n Enum) Describe() string {
	return "one of " + quoteJoin(n.allowed)
}

func (n Enum) Complete(string) []string {
	return completion.Finalize(n.allowed)
}

// EnumList accepts a comma-separated combination of allowed values.
// Duplicates are dropped keeping first-occurrence order. Elements are NOT
// trimmed before the membership check, so "a, b" fails on the element " b".
type EnumList struct {
	allowed []string
}

// NewEnumList creates a comma-separated membership normalizer over allowed.
func NewEnumList(allowed []string) EnumList {
	return EnumList{allowed: append([]string(nil), allowed...)}
}

// Allowed returns a copy of the allowed-value set in declaration order.
func (n EnumList) Allowed() []string {
	return append([]string(nil), n.allowed...)
}

func (n EnumList) Format(raw string) (any, error) {
	if raw == "" {
		return []string{}, nil
	}
	seen := make(map[string]struct{})
	var values []string
	for _, v := range strings.Split(raw, ",") {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if !contains(n.allowed, v) {
			return nil, ValidationError{
				Message:        "Value must be a combination of " + quoteJoin(n.allowed),
				TranslationKey: "normalizer.enum_list_member",
				TranslationValues: map[string]any{
					"value":   v,
					"allowed": n.Allowed(),
				},
			}
		}
		values = append(values, v)
	}
	return values, nil
}

func (n EnumList) Describe() string {
	return "a comma-separated combination of " + quoteJoin(n.allowed)
}

func (n EnumList) Complete(string) []string {
	return completion.Finalize(n.allowed)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func enumMessage(allowed []string) string {
	if len(allowed) == 1 {
		return fmt.Sprintf("Value must be '%s'", allowed[0])
	}
	return "Value must be one of " + quoteJoin(allowed)
}

func quoteJoin(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}
