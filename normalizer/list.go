package normalizer

import "github.com/dmitrymomot/optkit/pkg/tokenizer"

// List splits a comma-separated value into its fields, honoring quoting and
// backslash-escaped commas. Tokenization is delegated to pkg/tokenizer.
type List struct{}

// NewList creates a comma-separated list normalizer.
func NewList() List { return List{} }

func (List) Format(raw string) (any, error) {
	if raw == "" {
		return []string{}, nil
	}
	return tokenizer.Split(raw), nil
}

func (List) Describe() string { return "a comma-separated list of values" }

func (List) Complete(string) []string { return nil }
