package normalizer

// Normalizer converts the raw text of one option occurrence into a typed
// value. The empty string is the canonical encoding of an absent value; what
// an implementation does with it is part of its contract (most collection
// normalizers return an empty collection, scalar validators reject it).
type Normalizer interface {
	// Format returns the typed value for raw input, or an error when the
	// input is not acceptable. The returned value is one of: string, int64,
	// bool, []string, map[string]any, or an arbitrary decoded JSON value.
	Format(raw string) (any, error)

	// Describe returns a short human-readable description of the values the
	// normalizer accepts, suitable for help output.
	Describe() string

	// Complete returns completion candidates for a partially typed value.
	// Candidates ending in a space are complete values; candidates ending in
	// a path separator continue into a directory.
	Complete(prefix string) []string
}

// Default passes raw input through unchanged.
type Default struct{}

// NewDefault creates an identity normalizer.
func NewDefault() Default { return Default{} }

func (Default) Format(raw string) (any, error) { return raw, nil }

func (Default) Describe() string { return "any value" }

func (Default) Complete(string) []string { return nil }
