package normalizer

import "errors"

// Non-validation failures. ValidationError covers rejected values; these
// sentinels cover everything else and are joined with the underlying cause.
var (
	// ErrFileRead is returned when File or JSONInput cannot resolve or read
	// the named file. It is deliberately not a ValidationError: the value may
	// be a perfectly good path to a file that is missing or unreadable.
	ErrFileRead = errors.New("failed to read file")

	// ErrUnknownKind is returned by New for a kind name that was never
	// registered.
	ErrUnknownKind = errors.New("unknown normalizer kind")
)
