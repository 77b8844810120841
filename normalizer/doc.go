// Package normalizer converts raw textual command-line option values into
// typed, validated in-memory values, and produces shell-completion candidates
// for partially typed input.
//
// The package sits between an argument-parsing front end and the business
// logic that consumes option values: it never reads argv itself and never
// executes commands. The front end holds one Normalizer per declared option,
// constructed once with any fixed configuration (such as an allowed-value
// set), and calls Format for every occurrence of that option.
//
// # Architecture
//
// Every concrete normalizer implements the Normalizer interface and lives in
// its own source file (`keyvalue.go`, `enum.go`, `datetime.go`, etc.). A
// normalizer is immutable after construction and holds no per-call state, so
// every instance is goroutine-safe without locking. Format is pure given its
// input and configuration; File and JSONInput perform a read as a side effect
// but retain nothing.
//
// Core building blocks:
//   - Normalizer       – Format/Describe/Complete capability interface
//   - ValidationError  – rejected input with translation metadata
//   - Register/New     – name-based registry for declaring option kinds
//
// # Usage
//
//	kv := normalizer.NewKeyValueList()
//	v, err := kv.Format("region=eu,zones=[a,b]")
//	if err != nil {
//	    if verr, ok := normalizer.AsValidationError(err); ok {
//	        // render verr.Message (or translate verr.TranslationKey)
//	    }
//	}
//
// # Error Handling
//
// A ValidationError means the input is syntactically well formed text but not
// an acceptable value: wrong grammar, out-of-set membership, a non-integer,
// an unparsable date or boolean. It always carries a user-facing message and
// never exposes internal parser diagnostics. File reads that fail surface as
// an I/O error joined with ErrFileRead instead, so callers can distinguish a
// bad value from a missing or unreadable file.
package normalizer
