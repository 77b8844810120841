// Package optkit turns raw command-line option text into typed, validated
// values, and offers shell-completion candidates for the same input.
//
// The heavy lifting lives in the subpackages; this root package only holds
// the declaration surface an argument-parsing front end works with: Option
// and OptionSet. Each declared option owns one normalizer instance for the
// process lifetime and every occurrence of the option is formatted through
// it.
//
//	opts := optkit.NewOptionSet()
//	_ = opts.Declare("attr", "resource attributes", normalizer.NewKeyValueList())
//	_ = opts.Declare("status", "resource status", normalizer.NewEnum([]string{"active", "retired"}))
//
//	v, err := opts.Format("attr", "region=eu,zones=[a,b]")
//
// Subpackages:
//   - normalizer      – the value parsing/validation engine
//   - bind            – spf13/cobra + pflag front-end adapter
//   - pkg/tokenizer   – comma-list tokenizer with quoting/escaping
//   - pkg/completion  – completion candidate finalization
//   - pkg/fspath      – path resolution and filename browsing
//   - pkg/i18n        – message localization
//   - pkg/config      – env-driven configuration
//   - pkg/logger      – slog factory
package optkit
