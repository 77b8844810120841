// Package bind adapts normalizers to the spf13/cobra + pflag front end: a
// flag's raw text runs through a normalizer on Set, and the normalizer's
// completion candidates feed the command's shell completion.
package bind

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/optkit/normalizer"
	"github.com/dmitrymomot/optkit/pkg/completion"
)

// Value implements pflag.Value around a Normalizer. Set formats the raw text
// immediately, so a bad value fails at parse time with the normalizer's
// message instead of surfacing later in business logic.
type Value struct {
	norm  normalizer.Normalizer
	kind  string
	raw   string
	value any
	isSet bool
}

// NewValue wraps a normalizer as a pflag.Value. The kind string is what pflag
// shows as the value type in help output.
func NewValue(kind string, n normalizer.Normalizer) *Value {
	return &Value{norm: n, kind: kind}
}

// Set parses and stores one occurrence of the flag's value.
func (v *Value) Set(raw string) error {
	formatted, err := v.norm.Format(raw)
	if err != nil {
		return err
	}
	v.raw = raw
	v.value = formatted
	v.isSet = true
	return nil
}

// String returns the raw text of the last accepted value.
func (v *Value) String() string { return v.raw }

// Type returns the kind label shown in help output.
func (v *Value) Type() string { return v.kind }

// Get returns the typed value produced by the normalizer, or nil when the
// flag was never set.
func (v *Value) Get() any { return v.value }

// IsSet reports whether the flag was supplied.
func (v *Value) IsSet() bool { return v.isSet }

// FlagSet declares a normalizer-backed flag on a bare pflag set, for front
// ends that use pflag without cobra. No completion is wired; pflag has no
// completion surface of its own.
func FlagSet(fs *pflag.FlagSet, name, kind, usage string, n normalizer.Normalizer) *Value {
	v := NewValue(kind, n)
	fs.Var(v, name, usage)
	return v
}

// Flag declares a normalizer-backed flag on cmd and wires its shell
// completion to the normalizer's candidates.
func Flag(cmd *cobra.Command, name, kind, usage string, n normalizer.Normalizer) *Value {
	v := NewValue(kind, n)
	cmd.Flags().Var(v, name, usage)
	_ = cmd.RegisterFlagCompletionFunc(name,
		func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			candidates := completion.FilterPrefix(n.Complete(toComplete), toComplete)
			// Cobra owns spacing, so the trailing-space markers come off here.
			return completion.Strip(candidates), cobra.ShellCompDirectiveNoFileComp
		})
	return v
}
