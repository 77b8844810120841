package optkit

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/optkit/normalizer"
)

var (
	// ErrUnknownOption is returned for a name that was never declared.
	ErrUnknownOption = errors.New("unknown option")

	// ErrDuplicateOption is returned when a name is declared twice.
	ErrDuplicateOption = errors.New("option already declared")
)

// Option is one declared command-line option: a name, its help text, and the
// normalizer that formats and completes its values.
type Option struct {
	Name       string
	Usage      string
	Normalizer normalizer.Normalizer
}

// OptionSet holds the options a command declares. Declaration happens during
// command setup; after that the set is read-only and safe for concurrent
// Format/Complete calls.
type OptionSet struct {
	options map[string]Option
	order   []string
}

// NewOptionSet creates an empty option set.
func NewOptionSet() *OptionSet {
	return &OptionSet{options: make(map[string]Option)}
}

// Declare registers an option under a unique name. A nil normalizer declares
// an identity pass-through option.
func (s *OptionSet) Declare(name, usage string, n normalizer.Normalizer) error {
	if _, exists := s.options[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOption, name)
	}
	if n == nil {
		n = normalizer.NewDefault()
	}
	s.options[name] = Option{Name: name, Usage: usage, Normalizer: n}
	s.order = append(s.order, name)
	return nil
}

// Format converts one occurrence of the named option's raw value into its
// typed form.
func (s *OptionSet) Format(name, raw string) (any, error) {
	opt, ok := s.options[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	return opt.Normalizer.Format(raw)
}

// Complete returns completion candidates for a partially typed value of the
// named option.
func (s *OptionSet) Complete(name, prefix string) ([]string, error) {
	opt, ok := s.options[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	return opt.Normalizer.Complete(prefix), nil
}

// Describe returns the named option's value description.
func (s *OptionSet) Describe(name string) (string, error) {
	opt, ok := s.options[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	return opt.Normalizer.Describe(), nil
}

// Options returns the declared options in declaration order.
func (s *OptionSet) Options() []Option {
	out := make([]Option, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.options[name])
	}
	return out
}
