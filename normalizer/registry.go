package normalizer

import (
	"fmt"
	"sync"
)

// Factory builds a Normalizer for a declared option. The allowed-value set is
// only meaningful for enum kinds; the other factories ignore it.
type Factory func(allowed []string) Normalizer

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{
		"default":   func([]string) Normalizer { return NewDefault() },
		"keyvalue":  func([]string) Normalizer { return NewKeyValueList() },
		"list":      func([]string) Normalizer { return NewList() },
		"number":    func([]string) Normalizer { return NewNumber() },
		"bool":      func([]string) Normalizer { return NewBool() },
		"file":      func([]string) Normalizer { return NewFile() },
		"json":      func([]string) Normalizer { return NewJSONInput() },
		"datetime":  func([]string) Normalizer { return NewDateTime() },
		"enum":      func(allowed []string) Normalizer { return NewEnum(allowed) },
		"enum-list": func(allowed []string) Normalizer { return NewEnumList(allowed) },
	}
)

// Register makes a factory available under the given kind name, replacing any
// previous registration. It lets an application add custom normalizer kinds
// next to the built-ins.
func Register(kind string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[kind] = factory
}

// New constructs a normalizer by kind name. The allowed values are passed to
// the factory; built-in non-enum kinds ignore them.
func New(kind string, allowed ...string) (Normalizer, error) {
	registryMu.RLock()
	factory, ok := registry[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return factory(allowed), nil
}

// Kinds returns the names of all registered normalizer kinds.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	return kinds
}
