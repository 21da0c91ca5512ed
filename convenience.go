// File: typedstore/convenience.go
package typedstore

import (
	"fmt"
	"sort"
	"strings"
)

// Quick creates a store with a single call, inferring the descriptor from
// defaultValue. This is the recommended way to initialize a store when the
// shape of the data is fully described by its default.
func Quick(name string, defaultValue any, storage Storage) (*Store, error) {
	return New(name, Options{Default: defaultValue, Storage: storage})
}

// MustQuick is like Quick but panics on error
func MustQuick(name string, defaultValue any, storage Storage) *Store {
	s, err := Quick(name, defaultValue, storage)
	if err != nil {
		panic(fmt.Sprintf("store initialization failed: %v", err))
	}
	return s
}

// Debug returns a formatted string showing the store's state: name, current
// value, default, baseline, and whether a conflict is pending.
func (s *Store) Debug() string {
	s.mutex.RLock()
	value := s.value
	baseline := s.baseline
	hasBaseline := s.hasBaseline
	s.mutex.RUnlock()

	var b strings.Builder
	b.WriteString("Store Debug Info:\n")
	b.WriteString(fmt.Sprintf("  Name: %s\n", s.name))
	b.WriteString(fmt.Sprintf("  Codec: %s\n", s.codec.Name()))
	b.WriteString(fmt.Sprintf("  Value: %v\n", value))
	b.WriteString(fmt.Sprintf("  Default: %v\n", s.def))
	if hasBaseline {
		b.WriteString(fmt.Sprintf("  Baseline: %s\n", baseline))
	} else {
		b.WriteString("  Baseline: (none)\n")
	}
	b.WriteString(fmt.Sprintf("  Conflict: %v\n", s.CheckConflict()))

	if m, ok := value.(map[string]any); ok {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("  Fields:\n")
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("    %s: %v\n", k, m[k]))
		}
	}

	return b.String()
}
