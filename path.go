// File: typedstore/path.go
package typedstore

import (
	"strconv"
	"strings"
)

// DefaultPathSeparator separates segments in string-form paths.
const DefaultPathSeparator = "."

// Path is an ordered sequence of keys locating a value inside a nested
// structure. Segments are strings; list indices are decimal strings. An
// empty Path denotes the whole value.
type Path []string

// SplitPath parses a string-form path into segments on sep. An empty string
// yields an empty Path.
func SplitPath(s, sep string) Path {
	if s == "" {
		return Path{}
	}
	return Path(strings.Split(s, sep))
}

// JoinPath renders a Path to string form with sep. SplitPath(JoinPath(p,
// sep), sep) reconstructs p whenever no segment contains sep.
func JoinPath(p Path, sep string) string {
	return strings.Join(p, sep)
}

// String renders the path with the default separator.
func (p Path) String() string {
	return JoinPath(p, DefaultPathSeparator)
}

// getPath walks v segment by segment. It reports false the moment an
// intermediate is missing or not indexable.
func getPath(v any, p Path) (any, bool) {
	current := v
	for _, seg := range p {
		switch c := current.(type) {
		case map[string]any:
			next, ok := c[seg]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(c) {
				return nil, false
			}
			current = c[i]
		default:
			return nil, false
		}
	}
	return current, true
}

// setPath returns a copy of v with val assigned at p, cloning every
// container on the touched spine so callers holding references to the prior
// structure are unaffected. The final map key may be created; slice indices
// must be in bounds; a missing intermediate fails. An empty path replaces
// the whole value.
func setPath(v any, p Path, val any) (any, bool) {
	if len(p) == 0 {
		return val, true
	}

	switch c := v.(type) {
	case map[string]any:
		seg := p[0]
		next := val
		if len(p) > 1 {
			existing, ok := c[seg]
			if !ok {
				return nil, false
			}
			updated, ok := setPath(existing, p[1:], val)
			if !ok {
				return nil, false
			}
			next = updated
		}
		out := make(map[string]any, len(c)+1)
		for k, mv := range c {
			out[k] = mv
		}
		out[seg] = next
		return out, true

	case []any:
		i, err := strconv.Atoi(p[0])
		if err != nil || i < 0 || i >= len(c) {
			return nil, false
		}
		next := val
		if len(p) > 1 {
			updated, ok := setPath(c[i], p[1:], val)
			if !ok {
				return nil, false
			}
			next = updated
		}
		out := make([]any, len(c))
		copy(out, c)
		out[i] = next
		return out, true
	}

	return nil, false
}

// TypeByPath walks a descriptor along p. It succeeds only while every
// traversed ancestor is a Dictionary with a declared field for the next
// segment; List and Union descriptors expose no named per-path children, so
// the walk stops at their boundary. An empty path yields t itself.
func TypeByPath(t Type, p Path) (Type, bool) {
	current := t
	for _, seg := range p {
		dict, ok := current.(*DictType)
		if !ok {
			return nil, false
		}
		field, ok := dict.Field(seg)
		if !ok {
			return nil, false
		}
		current = field
	}
	return current, true
}
