// File: typedstore/composite.go
package typedstore

import (
	"sort"
	"strconv"
)

// DictType validates structural records field by field. Keys not declared in
// the field map are unconstrained.
type DictType struct {
	fields map[string]Type
	def    any
	hasDef bool
}

// Dict returns a descriptor for a record with the given named fields. The
// default is synthesized from each field's default unless overridden.
func Dict(fields map[string]Type) *DictType {
	return &DictType{fields: fields}
}

// Default sets an explicit default value, replacing field-wise synthesis.
func (t *DictType) Default(v any) *DictType {
	t.def = v
	t.hasDef = true
	return t
}

// Field returns the descriptor declared for name, if any.
func (t *DictType) Field(name string) (Type, bool) {
	ft, ok := t.fields[name]
	return ft, ok
}

func (t *DictType) Validate(v any) Result {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return invalidAt(Path{})
	}

	// Deterministic field order so failure paths are stable.
	names := make([]string, 0, len(t.fields))
	for name := range t.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var paths []Path
	for _, name := range names {
		fv, present := m[name]
		if !present {
			fv = absentMarker{}
		}
		r := t.fields[name].Validate(fv)
		if r.Valid {
			continue
		}
		for _, sub := range r.Paths {
			paths = append(paths, append(Path{name}, sub...))
		}
	}

	if len(paths) > 0 {
		return invalidAt(paths...)
	}
	return valid()
}

func (t *DictType) DefaultValue() any {
	if t.hasDef {
		return t.def
	}
	out := make(map[string]any, len(t.fields))
	for name, ft := range t.fields {
		out[name] = ft.DefaultValue()
	}
	return out
}

// ListType validates ordered sequences against a single element descriptor.
type ListType struct {
	elem   Type
	def    any
	hasDef bool
}

// List returns a descriptor for a sequence whose elements validate against
// elem. With no argument the element descriptor is Any. The default is an
// empty sequence unless overridden.
func List(elem ...Type) *ListType {
	t := &ListType{elem: Any()}
	if len(elem) > 0 && elem[0] != nil {
		t.elem = elem[0]
	}
	return t
}

// Default sets an explicit default value.
func (t *ListType) Default(v []any) *ListType {
	t.def = v
	t.hasDef = true
	return t
}

// Element returns the element descriptor.
func (t *ListType) Element() Type { return t.elem }

func (t *ListType) Validate(v any) Result {
	a, ok := v.([]any)
	if !ok {
		return invalidAt(Path{})
	}

	var paths []Path
	for i, e := range a {
		r := t.elem.Validate(e)
		if r.Valid {
			continue
		}
		for _, sub := range r.Paths {
			paths = append(paths, append(Path{strconv.Itoa(i)}, sub...))
		}
	}

	if len(paths) > 0 {
		return invalidAt(paths...)
	}
	return valid()
}

func (t *ListType) DefaultValue() any {
	if t.hasDef {
		return t.def
	}
	return []any{}
}

// UnionType validates against an ordered list of member descriptors.
type UnionType struct {
	members []Type
	def     any
	hasDef  bool
}

// Union returns a descriptor that accepts a value matching any member, tested
// in declared order. The default is the first member's default unless
// overridden.
func Union(members ...Type) *UnionType {
	return &UnionType{members: members}
}

// Default sets an explicit default value.
func (t *UnionType) Default(v any) *UnionType {
	t.def = v
	t.hasDef = true
	return t
}

func (t *UnionType) Validate(v any) Result {
	for _, m := range t.members {
		if m.Validate(v).Valid {
			return valid()
		}
	}
	// Per-member near-misses are not reported; the union fails as a whole.
	return invalidAt(Path{})
}

func (t *UnionType) DefaultValue() any {
	if t.hasDef {
		return t.def
	}
	if len(t.members) > 0 {
		return t.members[0].DefaultValue()
	}
	return nil
}

// fixValue repairs v against t by substituting each offending subtree with
// its descriptor's default. Dictionaries and lists are repaired field by
// field and element by element; an unmatched union is replaced wholesale by
// the union's default. The result always validates as long as every
// descriptor's default does.
func fixValue(t Type, v any) any {
	if t.Validate(v).Valid {
		return v
	}
	switch d := t.(type) {
	case *DictType:
		m, ok := v.(map[string]any)
		if !ok || m == nil {
			return d.DefaultValue()
		}
		out := make(map[string]any, len(m))
		for k, mv := range m {
			out[k] = mv
		}
		for name, ft := range d.fields {
			fv, present := m[name]
			if !present {
				fv = absentMarker{}
			}
			if ft.Validate(fv).Valid {
				continue
			}
			out[name] = fixValue(ft, fv)
		}
		return out
	case *ListType:
		a, ok := v.([]any)
		if !ok {
			return d.DefaultValue()
		}
		out := make([]any, len(a))
		for i, e := range a {
			if d.elem.Validate(e).Valid {
				out[i] = e
				continue
			}
			out[i] = fixValue(d.elem, e)
		}
		return out
	default:
		return t.DefaultValue()
	}
}
