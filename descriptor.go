// File: typedstore/descriptor.go
package typedstore

import (
	"math"
	"reflect"
	"regexp"
	"unicode/utf8"
)

// Type is a structural descriptor: an immutable validation rule paired with a
// default value. Leaf kinds are built with Any, Bool, String, Number, and
// Nullable; composite kinds with Dict, List, and Union.
type Type interface {
	// Validate checks v against the descriptor. On failure the returned
	// Result carries every offending path.
	Validate(v any) Result

	// DefaultValue returns the descriptor's default. Composite kinds
	// synthesize it from their children unless one was set explicitly.
	DefaultValue() any
}

// Result is the outcome of a validation. Paths is populated only when Valid
// is false; a failure of the whole value is reported as one empty Path.
type Result struct {
	Valid bool
	Paths []Path
}

func valid() Result {
	return Result{Valid: true}
}

func invalidAt(paths ...Path) Result {
	return Result{Valid: false, Paths: paths}
}

// absentMarker stands in for a declared dictionary field whose key is missing
// from the value. Go has no undefined; this keeps "nil" and "missing"
// distinguishable so Nullable can accept or reject them independently.
type absentMarker struct{}

func isAbsent(v any) bool {
	_, ok := v.(absentMarker)
	return ok
}

// AnyType accepts every value.
type AnyType struct {
	def any
}

// Any returns a descriptor that accepts every value. Its default is nil
// unless overridden with Default.
func Any() *AnyType {
	return &AnyType{}
}

// Default sets the descriptor's default value.
func (t *AnyType) Default(v any) *AnyType {
	t.def = v
	return t
}

func (t *AnyType) Validate(any) Result { return valid() }

func (t *AnyType) DefaultValue() any { return t.def }

// BoolType accepts exactly boolean values.
type BoolType struct {
	def bool
}

// Bool returns a descriptor for boolean values. The default is false unless
// overridden with Default.
func Bool() *BoolType {
	return &BoolType{}
}

// Default sets the descriptor's default value.
func (t *BoolType) Default(v bool) *BoolType {
	t.def = v
	return t
}

func (t *BoolType) Validate(v any) Result {
	if _, ok := v.(bool); !ok {
		return invalidAt(Path{})
	}
	return valid()
}

func (t *BoolType) DefaultValue() any { return t.def }

// StringType accepts strings within a rune-length range, optionally matching
// a pattern.
type StringType struct {
	minLength int
	maxLength int // -1 means unbounded
	pattern   *regexp.Regexp
	def       string
}

// String returns a descriptor for string values with no length bounds and no
// pattern. The default is "" unless overridden with Default.
func String() *StringType {
	return &StringType{maxLength: -1}
}

// MinLength sets the minimum rune length.
func (t *StringType) MinLength(n int) *StringType {
	t.minLength = n
	return t
}

// MaxLength sets the maximum rune length.
func (t *StringType) MaxLength(n int) *StringType {
	t.maxLength = n
	return t
}

// Pattern requires values to match re.
func (t *StringType) Pattern(re *regexp.Regexp) *StringType {
	t.pattern = re
	return t
}

// Default sets the descriptor's default value.
func (t *StringType) Default(v string) *StringType {
	t.def = v
	return t
}

func (t *StringType) Validate(v any) Result {
	s, ok := v.(string)
	if !ok {
		return invalidAt(Path{})
	}
	n := utf8.RuneCountInString(s)
	if n < t.minLength || (t.maxLength >= 0 && n > t.maxLength) {
		return invalidAt(Path{})
	}
	if t.pattern != nil && !t.pattern.MatchString(s) {
		return invalidAt(Path{})
	}
	return valid()
}

func (t *StringType) DefaultValue() any { return t.def }

// NumberType accepts finite numeric values within a range.
type NumberType struct {
	min     float64
	max     float64
	integer bool
	def     float64
}

// Number returns a descriptor for finite numeric values with no bounds. The
// default is 0 unless overridden with Default.
func Number() *NumberType {
	return &NumberType{min: math.Inf(-1), max: math.Inf(1)}
}

// Min sets the lower bound (inclusive).
func (t *NumberType) Min(v float64) *NumberType {
	t.min = v
	return t
}

// Max sets the upper bound (inclusive).
func (t *NumberType) Max(v float64) *NumberType {
	t.max = v
	return t
}

// Integer rejects values with a fractional part.
func (t *NumberType) Integer() *NumberType {
	t.integer = true
	return t
}

// Default sets the descriptor's default value.
func (t *NumberType) Default(v float64) *NumberType {
	t.def = v
	return t
}

func (t *NumberType) Validate(v any) Result {
	f, ok := numberValue(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return invalidAt(Path{})
	}
	if f < t.min || f > t.max {
		return invalidAt(Path{})
	}
	if t.integer && math.Trunc(f) != f {
		return invalidAt(Path{})
	}
	return valid()
}

func (t *NumberType) DefaultValue() any { return t.def }

// numberValue extracts a float64 from any numeric kind. Codecs differ in what
// they decode numbers to (float64 for JSON, int64 for TOML), so acceptance is
// by kind rather than concrete type.
func numberValue(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// NullableType accepts nil values and, for declared dictionary fields,
// missing keys.
type NullableType struct {
	acceptNil     bool
	acceptMissing bool
}

// Nullable returns a descriptor accepting both nil values and missing
// dictionary fields. Its default is nil.
func Nullable() *NullableType {
	return &NullableType{acceptNil: true, acceptMissing: true}
}

// DisallowNil rejects explicit nil values.
func (t *NullableType) DisallowNil() *NullableType {
	t.acceptNil = false
	return t
}

// DisallowMissing rejects missing dictionary fields.
func (t *NullableType) DisallowMissing() *NullableType {
	t.acceptMissing = false
	return t
}

func (t *NullableType) Validate(v any) Result {
	if isAbsent(v) {
		if t.acceptMissing {
			return valid()
		}
		return invalidAt(Path{})
	}
	if v == nil {
		if t.acceptNil {
			return valid()
		}
		return invalidAt(Path{})
	}
	return invalidAt(Path{})
}

func (t *NullableType) DefaultValue() any { return nil }
