// File: typedstore/builder.go
package typedstore

import (
	"fmt"
	"time"
)

// ValidatorFunc defines the signature for a function that can validate a
// freshly built Store. It receives the loaded *Store and should return an
// error if validation fails.
type ValidatorFunc func(s *Store) error

// Builder provides a fluent interface for constructing stores
type Builder struct {
	name       string
	opts       Options
	validators []ValidatorFunc
}

// NewBuilder creates a new store builder for the given name
func NewBuilder(name string) *Builder {
	return &Builder{
		name:       name,
		validators: make([]ValidatorFunc, 0),
	}
}

// WithType sets the structural descriptor
func (b *Builder) WithType(t Type) *Builder {
	b.opts.Type = t
	return b
}

// WithDefault sets the default value
func (b *Builder) WithDefault(v any) *Builder {
	b.opts.Default = v
	return b
}

// WithStorage sets the storage capability
func (b *Builder) WithStorage(storage Storage) *Builder {
	b.opts.Storage = storage
	return b
}

// WithCodec sets the source codec
func (b *Builder) WithCodec(codec Codec) *Builder {
	b.opts.Codec = codec
	return b
}

// WithDelay sets the debounce window for physical writes
func (b *Builder) WithDelay(delay time.Duration) *Builder {
	b.opts.Delay = delay
	return b
}

// WithLazyLoad defers the initial load until Load is called explicitly
func (b *Builder) WithLazyLoad() *Builder {
	b.opts.LazyLoad = true
	return b
}

// WithoutValidation accepts loaded sources without validating them
func (b *Builder) WithoutValidation() *Builder {
	b.opts.SkipValidation = true
	return b
}

// WithoutConflictCheck writes without comparing against the last observed source
func (b *Builder) WithoutConflictCheck() *Builder {
	b.opts.DisableConflictCheck = true
	return b
}

// WithoutAutoFix reports invalid values instead of repairing them
func (b *Builder) WithoutAutoFix() *Builder {
	b.opts.DisableAutoFix = true
	return b
}

// WithPathSeparator sets the separator for string-form paths
func (b *Builder) WithPathSeparator(sep string) *Builder {
	b.opts.PathSeparator = sep
	return b
}

// WithOnInvalid sets the invalid-value handler
func (b *Builder) WithOnInvalid(fn func(paths []Path)) *Builder {
	b.opts.OnInvalid = fn
	return b
}

// WithOnConflict sets the conflict handler
func (b *Builder) WithOnConflict(fn func(stored, lastKnown string)) *Builder {
	b.opts.OnConflict = fn
	return b
}

// WithValidator adds a validation function that runs at the end of the build
// process. Multiple validators can be added and are executed in the order
// they are added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the Store with all specified options
func (b *Builder) Build() (*Store, error) {
	s, err := New(b.name, b.opts)
	if err != nil {
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(s); err != nil {
			return nil, fmt.Errorf("store validation failed: %w", err)
		}
	}

	return s, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Store {
	s, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("store build failed: %v", err))
	}
	return s
}
