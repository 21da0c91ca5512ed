// File: typedstore/store.go
package typedstore

import (
	"sync"
	"time"
)

// Options configures a Store. The zero value of every flag matches the
// documented default behavior: validation, conflict checking, and auto-fix
// are on unless explicitly disabled, and loading happens at construction
// unless LazyLoad is set.
type Options struct {
	// Type is the structural descriptor for the store's value. When nil it
	// is inferred from Default, or falls back to a permissive Any.
	Type Type

	// Default is the value adopted when storage holds nothing under the
	// store's name. When nil it is taken from Type's default.
	Default any

	// Storage is the persistence capability. Required; there is no ambient
	// default.
	Storage Storage

	// Codec serializes the value to its source string. Defaults to JSON.
	Codec Codec

	// Delay debounces physical writes. Zero writes synchronously; a positive
	// delay coalesces rapid saves into one write, last value wins.
	Delay time.Duration

	// LazyLoad skips the initial Load during construction.
	LazyLoad bool

	// SkipValidation accepts loaded sources without validating them.
	SkipValidation bool

	// DisableConflictCheck writes without comparing storage against the
	// last observed source first.
	DisableConflictCheck bool

	// DisableAutoFix reports invalid values instead of repairing them.
	DisableAutoFix bool

	// PathSeparator splits string-form paths. Defaults to ".".
	PathSeparator string

	// OnInvalid, when set, receives the offending paths of an invalid value
	// instead of the operation returning an InvalidValueError.
	OnInvalid func(paths []Path)

	// OnConflict, when set, receives the diverged source strings instead of
	// the operation returning a ConflictError. The handler may call Load to
	// adopt the external value or Flush after DisableConflictCheck-style
	// resolution of its own.
	OnConflict func(stored, lastKnown string)
}

// Store is a typed, path-addressable value persisted under a single name in
// a shared Storage. All operations are safe for concurrent use.
type Store struct {
	name    string
	typ     Type
	def     any
	storage Storage
	codec   Codec
	delay   time.Duration
	sep     string

	skipValidation       bool
	disableConflictCheck bool
	disableAutoFix       bool
	onInvalid            func(paths []Path)
	onConflict           func(stored, lastKnown string)

	mutex       sync.RWMutex
	value       any
	baseline    string // last source string this instance observed in storage
	hasBaseline bool
	saveTimer   *time.Timer
}

// New creates a Store named name and, unless opts.LazyLoad is set, loads it
// from storage immediately. A load failure is returned but leaves the store
// usable, holding its default value.
func New(name string, opts Options) (*Store, error) {
	if name == "" {
		return nil, ErrNoName
	}
	if opts.Storage == nil {
		return nil, ErrNoStorage
	}

	typ := opts.Type
	if typ == nil {
		if opts.Default != nil {
			typ = Infer(opts.Default)
		} else {
			typ = Any()
		}
	}

	def := opts.Default
	if def == nil {
		def = typ.DefaultValue()
	}

	codec := opts.Codec
	if codec == nil {
		codec = JSONCodec()
	}

	sep := opts.PathSeparator
	if sep == "" {
		sep = DefaultPathSeparator
	}

	s := &Store{
		name:                 name,
		typ:                  typ,
		def:                  def,
		storage:              opts.Storage,
		codec:                codec,
		delay:                opts.Delay,
		sep:                  sep,
		skipValidation:       opts.SkipValidation,
		disableConflictCheck: opts.DisableConflictCheck,
		disableAutoFix:       opts.DisableAutoFix,
		onInvalid:            opts.OnInvalid,
		onConflict:           opts.OnConflict,
		value:                def,
	}

	if opts.LazyLoad {
		return s, nil
	}
	return s, s.Load()
}

// Name returns the store's key into its storage.
func (s *Store) Name() string { return s.name }

// Type returns the store's descriptor.
func (s *Store) Type() Type { return s.typ }

// Default returns the store's resolved default value.
func (s *Store) Default() any { return s.def }

// Load reads the source string stored under the store's name and adopts it.
// A missing entry adopts the default value directly, trusted and without
// validation. See LoadSource for the handling of present sources.
func (s *Store) Load() error {
	src, ok := s.storage.GetItem(s.name)
	if !ok {
		s.mutex.Lock()
		s.value = s.def
		s.baseline = ""
		s.hasBaseline = false
		s.mutex.Unlock()
		return nil
	}
	return s.LoadSource(src)
}

// LoadSource decodes and adopts an explicit source string. Unless
// SkipValidation is set the decoded value is validated; an invalid value is
// repaired by auto-fix, or delivered to OnInvalid, or returned as an
// InvalidValueError, in that order of configuration. A repair that still does
// not validate (the descriptor's own defaults violate it) degrades to the
// same invalid-value path without adopting anything. On success the exact
// source string becomes the baseline for conflict comparisons.
func (s *Store) LoadSource(src string) error {
	v, err := s.codec.Decode(src)
	if err != nil {
		// A source that does not even parse is an invalid value at the root;
		// auto-fix substitutes the store default.
		if s.disableAutoFix {
			return s.failInvalid([]Path{{}})
		}
		v = s.def
	}

	if !s.skipValidation {
		if r := s.typ.Validate(v); !r.Valid {
			if s.disableAutoFix {
				return s.failInvalid(r.Paths)
			}
			v = fixValue(s.typ, v)
			if r := s.typ.Validate(v); !r.Valid {
				return s.failInvalid(r.Paths)
			}
		}
	}

	s.mutex.Lock()
	s.value = v
	s.baseline = src
	s.hasBaseline = true
	s.mutex.Unlock()
	return nil
}

// Get returns the subtree at path, or the whole value for "". The second
// return value reports whether the path structurally exists.
func (s *Store) Get(path string) (any, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return getPath(s.value, SplitPath(path, s.sep))
}

// Set assigns value at path, validates the resulting whole value under the
// same auto-fix policy as Load, commits it, and persists per the delay
// policy. A structurally missing path returns ErrPathNotFound without
// mutation.
func (s *Store) Set(path string, value any) error {
	return s.apply(SplitPath(path, s.sep), value)
}

// Update is Set with an updater: fn receives the prior value at path (nil
// when absent) and its result is assigned.
func (s *Store) Update(path string, fn func(prev any) any) error {
	p := SplitPath(path, s.sep)

	s.mutex.RLock()
	prev, _ := getPath(s.value, p)
	s.mutex.RUnlock()

	return s.apply(p, fn(prev))
}

// Reset restores the default at path: the literal default tree is consulted
// first, then the descriptor reached by TypeByPath. An unresolvable path
// returns ErrPathNotFound without mutation.
func (s *Store) Reset(path string) error {
	p := SplitPath(path, s.sep)

	def, ok := getPath(s.def, p)
	if !ok {
		t, found := TypeByPath(s.typ, p)
		if !found {
			return ErrPathNotFound
		}
		def = t.DefaultValue()
	}

	return s.apply(p, def)
}

// apply builds the candidate whole value, validates it, commits, and saves.
// The write lock is held from reading the current value through the commit so
// concurrent mutations to different paths cannot erase each other; callbacks
// and I/O happen after release.
func (s *Store) apply(p Path, value any) error {
	s.mutex.Lock()

	candidate, ok := setPath(s.value, p, value)
	if !ok {
		s.mutex.Unlock()
		return ErrPathNotFound
	}

	if !s.skipValidation {
		if r := s.typ.Validate(candidate); !r.Valid {
			if s.disableAutoFix {
				s.mutex.Unlock()
				return s.failInvalid(r.Paths)
			}
			candidate = fixValue(s.typ, candidate)
			if r := s.typ.Validate(candidate); !r.Valid {
				s.mutex.Unlock()
				return s.failInvalid(r.Paths)
			}
		}
	}

	s.value = candidate
	s.mutex.Unlock()

	return s.Save()
}

// Save persists the current value. With a zero delay the write happens
// synchronously via Flush. Otherwise a single debounced timer is (re)armed;
// saves arriving within the window replace the pending write rather than
// queuing another, and the value current when the timer fires is what gets
// written.
func (s *Store) Save() error {
	if s.delay <= 0 {
		return s.Flush()
	}

	s.mutex.Lock()
	if s.saveTimer != nil {
		s.saveTimer.Stop()
	}
	s.saveTimer = time.AfterFunc(s.delay, func() {
		// Deferred writes have no caller; conflicts surface through the
		// OnConflict handler when one is configured.
		_ = s.Flush()
	})
	s.mutex.Unlock()
	return nil
}

// Flush performs the physical write immediately, cancelling any pending
// debounced write. Unless conflict checking is disabled, divergence between
// storage and the baseline aborts the write and is delivered to OnConflict
// or returned as a ConflictError. After a successful write the encoded
// source becomes the new baseline.
func (s *Store) Flush() error {
	s.mutex.Lock()
	if s.saveTimer != nil {
		s.saveTimer.Stop()
		s.saveTimer = nil
	}
	value := s.value
	baseline := s.baseline
	hasBaseline := s.hasBaseline
	s.mutex.Unlock()

	src, err := s.codec.Encode(value)
	if err != nil {
		return err
	}

	if !s.disableConflictCheck {
		stored, ok := s.storage.GetItem(s.name)
		if diverged(stored, ok, baseline, hasBaseline) {
			if s.onConflict != nil {
				s.onConflict(stored, baseline)
				return nil
			}
			return &ConflictError{Stored: stored, LastKnown: baseline}
		}
	}

	if err := s.storage.SetItem(s.name, src); err != nil {
		return err
	}

	s.mutex.Lock()
	s.baseline = src
	s.hasBaseline = true
	s.mutex.Unlock()
	return nil
}

// Cancel abandons a pending debounced write, if any. The in-memory value is
// untouched; a later Save or Flush persists it.
func (s *Store) Cancel() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.saveTimer != nil {
		s.saveTimer.Stop()
		s.saveTimer = nil
	}
}

// CheckConflict reports whether the string currently in storage differs from
// the last source this instance observed, i.e. whether another writer
// changed it.
func (s *Store) CheckConflict() bool {
	stored, ok := s.storage.GetItem(s.name)

	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return diverged(stored, ok, s.baseline, s.hasBaseline)
}

// diverged compares storage content against a baseline, treating presence
// itself as part of the comparison.
func diverged(stored string, storedOK bool, baseline string, baselineOK bool) bool {
	if storedOK != baselineOK {
		return true
	}
	return storedOK && stored != baseline
}

// failInvalid applies the callback-or-error policy for invalid values.
func (s *Store) failInvalid(paths []Path) error {
	if s.onInvalid != nil {
		s.onInvalid(paths)
		return nil
	}
	return &InvalidValueError{Paths: paths}
}
