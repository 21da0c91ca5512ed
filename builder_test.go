// FILE: typedstore/builder_test.go
package typedstore

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilderOptionPlumbing tests that fluent options reach the store
func TestBuilderOptionPlumbing(t *testing.T) {
	storage := NewMemoryStorage()

	s, err := NewBuilder("settings").
		WithType(serverType()).
		WithStorage(storage).
		WithCodec(YAMLCodec()).
		WithDelay(time.Second).
		WithPathSeparator("/").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "settings", s.Name())
	assert.IsType(t, &DictType{}, s.Type())

	require.NoError(t, s.Set("host", "example.com"))
	require.NoError(t, s.Flush())

	src, ok := storage.GetItem("settings")
	require.True(t, ok)
	decoded, err := YAMLCodec().Decode(src)
	require.NoError(t, err)
	assert.Equal(t, "example.com", decoded.(map[string]any)["host"])
}

// TestBuilderValidators tests post-build validation hooks
func TestBuilderValidators(t *testing.T) {
	t.Run("Pass", func(t *testing.T) {
		ran := 0
		s, err := NewBuilder("settings").
			WithType(serverType()).
			WithStorage(NewMemoryStorage()).
			WithValidator(func(s *Store) error { ran++; return nil }).
			WithValidator(func(s *Store) error { ran++; return nil }).
			Build()
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, 2, ran)
	})

	t.Run("Fail", func(t *testing.T) {
		sentinel := errors.New("port out of range for deployment")
		s, err := NewBuilder("settings").
			WithType(serverType()).
			WithStorage(NewMemoryStorage()).
			WithValidator(func(s *Store) error {
				if port, _ := s.Int64("port"); port < 1024 {
					return nil
				}
				return sentinel
			}).
			Build()
		assert.Nil(t, s)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("NilValidatorIgnored", func(t *testing.T) {
		s, err := NewBuilder("settings").
			WithType(serverType()).
			WithStorage(NewMemoryStorage()).
			WithValidator(nil).
			Build()
		require.NoError(t, err)
		require.NotNil(t, s)
	})
}

// TestBuilderMissingStorage tests the required-storage rule
func TestBuilderMissingStorage(t *testing.T) {
	_, err := NewBuilder("settings").WithType(serverType()).Build()
	assert.ErrorIs(t, err, ErrNoStorage)
}

// TestBuilderLazyLoad tests deferred loading through the builder
func TestBuilderLazyLoad(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.SetItem("settings", `{"host":"stored","port":1}`))

	s, err := NewBuilder("settings").
		WithType(serverType()).
		WithStorage(storage).
		WithLazyLoad().
		Build()
	require.NoError(t, err)

	host, _ := s.String("host")
	assert.Equal(t, "localhost", host)

	require.NoError(t, s.Load())
	host, _ = s.String("host")
	assert.Equal(t, "stored", host)
}

// TestBuilderWithoutAutoFix tests flag plumbing via behavior
func TestBuilderWithoutAutoFix(t *testing.T) {
	s, err := NewBuilder("settings").
		WithType(serverType()).
		WithStorage(NewMemoryStorage()).
		WithoutAutoFix().
		Build()
	require.NoError(t, err)

	err = s.Set("port", "oops")
	var invalid *InvalidValueError
	assert.ErrorAs(t, err, &invalid)
}

// TestMustBuild tests the panic variant
func TestMustBuild(t *testing.T) {
	assert.Panics(t, func() {
		NewBuilder("").WithStorage(NewMemoryStorage()).MustBuild()
	})

	assert.NotPanics(t, func() {
		NewBuilder("settings").WithStorage(NewMemoryStorage()).MustBuild()
	})
}

// TestQuick tests the one-call constructor
func TestQuick(t *testing.T) {
	s, err := Quick("prefs", map[string]any{"theme": "dark"}, NewMemoryStorage())
	require.NoError(t, err)

	theme, _ := s.String("theme")
	assert.Equal(t, "dark", theme)

	// The inferred descriptor enforces the default's shape.
	require.NoError(t, s.Set("theme", 42))
	theme, _ = s.String("theme")
	assert.Equal(t, "dark", theme)
}

// TestMustQuick tests the panic variant
func TestMustQuick(t *testing.T) {
	assert.Panics(t, func() {
		MustQuick("", nil, NewMemoryStorage())
	})
}

// TestDebug tests the debug dump contents
func TestDebug(t *testing.T) {
	s := MustQuick("prefs", map[string]any{"theme": "dark", "size": 2.0}, NewMemoryStorage())

	out := s.Debug()
	assert.Contains(t, out, "Name: prefs")
	assert.Contains(t, out, "Codec: json")
	assert.Contains(t, out, "theme: dark")
	assert.Contains(t, out, "size: 2")
	assert.Contains(t, out, "Baseline: (none)")
}
